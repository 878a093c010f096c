//go:build !unix && !windows

package inventory

type platformOwners struct{}

func (platformOwners) ResolveOwner(string) (string, error) {
	return "", errOwnerUnsupported
}
