//go:build windows

package inventory

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type platformOwners struct{}

// ResolveOwner reads the owner SID from the security descriptor of path and
// resolves it to an account name.
func (platformOwners) ResolveOwner(path string) (string, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return "", fmt.Errorf("reading security descriptor: %w", err)
	}

	sid, _, err := sd.Owner()
	if err != nil {
		return "", fmt.Errorf("reading owner sid: %w", err)
	}

	account, _, _, err := sid.LookupAccount("")
	if err != nil {
		return "", fmt.Errorf("looking up sid %s: %w", sid.String(), err)
	}

	return account, nil
}
