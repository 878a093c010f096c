//go:build unix

package inventory

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"
)

type platformOwners struct{}

// ResolveOwner maps the owning uid of path to a user name.
func (platformOwners) ResolveOwner(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", errOwnerUnsupported
	}

	uid := strconv.FormatUint(uint64(stat.Uid), 10)

	owner, err := user.LookupId(uid)
	if err != nil {
		return "", fmt.Errorf("looking up uid %s: %w", uid, err)
	}

	return owner.Username, nil
}
