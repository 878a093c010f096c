//go:build darwin

package inventory

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the birth time of the inode.
func creationTime(_ string, info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}

	return time.Unix(stat.Birthtimespec.Unix())
}
