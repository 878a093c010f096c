//go:build windows

package inventory

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the NTFS creation time.
func creationTime(_ string, info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}

	return time.Unix(0, stat.CreationTime.Nanoseconds())
}
