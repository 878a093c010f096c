//go:build linux

package inventory

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime prefers the statx birth time and falls back to the status-change time
// on filesystems that do not record it.
func creationTime(path string, info os.FileInfo) time.Time {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx)
	if err == nil && stx.Mask&unix.STATX_BTIME != 0 {
		return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}

	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec)) //nolint:unconvert // int32 on 32-bit
	}

	return info.ModTime()
}
