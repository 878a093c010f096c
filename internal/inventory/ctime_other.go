//go:build !linux && !darwin && !windows

package inventory

import (
	"os"
	"time"
)

// creationTime falls back to the modification time where no portable creation time exists.
func creationTime(_ string, info os.FileInfo) time.Time {
	return info.ModTime()
}
