//go:build !linux

package fsops

import (
	"os"
	"syscall"
)

// rename falls back to os.Rename on platforms without renameat2(2). The
// no-overwrite case is an Lstat followed by the rename, so it carries the
// usual check-then-rename race on these platforms; the rename itself is
// still a single atomic step.
func rename(src, dest string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Lstat(dest); err == nil {
			return syscall.EEXIST
		}
	}
	return os.Rename(src, dest)
}
