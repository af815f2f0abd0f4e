//go:build linux

package fsops

import "golang.org/x/sys/unix"

// rename wraps renameat2(2). With overwrite disabled it passes
// RENAME_NOREPLACE, so the kernel itself refuses an existing destination
// and there is no window between an existence check and the rename.
func rename(src, dest string, overwrite bool) error {
	var flags uint
	if !overwrite {
		flags = unix.RENAME_NOREPLACE
	}
	for {
		err := unix.Renameat2(unix.AT_FDCWD, src, unix.AT_FDCWD, dest, flags)
		if err != unix.EINTR {
			return err
		}
	}
}
