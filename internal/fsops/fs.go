// Package fsops provides the filesystem primitives behind rawmv.
//
// All filesystem access goes through the FS interface so the planner and
// engine can be tested without touching a real filesystem. The only
// mutation is Rename, which maps to an atomic rename primitive: it never
// falls back to copy+delete, and it can be asked to refuse an existing
// destination instead of replacing it.
package fsops

import "os"

// FS provides an abstraction for the filesystem operations rawmv needs.
type FS interface {
	// Rename atomically renames src to dest. When overwrite is false the
	// rename fails if dest already exists, with an error satisfying
	// errors.Is(err, fs.ErrExist).
	Rename(src, dest string, overwrite bool) error

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Rename atomically renames src to dest.
func (fs *RealFS) Rename(src, dest string, overwrite bool) error {
	return rename(src, dest, overwrite)
}

// IsDir reports whether path exists and is a directory.
func (fs *RealFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
