package types

import (
	"io/fs"
)

// FS is the filesystem surface the link pipeline needs. Production code uses
// filesystem.NewOS; tests wrap it to inject failures.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Link operations
	Link(oldname, newname string) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// CopyFile replaces dst with a copy of src, preserving mode and
	// modification time.
	CopyFile(src, dst string) error

	Remove(name string) error
}
