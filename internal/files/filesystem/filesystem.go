package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts the filesystem operations scriptsort performs: one
// flat directory listing plus individual file reads. There is no recursion
// and no write access.
type Provider interface {
	// ReadDir lists the immediate entries of the directory at path.
	// Entries are returned in whatever order the underlying iteration
	// yields; callers must not assume they are sorted.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
