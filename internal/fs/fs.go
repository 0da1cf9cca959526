// Package fs provides the filesystem abstraction used by the cache store.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the store needs
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using [os] and atomic rewrites
//   - [Injected]: testing implementation that fails chosen operations
//
// Example usage:
//
//	fsys := fs.NewReal()
//	f, err := fsys.Open("cache.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
package fs

import (
	"io"
	"os"
)

// File represents an open file.
//
// This interface is satisfied by [os.File] and can be used with all
// standard library functions that accept [io.Reader] or [io.Writer].
type File interface {
	io.ReadWriteCloser

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)
}

// FS defines the filesystem operations for reading and rewriting the cache
// table.
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing with fault injection.
type FS interface {
	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// OpenFile opens a file with specified flags and permissions. See [os.OpenFile].
	// Used for the append-only creation of an empty table.
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// WriteFileAtomic replaces the file contents with data.
	// Uses a temp file + rename so readers never see a half-written table.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info. See [os.Stat].
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}

// Compile-time interface checks.
var (
	_ File = (*os.File)(nil)
	_ FS   = (*Real)(nil)
	_ FS   = (*Injected)(nil)
)
