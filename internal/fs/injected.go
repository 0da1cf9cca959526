package fs

import (
	"errors"
	"os"
)

// Op names an [FS] operation that [Injected] can fail.
type Op string

// Operations understood by [Injected].
const (
	OpOpen            Op = "open"
	OpOpenFile        Op = "openfile"
	OpWriteFileAtomic Op = "writefileatomic"
	OpMkdirAll        Op = "mkdirall"
	OpStat            Op = "stat"
	OpRead            Op = "read"
)

// InjectedError marks an error as intentionally injected by [Injected].
//
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Op  Op
	Err error
}

// Error returns the operation and the underlying error's message.
func (e *InjectedError) Error() string {
	return string(e.Op) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected.
func IsInjected(err error) bool {
	var injected *InjectedError
	return errors.As(err, &injected)
}

// Injected wraps an [FS] and fails the configured operations.
//
// Failing [OpRead] returns files whose Read always fails, which exercises
// the error path after a successful open.
type Injected struct {
	fs    FS
	fails map[Op]error
}

// NewInjected wraps fsys. Panics if fsys is nil.
func NewInjected(fsys FS) *Injected {
	if fsys == nil {
		panic("fs is nil")
	}

	return &Injected{fs: fsys, fails: make(map[Op]error)}
}

// Fail makes every later call of op return err.
func (i *Injected) Fail(op Op, err error) {
	i.fails[op] = &InjectedError{Op: op, Err: err}
}

func (i *Injected) check(op Op) error {
	return i.fails[op]
}

func (i *Injected) Open(path string) (File, error) {
	if err := i.check(OpOpen); err != nil {
		return nil, err
	}

	f, err := i.fs.Open(path)
	if err != nil {
		return nil, err
	}

	if readErr := i.check(OpRead); readErr != nil {
		return &failingFile{File: f, err: readErr}, nil
	}

	return f, nil
}

func (i *Injected) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	if err := i.check(OpOpenFile); err != nil {
		return nil, err
	}

	return i.fs.OpenFile(path, flag, perm)
}

func (i *Injected) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := i.check(OpWriteFileAtomic); err != nil {
		return err
	}

	return i.fs.WriteFileAtomic(path, data, perm)
}

func (i *Injected) MkdirAll(path string, perm os.FileMode) error {
	if err := i.check(OpMkdirAll); err != nil {
		return err
	}

	return i.fs.MkdirAll(path, perm)
}

func (i *Injected) Stat(path string) (os.FileInfo, error) {
	if err := i.check(OpStat); err != nil {
		return nil, err
	}

	return i.fs.Stat(path)
}

func (i *Injected) Exists(path string) (bool, error) {
	if err := i.check(OpStat); err != nil {
		return false, err
	}

	return i.fs.Exists(path)
}

// failingFile returns err from every Read. Close still releases the handle.
type failingFile struct {
	File

	err error
}

func (f *failingFile) Read([]byte) (int, error) {
	return 0, f.err
}
