// Package store owns the on-disk correction table: it loads the table into a
// [postable.Cache] and rewrites the whole file when the cache changes.
//
// The table file has two states. Absent or empty files decode to an empty
// cache; populated files carry the three-line header plus data rows. A save
// always replaces the whole file. There is no locking: concurrent writers
// from several processes race, last writer wins.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/espacy/internal/fs"
	"github.com/calvinalkan/espacy/pkg/postable"
)

const (
	filePerms = 0o644
	dirPerms  = 0o755
)

// Store loads and persists the correction table at a fixed path.
type Store struct {
	fs   fs.FS
	path string
	log  *zap.Logger
	echo io.Writer
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEcho sets where verbose saves print the rendered table.
// The default discards it.
func WithEcho(w io.Writer) Option {
	return func(s *Store) {
		if w != nil {
			s.echo = w
		}
	}
}

// New returns a store for the table at path.
func New(fsys fs.FS, path string, opts ...Option) (*Store, error) {
	if fsys == nil {
		panic("fs is nil")
	}

	if path == "" {
		return nil, ErrPathEmpty
	}

	s := &Store{
		fs:   fsys,
		path: filepath.Clean(path),
		log:  zap.NewNop(),
		echo: io.Discard,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Path returns the table location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the table file is present, empty or not.
func (s *Store) Exists() (bool, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", s.path, err)
	}

	return exists, nil
}

// Load reads the table. An absent or empty file is initialized with the bare
// header and yields an empty cache.
func (s *Store) Load() (*postable.Cache, error) {
	empty, err := s.isEmpty()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if empty {
		initErr := s.Init()
		if initErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, initErr)
		}

		return postable.NewCache(), nil
	}

	cache, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	s.log.Debug("cache loaded",
		zap.String("path", s.path),
		zap.Int("words", len(cache.Words())),
		zap.Int("entries", cache.Len()))

	return cache, nil
}

func (s *Store) read() (*postable.Cache, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	checkErr := postable.CheckTable(lines)
	if checkErr != nil {
		s.log.Warn("cache file has stray lines, they are ignored",
			zap.String("path", s.path),
			zap.Error(checkErr))
	}

	return postable.Decode(lines), nil
}

func (s *Store) readLines() (lines []string, err error) {
	file, err := s.fs.Open(s.path)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close %q: %w", s.path, closeErr))
		}
	}()

	return postable.ReadLines(file)
}

// Check reports lines of the table file that are neither rows nor borders,
// as an error wrapping [postable.ErrNotTable]. An absent or empty file passes.
func (s *Store) Check() error {
	empty, err := s.isEmpty()
	if err != nil {
		return err
	}

	if empty {
		return nil
	}

	lines, err := s.readLines()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return postable.CheckTable(lines)
}

// Save truncates the table and rewrites it from cache. When verbose is set
// every rendered line is also written to the echo writer.
func (s *Store) Save(cache *postable.Cache, verbose bool) error {
	lines := postable.Encode(cache)

	err := s.ensureDir()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	err = s.fs.WriteFileAtomic(s.path, []byte(postable.Join(lines)), filePerms)
	if err != nil {
		return fmt.Errorf("%w: write %q: %w", ErrSave, s.path, err)
	}

	if verbose {
		for _, line := range lines {
			_, _ = fmt.Fprintln(s.echo, strings.ReplaceAll(line, "\t", " "))
		}
	}

	s.log.Debug("cache saved",
		zap.String("path", s.path),
		zap.Int("rows", len(lines)-postable.HeaderLines))

	return nil
}

// Init writes the bare header to an absent or empty table by appending to it.
// Populated tables are left untouched.
func (s *Store) Init() (err error) {
	empty, err := s.isEmpty()
	if err != nil {
		return err
	}

	if !empty {
		return nil
	}

	err = s.ensureDir()
	if err != nil {
		return err
	}

	file, err := s.fs.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerms)
	if err != nil {
		return fmt.Errorf("open %q: %w", s.path, err)
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close %q: %w", s.path, closeErr))
		}
	}()

	_, err = io.WriteString(file, postable.Join(postable.Encode(postable.NewCache())))
	if err != nil {
		return fmt.Errorf("write %q: %w", s.path, err)
	}

	s.log.Debug("cache initialized", zap.String("path", s.path))

	return nil
}

func (s *Store) isEmpty() (bool, error) {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}

		return false, fmt.Errorf("stat %q: %w", s.path, err)
	}

	if info.IsDir() {
		return false, fmt.Errorf("%q is a directory", s.path)
	}

	return info.Size() == 0, nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)

	err := s.fs.MkdirAll(dir, dirPerms)
	if err != nil {
		return fmt.Errorf("create %q: %w", dir, err)
	}

	return nil
}
