package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/natefinch/atomic"
)

// LocalStore implements Store using the local file system.
//
// WriteAll replaces files atomically (write to a temp file, then rename), so a
// crashed or failed rewrite never leaves a half-written collection behind.
// Append uses O_APPEND, which is what makes concurrent appends to the same
// collection safe without a prior read.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// The directory does not need to exist; it is created on first write.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// ReadAll returns the full content of the named file.
func (s *LocalStore) ReadAll(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, name))
}

// WriteAll atomically replaces the named file with data.
func (s *LocalStore) WriteAll(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// Append appends rows to the named file, creating it with header first if it
// does not yet exist.
func (s *LocalStore) Append(_ context.Context, name string, header, rows []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if err := createWithHeader(path, header); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// createWithHeader creates path holding header unless it already exists. The
// file becomes visible only once the header is on disk (link of a finished
// temp file), so a racing appender can never slip a row into a headerless
// file, and exactly one of several racing creators wins.
func createWithHeader(path string, header []byte) error {
	if _, err := os.Lstat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".header-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(header); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Link(tmp.Name(), path); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return nil
}

// Delete removes the named file. Deleting an absent file is not an error.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List returns the relative paths of all files under the store root, sorted.
// A missing root directory lists as empty, not as an error.
func (s *LocalStore) List(_ context.Context) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
