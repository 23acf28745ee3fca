// Package filestore keeps each key in its own file under a directory.
// Writes go through a temp file and rename so a crash never leaves a torn value.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"taskboard/internal/errors"
	"taskboard/internal/repository"
)

const valueExt = ".json"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore implements repository.Repository on plain files.
type FileStore struct {
	dir  string
	perm os.FileMode
}

var _ repository.Repository = (*FileStore)(nil)

// New creates the store directory if needed.
func New(dir string, perm os.FileMode) (*FileStore, error) {
	if perm == 0 {
		perm = 0o755
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return nil, errors.NewStorageError("create store dir", err)
	}
	return &FileStore{dir: dir, perm: perm}, nil
}

func (fs *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) || strings.HasPrefix(key, ".") {
		return "", errors.NewInvalidInputError("key", key, "keys may only contain letters, digits, '.', '_' and '-'")
	}
	return filepath.Join(fs.dir, key+valueExt), nil
}

// Get reads the value file for key.
func (fs *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("get "+key, err)
	}
	path, err := fs.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("key", key)
		}
		return nil, errors.NewStorageError("get "+key, err)
	}
	return data, nil
}

// Put atomically replaces the value file for key.
func (fs *FileStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("put "+key, err)
	}
	path, err := fs.path(key)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return errors.NewStorageError("put "+key, fmt.Errorf("write tmp: %w", err))
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.NewStorageError("put "+key, fmt.Errorf("rename: %w", err))
	}
	return nil
}

// Delete removes the value file; a missing file is fine.
func (fs *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("delete "+key, err)
	}
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.NewStorageError("delete "+key, err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (fs *FileStore) Close() error {
	return nil
}
