// Package persistence reads and writes named values as JSON on top of a
// repository.Repository. Reads never fail: anything unreadable is reported
// as absent.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"

	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/repository"
)

// Adapter is the typed key-value store used by the services.
type Adapter struct {
	repo repository.Repository
}

// NewAdapter wraps repo.
func NewAdapter(repo repository.Repository) *Adapter {
	return &Adapter{repo: repo}
}

// Read decodes the value stored under key into out, which must be a non-nil
// pointer. It returns false when the key was never written or holds null,
// when the backend fails, or when the stored value is malformed. A malformed value is logged
// and deleted. out is left untouched whenever Read returns false.
func (a *Adapter) Read(ctx context.Context, key string, out interface{}) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		logging.Warnf("cannot read %q into %T", key, out)
		return false
	}

	data, err := a.repo.Get(ctx, key)
	if err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			logging.Warnf("could not read %q: %v", key, err)
		}
		return false
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		logging.Debugf("read %q: null, treating as absent", key)
		return false
	}

	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		a.discard(ctx, key, err)
		return false
	}

	target.Elem().Set(fresh.Elem())
	logging.Debugf("read %q (%d bytes)", key, len(data))
	return true
}

func (a *Adapter) discard(ctx context.Context, key string, cause error) {
	logging.Warnf("%v; resetting it", errors.NewCorruptValueError(key, cause))
	if err := a.repo.Delete(ctx, key); err != nil {
		logging.Warnf("could not clear %q: %v", key, err)
	}
}

// Write stores value under key as JSON.
func (a *Adapter) Write(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewInvalidInputError(key, value, err.Error())
	}
	if err := a.repo.Put(ctx, key, data); err != nil {
		return asStorageError("write "+key, err)
	}
	logging.Debugf("wrote %q (%d bytes)", key, len(data))
	return nil
}

// Remove forgets key. Removing a key that was never written is not an error.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	if err := a.repo.Delete(ctx, key); err != nil {
		return asStorageError("remove "+key, err)
	}
	return nil
}

func asStorageError(operation string, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewStorageError(operation, err)
}
