package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := New(filepath.Join(t.TempDir(), "store"), 0o755)
	require.NoError(t, err)
	return fs
}

func TestFileStore_PutGet(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "username", []byte(`"carol"`)))

	value, err := fs.Get(ctx, "username")
	require.NoError(t, err)
	assert.Equal(t, `"carol"`, string(value))

	// no temp file left behind
	_, err = os.Stat(filepath.Join(fs.dir, "username.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_GetMissing(t *testing.T) {
	fs := newTestStore(t)

	_, err := fs.Get(context.Background(), "tasks")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestFileStore_Delete(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "darkMode", []byte("false")))
	require.NoError(t, fs.Delete(ctx, "darkMode"))
	require.NoError(t, fs.Delete(ctx, "darkMode"))

	_, err := fs.Get(ctx, "darkMode")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestFileStore_OneFilePerKey(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "tasks", []byte("[]")))
	require.NoError(t, fs.Put(ctx, "darkMode", []byte("true")))

	assert.FileExists(t, filepath.Join(fs.dir, "tasks.json"))
	assert.FileExists(t, filepath.Join(fs.dir, "darkMode.json"))

	// a leftover temp file does not shadow the committed value
	require.NoError(t, os.WriteFile(filepath.Join(fs.dir, "tasks.json.tmp"), []byte("x"), 0o644))
	value, err := fs.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value))
}

func TestFileStore_RejectsUnsafeKeys(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		err := fs.Put(ctx, key, []byte("1"))
		require.Error(t, err, key)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), key)
	}
}

func TestFileStore_CancelledContext(t *testing.T) {
	fs := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fs.Put(ctx, "tasks", []byte("[]"))
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}
