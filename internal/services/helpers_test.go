package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/errors"
	"taskboard/internal/persistence"
	"taskboard/internal/repository/sqlite"
)

// setupStore returns an adapter over a fresh in-memory SQLite database.
func setupStore(t *testing.T) (*persistence.Adapter, *sqlite.SQLiteRepository) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return persistence.NewAdapter(repo), repo
}

// failingStore wraps a Store and fails writes while failWrites is set.
type failingStore struct {
	Store
	failWrites bool
	writes     int
}

func (f *failingStore) Write(ctx context.Context, key string, value interface{}) error {
	f.writes++
	if f.failWrites {
		return errors.NewStorageError("write "+key, fmt.Errorf("disk full"))
	}
	return f.Store.Write(ctx, key, value)
}

func (f *failingStore) Remove(ctx context.Context, key string) error {
	if f.failWrites {
		return errors.NewStorageError("remove "+key, fmt.Errorf("disk full"))
	}
	return f.Store.Remove(ctx, key)
}
