package config

import (
	"fmt"
	"os"

	"taskboard/internal/repository"
	"taskboard/internal/repository/filestore"
	"taskboard/internal/repository/sqlite"
)

// CreateRepository opens the backend selected by config.Storage.Backend,
// creating the data directory first.
func CreateRepository(config *Config) (repository.Repository, error) {
	perm := os.FileMode(config.Storage.DirPermissions)
	if err := os.MkdirAll(config.Storage.Dir, perm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	switch config.Storage.Backend {
	case BackendFile:
		store, err := filestore.New(config.GetStoragePath(), perm)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		return store, nil
	case BackendSQLite:
		repo, err := sqlite.NewWithOptions(config.GetStoragePath(), sqlite.Options{
			QueryTimeout: config.Storage.QueryTimeout,
			WriteTimeout: config.Storage.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q", config.Storage.Backend)}
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
