package main

import (
	"fmt"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/repository"
	"taskboard/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current
// environment. It has the shape of cli.Opener.
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (repository.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository()
	case Testing:
		return rf.createTestingRepository()
	default:
		return rf.createProductionRepository(cfg)
	}
}

// createDevelopmentRepository uses a database file in the working directory
func (rf *RepositoryFactory) createDevelopmentRepository() (repository.Repository, error) {
	repo, err := sqlite.New("tb.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database that lasts one command
func (rf *RepositoryFactory) createTestingRepository() (repository.Repository, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// createProductionRepository opens the configured backend under the data directory
func (rf *RepositoryFactory) createProductionRepository(cfg *config.Config) (repository.Repository, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production storage: %w", err)
	}
	return repo, nil
}

// getEnvironment reads TB_ENV. Anything unrecognized means production.
func getEnvironment() Environment {
	switch Environment(os.Getenv("TB_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}
