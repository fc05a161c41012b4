package main

import (
	"fmt"
	"os"

	"kanban/internal/config"
	"kanban/internal/repository/sqlite"
)

// EnvVar selects the environment kb runs in
const EnvVar = "KB_ENV"

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

// CreateRepository opens the settings database for the environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.open("kb.db", cfg)
	case Testing:
		// nothing survives the process
		return rf.open(":memory:", cfg)
	default:
		return config.CreateRepository(cfg)
	}
}

// open uses dbPath with the configured timeouts
func (rf *RepositoryFactory) open(dbPath string, cfg *config.Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(dbPath, sqlite.Options{
		QueryTimeout: cfg.GetQueryTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", rf.env, err)
	}
	return repo, nil
}

// getEnvironment reads KB_ENV, defaulting to production
func getEnvironment() Environment {
	switch Environment(os.Getenv(EnvVar)) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}
