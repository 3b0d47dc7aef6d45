package config

import (
	"fmt"
	"os"

	"github.com/cristiano-superacao/superacao/internal/repository/sqlite"
	"github.com/cristiano-superacao/superacao/internal/storage"
)

// CreateRepository creates a backend repository instance using the
// configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateStore creates the local key-value store backing the engine
func CreateStore(config *Config) (storage.Store, error) {
	store, err := storage.NewFileStore(config.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}
	return store, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
