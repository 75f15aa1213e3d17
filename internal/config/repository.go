package config

import (
	"fmt"
	"os"

	"monet/internal/repository/sqlite"
	"monet/internal/storage"
)

// CreateStore creates the task store selected by the configuration
func CreateStore(config *Config) (storage.Store, error) {
	path := config.GetStoragePath()
	dirPerm := os.FileMode(config.Storage.DirPermissions)

	switch config.Storage.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		repo, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	case BackendFile, "":
		return storage.NewFileStoreWithOptions(path, storage.FileOptions{DirPermissions: dirPerm}), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}
}
