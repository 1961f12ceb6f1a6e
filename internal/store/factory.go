package store

import (
	"fmt"
	"log/slog"
)

// Backend names accepted by Open.
const (
	FileBackend   = "file"
	SQLiteBackend = "sqlite"
)

// Open creates the configured store backend.
func Open(backend, dataDir, dbPath string) (Store, error) {
	switch backend {
	case SQLiteBackend:
		st, err := NewSQLiteStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		slog.Info("Initialized sqlite store", "db_path", dbPath)
		return st, nil
	case FileBackend, "":
		st, err := NewFileStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file store: %w", err)
		}
		slog.Info("Initialized file store", "data_dir", dataDir)
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", backend)
	}
}
