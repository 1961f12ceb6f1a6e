package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shiharai/internal/core"
)

// FileStore keeps each document as one JSON file in a data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(ctx context.Context) ([]core.Item, core.Amounts, error) {
	itemsRaw, err := readIfPresent(s.path(KeyItems))
	if err != nil {
		return nil, nil, fmt.Errorf("read items document: %w", err)
	}
	amountsRaw, err := readIfPresent(s.path(KeyAmounts))
	if err != nil {
		return nil, nil, fmt.Errorf("read amounts document: %w", err)
	}
	return decodeItems(ctx, itemsRaw), decodeAmounts(ctx, amountsRaw), nil
}

func (s *FileStore) SaveItems(ctx context.Context, items []core.Item) error {
	return s.write(KeyItems, items)
}

func (s *FileStore) SaveAmounts(ctx context.Context, amounts core.Amounts) error {
	return s.write(KeyAmounts, amounts)
}

func (s *FileStore) write(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// readIfPresent returns nil bytes for a missing file; only genuine read
// failures propagate.
func readIfPresent(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
