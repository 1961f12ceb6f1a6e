package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shiharai/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps both documents as rows of a key/value documents table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]core.Item, core.Amounts, error) {
	itemsRaw, err := s.read(ctx, KeyItems)
	if err != nil {
		return nil, nil, fmt.Errorf("read items document: %w", err)
	}
	amountsRaw, err := s.read(ctx, KeyAmounts)
	if err != nil {
		return nil, nil, fmt.Errorf("read amounts document: %w", err)
	}
	return decodeItems(ctx, itemsRaw), decodeAmounts(ctx, amountsRaw), nil
}

func (s *SQLiteStore) SaveItems(ctx context.Context, items []core.Item) error {
	return s.write(ctx, KeyItems, items)
}

func (s *SQLiteStore) SaveAmounts(ctx context.Context, amounts core.Amounts) error {
	return s.write(ctx, KeyAmounts, amounts)
}

func (s *SQLiteStore) read(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (s *SQLiteStore) write(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, body) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
