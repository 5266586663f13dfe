package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go SQLite driver for database/sql
)

// sqliteTargetStore keeps targets in a local SQLite file, scoped to the
// process that opened it.
type sqliteTargetStore struct {
	db *sql.DB
}

// OpenSQLiteTargetStore opens (creating when needed) the SQLite file at path
// and bootstraps the targets table. Use ":memory:" for an ephemeral store.
func OpenSQLiteTargetStore(path string) (TargetStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection: keeps ":memory:" databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS targets (
		key TEXT PRIMARY KEY,
		value REAL NOT NULL,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create targets table: %w", err)
	}
	return &sqliteTargetStore{db: db}, nil
}

func (s *sqliteTargetStore) GetTarget(ctx context.Context, key string) (float64, bool, error) {
	var v float64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM targets WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get target %s: %w", key, err)
	}
	return v, true, nil
}

func (s *sqliteTargetStore) SetTarget(ctx context.Context, key string, value float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO targets (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("set target %s: %w", key, err)
	}
	return nil
}

func (s *sqliteTargetStore) Close() error {
	return s.db.Close()
}
