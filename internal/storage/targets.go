package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Keys of the persisted comparison targets.
const (
	KeyMonthlyHoursTarget = "monthly_hours_target"
	KeyScoreTarget        = "score_target"
)

// TargetStore is a last-write-wins key/value store for numeric targets.
//
// GetTarget reports found=false for keys that were never written.
type TargetStore interface {
	GetTarget(ctx context.Context, key string) (value float64, found bool, err error)
	SetTarget(ctx context.Context, key string, value float64) error
	Close() error
}

type postgresTargetStore struct {
	db *sql.DB
}

// NewPostgresTargetStore keeps targets in the shared "settings" table.
// Close is a no-op: the pool belongs to the caller.
func NewPostgresTargetStore(db *sql.DB) TargetStore {
	return &postgresTargetStore{db: db}
}

func (s *postgresTargetStore) GetTarget(ctx context.Context, key string) (float64, bool, error) {
	var v float64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get target %s: %w", key, err)
	}
	return v, true, nil
}

func (s *postgresTargetStore) SetTarget(ctx context.Context, key string, value float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value,
					  updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("set target %s: %w", key, err)
	}
	return nil
}

func (s *postgresTargetStore) Close() error { return nil }
