package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/guttosm/trainpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

// SessionFilter narrows ListSessions; empty fields match everything.
type SessionFilter struct {
	CompetitorID string
	ModalityID   string
}

// SessionsRepository defines contract for training session persistence.
type SessionsRepository interface {
	ListSessions(ctx context.Context, filter SessionFilter) ([]models.TrainingSession, error)
	InsertSessionsBatch(ctx context.Context, source string, sessions []models.TrainingSession) error
	HasImport(ctx context.Context, source string) (bool, error)
	UpsertImportLog(ctx context.Context, source string, rowCount int) error
	DeleteSessionsBySource(ctx context.Context, source string) error
	DeleteImportLog(ctx context.Context, source string) error
}

type sessionsRepository struct {
	db *sql.DB
}

func NewSessionsRepository(db *sql.DB) SessionsRepository {
	return &sessionsRepository{db: db}
}

// ListSessions returns every session (any status) matching filter.
//
// training_date is rendered as text so callers read the stored calendar day
// without any timezone conversion.
func (r *sessionsRepository) ListSessions(ctx context.Context, filter SessionFilter) ([]models.TrainingSession, error) {
	where, args := filterConditions(
		condition{column: "competitor_id", value: filter.CompetitorID},
		condition{column: "modality_id", value: filter.ModalityID},
	)

	query := `
		SELECT id, competitor_id, modality_id, to_char(training_date, 'YYYY-MM-DD'), hours, status
		FROM training_sessions` + where + `
		ORDER BY training_date, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.TrainingSession
	for rows.Next() {
		var s models.TrainingSession
		var status string
		if err := rows.Scan(&s.ID, &s.CompetitorID, &s.ModalityID, &s.TrainingDate, &s.Hours, &status); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Status = models.SessionStatus(status)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// InsertSessionsBatch bulk-loads sessions with COPY in a single transaction,
// tagging every row with the source file it came from.
func (r *sessionsRepository) InsertSessionsBatch(ctx context.Context, source string, sessions []models.TrainingSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"training_sessions",
		"id",
		"competitor_id",
		"modality_id",
		"training_date",
		"hours",
		"status",
		"source_file",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, s := range sessions {
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx,
			id,
			s.CompetitorID,
			s.ModalityID,
			s.TrainingDate,
			s.Hours,
			string(s.Status),
			source,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasImport checks if a source file was already imported.
func (r *sessionsRepository) HasImport(ctx context.Context, source string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM import_log WHERE source_file = $1)`, source).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertImportLog records (or updates) the import of a source file.
func (r *sessionsRepository) UpsertImportLog(ctx context.Context, source string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO import_log (source_file, row_count)
		VALUES ($1, $2)
		ON CONFLICT (source_file)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, source, rowCount)
	return err
}

// DeleteSessionsBySource removes every session loaded from source.
func (r *sessionsRepository) DeleteSessionsBySource(ctx context.Context, source string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM training_sessions WHERE source_file = $1`, source)
	return err
}

// DeleteImportLog forgets that source was imported.
func (r *sessionsRepository) DeleteImportLog(ctx context.Context, source string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM import_log WHERE source_file = $1`, source)
	return err
}

type condition struct {
	column string
	value  string
}

// filterConditions builds a WHERE clause with positional placeholders for
// every non-empty condition.
func filterConditions(conds ...condition) (string, []interface{}) {
	where := ""
	var args []interface{}
	for _, c := range conds {
		if c.value == "" {
			continue
		}
		args = append(args, c.value)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf("%s = $%d", c.column, len(args))
	}
	return where, args
}
