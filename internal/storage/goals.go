package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/trainpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// ErrInvalidReference is returned when a goal points at a competitor or
// modality that does not exist, or at an id that is not a UUID.
var ErrInvalidReference = errors.New("invalid reference")

// Postgres error codes mapped to ErrInvalidReference.
const (
	pqForeignKeyViolation = "23503"
	pqInvalidTextRepr     = "22P02"
)

func translatePQ(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation, pqInvalidTextRepr:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Message)
		}
	}
	return err
}

// GoalsRepository persists competitor goals.
type GoalsRepository interface {
	ListGoals(ctx context.Context, competitorID string, modalityID string) ([]models.Goal, error)
	CreateGoal(ctx context.Context, goal *models.Goal) error
	CreateGoals(ctx context.Context, goals []*models.Goal) error
	UpdateGoalProgress(ctx context.Context, id string, current *float64) (*models.Goal, error)
}

type goalsRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewGoalsRepository(db *sql.DB) GoalsRepository {
	return &goalsRepository{db: db, now: time.Now}
}

const goalColumns = `id, title, competitor_id, modality_id, target_value, current_value, unit, due_date, status, created_at`

// ListGoals returns the goals of a competitor, newest first, optionally
// restricted to one modality.
func (r *goalsRepository) ListGoals(ctx context.Context, competitorID string, modalityID string) ([]models.Goal, error) {
	where, args := filterConditions(
		condition{column: "competitor_id", value: competitorID},
		condition{column: "modality_id", value: modalityID},
	)
	rows, err := r.db.QueryContext(ctx, `SELECT `+goalColumns+` FROM goals`+where+` ORDER BY created_at DESC, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// CreateGoal assigns id, status and creation time, then inserts the goal.
func (r *goalsRepository) CreateGoal(ctx context.Context, goal *models.Goal) error {
	if err := r.insertGoal(ctx, r.db, goal); err != nil {
		return fmt.Errorf("insert goal: %w", translatePQ(err))
	}
	return nil
}

// CreateGoals inserts every goal in one transaction. Either all of them are
// stored or none is.
func (r *goalsRepository) CreateGoals(ctx context.Context, goals []*models.Goal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, goal := range goals {
		if err := r.insertGoal(ctx, tx, goal); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert goal %q: %w", goal.Title, translatePQ(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit goals: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *goalsRepository) insertGoal(ctx context.Context, db execer, goal *models.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	if goal.Status == "" {
		goal.Status = models.GoalActive
	}
	goal.CreatedAt = r.now().UTC()

	_, err := db.ExecContext(ctx, `
		INSERT INTO goals (`+goalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		goal.ID,
		goal.Title,
		goal.CompetitorID,
		nullString(goal.ModalityID),
		nullFloat(goal.TargetValue),
		nullFloat(goal.CurrentValue),
		nullString(goal.Unit),
		nullTime(goal.DueDate),
		goal.Status,
		goal.CreatedAt,
	)
	return err
}

// UpdateGoalProgress sets the current value of a goal and recomputes its
// status inside one transaction. Returns ErrNotFound for unknown ids.
func (r *goalsRepository) UpdateGoalProgress(ctx context.Context, id string, current *float64) (*models.Goal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	g, err := scanGoal(tx.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		_ = tx.Rollback()
		return nil, translatePQ(err)
	}

	g.ApplyProgress(current)

	if _, err := tx.ExecContext(ctx,
		`UPDATE goals SET current_value = $2, status = $3 WHERE id = $1`,
		id, nullFloat(g.CurrentValue), g.Status,
	); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update goal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return g, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (*models.Goal, error) {
	var (
		g        models.Goal
		modality sql.NullString
		target   sql.NullFloat64
		current  sql.NullFloat64
		unit     sql.NullString
		due      sql.NullTime
	)
	err := row.Scan(&g.ID, &g.Title, &g.CompetitorID, &modality, &target, &current, &unit, &due, &g.Status, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan goal: %w", err)
	}
	if modality.Valid {
		g.ModalityID = &modality.String
	}
	if target.Valid {
		g.TargetValue = &target.Float64
	}
	if current.Valid {
		g.CurrentValue = &current.Float64
	}
	if unit.Valid {
		g.Unit = &unit.String
	}
	if due.Valid {
		g.DueDate = &due.Time
	}
	return &g, nil
}

// helpers to map unset optionals to NULL
func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
