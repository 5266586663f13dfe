package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/trainpulse/internal/domain/models"
)

// GradeFilter narrows ListGrades; empty fields match everything.
type GradeFilter struct {
	CompetitorID string
	ModalityID   string
}

// AssessmentsRepository reads competitors, exams and grades.
type AssessmentsRepository interface {
	ListCompetitors(ctx context.Context, modalityID string) ([]models.Competitor, error)
	ListExams(ctx context.Context) ([]models.Exam, error)
	ListGrades(ctx context.Context, filter GradeFilter) ([]models.Grade, error)
}

type assessmentsRepository struct {
	db *sql.DB
}

func NewAssessmentsRepository(db *sql.DB) AssessmentsRepository {
	return &assessmentsRepository{db: db}
}

func (r *assessmentsRepository) ListCompetitors(ctx context.Context, modalityID string) ([]models.Competitor, error) {
	where, args := filterConditions(condition{column: "modality_id", value: modalityID})
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, modality_id FROM competitors`+where+` ORDER BY name, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Competitor
	for rows.Next() {
		var c models.Competitor
		if err := rows.Scan(&c.ID, &c.Name, &c.ModalityID); err != nil {
			return nil, fmt.Errorf("scan competitor: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *assessmentsRepository) ListExams(ctx context.Context) ([]models.Exam, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, to_char(exam_date, 'YYYY-MM-DD') FROM exams ORDER BY exam_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Exam
	for rows.Next() {
		var e models.Exam
		if err := rows.Scan(&e.ID, &e.Name, &e.ExamDate); err != nil {
			return nil, fmt.Errorf("scan exam: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListGrades returns grades, optionally restricted to one competitor and/or
// to the competitors of one modality.
func (r *assessmentsRepository) ListGrades(ctx context.Context, filter GradeFilter) ([]models.Grade, error) {
	where, args := filterConditions(
		condition{column: "g.competitor_id", value: filter.CompetitorID},
		condition{column: "c.modality_id", value: filter.ModalityID},
	)
	query := `
		SELECT g.id, g.exam_id, g.competitor_id, g.score, g.created_at
		FROM grades g
		JOIN competitors c ON c.id = g.competitor_id` + where + `
		ORDER BY g.created_at, g.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.ID, &g.ExamID, &g.CompetitorID, &g.Score, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
