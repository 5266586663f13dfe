package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/trainpulse/internal/domain/models"
)

// SaveTargetsRequest is the body of PUT /api/v1/targets.
//
// When CompetitorID is set the save also records a training-hours goal and an
// average-score goal for that competitor.
type SaveTargetsRequest struct {
	MonthlyHours *float64 `json:"monthly_hours" example:"120"`
	Score        *float64 `json:"score" example:"80"`
	CompetitorID string   `json:"competitor_id,omitempty"`
	ModalityID   string   `json:"modality_id,omitempty"`
	DueDate      string   `json:"due_date,omitempty" example:"2024-12-31"`
}

// SaveTargetsResponse echoes the stored targets and any goals created.
type SaveTargetsResponse struct {
	Targets models.Targets `json:"targets"`
	Goals   []models.Goal  `json:"goals,omitempty"`
}

// CreateGoalRequest is the body of POST /api/v1/goals.
type CreateGoalRequest struct {
	Title        string   `json:"title" binding:"required" example:"Meta de horas de treino"`
	CompetitorID string   `json:"competitor_id" binding:"required"`
	ModalityID   string   `json:"modality_id,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty" example:"120"`
	Unit         string   `json:"unit,omitempty" example:"h"`
	DueDate      string   `json:"due_date,omitempty" example:"2024-12-31"`
}

// UpdateProgressRequest is the body of PATCH /api/v1/goals/{id}/progress.
type UpdateProgressRequest struct {
	CurrentValue *float64 `json:"current_value" example:"45.5"`
}

// ToGoal converts the request into a goal ready for validation.
func (r CreateGoalRequest) ToGoal() (models.Goal, error) {
	due, err := ParseDueDate(r.DueDate)
	if err != nil {
		return models.Goal{}, err
	}
	g := models.Goal{
		Title:        strings.TrimSpace(r.Title),
		CompetitorID: strings.TrimSpace(r.CompetitorID),
		TargetValue:  r.TargetValue,
		DueDate:      due,
		Status:       models.GoalActive,
	}
	if m := strings.TrimSpace(r.ModalityID); m != "" {
		g.ModalityID = &m
	}
	if u := strings.TrimSpace(r.Unit); u != "" {
		g.Unit = &u
	}
	return g, nil
}

// ParseDueDate parses an optional "YYYY-MM-DD" date; empty input means no date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid due_date format, expected YYYY-MM-DD: %w", err)
	}
	return &d, nil
}
