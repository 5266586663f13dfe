package models

import (
	"errors"
	"strings"
	"time"
)

// Goal statuses.
const (
	GoalActive    = "active"
	GoalCompleted = "completed"
)

// Goal validation errors.
var (
	ErrGoalTitleRequired      = errors.New("title is required")
	ErrGoalCompetitorRequired = errors.New("competitor_id is required")
	ErrGoalNegativeTarget     = errors.New("target_value must not be negative")
)

// Goal is a target set for a competitor (e.g. "120h of training per month").
//
// Optional attributes are pointers so that "unset" survives the round trip
// through the database and JSON.
type Goal struct {
	ID           string     `json:"id"`
	Title        string     `json:"title" example:"Meta de horas de treino"`
	CompetitorID string     `json:"competitor_id"`
	ModalityID   *string    `json:"modality_id,omitempty"`
	TargetValue  *float64   `json:"target_value,omitempty" example:"120"`
	CurrentValue *float64   `json:"current_value,omitempty" example:"45.5"`
	Unit         *string    `json:"unit,omitempty" example:"h"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status" example:"active"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Validate checks the fields required to persist a new goal.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrGoalTitleRequired
	}
	if strings.TrimSpace(g.CompetitorID) == "" {
		return ErrGoalCompetitorRequired
	}
	if g.TargetValue != nil && *g.TargetValue < 0 {
		return ErrGoalNegativeTarget
	}
	return nil
}

// Overdue reports whether the goal is past its due date and still open.
// Only the calendar day of now is considered.
func (g *Goal) Overdue(now time.Time) bool {
	if g.DueDate == nil || g.Status == GoalCompleted {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := g.DueDate.Date()
	due := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

// ApplyProgress records a new current value and completes the goal once
// the target is reached.
func (g *Goal) ApplyProgress(current *float64) {
	g.CurrentValue = current
	if current != nil && g.TargetValue != nil && *current >= *g.TargetValue {
		g.Status = GoalCompleted
		return
	}
	g.Status = GoalActive
}

// GoalList is the response of the goal listing.
type GoalList struct {
	Goals        []Goal `json:"goals"`
	Total        int    `json:"total"`
	OverdueCount int    `json:"overdue_count"`
}

// Targets holds the two persisted comparison values.
type Targets struct {
	MonthlyHours float64 `json:"monthly_hours" example:"120"`
	Score        float64 `json:"score" example:"80"`
}
