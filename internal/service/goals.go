package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/guttosm/trainpulse/internal/metrics"
	"github.com/guttosm/trainpulse/internal/storage"
)

// GoalService manages competitor goals.
type GoalService interface {
	List(ctx context.Context, competitorID, modalityID string) (*models.GoalList, error)
	Create(ctx context.Context, goal models.Goal) (*models.Goal, error)
	UpdateProgress(ctx context.Context, id string, current *float64) (*models.Goal, error)
}

type goalService struct {
	repo  storage.GoalsRepository
	clock Clock
	loc   *time.Location
}

func NewGoalService(repo storage.GoalsRepository, clock Clock, loc *time.Location) GoalService {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &goalService{repo: repo, clock: clock, loc: loc}
}

// List returns the goals of a competitor with the number of overdue ones,
// judged against today in the configured timezone.
func (s *goalService) List(ctx context.Context, competitorID, modalityID string) (*models.GoalList, error) {
	if strings.TrimSpace(competitorID) == "" {
		return nil, fmt.Errorf("%w: competitor_id is required", ErrInvalidInput)
	}
	goals, err := s.repo.ListGoals(ctx, competitorID, modalityID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	now := s.clock().In(s.loc)
	overdue := 0
	for i := range goals {
		if goals[i].Overdue(now) {
			overdue++
		}
	}
	return &models.GoalList{Goals: goals, Total: len(goals), OverdueCount: overdue}, nil
}

func (s *goalService) Create(ctx context.Context, goal models.Goal) (*models.Goal, error) {
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.CreateGoal(ctx, &goal); err != nil {
		return nil, err
	}
	metrics.RecordGoalChange("create")
	return &goal, nil
}

func (s *goalService) UpdateProgress(ctx context.Context, id string, current *float64) (*models.Goal, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}
	if current != nil && *current < 0 {
		return nil, fmt.Errorf("%w: current_value must not be negative", ErrInvalidInput)
	}
	g, err := s.repo.UpdateGoalProgress(ctx, id, current)
	if err != nil {
		return nil, err
	}
	metrics.RecordGoalChange("progress")
	return g, nil
}
