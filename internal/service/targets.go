package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/guttosm/trainpulse/internal/logger"
	"github.com/guttosm/trainpulse/internal/metrics"
	"github.com/guttosm/trainpulse/internal/storage"
)

// Goal titles and units created alongside a target save.
const (
	HoursGoalTitle = "Horas de treino no mês"
	ScoreGoalTitle = "Média nas provas"
	HoursGoalUnit  = "h"
	ScoreGoalUnit  = "pts"
)

// SaveTargetsInput carries the values of a target save. Nil values keep the
// stored ones. A non-empty CompetitorID also records a goal pair for them.
type SaveTargetsInput struct {
	MonthlyHours *float64
	Score        *float64
	CompetitorID string
	ModalityID   string
	DueDate      *time.Time
}

// TargetsService reads and writes the comparison targets.
type TargetsService interface {
	Get(ctx context.Context) (models.Targets, error)
	Save(ctx context.Context, in SaveTargetsInput) (models.Targets, []models.Goal, error)
}

type targetsService struct {
	store    storage.TargetStore
	goals    storage.GoalsRepository
	defaults models.Targets
}

// NewTargetsService builds a TargetsService. defaults answer for keys that
// were never saved.
func NewTargetsService(store storage.TargetStore, goals storage.GoalsRepository, defaults models.Targets) TargetsService {
	return &targetsService{store: store, goals: goals, defaults: defaults}
}

func (s *targetsService) Get(ctx context.Context) (models.Targets, error) {
	hours, err := s.value(ctx, storage.KeyMonthlyHoursTarget, s.defaults.MonthlyHours)
	if err != nil {
		return models.Targets{}, err
	}
	score, err := s.value(ctx, storage.KeyScoreTarget, s.defaults.Score)
	if err != nil {
		return models.Targets{}, err
	}
	return models.Targets{MonthlyHours: hours, Score: score}, nil
}

func (s *targetsService) value(ctx context.Context, key string, def float64) (float64, error) {
	v, found, err := s.store.GetTarget(ctx, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return def, nil
	}
	return v, nil
}

// Save records the goal pair first when a competitor is named, in a single
// transaction, and only then writes the targets. A failed goal insert leaves
// the stored targets untouched.
func (s *targetsService) Save(ctx context.Context, in SaveTargetsInput) (models.Targets, []models.Goal, error) {
	if in.MonthlyHours == nil && in.Score == nil {
		return models.Targets{}, nil, fmt.Errorf("%w: monthly_hours or score is required", ErrInvalidInput)
	}
	if (in.MonthlyHours != nil && *in.MonthlyHours < 0) || (in.Score != nil && *in.Score < 0) {
		return models.Targets{}, nil, fmt.Errorf("%w: targets must not be negative", ErrInvalidInput)
	}

	next, err := s.Get(ctx)
	if err != nil {
		return models.Targets{}, nil, err
	}
	if in.MonthlyHours != nil {
		next.MonthlyHours = *in.MonthlyHours
	}
	if in.Score != nil {
		next.Score = *in.Score
	}

	var pair []models.Goal
	if in.CompetitorID != "" {
		hours := s.newGoal(in, HoursGoalTitle, HoursGoalUnit, next.MonthlyHours)
		score := s.newGoal(in, ScoreGoalTitle, ScoreGoalUnit, next.Score)
		if err := s.goals.CreateGoals(ctx, []*models.Goal{&hours, &score}); err != nil {
			return models.Targets{}, nil, fmt.Errorf("create goal pair: %w", err)
		}
		pair = []models.Goal{hours, score}
		for range pair {
			metrics.RecordGoalChange("create")
		}
	}

	if in.MonthlyHours != nil {
		if err := s.store.SetTarget(ctx, storage.KeyMonthlyHoursTarget, *in.MonthlyHours); err != nil {
			return models.Targets{}, pair, err
		}
		metrics.RecordTargetWrite(storage.KeyMonthlyHoursTarget)
	}
	if in.Score != nil {
		if err := s.store.SetTarget(ctx, storage.KeyScoreTarget, *in.Score); err != nil {
			return models.Targets{}, pair, err
		}
		metrics.RecordTargetWrite(storage.KeyScoreTarget)
	}

	if pair != nil {
		logger.Component("targets").Info().
			Str("competitor_id", in.CompetitorID).
			Float64("monthly_hours", next.MonthlyHours).
			Float64("score", next.Score).
			Msg("targets saved with goal pair")
	}
	return next, pair, nil
}

func (s *targetsService) newGoal(in SaveTargetsInput, title, unit string, target float64) models.Goal {
	t := target
	u := unit
	g := models.Goal{
		Title:        title,
		CompetitorID: in.CompetitorID,
		TargetValue:  &t,
		Unit:         &u,
		DueDate:      in.DueDate,
		Status:       models.GoalActive,
	}
	if in.ModalityID != "" {
		m := in.ModalityID
		g.ModalityID = &m
	}
	return g
}
