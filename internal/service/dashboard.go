package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/trainpulse/internal/analytics"
	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/guttosm/trainpulse/internal/logger"
	"github.com/guttosm/trainpulse/internal/metrics"
	"github.com/guttosm/trainpulse/internal/storage"
)

// ErrInvalidInput marks caller mistakes (bad filter, missing ids, negative
// targets). Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

// Clock returns the current instant. Injected so series and filter options
// can be computed for a fixed "now" in tests.
type Clock func() time.Time

// HoursQuery selects the sessions and period of an hours series.
type HoursQuery struct {
	CompetitorID string
	ModalityID   string
	Filter       string
}

// DashboardService builds the read models shown on the training dashboard.
type DashboardService interface {
	HoursSeries(ctx context.Context, q HoursQuery) (*models.HoursSeries, error)
	FilterOptions(ctx context.Context) []models.FilterOption
	ExamProgress(ctx context.Context, competitorID string) ([]models.ProgressPoint, error)
	CompetitorSummary(ctx context.Context, modalityID string) ([]models.ProgressPoint, error)
}

type dashboardService struct {
	sessions    storage.SessionsRepository
	assessments storage.AssessmentsRepository
	targets     TargetsService
	clock       Clock
	loc         *time.Location
}

// NewDashboardService wires the dashboard read side. A nil loc means UTC and a
// nil clock means time.Now.
func NewDashboardService(
	sessions storage.SessionsRepository,
	assessments storage.AssessmentsRepository,
	targets TargetsService,
	clock Clock,
	loc *time.Location,
) DashboardService {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		sessions:    sessions,
		assessments: assessments,
		targets:     targets,
		clock:       clock,
		loc:         loc,
	}
}

// now snapshots the clock once in the configured timezone.
func (s *dashboardService) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *dashboardService) HoursSeries(ctx context.Context, q HoursQuery) (*models.HoursSeries, error) {
	sel, err := analytics.ParsePeriodFilter(q.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	now := s.now()
	started := time.Now()

	sessions, err := s.sessions.ListSessions(ctx, storage.SessionFilter{
		CompetitorID: q.CompetitorID,
		ModalityID:   q.ModalityID,
	})
	if err != nil {
		return nil, err
	}

	points, err := analytics.AggregateSessions(sessions, sel, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	targets, err := s.targets.Get(ctx)
	if err != nil {
		return nil, err
	}

	if skipped := countUnreadable(sessions); skipped > 0 {
		metrics.RecordSessionsSkipped(skipped)
		logger.Component("dashboard").Warn().
			Int("skipped", skipped).
			Str("competitor_id", q.CompetitorID).
			Msg("sessions with unreadable dates ignored")
	}
	metrics.RecordSeriesBuilt(granularityName(sel))
	metrics.RecordAggregateLatency(float64(time.Since(started).Microseconds()) / 1000)

	if points == nil {
		points = []models.BucketPoint{}
	}
	return &models.HoursSeries{
		Filter: sel.Token(),
		Points: points,
		Target: analytics.ResolveTarget(sel, targets.MonthlyHours),
		Total:  analytics.TotalHours(points),
	}, nil
}

func (s *dashboardService) FilterOptions(_ context.Context) []models.FilterOption {
	return analytics.FilterOptions(s.now())
}

func (s *dashboardService) ExamProgress(ctx context.Context, competitorID string) ([]models.ProgressPoint, error) {
	grades, err := s.assessments.ListGrades(ctx, storage.GradeFilter{CompetitorID: competitorID})
	if err != nil {
		return nil, err
	}
	exams, err := s.assessments.ListExams(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilPoints(analytics.ExamProgress(grades, exams)), nil
}

func (s *dashboardService) CompetitorSummary(ctx context.Context, modalityID string) ([]models.ProgressPoint, error) {
	competitors, err := s.assessments.ListCompetitors(ctx, modalityID)
	if err != nil {
		return nil, err
	}
	grades, err := s.assessments.ListGrades(ctx, storage.GradeFilter{ModalityID: modalityID})
	if err != nil {
		return nil, err
	}
	targets, err := s.targets.Get(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilPoints(analytics.CompetitorSummary(competitors, grades, targets.Score)), nil
}

func countUnreadable(sessions []models.TrainingSession) int {
	n := 0
	for _, s := range sessions {
		if !s.Approved() {
			continue
		}
		if _, err := analytics.DecomposeDate(s.TrainingDate); err != nil {
			n++
		}
	}
	return n
}

func granularityName(sel analytics.PeriodSelector) string {
	if sel.Grouped() {
		return sel.Token()
	}
	return "day"
}

func nonNilPoints(p []models.ProgressPoint) []models.ProgressPoint {
	if p == nil {
		return []models.ProgressPoint{}
	}
	return p
}
