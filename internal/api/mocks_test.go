package api

import (
	"context"

	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/guttosm/trainpulse/internal/service"
)

type mockDashboard struct {
	series  *models.HoursSeries
	options []models.FilterOption
	points  []models.ProgressPoint
	err     error
	query   service.HoursQuery
	id      string
}

func (m *mockDashboard) HoursSeries(_ context.Context, q service.HoursQuery) (*models.HoursSeries, error) {
	m.query = q
	return m.series, m.err
}
func (m *mockDashboard) FilterOptions(_ context.Context) []models.FilterOption { return m.options }
func (m *mockDashboard) ExamProgress(_ context.Context, competitorID string) ([]models.ProgressPoint, error) {
	m.id = competitorID
	return m.points, m.err
}
func (m *mockDashboard) CompetitorSummary(_ context.Context, modalityID string) ([]models.ProgressPoint, error) {
	m.id = modalityID
	return m.points, m.err
}

type mockTargets struct {
	targets models.Targets
	goals   []models.Goal
	err     error
	saved   service.SaveTargetsInput
}

func (m *mockTargets) Get(_ context.Context) (models.Targets, error) { return m.targets, m.err }
func (m *mockTargets) Save(_ context.Context, in service.SaveTargetsInput) (models.Targets, []models.Goal, error) {
	m.saved = in
	return m.targets, m.goals, m.err
}

type mockGoals struct {
	list    *models.GoalList
	goal    *models.Goal
	err     error
	created models.Goal
	id      string
}

func (m *mockGoals) List(_ context.Context, _, _ string) (*models.GoalList, error) {
	return m.list, m.err
}
func (m *mockGoals) Create(_ context.Context, g models.Goal) (*models.Goal, error) {
	m.created = g
	return m.goal, m.err
}
func (m *mockGoals) UpdateProgress(_ context.Context, id string, _ *float64) (*models.Goal, error) {
	m.id = id
	return m.goal, m.err
}

var (
	_ service.DashboardService = (*mockDashboard)(nil)
	_ service.TargetsService   = (*mockTargets)(nil)
	_ service.GoalService      = (*mockGoals)(nil)
)
