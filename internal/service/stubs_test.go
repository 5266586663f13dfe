package service

import (
	"context"
	"sync"

	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/guttosm/trainpulse/internal/storage"
)

type stubSessions struct {
	sessions []models.TrainingSession
	err      error
	filter   storage.SessionFilter
}

func (s *stubSessions) ListSessions(_ context.Context, f storage.SessionFilter) ([]models.TrainingSession, error) {
	s.filter = f
	return s.sessions, s.err
}
func (s *stubSessions) InsertSessionsBatch(_ context.Context, _ string, _ []models.TrainingSession) error {
	return nil
}
func (s *stubSessions) HasImport(_ context.Context, _ string) (bool, error)      { return false, nil }
func (s *stubSessions) UpsertImportLog(_ context.Context, _ string, _ int) error { return nil }
func (s *stubSessions) DeleteSessionsBySource(_ context.Context, _ string) error { return nil }
func (s *stubSessions) DeleteImportLog(_ context.Context, _ string) error        { return nil }

type stubAssessments struct {
	competitors []models.Competitor
	exams       []models.Exam
	grades      []models.Grade
	err         error
	gradeFilter storage.GradeFilter
}

func (s *stubAssessments) ListCompetitors(_ context.Context, _ string) ([]models.Competitor, error) {
	return s.competitors, s.err
}
func (s *stubAssessments) ListExams(_ context.Context) ([]models.Exam, error) {
	return s.exams, s.err
}
func (s *stubAssessments) ListGrades(_ context.Context, f storage.GradeFilter) ([]models.Grade, error) {
	s.gradeFilter = f
	return s.grades, s.err
}

type memStore struct {
	mu     sync.Mutex
	values map[string]float64
	getErr error
	setErr error
}

func newMemStore() *memStore { return &memStore{values: map[string]float64{}} }

func (m *memStore) GetTarget(_ context.Context, key string) (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}
func (m *memStore) SetTarget(_ context.Context, key string, v float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = v
	return nil
}
func (m *memStore) Close() error { return nil }

type stubGoals struct {
	mu        sync.Mutex
	created   []models.Goal
	list      []models.Goal
	updated   *models.Goal
	createErr error
	err       error
}

func (s *stubGoals) ListGoals(_ context.Context, _ string, _ string) ([]models.Goal, error) {
	return s.list, s.err
}
func (s *stubGoals) CreateGoal(_ context.Context, g *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	g.ID = "g" + string(rune('1'+len(s.created)))
	s.created = append(s.created, *g)
	return nil
}
func (s *stubGoals) CreateGoals(_ context.Context, goals []*models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	for _, g := range goals {
		g.ID = "g" + string(rune('1'+len(s.created)))
		s.created = append(s.created, *g)
	}
	return nil
}
func (s *stubGoals) UpdateGoalProgress(_ context.Context, _ string, current *float64) (*models.Goal, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated.ApplyProgress(current)
	return s.updated, nil
}

func ptr(v float64) *float64 { return &v }
