package models

import (
	"errors"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func TestGoal_Validate(t *testing.T) {
	cases := []struct {
		name string
		goal Goal
		want error
	}{
		{name: "ok", goal: Goal{Title: "Horas", CompetitorID: "c1", TargetValue: f64(0)}},
		{name: "blank title", goal: Goal{Title: "  ", CompetitorID: "c1"}, want: ErrGoalTitleRequired},
		{name: "missing competitor", goal: Goal{Title: "Horas"}, want: ErrGoalCompetitorRequired},
		{name: "negative target", goal: Goal{Title: "Horas", CompetitorID: "c1", TargetValue: f64(-1)}, want: ErrGoalNegativeTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.goal.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGoal_Overdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	yesterday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		goal Goal
		want bool
	}{
		{name: "no due date", goal: Goal{Status: GoalActive}, want: false},
		{name: "due yesterday", goal: Goal{DueDate: &yesterday, Status: GoalActive}, want: true},
		{name: "due today", goal: Goal{DueDate: &today, Status: GoalActive}, want: false},
		{name: "completed", goal: Goal{DueDate: &yesterday, Status: GoalCompleted}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.goal.Overdue(now); got != tc.want {
				t.Fatalf("Overdue() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGoal_ApplyProgress(t *testing.T) {
	cases := []struct {
		name    string
		target  *float64
		current *float64
		want    string
	}{
		{name: "below target", target: f64(10), current: f64(9.9), want: GoalActive},
		{name: "reaches target", target: f64(10), current: f64(10), want: GoalCompleted},
		{name: "no target", current: f64(100), want: GoalActive},
		{name: "cleared value", target: f64(10), current: nil, want: GoalActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{TargetValue: tc.target, Status: GoalCompleted}
			g.ApplyProgress(tc.current)
			if g.Status != tc.want || g.CurrentValue != tc.current {
				t.Fatalf("got status %q value %v, want %q", g.Status, g.CurrentValue, tc.want)
			}
		})
	}
}
