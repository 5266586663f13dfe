package models

import "time"

// Competitor is an athlete tracked by the dashboard.
type Competitor struct {
	ID         string `json:"id"`
	Name       string `json:"name" example:"Ana Souza"`
	ModalityID string `json:"modality_id"`
}

// Exam is an assessment applied to competitors on a given date.
type Exam struct {
	ID       string `json:"id"`
	Name     string `json:"name" example:"Simulado 1"`
	ExamDate string `json:"exam_date" example:"2024-03-15"`
}

// Grade is the score (0-100) a competitor obtained in one exam.
type Grade struct {
	ID           string    `json:"id"`
	ExamID       string    `json:"exam_id"`
	CompetitorID string    `json:"competitor_id"`
	Score        float64   `json:"score" example:"85"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgressPoint compares a current value against a baseline.
//
// Atual and Meta are rounded to one decimal. Total carries the number of
// grades behind Atual so a zero mean can be told apart from "no assessments".
//
// swagger:model ProgressPoint
type ProgressPoint struct {
	Name  string  `json:"name" example:"Simulado 1"`
	Atual float64 `json:"atual" example:"80"`
	Meta  float64 `json:"meta" example:"80"`
	Total int     `json:"total" example:"2"`
}
