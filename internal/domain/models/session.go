package models

// SessionStatus is the review state of a training session.
type SessionStatus string

const (
	StatusPending  SessionStatus = "pending"
	StatusApproved SessionStatus = "approved"
	StatusRejected SessionStatus = "rejected"
)

// Valid reports whether s is one of the known review states.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// TrainingSession represents one logged training session of a competitor.
//
// Fields:
//   - TrainingDate: ISO date string ("YYYY-MM-DD"), optionally with a time part.
//   - Hours: duration of the session in hours (> 0).
//   - Status: only approved sessions count toward aggregates.
//
// Sessions are read-only once loaded; the aggregation core never mutates them.
type TrainingSession struct {
	ID           string        `json:"id"`
	CompetitorID string        `json:"competitor_id"`
	ModalityID   string        `json:"modality_id"`
	TrainingDate string        `json:"training_date" example:"2024-02-10"`
	Hours        float64       `json:"hours" example:"1.5"`
	Status       SessionStatus `json:"status" example:"approved"`
}

// Approved reports whether the session counts toward aggregates.
func (s TrainingSession) Approved() bool {
	return s.Status == StatusApproved
}

// BucketPoint is one unit of an aggregated hours series.
//
// Date is the bucket key ("YYYY-MM-DD" for days, "YYYY-MM" for months),
// Hours is rounded to one decimal and Label is the optional display text.
//
// swagger:model BucketPoint
type BucketPoint struct {
	Date  string  `json:"date" example:"2024-02-01"`
	Hours float64 `json:"hours" example:"3.5"`
	Label string  `json:"label,omitempty" example:"1"`
}

// Target is the comparison line for the selected period granularity.
type Target struct {
	Value float64 `json:"value" example:"5.5"`
	Label string  `json:"label" example:"Meta: 5.5h/dia"`
}

// HoursSeries is the aggregate returned to the dashboard for one filter.
type HoursSeries struct {
	Filter string        `json:"filter" example:"day:2024-02"`
	Points []BucketPoint `json:"points"`
	Target Target        `json:"target"`
	Total  float64       `json:"total" example:"42.5"`
}

// FilterOption is one entry of the period selector shown to the user.
type FilterOption struct {
	Value string `json:"value" example:"day:2024-02"`
	Label string `json:"label" example:"fevereiro de 2024"`
}
