package models

import "time"

const (
	DefaultRating       = "Rating not found"
	DefaultSummary      = "No summary provided."
	DefaultImprovements = "No improvements detected."
)

// FeedbackResult is the parsed critique returned for one resume.
type FeedbackResult struct {
	Rating       string   `json:"rating"`
	Summary      string   `json:"summary"`
	Improvements []string `json:"improvements"`
	RawFeedback  string   `json:"raw_feedback"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Code  int    `json:"code"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Model  string    `json:"model"`
	Time   time.Time `json:"time"`
}
