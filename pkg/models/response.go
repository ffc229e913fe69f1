package models

import "time"

// UploadResumeResponse is returned after a resume has been processed.
type UploadResumeResponse struct {
	Success   bool     `json:"success"`
	SessionID string   `json:"session_id"`
	Profile   *Profile `json:"profile"`
}

// Recommendation is one entry of the ranked recommendation payload.
type Recommendation struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Company        string             `json:"company"`
	Location       JobLocation        `json:"location"`
	Source         string             `json:"source"`
	ApplyURL       string             `json:"apply_url"`
	MatchScore     float64            `json:"match_score"`
	ScoreBreakdown map[string]float64 `json:"score_breakdown"`
	Explanation    *Explanation       `json:"explanation"`
}

// RecommendationsResponse is the full response of a matching run. When no
// jobs survive filtering and thresholding, Success is false and Suggestions
// carries relaxation hints instead of an error.
type RecommendationsResponse struct {
	Success          bool             `json:"success"`
	TotalCollected   int              `json:"total_jobs_collected,omitempty"`
	TotalMatched     int              `json:"total_jobs_matched,omitempty"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
	Error            string           `json:"error,omitempty"`
	Suggestions      []string         `json:"suggestions,omitempty"`
	ProcessingTimeMS int64            `json:"processing_time_ms,omitempty"`
}

// SignalSourceStatus reports the capability state of one social-signal source.
type SignalSourceStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
