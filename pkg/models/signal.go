package models

import "time"

// JobSignal is an unstructured job lead surfaced from social chatter, as
// opposed to a structured posting from a job board.
type JobSignal struct {
	Source          string    `json:"source"`
	Text            string    `json:"text"`
	CompanyMentions []string  `json:"company_mentions,omitempty"`
	RoleHints       []string  `json:"role_hints,omitempty"`
	LocationHints   []string  `json:"location_hints,omitempty"`
	ExternalLink    string    `json:"external_link,omitempty"`
	Confidence      string    `json:"confidence,omitempty"`
	CollectedAt     time.Time `json:"collected_at"`
}
