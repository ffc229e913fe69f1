package models

// UploadResumeRequest carries the extracted resume text for profile
// extraction. Binary parsing (PDF/DOCX to text) happens upstream of this
// service; the API accepts text only.
type UploadResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=10"`
	Filename   string `json:"filename,omitempty"`
}

// PreferencesRequest replaces the stored preferences for a session.
type PreferencesRequest struct {
	SessionID           string   `json:"session_id" validate:"required,uuid4"`
	PreferredLocations  []string `json:"preferred_locations"`
	OpenToRelocation    bool     `json:"open_to_relocation"`
	OpenToInternational bool     `json:"open_to_international"`
	RemoteOnly          bool     `json:"remote_only"`
	CareerGoals         string   `json:"career_goals,omitempty"`
}
