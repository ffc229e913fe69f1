package models

// Profile represents the coarse candidate profile extracted from one resume.
// It is created once per upload and never mutated afterwards.
type Profile struct {
	PrimaryRole      string   `json:"primary_role"`
	Seniority        string   `json:"seniority"`
	Skills           []string `json:"skills"`
	Tools            []string `json:"tools"`
	ExperienceYears  int      `json:"experience_years"`
	Education        []string `json:"education"`
	LocationMentions []string `json:"location_mentions"`
	SkillClusters    []string `json:"skill_clusters"`
	JobTitles        []string `json:"job_titles"`
}

// UserPreferences holds the search preferences for a session. Resubmitting
// preferences replaces the previous value in place.
type UserPreferences struct {
	PreferredLocations  []string `json:"preferred_locations"`
	OpenToRelocation    bool     `json:"open_to_relocation"`
	OpenToInternational bool     `json:"open_to_international"`
	RemoteOnly          bool     `json:"remote_only"`
	CareerGoals         string   `json:"career_goals,omitempty"`
}
