package models

// RawJob is a source-agnostic job posting as produced by a collector. Keys
// vary by source; the normalizer only relies on the standard ones (title,
// company, location_raw, description, apply_url, source).
type RawJob map[string]any

// String returns the string value for key, or empty if absent or not a string.
func (r RawJob) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// StringOr returns the string value for key, or def when the value is empty.
func (r RawJob) StringOr(key, def string) string {
	if v := r.String(key); v != "" {
		return v
	}
	return def
}

// StringList returns the []string value for key, tolerating []any payloads
// that came out of JSON decoding.
func (r RawJob) StringList(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// JobLocation is the normalized location embedded in a job record.
type JobLocation struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Type    string `json:"type"`
	Raw     string `json:"raw"`
}

// NormalizedJob is the canonical job record every collector output is mapped
// into. Two postings with the same (title, company, location) triple share an
// ID and are treated as duplicates.
type NormalizedJob struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Company         string      `json:"company"`
	Location        JobLocation `json:"location"`
	Source          string      `json:"source"`
	ApplyURL        string      `json:"apply_url"`
	Description     string      `json:"description"`
	RequiredSkills  []string    `json:"required_skills"`
	PreferredSkills []string    `json:"preferred_skills"`
	EmploymentType  string      `json:"employment_type"`
	Departments     []string    `json:"departments"`
	RawData         RawJob      `json:"raw_data,omitempty"`
}
