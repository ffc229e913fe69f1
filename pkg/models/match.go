package models

import "math"

// JobMatch joins one NormalizedJob with the scores it earned against one
// (Profile, UserPreferences) pair. Matches are created fresh per matching run
// and never mutated after scoring.
type JobMatch struct {
	Job           *NormalizedJob `json:"job"`
	TotalScore    float64        `json:"match_score"`
	LocationScore float64        `json:"location_score"`
	SkillScore    float64        `json:"skill_score"`
	CareerScore   float64        `json:"career_score"`
}

// ScoreBreakdown returns the per-factor scores rounded for API responses.
func (m *JobMatch) ScoreBreakdown() map[string]float64 {
	return map[string]float64{
		"location": Round2(m.LocationScore),
		"skill":    Round2(m.SkillScore),
		"career":   Round2(m.CareerScore),
	}
}

// Round2 rounds a score to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Explanation is the human-readable reasoning attached to a recommendation.
type Explanation struct {
	WhyMatch          string   `json:"why_match"`
	SkillMatches      []string `json:"skill_matches"`
	SkillGaps         []string `json:"skill_gaps"`
	LocationReasoning string   `json:"location_reasoning"`
}
