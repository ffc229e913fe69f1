package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple technical skills",
			text:     "Built services in Python and Go, deployed with Docker on AWS.",
			expected: []string{"aws", "docker", "go", "python"},
		},
		{
			name:     "word boundaries prevent partial hits",
			text:     "Pythonista working on Rustlang internals",
			expected: nil,
		},
		{
			name:     "multi-word skills",
			text:     "Experience with machine learning and data analysis using scikit-learn",
			expected: []string{"data analysis", "machine learning", "scikit-learn"},
		},
		{
			name:     "business vocabulary",
			text:     "Led financial modeling and stakeholder management for the FP&A team",
			expected: []string{"financial modeling", "fp&a", "stakeholder management"},
		},
		{
			name:     "case insensitive",
			text:     "PYTHON, React, KUBERNETES",
			expected: []string{"kubernetes", "python", "react"},
		},
		{
			name:     "no skills",
			text:     "I enjoy long walks on the beach",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractSkills(tt.text, nil)
			if tt.expected == nil {
				assert.Empty(t, result)
			} else {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

type staticEnricher struct {
	candidates []string
}

func (e *staticEnricher) EnrichSkills(string) []string {
	return e.candidates
}

func TestExtractSkillsWithEnricher(t *testing.T) {
	enricher := &staticEnricher{candidates: []string{"Terraform", "underwater basket weaving"}}

	result := ExtractSkills("Worked with Python daily.", enricher)

	// Known candidates are folded in, unknown ones are dropped.
	assert.Equal(t, []string{"python", "terraform"}, result)
}

func TestExtractRoleFamily(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		titles   []string
		expected string
	}{
		{
			name:     "software engineer",
			text:     "software developer writing coding challenges full stack",
			expected: "software engineer",
		},
		{
			name:     "operations",
			text:     "managed logistics and supply chain process improvement for operations",
			expected: "operations",
		},
		{
			name:     "titles contribute",
			text:     "worked at a startup",
			titles:   []string{"Brand Marketing Manager"},
			expected: "marketing",
		},
		{
			name:     "no hits is general",
			text:     "lorem ipsum dolor",
			expected: "general",
		},
		{
			name:     "tie resolves to earliest family",
			text:     "analyst", // hits both data scientist and finance once
			expected: "data scientist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRoleFamily(tt.text, tt.titles))
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"explicit phrase", "I have 5 years of experience in backend", 5},
		{"plus suffix", "7+ years experience shipping software", 7},
		{"takes the max", "3 years of experience in sales, 6 years of experience overall", 6},
		{"no mention defaults to one", "recent graduate", 1},
		{"bare years not counted", "spent 10 years abroad", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractExperienceYears(tt.text))
		})
	}
}

func TestExtractSeniority(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		years    int
		expected string
	}{
		{"explicit junior", "entry level position", 10, "junior"},
		{"explicit senior", "Senior Software Engineer", 1, "senior"},
		{"junior beats senior by scan order", "junior developer reporting to a senior lead", 3, "junior"},
		{"fallback under two years", "plain text", 1, "junior"},
		{"fallback mid", "plain text", 4, "mid"},
		{"fallback senior", "plain text", 7, "senior"},
		{"fallback lead", "plain text", 12, "lead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSeniority(tt.text, tt.years))
		})
	}
}

func TestExtractProfile(t *testing.T) {
	text := `Jane Smith
Senior Software Engineer at Acme in Bangalore

8 years of experience building backend systems with Python, Django and PostgreSQL.
Comfortable with Docker, Git and AWS. Bachelor of Science in Computer Science.`

	profile := ExtractProfile(text, nil)
	require.NotNil(t, profile)

	assert.Equal(t, "software engineer", profile.PrimaryRole)
	assert.Equal(t, "senior", profile.Seniority)
	assert.Equal(t, 8, profile.ExperienceYears)
	assert.Contains(t, profile.Skills, "python")
	assert.Contains(t, profile.Skills, "django")
	assert.Contains(t, profile.Tools, "docker")
	assert.Contains(t, profile.Tools, "git")
	assert.NotContains(t, profile.Skills, "docker")
	assert.Contains(t, profile.Education, "Bachelor's")
	assert.Contains(t, profile.LocationMentions, "Bangalore")
	assert.Contains(t, profile.SkillClusters, "backend")
	assert.Contains(t, profile.SkillClusters, "data")
}

func TestExtractProfileShortText(t *testing.T) {
	assert.Nil(t, ExtractProfile("too short", nil))
}
