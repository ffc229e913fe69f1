package location

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected NormalizedLocation
	}{
		{
			name: "empty string",
			raw:  "",
			expected: NormalizedLocation{
				Type: TypeOnsite,
				Raw:  "Not specified",
			},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			expected: NormalizedLocation{
				Type: TypeOnsite,
				Raw:  "Not specified",
			},
		},
		{
			name: "remote keyword",
			raw:  "Remote",
			expected: NormalizedLocation{
				Type: TypeRemote,
				Raw:  "Remote",
			},
		},
		{
			name: "remote keyword embedded",
			raw:  "Anywhere in the world",
			expected: NormalizedLocation{
				Type: TypeRemote,
				Raw:  "Anywhere in the world",
			},
		},
		{
			name: "work from home",
			raw:  "Work From Home",
			expected: NormalizedLocation{
				Type: TypeRemote,
				Raw:  "Work From Home",
			},
		},
		{
			name: "hybrid keyword keeps city",
			raw:  "Hybrid, Berlin, Germany",
			expected: NormalizedLocation{
				City:    "Hybrid",
				Country: "Germany",
				Type:    TypeHybrid,
				Raw:     "Hybrid, Berlin, Germany",
			},
		},
		{
			name: "single city with alias",
			raw:  "Bengaluru",
			expected: NormalizedLocation{
				City: "Bangalore",
				Type: TypeOnsite,
				Raw:  "Bengaluru",
			},
		},
		{
			name: "city and country",
			raw:  "Mumbai, India",
			expected: NormalizedLocation{
				City:    "Mumbai",
				Country: "India",
				Type:    TypeOnsite,
				Raw:     "Mumbai, India",
			},
		},
		{
			name: "country alias resolved",
			raw:  "London, UK",
			expected: NormalizedLocation{
				City:    "London",
				Country: "United Kingdom",
				Type:    TypeOnsite,
				Raw:     "London, UK",
			},
		},
		{
			name: "three parts drops state",
			raw:  "San Francisco, CA, USA",
			expected: NormalizedLocation{
				City:    "San Francisco",
				Country: "USA",
				Type:    TypeOnsite,
				Raw:     "San Francisco, CA, USA",
			},
		},
		{
			name: "unknown country title cased",
			raw:  "Lisbon, portugal",
			expected: NormalizedLocation{
				City:    "Lisbon",
				Country: "Portugal",
				Type:    TypeOnsite,
				Raw:     "Lisbon, portugal",
			},
		},
		{
			name: "city alias case-insensitive",
			raw:  "BOMBAY, India",
			expected: NormalizedLocation{
				City:    "Mumbai",
				Country: "India",
				Type:    TypeOnsite,
				Raw:     "BOMBAY, India",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.raw)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScore(t *testing.T) {
	remote := Normalize("Remote")
	bangalore := Normalize("Bangalore, India")
	delhi := Normalize("Delhi, India")
	london := Normalize("London, UK")
	cityOnly := Normalize("Bangalore")

	tests := []struct {
		name                string
		job                 NormalizedLocation
		preferred           []string
		openToRelocation    bool
		openToInternational bool
		remoteOnly          bool
		expected            float64
	}{
		{
			name:      "remote job always perfect",
			job:       remote,
			preferred: []string{"Bangalore"},
			expected:  1.0,
		},
		{
			name:       "remote job perfect even with remote_only",
			job:        remote,
			remoteOnly: true,
			expected:   1.0,
		},
		{
			name:       "remote_only penalizes onsite",
			job:        bangalore,
			preferred:  []string{"Bangalore, India"},
			remoteOnly: true,
			expected:   0.2,
		},
		{
			name:     "no preferences is neutral",
			job:      bangalore,
			expected: 0.5,
		},
		{
			name:      "exact city match",
			job:       bangalore,
			preferred: []string{"Bangalore"},
			expected:  1.0,
		},
		{
			name:      "city alias still matches exactly",
			job:       bangalore,
			preferred: []string{"Bengaluru"},
			expected:  1.0,
		},
		{
			name:      "same country scores 0.7",
			job:       delhi,
			preferred: []string{"Bangalore, India"},
			expected:  0.7,
		},
		{
			name:      "best of several preferences wins",
			job:       delhi,
			preferred: []string{"London, UK", "Delhi, India"},
			expected:  1.0,
		},
		{
			name:                "no match but open to international",
			job:                 london,
			preferred:           []string{"Bangalore, India"},
			openToInternational: true,
			expected:            0.4,
		},
		{
			name:      "no match and closed",
			job:       london,
			preferred: []string{"Bangalore, India"},
			expected:  0.1,
		},
		{
			name:      "city-only job still matches on city",
			job:       cityOnly,
			preferred: []string{"Bangalore, India"},
			expected:  1.0,
		},
		{
			name:      "city-only preference cannot match country",
			job:       delhi,
			preferred: []string{"Bangalore"},
			expected:  0.1,
		},
		{
			name:                "relocation flag without shared country falls through",
			job:                 london,
			preferred:           []string{"Bangalore, India"},
			openToRelocation:    true,
			openToInternational: true,
			expected:            0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.job, tt.preferred, tt.openToRelocation, tt.openToInternational, tt.remoteOnly)
			assert.InDelta(t, tt.expected, score, 0.0001)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				loc := Normalize("Lisbon, portugal")
				if loc.Country != "Portugal" {
					t.Errorf("got country %q, want Portugal", loc.Country)
					return
				}
				Score(loc, []string{"Lisbon, portugal"}, false, false, false)
			}
		}()
	}
	wg.Wait()
}

func TestScoreCityCaseInsensitive(t *testing.T) {
	job := Normalize("AUSTIN, usa")
	score := Score(job, []string{"austin, USA"}, false, false, false)
	assert.InDelta(t, 1.0, score, 0.0001)
}
