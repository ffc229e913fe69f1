package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumi/internal/config"
	"resumi/internal/jobs"
	"resumi/internal/storage"
	"resumi/pkg/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Collector.RequestTimeout = 5 * time.Second
	// High limits so tests never block on the limiter
	cfg.Collector.RateLimits = map[string]int{
		"greenhouse": 6000,
		"lever":      6000,
		"remoteok":   6000,
	}
	return cfg
}

func TestGreenhouseCollect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs":[{
			"id": 123,
			"title": "Operations Manager",
			"content": "<p>Drive process improvement in our Mumbai office.</p>",
			"location": {"name": "Mumbai, India"},
			"absolute_url": "https://example.com/jobs/123",
			"departments": [{"name": "Operations"}]
		}]}`))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Collector.GreenhouseBaseURL = server.URL

	collector := NewGreenhouseCollector(NewClient(cfg), cfg)
	jobs, err := collector.Collect(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	job := jobs[0]
	assert.Equal(t, "greenhouse", job.String("source"))
	assert.Equal(t, "Operations Manager", job.String("title"))
	assert.Equal(t, "Mumbai, India", job.String("location_raw"))
	assert.Equal(t, "Drive process improvement in our Mumbai office.", job.String("description"))
	assert.Equal(t, []string{"Operations"}, job.StringList("departments"))
}

func TestLeverCollect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "abc",
			"text": "Senior Backend Engineer",
			"descriptionPlain": "Build services in Go and Python.",
			"hostedUrl": "https://example.com/lever/abc",
			"categories": {"location": "Remote", "commitment": "Full-time", "team": "Platform"}
		}]`))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Collector.LeverBaseURL = server.URL

	collector := NewLeverCollector(NewClient(cfg), cfg)
	jobs, err := collector.Collect(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	job := jobs[0]
	assert.Equal(t, "lever", job.String("source"))
	assert.Equal(t, "Senior Backend Engineer", job.String("title"))
	assert.Equal(t, "Remote", job.String("location_raw"))
	assert.Equal(t, "full-time", job.String("employment_type"))
	assert.Equal(t, []string{"Platform"}, job.StringList("departments"))
}

func TestRemoteOKCollectSkipsMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"legal": "API terms"},
			{"id": 1, "position": "Data Scientist", "company": "Acme", "location": "", "description": "pandas and sql", "url": "https://example.com/1", "tags": ["data"]},
			{"id": 2, "position": "Designer", "company": "Globex", "location": "Worldwide", "description": "figma", "url": "https://example.com/2", "tags": []}
		]`))
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Collector.RemoteOKBaseURL = server.URL

	collector := NewRemoteOKCollector(NewClient(cfg), cfg)
	jobs, err := collector.Collect(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Data Scientist", jobs[0].String("title"))
	assert.Equal(t, "Remote", jobs[0].String("location_raw"), "missing location defaults to Remote")
	assert.Equal(t, "Worldwide", jobs[1].String("location_raw"))
}

func TestGreenhouseCollectSkipsFailingBoard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Collector.GreenhouseBaseURL = server.URL

	collector := NewGreenhouseCollector(NewClient(cfg), cfg)
	jobs, err := collector.Collect(context.Background(), 5)

	require.NoError(t, err, "failing boards are skipped, not fatal")
	assert.Empty(t, jobs)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "  Python   and Go ", "Python and Go"},
		{"strips markup", "<p>Build with <b>Python</b></p><script>alert(1)</script>", "Build with Python"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanDescription(tt.input))
		})
	}
}

func TestSignalHelpers(t *testing.T) {
	text := "Razorpay is hiring a Strategy Manager in Bangalore, apply at https://example.com/apply"

	assert.Equal(t, []string{"Razorpay"}, ExtractCompanyMentions(text))
	assert.Contains(t, ExtractRoleHints(text), "strategy")
	assert.Contains(t, ExtractRoleHints(text), "manager")
	assert.Contains(t, ExtractLocationHints(text), "Bangalore")
	assert.Equal(t, []string{"https://example.com/apply"}, ExtractURLs(text))
}

func TestSignalConfidence(t *testing.T) {
	tests := []struct {
		name     string
		signal   models.JobSignal
		expected string
	}{
		{
			name: "all attributes",
			signal: models.JobSignal{
				CompanyMentions: []string{"Razorpay"},
				RoleHints:       []string{"manager"},
				LocationHints:   []string{"Bangalore"},
				ExternalLink:    "https://example.com",
			},
			expected: "high",
		},
		{
			name: "company and role only",
			signal: models.JobSignal{
				CompanyMentions: []string{"Razorpay"},
				RoleHints:       []string{"manager"},
			},
			expected: "medium",
		},
		{
			name:     "bare text",
			signal:   models.JobSignal{},
			expected: "low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignalConfidence(tt.signal))
		})
	}
}

type fakeCollector struct {
	jobs []models.RawJob
}

func (f *fakeCollector) Name() string { return "fake" }

func (f *fakeCollector) Collect(_ context.Context, _ int) ([]models.RawJob, error) {
	return f.jobs, nil
}

type fakeSignalSource struct {
	status  SignalStatus
	signals []models.JobSignal
	calls   int
}

func (f *fakeSignalSource) Name() string { return "fake_signal" }

func (f *fakeSignalSource) Status() SignalStatus { return f.status }

func (f *fakeSignalSource) CollectSignals(_ context.Context, _ int) ([]models.JobSignal, error) {
	f.calls++
	return f.signals, nil
}

func TestRefreshCollectsActiveSignals(t *testing.T) {
	cfg := testConfig(t)

	active := &fakeSignalSource{
		status: SignalActive,
		signals: []models.JobSignal{{
			Source:          "fake_signal",
			Text:            "Razorpay is hiring a Strategy Manager",
			CompanyMentions: []string{"Razorpay"},
			RoleHints:       []string{"strategy", "manager"},
		}},
	}
	pending := &fakeSignalSource{status: SignalPending}

	orchestrator := NewOrchestrator(
		cfg,
		[]Collector{&fakeCollector{jobs: []models.RawJob{{
			"title":        "Operations Manager",
			"company":      "Acme",
			"location_raw": "Mumbai, India",
			"description":  "process improvement",
			"source":       "fake",
		}}}},
		[]SignalSource{active, pending},
		jobs.NewNormalizer(nil),
		storage.NewSnapshotStore(t.TempDir()),
	)

	count, err := orchestrator.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, 1, active.calls, "active sources are polled on refresh")
	assert.Zero(t, pending.calls, "pending sources are skipped")

	signals := orchestrator.Signals()
	require.Len(t, signals, 1)
	assert.Equal(t, "medium", signals[0].Confidence)
}

func TestSignalSourcesArePending(t *testing.T) {
	sources := []SignalSource{NewRedditScanner(), NewXScanner()}

	for _, source := range sources {
		assert.Equal(t, SignalPending, source.Status())

		signals, err := source.CollectSignals(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, signals)
	}
}
