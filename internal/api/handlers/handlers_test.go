package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumi/internal/collector"
	"resumi/internal/config"
	"resumi/internal/jobs"
	"resumi/internal/session"
	"resumi/internal/storage"
	"resumi/pkg/models"
)

const sampleResume = `Senior Software Engineer with 6+ years of experience building
backend services in Python, Go, and AWS. Led a team in San Francisco shipping
Kubernetes deployments and PostgreSQL-backed APIs. Bachelor's degree in
Computer Science.`

type stubCollector struct {
	name string
	jobs []models.RawJob
}

func (s *stubCollector) Name() string { return s.name }

func (s *stubCollector) Collect(_ context.Context, _ int) ([]models.RawJob, error) {
	return s.jobs, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Matching.MaxResults = 20
	cfg.Collector.MaxJobsPerSource = 100
	cfg.Collector.TotalJobLimit = 500
	return cfg
}

func testOrchestrator(t *testing.T, cfg *config.Config, rawJobs []models.RawJob) *collector.Orchestrator {
	t.Helper()
	stub := &stubCollector{name: "stub", jobs: rawJobs}
	store := storage.NewSnapshotStore(t.TempDir())
	return collector.NewOrchestrator(cfg, []collector.Collector{stub}, nil, jobs.NewNormalizer(nil), store)
}

func postJSON(e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func uploadResume(t *testing.T, e *echo.Echo) string {
	t.Helper()
	body, err := json.Marshal(models.UploadResumeRequest{ResumeText: sampleResume})
	require.NoError(t, err)

	rec := postJSON(e, "/upload", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.UploadResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestUploadResumeHandler(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.POST("/upload", UploadResumeHandler(store, nil))

	body, err := json.Marshal(models.UploadResumeRequest{ResumeText: sampleResume})
	require.NoError(t, err)

	rec := postJSON(e, "/upload", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.UploadResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SessionID)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "software engineer", resp.Profile.PrimaryRole)
	assert.Contains(t, resp.Profile.Skills, "python")

	stored, err := store.Get(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.NotNil(t, stored.Profile)
	assert.Nil(t, stored.Preferences)
}

func TestUploadResumeHandlerRejectsShortText(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.POST("/upload", UploadResumeHandler(store, nil))

	rec := postJSON(e, "/upload", `{"resume_text": "short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadResumeHandlerRejectsWhitespaceText(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.POST("/upload", UploadResumeHandler(store, nil))

	rec := postJSON(e, "/upload", `{"resume_text": "                "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPreferencesHandlerUnknownSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.POST("/preferences", PreferencesHandler(store))

	body := `{"session_id": "0b5c6e3a-9f1d-4c2b-8a7e-123456789abc", "preferred_locations": ["Berlin"]}`
	rec := postJSON(e, "/preferences", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreferencesHandlerRoundTrip(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.POST("/upload", UploadResumeHandler(store, nil))
	e.POST("/preferences", PreferencesHandler(store))

	sessionID := uploadResume(t, e)

	prefs, err := json.Marshal(models.PreferencesRequest{
		SessionID:          sessionID,
		PreferredLocations: []string{"San Francisco", "Remote"},
		OpenToRelocation:   true,
	})
	require.NoError(t, err)

	rec := postJSON(e, "/preferences", string(prefs))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, stored.Preferences)
	assert.Equal(t, []string{"San Francisco", "Remote"}, stored.Preferences.PreferredLocations)
	assert.True(t, stored.Preferences.OpenToRelocation)
}

func TestRecommendationsHandlerRequiresPreferences(t *testing.T) {
	cfg := testConfig()
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.POST("/upload", UploadResumeHandler(store, nil))
	e.GET("/recommendations", RecommendationsHandler(cfg, store, testOrchestrator(t, cfg, nil)))

	sessionID := uploadResume(t, e)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?session_id="+sessionID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendationsHandlerEndToEnd(t *testing.T) {
	cfg := testConfig()
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	rawJobs := []models.RawJob{
		{
			"title":        "Senior Backend Engineer",
			"company":      "Acme",
			"location_raw": "Remote",
			"description":  "Build services in Go and Python on AWS with PostgreSQL.",
			"apply_url":    "https://acme.example/jobs/1",
			"source":       "stub",
		},
		{
			"title":        "Head Chef",
			"company":      "Bistro",
			"location_raw": "Paris, France",
			"description":  "Run the kitchen of a busy restaurant.",
			"apply_url":    "https://bistro.example/jobs/2",
			"source":       "stub",
		},
	}

	orchestrator := testOrchestrator(t, cfg, rawJobs)

	e := echo.New()
	e.POST("/upload", UploadResumeHandler(store, nil))
	e.POST("/preferences", PreferencesHandler(store))
	e.GET("/recommendations", RecommendationsHandler(cfg, store, orchestrator))

	sessionID := uploadResume(t, e)

	prefs, err := json.Marshal(models.PreferencesRequest{
		SessionID:          sessionID,
		PreferredLocations: []string{"San Francisco"},
	})
	require.NoError(t, err)
	rec := postJSON(e, "/preferences", string(prefs))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/recommendations?session_id="+sessionID, nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.RecommendationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success, rec.Body.String())
	require.NotEmpty(t, resp.Recommendations)

	top := resp.Recommendations[0]
	assert.Equal(t, "Senior Backend Engineer", top.Title)
	assert.Equal(t, "Acme", top.Company)
	assert.GreaterOrEqual(t, top.MatchScore, 0.3)
	require.Contains(t, top.ScoreBreakdown, "location")
	require.Contains(t, top.ScoreBreakdown, "skill")
	require.Contains(t, top.ScoreBreakdown, "career")
	assert.InDelta(t, 1.0, top.ScoreBreakdown["location"], 0.0001)
	require.NotNil(t, top.Explanation)
	assert.NotEmpty(t, top.Explanation.SkillMatches)
	assert.NotEmpty(t, top.Explanation.WhyMatch)

	for _, r := range resp.Recommendations {
		assert.NotEqual(t, "Head Chef", r.Title)
	}
}

func TestRecommendationsHandlerMissingSessionParam(t *testing.T) {
	cfg := testConfig()
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	e.GET("/recommendations", RecommendationsHandler(cfg, store, testOrchestrator(t, cfg, nil)))

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshJobsHandler(t *testing.T) {
	cfg := testConfig()
	rawJobs := []models.RawJob{
		{
			"title":        "Data Analyst",
			"company":      "Metrics Co",
			"location_raw": "Berlin, Germany",
			"description":  "Analyze data with SQL and Tableau.",
			"apply_url":    "https://metrics.example/jobs/7",
			"source":       "stub",
		},
	}
	orchestrator := testOrchestrator(t, cfg, rawJobs)

	e := echo.New()
	e.POST("/jobs/refresh", RefreshJobsHandler(orchestrator))

	rec := postJSON(e, "/jobs/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["jobs_in_pool"])
	assert.Len(t, orchestrator.Jobs(), 1)
}
