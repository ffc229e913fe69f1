package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumi/internal/collector"
	"resumi/internal/config"
	"resumi/internal/explain"
	"resumi/internal/logging"
	"resumi/internal/matcher"
	"resumi/internal/session"
	"resumi/pkg/models"
	"resumi/pkg/utils"
)

// noMatchSuggestions is returned when filtering and thresholding leave
// nothing to recommend.
var noMatchSuggestions = []string{
	"Broaden your preferred locations or enable open_to_international",
	"Disable remote_only to include onsite and hybrid roles",
	"Add more skills to your resume so overlap can be detected",
}

// RecommendationsHandler handles the GET /api/v1/recommendations endpoint.
// It scores the current job pool against the session's profile and
// preferences and returns the ranked, explained results. An empty pool
// triggers a synchronous collection run before matching.
func RecommendationsHandler(cfg *config.Config, store session.Store, orchestrator *collector.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		sessionID := c.QueryParam("session_id")
		if sessionID == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_session_id",
				Message:   "session_id query parameter is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		ctx := c.Request().Context()

		sess, err := store.Get(ctx, sessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "session_not_found",
					Message:   "Unknown or expired session: " + sessionID,
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "session_lookup_failed",
				Message:   "Failed to load session",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if sess.Preferences == nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "preferences_missing",
				Message:   "Submit preferences before requesting recommendations",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		pool := orchestrator.Jobs()
		if len(pool) == 0 {
			logger.Info("Job pool empty, triggering collection", map[string]interface{}{
				"request_id": requestID,
			})
			if _, err := orchestrator.Refresh(ctx); err != nil {
				return c.JSON(http.StatusBadGateway, models.ErrorResponse{
					Error:     "collection_failed",
					Message:   "Failed to collect jobs: " + err.Error(),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			pool = orchestrator.Jobs()
		}

		matches := matcher.MatchJobs(pool, sess.Profile, sess.Preferences, cfg.Matching.MaxResults)

		if len(matches) == 0 {
			logger.Info("No matches above threshold", map[string]interface{}{
				"request_id": requestID,
				"session_id": sessionID,
				"pool_size":  len(pool),
			})
			return c.JSON(http.StatusOK, models.RecommendationsResponse{
				Success:          false,
				TotalCollected:   len(pool),
				Error:            "no_matches_found",
				Suggestions:      noMatchSuggestions,
				ProcessingTimeMS: time.Since(start).Milliseconds(),
			})
		}

		recommendations := make([]models.Recommendation, 0, len(matches))
		for _, match := range matches {
			recommendations = append(recommendations, models.Recommendation{
				ID:             match.Job.ID,
				Title:          match.Job.Title,
				Company:        match.Job.Company,
				Location:       match.Job.Location,
				Source:         match.Job.Source,
				ApplyURL:       match.Job.ApplyURL,
				MatchScore:     models.Round2(match.TotalScore),
				ScoreBreakdown: match.ScoreBreakdown(),
				Explanation:    explain.Generate(match, sess.Profile),
			})
		}

		logger.Info("Recommendations generated", map[string]interface{}{
			"request_id": requestID,
			"session_id": sessionID,
			"pool_size":  len(pool),
			"matched":    len(matches),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusOK, models.RecommendationsResponse{
			Success:          true,
			TotalCollected:   len(pool),
			TotalMatched:     len(matches),
			Recommendations:  recommendations,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
		})
	}
}
