package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumi/internal/logging"
	"resumi/internal/session"
	"resumi/pkg/models"
	"resumi/pkg/utils"
)

// PreferencesHandler handles the POST /api/v1/preferences endpoint.
// Preferences replace in place: resubmitting overwrites the previous set.
func PreferencesHandler(store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		var req models.PreferencesRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := requestValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		ctx := c.Request().Context()

		sess, err := store.Get(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "session_not_found",
					Message:   "Unknown or expired session: " + req.SessionID,
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

		sess.Preferences = &models.UserPreferences{
			PreferredLocations:  req.PreferredLocations,
			OpenToRelocation:    req.OpenToRelocation,
			OpenToInternational: req.OpenToInternational,
			RemoteOnly:          req.RemoteOnly,
			CareerGoals:         req.CareerGoals,
		}
		sess.UpdatedAt = time.Now().UTC()

		if err := store.Update(ctx, sess); err != nil {
			logger.Error("Failed to update session", map[string]interface{}{
				"request_id": requestID,
				"session_id": req.SessionID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "session_update_failed",
				Message:   "Failed to save preferences",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Preferences saved", map[string]interface{}{
			"request_id":  requestID,
			"session_id":  req.SessionID,
			"locations":   len(req.PreferredLocations),
			"remote_only": req.RemoteOnly,
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"session_id": req.SessionID,
		})
	}
}
