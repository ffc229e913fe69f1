package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumi/internal/collector"
	"resumi/internal/logging"
	"resumi/pkg/models"
	"resumi/pkg/utils"
)

// RefreshJobsHandler handles the POST /api/v1/jobs/refresh endpoint. It runs
// a full collection cycle synchronously and reports the resulting pool size.
func RefreshJobsHandler(orchestrator *collector.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Manual job refresh requested", map[string]interface{}{
			"request_id": requestID,
		})

		count, err := orchestrator.Refresh(c.Request().Context())
		if err != nil {
			logger.Error("Job refresh failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			collErr := utils.NewCollectionError(err.Error())
			return c.JSON(collErr.Code, models.ErrorResponse{
				Error:     "collection_failed",
				Message:   collErr.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":      true,
			"jobs_in_pool": count,
			"refreshed_at": orchestrator.LastRefresh(),
		})
	}
}

// SignalSourcesHandler handles the GET /api/v1/sources/signals endpoint,
// reporting the capability status of each social-signal source.
func SignalSourcesHandler(orchestrator *collector.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"sources": orchestrator.SignalSources(),
		})
	}
}
