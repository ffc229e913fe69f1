package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumi/internal/extractor"
	"resumi/internal/ingest"
	"resumi/internal/logging"
	"resumi/internal/session"
	"resumi/pkg/models"
	"resumi/pkg/utils"
)

var (
	requestValidator = validator.New()
	resumeParser     = ingest.NewPlainTextParser()
)

// UploadResumeHandler handles the POST /api/v1/resume/upload endpoint. The
// resume arrives as extracted text, gets a profile extracted from it, and a
// new session is created around that profile.
func UploadResumeHandler(store session.Store, enricher extractor.Enricher) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing resume upload request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/resume/upload",
			"method":     "POST",
		})

		var req models.UploadResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request body: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := requestValidator.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Request validation failed: " + err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		text, err := resumeParser.Parse(req.Filename, req.ResumeText)
		if err != nil {
			parseErr := utils.NewResumeParsingError(err.Error())
			return c.JSON(parseErr.Code, models.ErrorResponse{
				Error:     "resume_parsing_failed",
				Message:   parseErr.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		profile := extractor.ExtractProfile(text, enricher)
		if profile == nil {
			parseErr := utils.NewResumeParsingError("could not extract a profile from the resume text")
			return c.JSON(parseErr.Code, models.ErrorResponse{
				Error:     "resume_parsing_failed",
				Message:   parseErr.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		now := time.Now().UTC()
		sess := &session.Session{
			ID:        utils.GenerateSessionID(),
			Profile:   profile,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := store.Create(c.Request().Context(), sess); err != nil {
			logger.Error("Failed to create session", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "session_creation_failed",
				Message:   "Failed to create session",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Resume processed", map[string]interface{}{
			"request_id":   requestID,
			"session_id":   sess.ID,
			"primary_role": profile.PrimaryRole,
			"seniority":    profile.Seniority,
			"skills":       len(profile.Skills),
		})

		return c.JSON(http.StatusOK, models.UploadResumeResponse{
			Success:   true,
			SessionID: sess.ID,
			Profile:   profile,
		})
	}
}
