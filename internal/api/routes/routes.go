package routes

import (
	"time"

	"resumi/internal/api/handlers"
	"resumi/internal/api/middleware"
	"resumi/internal/collector"
	"resumi/internal/config"
	"resumi/internal/extractor"
	"resumi/internal/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, store session.Store, orchestrator *collector.Orchestrator, enricher extractor.Enricher) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Collection endpoints wait on external job boards, so they get a longer timeout
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler)
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(orchestrator))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/upload", handlers.UploadResumeHandler(store, enricher))
		}

		v1.POST("/preferences", handlers.PreferencesHandler(store))
		v1.GET("/recommendations", handlers.RecommendationsHandler(cfg, store, orchestrator))

		jobs := v1.Group("/jobs")
		{
			jobs.POST("/refresh", handlers.RefreshJobsHandler(orchestrator))
		}

		sources := v1.Group("/sources")
		{
			sources.GET("/signals", handlers.SignalSourcesHandler(orchestrator))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Resumi Job Recommender",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
