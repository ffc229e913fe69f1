package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumi/internal/api/routes"
	"resumi/internal/collector"
	"resumi/internal/config"
	"resumi/internal/jobs"
	"resumi/internal/logging"
	"resumi/internal/session"
	"resumi/internal/storage"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging before anything that logs
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Resumi Job Recommender")

	// Session store (memory or redis per config)
	store, err := session.NewStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize session store", map[string]interface{}{"error": err.Error()})
	}

	// Collection pipeline
	client := collector.NewClient(cfg)
	collectors := []collector.Collector{
		collector.NewGreenhouseCollector(client, cfg),
		collector.NewLeverCollector(client, cfg),
		collector.NewRemoteOKCollector(client, cfg),
	}
	signalSources := []collector.SignalSource{
		collector.NewRedditScanner(),
		collector.NewXScanner(),
	}

	normalizer := jobs.NewNormalizer(nil)
	snapshots := storage.NewSnapshotStore(cfg.Storage.DataDir)

	orchestrator := collector.NewOrchestrator(cfg, collectors, signalSources, normalizer, snapshots)
	if err := orchestrator.LoadFromSnapshot(); err != nil {
		logger.Warn("No usable job snapshot, pool starts empty", map[string]interface{}{"error": err.Error()})
	}

	// Periodic refresh
	var scheduler *collector.Scheduler
	if cfg.Scheduler.Enabled {
		scheduler = collector.NewScheduler(cfg, orchestrator)
		if err := scheduler.Start(); err != nil {
			logger.Fatal("Failed to start refresh scheduler", map[string]interface{}{"error": err.Error()})
		}
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, store, orchestrator, nil)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if scheduler != nil {
			logger.Info("Stopping refresh scheduler...")
			scheduler.Stop()
		}

		logger.Info("Closing session store...")
		if err := store.Close(); err != nil {
			logger.Error("Error closing session store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if err := logging.CloseLogging(); err != nil {
			log.Printf("Error closing logging: %v", err)
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
