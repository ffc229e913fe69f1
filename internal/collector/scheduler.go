package collector

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"resumi/internal/config"
	"resumi/internal/logging"
)

// Scheduler refreshes the job pool on a cron schedule so recommendations
// don't depend on a request-time collection run.
type Scheduler struct {
	cron         *cron.Cron
	orchestrator *Orchestrator
	spec         string
}

func NewScheduler(cfg *config.Config, orchestrator *Orchestrator) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		orchestrator: orchestrator,
		spec:         cfg.Scheduler.RefreshSpec,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	logger := logging.GetGlobalLogger().WithField("component", "scheduler")

	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		count, err := s.orchestrator.Refresh(ctx)
		if err != nil {
			logger.Error("Scheduled refresh failed", map[string]interface{}{"error": err.Error()})
			return
		}
		logger.Info("Scheduled refresh complete", map[string]interface{}{"jobs": count})
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Scheduler started", map[string]interface{}{"spec": s.spec})
	return nil
}

// Stop halts the cron loop, waiting for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
