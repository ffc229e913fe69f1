package collector

import (
	"context"
	"sync"
	"time"

	"resumi/internal/config"
	"resumi/internal/jobs"
	"resumi/internal/logging"
	"resumi/internal/storage"
	"resumi/pkg/models"
)

// Orchestrator coordinates job collection across all sources and owns the
// in-memory pool of normalized jobs the matcher runs against. The pool is
// replaced wholesale on each refresh; reads see either the old or the new
// batch, never a mix.
type Orchestrator struct {
	cfg        *config.Config
	collectors []Collector
	signals    []SignalSource
	normalizer *jobs.Normalizer
	store      *storage.SnapshotStore

	mu          sync.RWMutex
	pool        []*models.NormalizedJob
	signalPool  []models.JobSignal
	lastRefresh time.Time
}

func NewOrchestrator(cfg *config.Config, collectors []Collector, signals []SignalSource, normalizer *jobs.Normalizer, store *storage.SnapshotStore) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		collectors: collectors,
		signals:    signals,
		normalizer: normalizer,
		store:      store,
	}
}

// LoadFromSnapshot seeds the pool from the newest normalized snapshot on
// disk, if any. Called once at startup so restarts don't begin empty.
func (o *Orchestrator) LoadFromSnapshot() error {
	loaded, err := o.store.LoadLatestNormalizedJobs()
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		return nil
	}

	o.mu.Lock()
	o.pool = jobs.Deduplicate(loaded)
	o.mu.Unlock()
	return nil
}

// Refresh collects from every source concurrently, normalizes and
// deduplicates the combined batch, persists snapshots, and swaps the pool.
// Individual source failures are logged and skipped; the refresh fails only
// when the context is cancelled.
func (o *Orchestrator) Refresh(ctx context.Context) (int, error) {
	logger := logging.GetGlobalLogger().WithField("component", "orchestrator")
	logger.Info("Starting job collection", map[string]interface{}{
		"sources": len(o.collectors),
	})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		rawJobs []models.RawJob
	)

	for _, c := range o.collectors {
		wg.Add(1)
		go func(c Collector) {
			defer wg.Done()

			collected, err := c.Collect(ctx, o.cfg.Collector.MaxJobsPerSource)
			if err != nil {
				logger.Error("Source collection failed", map[string]interface{}{
					"source": c.Name(),
					"error":  err.Error(),
				})
				return
			}

			mu.Lock()
			rawJobs = append(rawJobs, collected...)
			mu.Unlock()

			logger.Info("Source collection finished", map[string]interface{}{
				"source": c.Name(),
				"jobs":   len(collected),
			})
		}(c)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if limit := o.cfg.Collector.TotalJobLimit; limit > 0 && len(rawJobs) > limit {
		rawJobs = rawJobs[:limit]
	}

	if err := o.store.SaveRawJobs(rawJobs); err != nil {
		logger.Warn("Failed to persist raw snapshot", map[string]interface{}{"error": err.Error()})
	}

	normalized := jobs.Deduplicate(o.normalizer.NormalizeAll(rawJobs))

	if err := o.store.SaveNormalizedJobs(normalized); err != nil {
		logger.Warn("Failed to persist normalized snapshot", map[string]interface{}{"error": err.Error()})
	}

	signals := o.collectSignals(ctx, logger)

	o.mu.Lock()
	o.pool = normalized
	o.signalPool = signals
	o.lastRefresh = time.Now().UTC()
	o.mu.Unlock()

	logger.Info("Job collection complete", map[string]interface{}{
		"raw":    len(rawJobs),
		"unique": len(normalized),
	})
	return len(normalized), nil
}

// collectSignals polls every active signal source and grades each signal's
// confidence. Pending and disabled sources are skipped; a failing source is
// logged and never fails the refresh.
func (o *Orchestrator) collectSignals(ctx context.Context, logger logging.Logger) []models.JobSignal {
	var collected []models.JobSignal
	for _, s := range o.signals {
		if s.Status() != SignalActive {
			continue
		}

		signals, err := s.CollectSignals(ctx, o.cfg.Collector.MaxJobsPerSource)
		if err != nil {
			logger.Error("Signal collection failed", map[string]interface{}{
				"source": s.Name(),
				"error":  err.Error(),
			})
			continue
		}

		for i := range signals {
			signals[i].Confidence = SignalConfidence(signals[i])
		}
		collected = append(collected, signals...)

		logger.Info("Signal collection finished", map[string]interface{}{
			"source":  s.Name(),
			"signals": len(signals),
		})
	}
	return collected
}

// Jobs returns the current normalized job pool.
func (o *Orchestrator) Jobs() []*models.NormalizedJob {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.pool
}

// Signals returns the job leads gathered from active signal sources during
// the last refresh.
func (o *Orchestrator) Signals() []models.JobSignal {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.signalPool
}

// LastRefresh returns when the pool was last rebuilt from live sources.
// Zero when the pool came only from a snapshot.
func (o *Orchestrator) LastRefresh() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastRefresh
}

// SignalSources reports the status of every registered signal source.
func (o *Orchestrator) SignalSources() []models.SignalSourceStatus {
	statuses := make([]models.SignalSourceStatus, 0, len(o.signals))
	for _, s := range o.signals {
		statuses = append(statuses, models.SignalSourceStatus{
			Name:   s.Name(),
			Status: string(s.Status()),
		})
	}
	return statuses
}
