package refresh

import (
	"context"
	"errors"
	"sync"
	"time"

	"jsonplaceholder/core/settings"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Syncer pulls one remote collection into its local store.
type Syncer interface {
	Name() string
	Sync(ctx context.Context) (int, error)
}

// PeriodSource provides the current settings.
type PeriodSource interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// Scheduler runs Syncers once per refresh period.
type Scheduler struct {
	source  PeriodSource
	logger  *zap.Logger
	syncers []Syncer

	// unit scales RefreshPeriodMinutes; tests shrink it.
	unit         time.Duration
	retryInitial time.Duration
}

// NewScheduler creates a scheduler reading its period from source.
func NewScheduler(cfg Config, source PeriodSource, logger *zap.Logger, syncers ...Syncer) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	initial := time.Duration(cfg.RetryInitialSeconds) * time.Second
	if initial <= 0 {
		initial = 5 * time.Second
	}
	return &Scheduler{
		source:       source,
		logger:       logger,
		syncers:      syncers,
		unit:         time.Minute,
		retryInitial: initial,
	}
}

// Run syncs immediately and then once per period until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Refresh scheduler started", zap.Int("syncers", len(s.syncers)))
	for {
		period := s.Period(ctx)
		s.RunOnce(ctx, period)

		timer := time.NewTimer(period)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Refresh scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Period returns the current refresh period, clamped to the storable range.
// Settings read failures fall back to the default period.
func (s *Scheduler) Period(ctx context.Context) time.Duration {
	current, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to read settings, using default refresh period", zap.Error(err))
		current = settings.Default()
	}
	minutes := min(max(current.RefreshPeriodMinutes, 1), settings.MaxRefreshPeriodMinutes)
	return time.Duration(minutes) * s.unit
}

// Result is the outcome of one Syncer in a cycle.
type Result struct {
	Resource string `json:"resource" yaml:"resource"`
	Count    int    `json:"count" yaml:"count"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunOnce syncs every registered Syncer concurrently. Each one retries until it
// succeeds, ctx is done or budget has elapsed. Results keep registration order.
func (s *Scheduler) RunOnce(ctx context.Context, budget time.Duration) []Result {
	results := make([]Result, len(s.syncers))
	var wg sync.WaitGroup
	for i, syncer := range s.syncers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.sync(ctx, syncer, budget)
		}()
	}
	wg.Wait()
	return results
}

func (s *Scheduler) sync(ctx context.Context, syncer Syncer, budget time.Duration) Result {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retryInitial
	b.MaxInterval = budget
	b.MaxElapsedTime = budget

	start := time.Now()
	var count int
	op := func() error {
		n, err := syncer.Sync(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			return err
		}
		count = n
		return nil
	}
	notify := func(err error, wait time.Duration) {
		s.logger.Warn("Sync failed, retrying",
			zap.String("resource", syncer.Name()),
			zap.Duration("retry_in", wait),
			zap.Error(err))
	}

	result := Result{Resource: syncer.Name()}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		s.logger.Error("Sync gave up",
			zap.String("resource", syncer.Name()),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}
	s.logger.Debug("Synced",
		zap.String("resource", syncer.Name()),
		zap.Int("count", count),
		zap.Duration("took", time.Since(start)))
	result.Count = count
	return result
}
