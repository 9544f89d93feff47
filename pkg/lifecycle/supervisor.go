package lifecycle

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultMaxWallClock is the hard ceiling on a job's running time.
	DefaultMaxWallClock = 10 * time.Minute

	// DefaultSweepInterval is how often the supervisor looks for stuck jobs.
	DefaultSweepInterval = 30 * time.Second

	sweepBatchSize = 50
)

// Supervisor sweeps jobs stuck in running past the wall clock to failed with
// reason timeout. It covers both crashed workers and jobs whose cancellation
// never completed.
type Supervisor struct {
	manager  *Manager
	store    JobStore
	maxWall  time.Duration
	interval time.Duration
	logger   *slog.Logger
}

// NewSupervisor creates a supervisor; non-positive durations select defaults.
func NewSupervisor(manager *Manager, store JobStore, maxWall, interval time.Duration, logger *slog.Logger) *Supervisor {
	if maxWall <= 0 {
		maxWall = DefaultMaxWallClock
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Supervisor{
		manager:  manager,
		store:    store,
		maxWall:  maxWall,
		interval: interval,
		logger:   logger.With("component", "job_supervisor"),
	}
}

// Run sweeps on the configured interval until ctx is cancelled.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep fails every job whose last sign of life predates the wall clock.
func (s *Supervisor) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.maxWall)
	stuck, err := s.store.ListStuckRunning(ctx, cutoff, sweepBatchSize)
	if err != nil {
		s.logger.Error("Stuck-job sweep failed", "error", err)
		return
	}
	for _, j := range stuck {
		s.logger.Warn("Sweeping stuck job to failed",
			"job_id", j.ID,
			"last_interaction_at", j.LastInteractionAt)
		if err := s.manager.Fail(ctx, j, FailureTimeout, "job exceeded its time limit", j.Result); err != nil {
			s.logger.Error("Failed to sweep stuck job", "job_id", j.ID, "error", err)
		}
	}
}
