// Package cleanup provides data retention for finished jobs.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/intakehq/intake/ent"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/pkg/config"
)

// Service periodically hard-deletes terminal jobs (complete, failed,
// cancelled) older than the retention window. Records produced by those
// jobs live in the record store and are not touched.
//
// The sweep is idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteExpiredJobs(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteExpiredJobs(ctx)
		}
	}
}

func (s *Service) deleteExpiredJobs(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.JobRetentionDays)

	count, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusComplete, job.StatusFailed, job.StatusCancelled),
			job.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired jobs", "count", count)
	}
}
