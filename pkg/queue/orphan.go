package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/intakehq/intake/ent"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/pkg/models"
)

// claimSweepState tracks stale-claim sweep metrics (thread-safe).
type claimSweepState struct {
	mu        sync.Mutex
	lastSweep time.Time
	released  int
}

// runClaimSweep periodically releases stale claims. All pods run this
// independently; releasing a claim is idempotent.
//
// A claim is normally held for milliseconds between the worker's SKIP LOCKED
// claim and the lifecycle manager's queued→running transition. A queued job
// still carrying a pod_id past ClaimStaleAfter belongs to a pod that died in
// that window; clearing pod_id puts it back in the claimable set. Jobs that
// died while running are the timeout supervisor's problem, not ours.
func (p *WorkerPool) runClaimSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.releaseStaleClaims(ctx); err != nil {
				slog.Error("Stale-claim sweep failed", "error", err)
			}
		}
	}
}

// releaseStaleClaims clears pod_id on queued jobs whose claim went stale.
func (p *WorkerPool) releaseStaleClaims(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.ClaimStaleAfter)

	released, err := p.client.Job.Update().
		Where(
			job.StatusEQ(job.Status(models.JobStatusQueued)),
			job.PodIDNotNil(),
			job.LastInteractionAtLT(threshold),
		).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release stale claims: %w", err)
	}

	if released > 0 {
		slog.Warn("Released stale job claims", "count", released)
	}

	p.claims.mu.Lock()
	p.claims.lastSweep = time.Now()
	p.claims.released += released
	p.claims.mu.Unlock()

	return nil
}

// CleanupStartupClaims releases claims held by this pod from a previous run.
// Called once during startup, before the worker pool begins processing, so a
// restarted pod does not leave its own pre-crash claims waiting out the
// stale threshold.
func CleanupStartupClaims(ctx context.Context, client *ent.Client, podID string) error {
	released, err := client.Job.Update().
		Where(
			job.StatusEQ(job.Status(models.JobStatusQueued)),
			job.PodIDEQ(podID),
		).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release startup claims: %w", err)
	}

	if released > 0 {
		slog.Warn("Released claims from previous run",
			"pod_id", podID,
			"count", released)
	}

	return nil
}
