// Package queue provides the job queue worker pool: claiming queued jobs
// with FOR UPDATE SKIP LOCKED, heartbeating them while the orchestrator
// runs, and releasing stale claims left behind by crashed pods.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor runs one claimed job end to end. The executor owns the whole
// lifecycle: the queued→running transition, agent execution, record writes,
// and the terminal transition. The worker only claims, heartbeats, and logs.
// The returned error is diagnostic; job-level failures are already persisted
// by the time Execute returns.
type JobExecutor interface {
	Execute(ctx context.Context, jobID string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	RunningJobs    int            `json:"running_jobs"`
	MaxConcurrent  int            `json:"max_concurrent"`
	QueueDepth     int            `json:"queue_depth"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastClaimSweep time.Time      `json:"last_claim_sweep"`
	ClaimsReleased int            `json:"claims_released"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
