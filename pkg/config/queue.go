package config

import "time"

// QueueConfig controls how jobs are polled, claimed, and processed by the
// worker pool.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int

	// MaxConcurrentJobs is the global limit of jobs running across ALL
	// replicas, enforced by a database COUNT check before each claim.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration

	// PollIntervalJitter randomises the poll so replicas don't thunder.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// HeartbeatInterval is how often a worker refreshes last_interaction_at
	// on its claimed job.
	HeartbeatInterval time.Duration

	// JobTimeout is the worker-side backstop on one job's processing. The
	// orchestrator applies the envelope deadline inside this.
	JobTimeout time.Duration

	// GracefulShutdownTimeout bounds how long Stop waits for in-flight jobs.
	GracefulShutdownTimeout time.Duration

	// OrphanSweepInterval is how often the pool releases stale claims.
	OrphanSweepInterval time.Duration

	// ClaimStaleAfter is how long a claimed-but-unstarted job may sit before
	// its claim is released for another pod to pick up.
	ClaimStaleAfter time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentJobs:       8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		JobTimeout:              12 * time.Minute,
		GracefulShutdownTimeout: 12 * time.Minute,
		OrphanSweepInterval:     1 * time.Minute,
		ClaimStaleAfter:         1 * time.Minute,
	}
}

// loadQueueConfig resolves queue settings from env over the defaults.
func loadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentJobs = envInt("MAX_CONCURRENT_JOBS", cfg.MaxConcurrentJobs)
	if ms := envInt("QUEUE_POLL_INTERVAL_MS", 0); ms > 0 {
		cfg.PollInterval = time.Duration(ms) * time.Millisecond
	}
	if ms := envInt("QUEUE_HEARTBEAT_INTERVAL_MS", 0); ms > 0 {
		cfg.HeartbeatInterval = time.Duration(ms) * time.Millisecond
	}
	if ms := envInt("QUEUE_JOB_TIMEOUT_MS", 0); ms > 0 {
		cfg.JobTimeout = time.Duration(ms) * time.Millisecond
	}
	return cfg
}
