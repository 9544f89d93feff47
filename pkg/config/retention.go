package config

import "time"

// RetentionConfig bounds how long finished jobs stay in the database.
// Records in the record store are never touched by retention.
type RetentionConfig struct {
	// JobRetentionDays is how long terminal jobs (complete, failed,
	// cancelled) are kept before hard deletion.
	JobRetentionDays int

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration
}

func loadRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays: envInt("JOB_RETENTION_DAYS", 30),
		CleanupInterval:  time.Duration(envInt("CLEANUP_INTERVAL_MS", 3600000)) * time.Millisecond,
	}
}
