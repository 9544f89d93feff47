package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 4, cfg.Orchestration.MaxParallelAgents)
	assert.Equal(t, 10*time.Minute, cfg.Orchestration.JobMaxWallClock)
	assert.Equal(t, 3, cfg.Orchestration.AgentRetries)
	assert.InDelta(t, 0.9, cfg.Orchestration.ConfidenceComplete, 1e-9)
	assert.InDelta(t, 0.6, cfg.Orchestration.ConfidenceClarify, 1e-9)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "intake", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.InDelta(t, 5, cfg.Tools.QuotaRatePerSecond, 1e-9)
	assert.Equal(t, 10, cfg.Tools.QuotaBurst)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MAX_PARALLEL_AGENTS", "2")
	t.Setenv("JOB_MAX_WALL_CLOCK_MS", "30000")
	t.Setenv("CONFIDENCE_COMPLETE", "0.95")
	t.Setenv("CONFIDENCE_CLARIFY", "0.5")
	t.Setenv("WORKER_COUNT", "7")
	t.Setenv("QUEUE_POLL_INTERVAL_MS", "200")
	t.Setenv("BEDROCK_REGION", "eu-west-1")
	t.Setenv("TOOL_QUOTA_RPS", "2.5")
	t.Setenv("TOOL_QUOTA_BURST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 2, cfg.Orchestration.MaxParallelAgents)
	assert.Equal(t, 30*time.Second, cfg.Orchestration.JobMaxWallClock)
	assert.InDelta(t, 0.95, cfg.Orchestration.ConfidenceComplete, 1e-9)
	assert.InDelta(t, 0.5, cfg.Orchestration.ConfidenceClarify, 1e-9)
	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 200*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, "eu-west-1", cfg.LLM.BedrockRegion)
	assert.InDelta(t, 2.5, cfg.Tools.QuotaRatePerSecond, 1e-9)
	assert.Equal(t, 4, cfg.Tools.QuotaBurst)
}

func TestLoadRejectsZeroBurstWithQuotasEnabled(t *testing.T) {
	t.Setenv("TOOL_QUOTA_RPS", "3")
	t.Setenv("TOOL_QUOTA_BURST", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOOL_QUOTA_BURST")
}

func TestLoadRejectsInvertedThresholds(t *testing.T) {
	t.Setenv("CONFIDENCE_COMPLETE", "0.5")
	t.Setenv("CONFIDENCE_CLARIFY", "0.8")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence thresholds")
}

func TestLoadRejectsZeroWorkers(t *testing.T) {
	t.Setenv("WORKER_COUNT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKER_COUNT")
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_PARALLEL_AGENTS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Orchestration.MaxParallelAgents)
}
