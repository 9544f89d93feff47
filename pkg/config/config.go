// Package config loads runtime configuration from the environment and the
// optional definitions directory. Env vars override built-in defaults;
// cmd/intake loads .env first via godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load and passed
// down through cmd/intake.
type Config struct {
	// HTTPPort is the listen port for the intake API.
	HTTPPort int

	// ConfigDir holds optional YAML definition files merged over the
	// compiled-in builtins. Empty means builtins only.
	ConfigDir string

	LLM           LLMConfig
	Orchestration OrchestrationConfig
	Tools         ToolsConfig
	Mongo         MongoConfig
	Redis         RedisConfig
	Queue         *QueueConfig
	Retention     *RetentionConfig
}

// LLMConfig selects the Bedrock region and model used by the llm tool.
type LLMConfig struct {
	BedrockRegion  string
	DefaultModelID string
}

// OrchestrationConfig bounds job execution.
type OrchestrationConfig struct {
	// MaxParallelAgents caps concurrent agents within one job's graph.
	MaxParallelAgents int

	// JobMaxWallClock is the hard ceiling on a job's running time.
	JobMaxWallClock time.Duration

	// AgentRetries is the per-agent tool call attempt budget.
	AgentRetries int

	// ConfidenceComplete and ConfidenceClarify are the system-default
	// aggregation thresholds; domains may override per-domain.
	ConfidenceComplete float64
	ConfidenceClarify  float64
}

// ToolsConfig shapes broker-wide tool call policies.
type ToolsConfig struct {
	// QuotaRatePerSecond is the steady-state refill rate of each
	// (tenant, tool) token bucket. <= 0 disables quotas.
	QuotaRatePerSecond float64

	// QuotaBurst is the bucket capacity.
	QuotaBurst int
}

// MongoConfig locates the record store.
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig locates the push-channel broker.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from the environment, applying defaults for
// anything unset. It never reads files; godotenv runs before this.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:  envInt("HTTP_PORT", 8080),
		ConfigDir: os.Getenv("CONFIG_DIR"),
		LLM: LLMConfig{
			BedrockRegion:  envStr("BEDROCK_REGION", "us-east-1"),
			DefaultModelID: envStr("DEFAULT_MODEL_ID", "anthropic.claude-3-5-sonnet-20241022-v2:0"),
		},
		Orchestration: OrchestrationConfig{
			MaxParallelAgents:  envInt("MAX_PARALLEL_AGENTS", 4),
			JobMaxWallClock:    time.Duration(envInt("JOB_MAX_WALL_CLOCK_MS", 600000)) * time.Millisecond,
			AgentRetries:       envInt("AGENT_RETRIES", 3),
			ConfidenceComplete: envFloat("CONFIDENCE_COMPLETE", 0.9),
			ConfidenceClarify:  envFloat("CONFIDENCE_CLARIFY", 0.6),
		},
		Tools: ToolsConfig{
			QuotaRatePerSecond: envFloat("TOOL_QUOTA_RPS", 5),
			QuotaBurst:         envInt("TOOL_QUOTA_BURST", 10),
		},
		Mongo: MongoConfig{
			URI:      envStr("MONGO_URI", "mongodb://localhost:27017"),
			Database: envStr("MONGO_DATABASE", "intake"),
		},
		Redis: RedisConfig{
			Addr:     envStr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Queue:     loadQueueConfig(),
		Retention: loadRetentionConfig(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Orchestration.MaxParallelAgents < 1 {
		return fmt.Errorf("MAX_PARALLEL_AGENTS must be >= 1, got %d", c.Orchestration.MaxParallelAgents)
	}
	if c.Orchestration.AgentRetries < 1 {
		return fmt.Errorf("AGENT_RETRIES must be >= 1, got %d", c.Orchestration.AgentRetries)
	}
	if c.Orchestration.JobMaxWallClock <= 0 {
		return fmt.Errorf("JOB_MAX_WALL_CLOCK_MS must be positive")
	}
	cc, cl := c.Orchestration.ConfidenceComplete, c.Orchestration.ConfidenceClarify
	if cc < 0 || cc > 1 || cl < 0 || cl > 1 || cl > cc {
		return fmt.Errorf("confidence thresholds must satisfy 0 <= clarify <= complete <= 1, got clarify=%v complete=%v", cl, cc)
	}
	if c.Tools.QuotaRatePerSecond > 0 && c.Tools.QuotaBurst < 1 {
		return fmt.Errorf("TOOL_QUOTA_BURST must be >= 1 when quotas are enabled, got %d", c.Tools.QuotaBurst)
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be >= 1, got %d", c.Queue.WorkerCount)
	}
	if c.Retention.JobRetentionDays < 1 {
		return fmt.Errorf("JOB_RETENTION_DAYS must be >= 1, got %d", c.Retention.JobRetentionDays)
	}
	return nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
