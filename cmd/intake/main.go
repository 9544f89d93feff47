// Intake orchestrator server — provides the HTTP intake API, manages queue
// workers, and orchestrates multi-agent job processing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/intakehq/intake/pkg/agent"
	"github.com/intakehq/intake/pkg/api"
	"github.com/intakehq/intake/pkg/cleanup"
	"github.com/intakehq/intake/pkg/config"
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/dag"
	"github.com/intakehq/intake/pkg/database"
	"github.com/intakehq/intake/pkg/events"
	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/llm"
	"github.com/intakehq/intake/pkg/orchestrator"
	"github.com/intakehq/intake/pkg/playbook"
	"github.com/intakehq/intake/pkg/queue"
	"github.com/intakehq/intake/pkg/recordstore"
	"github.com/intakehq/intake/pkg/retry"
	"github.com/intakehq/intake/pkg/tool"
	"github.com/intakehq/intake/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = *configDir
	}

	slog.Info("Starting intake",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"pod_id", podID,
		"config_dir", cfg.ConfigDir)

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup claim cleanup
	if err := queue.CleanupStartupClaims(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup claims", "error", err)
		// Non-fatal — the stale-claim sweep covers it
	}

	// 4. Seed builtin definitions (compiled-in merged with YAML overrides)
	agents, domains, err := config.LoadDefinitions(cfg.ConfigDir)
	if err != nil {
		slog.Error("Failed to load definitions", "error", err)
		os.Exit(1)
	}
	if err := configstore.SeedBuiltins(ctx, dbClient.Client, agents, domains); err != nil {
		slog.Error("Failed to seed builtin definitions", "error", err)
		os.Exit(1)
	}
	slog.Info("Builtin definitions seeded", "agents", len(agents), "domains", len(domains))

	// 5. Connect the record store
	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			slog.Error("Error disconnecting MongoDB client", "error", err)
		}
	}()

	records, err := recordstore.NewMongoStore(ctx, mongoClient.Database(cfg.Mongo.Database), "records")
	if err != nil {
		slog.Error("Failed to initialize record store", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to record store", "database", cfg.Mongo.Database)

	// 6. Connect the push-channel broker
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}()
	publisher := events.NewRedisPublisher(rdb, slog.Default())

	// 7. LLM client and tool broker. The Bedrock connection is lazy; the
	// first Converse call performs the actual dial.
	llmClient, err := llm.NewBedrockClient(ctx, llm.BedrockConfig{
		Region:         cfg.LLM.BedrockRegion,
		DefaultModelID: cfg.LLM.DefaultModelID,
	})
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	brokerCfg := tool.DefaultBrokerConfig()
	brokerCfg.Quota = tool.QuotaConfig{
		RatePerSecond: cfg.Tools.QuotaRatePerSecond,
		Burst:         cfg.Tools.QuotaBurst,
	}
	broker := tool.NewBroker(brokerCfg)
	broker.Register(tool.NameLLM, tool.NewLLMTool(llmClient))
	broker.Register(tool.NameGeocoder, tool.NewGeocoderTool(llmClient))
	broker.Register(tool.NameClassifier, tool.NewClassifierTool(llmClient))
	slog.Info("Tool broker initialized", "tools", broker.Names())

	// 8. Assemble the orchestrator
	policy := retry.DefaultPolicy()
	policy.MaxAttempts = cfg.Orchestration.AgentRetries

	jobs := lifecycle.NewEntJobStore(dbClient.Client)
	manager := lifecycle.NewManager(jobs, records, publisher, policy, slog.Default())
	invoker := agent.NewInvoker(broker, policy, slog.Default())
	scheduler := dag.NewScheduler(invoker, cfg.Orchestration.MaxParallelAgents, slog.Default())
	loader := playbook.NewLoader(configstore.NewEntStore(dbClient.Client))

	orch := orchestrator.New(loader, scheduler, manager, records,
		cfg.Orchestration.JobMaxWallClock, slog.Default()).
		WithThresholds(configstore.Thresholds{
			Complete: cfg.Orchestration.ConfidenceComplete,
			Clarify:  cfg.Orchestration.ConfidenceClarify,
		})

	// 9. Start the worker pool and the stuck-job supervisor
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, orch)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	supervisorCtx, stopSupervisor := context.WithCancel(ctx)
	defer stopSupervisor()
	supervisor := lifecycle.NewSupervisor(manager, jobs,
		cfg.Orchestration.JobMaxWallClock, lifecycle.DefaultSweepInterval, slog.Default())
	go supervisor.Run(supervisorCtx)

	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)

	// 10. Start HTTP server (non-blocking)
	httpServer := api.NewServer(jobs, manager, workerPool, workerPool, dbClient, slog.Default())
	serverCtx, stopServer := context.WithCancel(ctx)
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- httpServer.Start(serverCtx, cfg.HTTPPort)
	}()

	slog.Info("Intake started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	serverErr := false
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-serverDone:
		serverErr = true
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop intake first, then drain workers
	stopServer()
	stopSupervisor()
	cleanupService.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; the supervisor will sweep incomplete jobs")
	}

	if !serverErr {
		// Wait for the HTTP server to finish its own graceful shutdown.
		select {
		case <-serverDone:
		case <-time.After(5 * time.Second):
			slog.Warn("HTTP server did not shut down in time")
		}
	}

	slog.Info("Shutdown complete")
}
