package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/intakehq/intake/ent"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set) it connects to an external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production applies the embedded SQL.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateClaimIndex(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health := client.Health(ctx)
	assert.Equal(t, StatusHealthy, health.Status)
	assert.Empty(t, health.Error)
	assert.Greater(t, health.MaxOpenConns, 0)

	// A spent context makes the ping fail and the status flip.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	health = client.Health(cancelled)
	assert.Equal(t, StatusUnhealthy, health.Status)
	assert.NotEmpty(t, health.Error)
}

func TestJobRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	env := models.JobEnvelope{
		JobID:    "job-1",
		TenantID: "acme",
		UserID:   "u-1",
		JobType:  models.JobTypeIngest,
		DomainID: "civic_complaints",
		Input:    models.JobInput{Text: "pothole on main street"},
	}
	created, err := client.Job.Create().
		SetID(env.JobID).
		SetTenantID(env.TenantID).
		SetUserID(env.UserID).
		SetJobType(string(env.JobType)).
		SetDomainID(env.DomainID).
		SetEnvelope(env).
		SetStatus(job.Status(models.JobStatusQueued)).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "job-1", created.ID)

	got, err := client.Job.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "pothole on main street", got.Envelope.Input.Text)
	assert.Equal(t, job.StatusQueued, got.Status)
	assert.Nil(t, got.PodID)

	// Claim query shape: queued jobs without a pod.
	n, err := client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued), job.PodIDIsNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedBuiltinsIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	agents := []*configstore.AgentDefinition{{
		AgentID:      "geo_extractor",
		AgentName:    "Geographic extractor",
		AgentClass:   configstore.AgentClassIngestion,
		SystemPrompt: "Extract locations.",
		Tools:        []string{"llm"},
		OutputSchema: map[string]string{"location": "string", "confidence": "number"},
		Weight:       1,
		Version:      1,
	}}
	domains := []*configstore.DomainDefinition{{
		DomainID:   "civic_complaints",
		DomainName: "Civic complaints",
		Ingestion:  configstore.Playbook{Nodes: []string{"geo_extractor"}},
	}}

	require.NoError(t, configstore.SeedBuiltins(ctx, client.Client, agents, domains))

	// Second seed upserts instead of duplicating.
	agents[0].AgentName = "Geo v2"
	require.NoError(t, configstore.SeedBuiltins(ctx, client.Client, agents, domains))

	store := configstore.NewEntStore(client.Client)
	got, err := store.GetAgents(ctx, configstore.SystemTenant, []string{"geo_extractor"})
	require.NoError(t, err)
	require.Contains(t, got, "geo_extractor")
	assert.Equal(t, "Geo v2", got["geo_extractor"].AgentName)
	assert.True(t, got["geo_extractor"].IsBuiltin)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "nope"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if host := tt.envVars["DB_HOST"]; host != "" {
				assert.Equal(t, host, cfg.Host)
			} else {
				assert.Equal(t, "localhost", cfg.Host)
			}
		})
	}
}
