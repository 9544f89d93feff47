package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/ent"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/pkg/config"
	"github.com/intakehq/intake/pkg/database"
	"github.com/intakehq/intake/pkg/models"
	testdb "github.com/intakehq/intake/test/database"
)

func seedJob(t *testing.T, client *database.Client, status job.Status, completedAt time.Time) string {
	t.Helper()
	jobID := uuid.New().String()
	env := models.JobEnvelope{
		JobID:    jobID,
		TenantID: "acme",
		UserID:   "u-1",
		JobType:  models.JobTypeIngest,
		DomainID: "civic_complaints",
		Input:    models.JobInput{Text: "streetlight out on 5th"},
	}
	create := client.Job.Create().
		SetID(jobID).
		SetTenantID(env.TenantID).
		SetUserID(env.UserID).
		SetJobType(string(env.JobType)).
		SetDomainID(env.DomainID).
		SetEnvelope(env).
		SetStatus(status)
	if !completedAt.IsZero() {
		create = create.SetCompletedAt(completedAt)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
	return jobID
}

func retention(days int) *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetentionDays: days,
		CleanupInterval:  time.Hour,
	}
}

func TestService_DeletesOldTerminalJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().UTC().AddDate(0, 0, -40)
	completed := seedJob(t, client, job.StatusComplete, old)
	failed := seedJob(t, client, job.StatusFailed, old)
	cancelled := seedJob(t, client, job.StatusCancelled, old)

	svc := NewService(retention(30), client.Client)
	svc.deleteExpiredJobs(ctx)

	for _, id := range []string{completed, failed, cancelled} {
		_, err := client.Job.Get(ctx, id)
		assert.True(t, ent.IsNotFound(err), "job %s should be deleted", id)
	}
}

func TestService_PreservesRecentTerminalJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	recent := seedJob(t, client, job.StatusComplete, time.Now().UTC())

	svc := NewService(retention(30), client.Client)
	svc.deleteExpiredJobs(ctx)

	_, err := client.Job.Get(ctx, recent)
	assert.NoError(t, err)
}

func TestService_PreservesActiveJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	queued := seedJob(t, client, job.StatusQueued, time.Time{})
	running := seedJob(t, client, job.StatusRunning, time.Time{})

	svc := NewService(retention(30), client.Client)
	svc.deleteExpiredJobs(ctx)

	for _, id := range []string{queued, running} {
		_, err := client.Job.Get(ctx, id)
		assert.NoError(t, err, "active job %s should survive retention", id)
	}
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retention(30), client.Client)
	svc.Start(context.Background())
	// Second Start is a no-op.
	svc.Start(context.Background())
	svc.Stop()
}
