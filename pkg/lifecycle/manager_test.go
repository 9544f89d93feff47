package lifecycle

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/events"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/recordstore"
	"github.com/intakehq/intake/pkg/retry"
)

type fixture struct {
	store   *FakeJobStore
	records *recordstore.FakeStore
	pub     *events.CapturingPublisher
	mgr     *Manager
}

func newFixture() *fixture {
	store := NewFakeJobStore()
	records := recordstore.NewFakeStore()
	pub := events.NewCapturingPublisher()
	mgr := NewManager(store, records, pub, retry.Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}, slog.Default())
	return &fixture{store: store, records: records, pub: pub, mgr: mgr}
}

func ingestJob(id string) *Job {
	return &Job{
		ID: id,
		Envelope: models.JobEnvelope{
			JobID:    id,
			TenantID: "acme",
			UserID:   "u-1",
			JobType:  models.JobTypeIngest,
			DomainID: "civic_complaints",
			Input:    models.JobInput{Text: "Pothole on Main Street"},
		},
	}
}

func queryJob(id string) *Job {
	return &Job{
		ID: id,
		Envelope: models.JobEnvelope{
			JobID:    id,
			TenantID: "acme",
			UserID:   "u-1",
			JobType:  models.JobTypeQuery,
			DomainID: "civic_complaints",
			Input:    models.JobInput{Question: "potholes downtown?"},
		},
	}
}

func TestStart_IngestCreatesRecordAndEmits(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, ingestJob("j1")))

	job, started, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)
	require.True(t, started)
	assert.Equal(t, models.JobStatusRunning, job.Status)
	require.NotEmpty(t, job.RecordID)

	rec, err := f.records.GetRecord(ctx, "acme", job.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "Pothole on Main Street", rec[recordstore.FieldRawInput])
	assert.Equal(t, RecordStatusProcessing, rec[recordstore.FieldStatus])
	assert.Equal(t, "civic_complaints", rec[recordstore.FieldDomainID])

	assert.Equal(t, []string{events.TypeJobStarted}, f.pub.Types("j1"))
}

func TestStart_QueryCreatesNoRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, queryJob("j1")))

	job, started, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)
	require.True(t, started)
	assert.Empty(t, job.RecordID)
	assert.Zero(t, f.records.Len())
}

func TestStart_RedeliveryAfterTerminalIsNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, queryJob("j1")))

	job, started, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)
	require.True(t, started)
	require.NoError(t, f.mgr.Complete(ctx, job, &models.JobResult{JobID: "j1", Status: models.JobStatusComplete}))

	_, started, err = f.mgr.Start(ctx, "j1")
	require.NoError(t, err)
	assert.False(t, started, "terminal job must not restart")

	// Exactly one terminal event despite the redelivery.
	types := f.pub.Types("j1")
	assert.Equal(t, []string{events.TypeJobStarted, events.TypeJobCompleted}, types)
}

func TestComplete_IngestMergesRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, ingestJob("j1")))
	job, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	result := &models.JobResult{
		JobID:  "j1",
		Status: models.JobStatusComplete,
		MergedOutput: map[string]any{
			"geo": map[string]any{"location": "Main Street near the library"},
		},
	}
	require.NoError(t, f.mgr.Complete(ctx, job, result))

	rec, err := f.records.GetRecord(ctx, "acme", job.RecordID)
	require.NoError(t, err)
	ing := rec[recordstore.FieldIngestionData].(map[string]any)
	assert.Equal(t, "Main Street near the library", ing["geo"].(map[string]any)["location"])
	assert.Equal(t, RecordStatusComplete, rec[recordstore.FieldStatus])

	stored, err := f.store.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, stored.Status)
	require.NotNil(t, stored.Result)
}

func TestComplete_ManagementAppendsHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	recordID, err := f.records.CreateRecord(ctx, "acme", map[string]any{
		recordstore.FieldDomainID: "civic_complaints",
		recordstore.FieldHistory:  []any{map[string]any{"action": "created"}},
	})
	require.NoError(t, err)

	j := &Job{
		ID: "j1",
		Envelope: models.JobEnvelope{
			JobID:    "j1",
			TenantID: "acme",
			UserID:   "u-1",
			JobType:  models.JobTypeManagement,
			DomainID: "civic_complaints",
			Input:    models.JobInput{RecordID: recordID, Text: "close this"},
		},
		RecordID: recordID,
	}
	require.NoError(t, f.store.Create(ctx, j))
	job, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	result := &models.JobResult{
		JobID:        "j1",
		Status:       models.JobStatusComplete,
		MergedOutput: map[string]any{"triage": map[string]any{"status": "resolved"}},
		Summary:      "marked resolved",
	}
	require.NoError(t, f.mgr.Complete(ctx, job, result))

	rec, err := f.records.GetRecord(ctx, "acme", recordID)
	require.NoError(t, err)
	hist := rec[recordstore.FieldHistory].([]any)
	require.Len(t, hist, 2, "history appends, never replaces")
	entry := hist[1].(map[string]any)
	assert.Equal(t, "management_update", entry["action"])
	assert.Equal(t, "j1", entry["job_id"])
}

func TestClarificationRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, ingestJob("j1")))
	job, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	partial := &models.JobResult{JobID: "j1", Status: models.JobStatusAwaitingClarification}
	require.NoError(t, f.mgr.AwaitClarification(ctx, job, partial, []string{"duration", "location"}, nil))

	// Record flipped, no ingestion data yet.
	rec, err := f.records.GetRecord(ctx, "acme", job.RecordID)
	require.NoError(t, err)
	assert.Equal(t, RecordStatusAwaitingClarification, rec[recordstore.FieldStatus])
	assert.NotContains(t, rec, recordstore.FieldIngestionData)

	stored, err := f.store.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAwaitingClarification, stored.Status)
	assert.Equal(t, []string{"duration", "location"}, toStrings(stored.Clarification["fields"]))

	// First follow-up is accepted and re-queues the job.
	answers := map[string]any{"location": "5th and Main"}
	resumed, err := f.mgr.AcceptClarification(ctx, "j1", answers)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusQueued, resumed.Status)
	assert.True(t, resumed.ClarificationConsumed)
	assert.Equal(t, answers, resumed.Envelope.Input.ClarificationAnswers)

	// Second follow-up is rejected.
	_, err = f.mgr.AcceptClarification(ctx, "j1", map[string]any{"location": "elsewhere"})
	assert.ErrorIs(t, err, ErrClarificationConsumed)

	// The resumed job starts a second cycle and can complete.
	job, started, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)
	require.True(t, started)
	require.NoError(t, f.mgr.Complete(ctx, job, &models.JobResult{
		JobID:        "j1",
		Status:       models.JobStatusComplete,
		MergedOutput: map[string]any{"geo": map[string]any{"location": "5th and Main"}},
	}))

	types := f.pub.Types("j1")
	assert.Equal(t, []string{
		events.TypeJobStarted,
		events.TypeClarificationRequired,
		events.TypeJobStarted,
		events.TypeJobCompleted,
	}, types)
}

func TestFail_PersistsTaxonomyAndPartialResults(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, queryJob("j1")))
	job, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	partial := &models.JobResult{
		JobID:  "j1",
		Status: models.JobStatusFailed,
		PerAgent: []models.AgentResult{
			{AgentID: "what", Status: models.AgentStatusCancelled},
		},
	}
	require.NoError(t, f.mgr.Fail(ctx, job, FailureTimeout, "job exceeded its time limit", partial))

	stored, err := f.store.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, stored.Status)
	assert.Equal(t, FailureTimeout, stored.FailureKind)
	require.NotNil(t, stored.Result)
	require.Len(t, stored.Result.PerAgent, 1)

	// Double-fail is a no-op; one job_failed event.
	require.NoError(t, f.mgr.Fail(ctx, job, FailureTimeout, "again", partial))
	assert.Equal(t, []string{events.TypeJobStarted, events.TypeJobFailed}, f.pub.Types("j1"))
}

func TestAgentEvents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, queryJob("j1")))
	job, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	f.mgr.AgentStarted(ctx, job, "geo")
	now := time.Now().UTC()
	f.mgr.AgentFinished(ctx, job, &models.AgentResult{
		AgentID:    "geo",
		Status:     models.AgentStatusCompleted,
		Confidence: models.Float64Ptr(0.9),
		StartedAt:  now.Add(-120 * time.Millisecond),
		EndedAt:    now,
		Attempts:   2,
	})
	f.mgr.AgentFinished(ctx, job, &models.AgentResult{
		AgentID: "temporal",
		Status:  models.AgentStatusFailed,
		Error:   "tool unavailable",
	})
	// An in-flight agent cut short still closes out its started event.
	f.mgr.AgentFinished(ctx, job, &models.AgentResult{
		AgentID: "entity",
		Status:  models.AgentStatusCancelled,
		Error:   "cancelled",
	})

	evts := f.pub.ForJob("j1")
	require.Len(t, evts, 5) // job_started + 4 agent events
	assert.Equal(t, events.TypeAgentStarted, evts[1].EventType)
	assert.Equal(t, events.TypeAgentCompleted, evts[2].EventType)
	assert.Equal(t, 2, evts[2].Metadata["attempts"])
	assert.Equal(t, events.TypeAgentFailed, evts[3].EventType)
	assert.Equal(t, "tool unavailable", evts[3].Message)
	assert.Equal(t, events.TypeAgentFailed, evts[4].EventType)
	assert.Equal(t, string(models.AgentStatusCancelled), evts[4].Status)
}

func TestComplete_StoreFailureSurfacesAfterRetries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, ingestJob("j1")))
	job, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	f.records.FailWrites = assert.AnError
	err = f.mgr.Complete(ctx, job, &models.JobResult{
		JobID:        "j1",
		Status:       models.JobStatusComplete,
		MergedOutput: map[string]any{"geo": map[string]any{}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), FailureStoreUnavailable)

	// The job did not transition; no job_completed event.
	stored, err := f.store.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusRunning, stored.Status)
	assert.NotContains(t, f.pub.Types("j1"), events.TypeJobCompleted)
}

func TestSupervisor_SweepsStuckJobs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Create(ctx, queryJob("j1")))
	_, _, err := f.mgr.Start(ctx, "j1")
	require.NoError(t, err)

	// Backdate the heartbeat past the wall clock.
	_, _, err = f.store.ApplyTransition(ctx, "j1", "test_backdate", func(j *Job) error {
		j.LastInteractionAt = time.Now().UTC().Add(-time.Hour)
		return nil
	})
	require.NoError(t, err)

	sup := NewSupervisor(f.mgr, f.store, 10*time.Minute, time.Second, slog.Default())
	sup.Sweep(ctx)

	stored, err := f.store.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, stored.Status)
	assert.Equal(t, FailureTimeout, stored.FailureKind)
	assert.Contains(t, f.pub.Types("j1"), events.TypeJobFailed)
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = s.(string)
		}
		return out
	default:
		return nil
	}
}
