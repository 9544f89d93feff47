package orchestrator

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/agent"
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/dag"
	"github.com/intakehq/intake/pkg/events"
	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/playbook"
	"github.com/intakehq/intake/pkg/recordstore"
	"github.com/intakehq/intake/pkg/retry"
	"github.com/intakehq/intake/pkg/tool"
)

// routedLLM answers per agent id so concurrent agents get deterministic
// responses regardless of scheduling order.
type routedLLM struct {
	byAgent map[string]tool.ScriptedStep
	delay   func(ctx context.Context) error
}

func (r *routedLLM) Invoke(ctx context.Context, req *tool.Request) (*tool.Response, error) {
	if r.delay != nil {
		if err := r.delay(ctx); err != nil {
			return nil, err
		}
	}
	step, ok := r.byAgent[req.AgentID]
	if !ok {
		return &tool.Response{Text: "{}"}, nil
	}
	if step.Err != nil {
		return nil, step.Err
	}
	return step.Response, nil
}

type harness struct {
	cfg     *configstore.FakeStore
	jobs    *lifecycle.FakeJobStore
	records *recordstore.FakeStore
	pub     *events.CapturingPublisher
	manager *lifecycle.Manager
	orch    *Orchestrator
}

func newHarness(t *testing.T, llm tool.Tool, maxWall time.Duration) *harness {
	t.Helper()
	h := &harness{
		cfg:     configstore.NewFakeStore(),
		jobs:    lifecycle.NewFakeJobStore(),
		records: recordstore.NewFakeStore(),
		pub:     events.NewCapturingPublisher(),
	}

	broker := tool.NewBroker(tool.DefaultBrokerConfig())
	broker.Register(tool.NameLLM, llm)

	policy := retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	invoker := agent.NewInvoker(broker, policy, slog.Default())
	scheduler := dag.NewScheduler(invoker, 4, slog.Default())
	h.manager = lifecycle.NewManager(h.jobs, h.records, h.pub, policy, slog.Default())
	loader := playbook.NewLoader(h.cfg)

	h.orch = New(loader, scheduler, h.manager, h.records, maxWall, slog.Default())
	return h
}

func (h *harness) seedIngestDomain(nodes []string, edges []configstore.Edge, schemas map[string]map[string]string) {
	for _, id := range nodes {
		h.cfg.PutAgent(&configstore.AgentDefinition{
			AgentID:      id,
			TenantID:     configstore.SystemTenant,
			AgentClass:   configstore.AgentClassIngestion,
			SystemPrompt: "You extract structured facts.",
			Tools:        []string{tool.NameLLM},
			OutputSchema: schemas[id],
			Weight:       1,
		})
	}
	h.cfg.PutDomain(&configstore.DomainDefinition{
		DomainID:  "civic_complaints",
		TenantID:  configstore.SystemTenant,
		Ingestion: configstore.Playbook{Nodes: nodes, Edges: edges},
	})
}

func (h *harness) enqueue(t *testing.T, env models.JobEnvelope) {
	t.Helper()
	require.NoError(t, h.jobs.Create(context.Background(), &lifecycle.Job{ID: env.JobID, Envelope: env}))
}

func ingestEnvelope(jobID, text string) models.JobEnvelope {
	return models.JobEnvelope{
		JobID:    jobID,
		TenantID: "acme",
		UserID:   "u-1",
		JobType:  models.JobTypeIngest,
		DomainID: "civic_complaints",
		Input:    models.JobInput{Text: text},
	}
}

func countType(evts []*events.StatusEvent, eventType string) int {
	n := 0
	for _, e := range evts {
		if e.EventType == eventType {
			n++
		}
	}
	return n
}

func TestExecute_IngestSuccess(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"geo":      tool.RespondText(`{"location": "Main Street near the library", "confidence": 0.93}`),
		"temporal": tool.RespondText(`{"duration": "2 weeks", "confidence": 0.9}`),
		"entity":   tool.RespondText(`{"category": "pothole", "confidence": 0.95}`),
	}}
	h := newHarness(t, llm, 0)
	h.seedIngestDomain([]string{"geo", "temporal", "entity"}, nil, map[string]map[string]string{
		"geo":      {"location": "string", "confidence": "number"},
		"temporal": {"duration": "string", "confidence": "number"},
		"entity":   {"category": "string", "confidence": "number"},
	})
	h.enqueue(t, ingestEnvelope("j1", "Pothole on Main Street near the library; noticed 2 weeks ago; several cars damaged."))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, job.Status)
	require.NotNil(t, job.Result)
	require.Len(t, job.Result.PerAgent, 3)
	for _, r := range job.Result.PerAgent {
		assert.Equal(t, models.AgentStatusCompleted, r.Status)
		assert.GreaterOrEqual(t, r.ConfidenceOrZero(), 0.8)
	}

	rec, err := h.records.GetRecord(context.Background(), "acme", job.RecordID)
	require.NoError(t, err)
	ing := rec[recordstore.FieldIngestionData].(map[string]any)
	assert.Equal(t, "Main Street near the library", ing["geo"].(map[string]any)["location"])
	assert.Equal(t, "2 weeks", ing["temporal"].(map[string]any)["duration"])
	assert.Equal(t, "pothole", ing["entity"].(map[string]any)["category"])

	evts := h.pub.ForJob("j1")
	assert.Equal(t, 3, countType(evts, events.TypeAgentCompleted))
	assert.Equal(t, 1, countType(evts, events.TypeJobCompleted))
	assert.Equal(t, events.TypeJobStarted, evts[0].EventType)
	assert.Equal(t, events.TypeJobCompleted, evts[len(evts)-1].EventType)
}

func TestExecute_IngestClarification(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"geo":      tool.RespondText(`{"location": "downtown somewhere", "confidence": 0.3}`),
		"temporal": tool.RespondText(`{"duration": "", "confidence": 0.4}`),
		"entity":   tool.RespondText(`{"category": "road", "confidence": 0.5}`),
	}}
	h := newHarness(t, llm, 0)
	h.seedIngestDomain([]string{"geo", "temporal", "entity"}, nil, map[string]map[string]string{
		"geo":      {"location": "string", "confidence": "number"},
		"temporal": {"duration": "string", "confidence": "number"},
		"entity":   {"category": "string", "confidence": "number"},
	})
	h.enqueue(t, ingestEnvelope("j1", "There's a bad road somewhere downtown."))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAwaitingClarification, job.Status)
	require.NotNil(t, job.Result)
	assert.True(t, job.Result.ClarificationNeeded)
	assert.Subset(t, job.Result.ClarificationFields, []string{"location", "duration"})

	// Record exists but holds no merged ingestion data yet.
	rec, err := h.records.GetRecord(context.Background(), "acme", job.RecordID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordStatusAwaitingClarification, rec[recordstore.FieldStatus])
	assert.NotContains(t, rec, recordstore.FieldIngestionData)

	assert.Equal(t, 1, countType(h.pub.ForJob("j1"), events.TypeClarificationRequired))
}

func TestExecute_ResumedJobStillUnclearCompletesLowConfidence(t *testing.T) {
	// Answers stay vague even after the follow-up, so the resumed run decides
	// clarification again. With the single follow-up spent the job must reach
	// a terminal state instead of sitting in running forever.
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"geo":      tool.RespondText(`{"location": "downtown somewhere", "confidence": 0.2}`),
		"temporal": tool.RespondText(`{"duration": "", "confidence": 0.3}`),
	}}
	h := newHarness(t, llm, 0)
	h.seedIngestDomain([]string{"geo", "temporal"}, nil, map[string]map[string]string{
		"geo":      {"location": "string", "confidence": "number"},
		"temporal": {"duration": "string", "confidence": "number"},
	})
	h.enqueue(t, ingestEnvelope("j1", "Something is wrong downtown."))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))
	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	require.Equal(t, models.JobStatusAwaitingClarification, job.Status)

	_, err = h.manager.AcceptClarification(context.Background(), "j1",
		map[string]any{"location": "not sure, somewhere downtown"})
	require.NoError(t, err)

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err = h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, job.Status)
	require.NotNil(t, job.Result)
	assert.True(t, job.Result.LowConfidence)

	rec, err := h.records.GetRecord(context.Background(), "acme", job.RecordID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RecordStatusComplete, rec[recordstore.FieldStatus])

	evts := h.pub.ForJob("j1")
	assert.Equal(t, 1, countType(evts, events.TypeClarificationRequired))
	assert.Equal(t, 1, countType(evts, events.TypeJobCompleted))
	last := evts[len(evts)-1]
	assert.Equal(t, events.TypeJobCompleted, last.EventType)
	assert.Equal(t, true, last.Metadata["low_confidence"])
}

func TestExecute_IngestWithDependency(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"severity": tool.RespondText(`{"score": 9, "confidence": 0.95}`),
		"priority": tool.RespondText(`{"score": 9, "confidence": 0.92}`),
	}}
	h := newHarness(t, llm, 0)
	h.seedIngestDomain(
		[]string{"severity", "priority"},
		[]configstore.Edge{{From: "severity", To: "priority"}},
		map[string]map[string]string{
			"severity": {"score": "number", "confidence": "number"},
			"priority": {"score": "number", "confidence": "number"},
		},
	)
	h.enqueue(t, ingestEnvelope("j1", "Massive pothole on Highway 101, 4 ft wide, hospital road, multiple accidents."))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, job.Status)

	byID := map[string]models.AgentResult{}
	for _, r := range job.Result.PerAgent {
		byID[r.AgentID] = r
	}
	assert.False(t, byID["priority"].StartedAt.Before(byID["severity"].EndedAt))
	assert.GreaterOrEqual(t, byID["priority"].Output["score"].(float64), 8.0)
}

func TestExecute_Query(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"what":  tool.RespondText(`{"summary": "Three high-priority potholes reported downtown.", "references": ["r1"], "confidence": 0.92}`),
		"where": tool.RespondText(`{"summary": "Clustered around Main Street.", "references": [], "confidence": 0.9}`),
		"when":  tool.RespondText(`{"summary": "Most reports from the last two weeks.", "references": ["r1"], "confidence": 0.91}`),
	}}
	h := newHarness(t, llm, 0)
	for _, id := range []string{"what", "where", "when"} {
		h.cfg.PutAgent(&configstore.AgentDefinition{
			AgentID:    id,
			TenantID:   configstore.SystemTenant,
			AgentClass: configstore.AgentClassQuery,
			Tools:      []string{tool.NameLLM},
			OutputSchema: map[string]string{
				"summary": "string", "references": "array", "confidence": "number",
			},
			Weight: 1,
		})
	}
	h.cfg.PutDomain(&configstore.DomainDefinition{
		DomainID: "civic_complaints",
		TenantID: configstore.SystemTenant,
		Query:    configstore.Playbook{Nodes: []string{"what", "where", "when"}},
	})

	// A candidate record that must not be mutated by the query.
	recordID, err := h.records.CreateRecord(context.Background(), "acme", map[string]any{
		recordstore.FieldDomainID: "civic_complaints",
		recordstore.FieldStatus:   "open",
	})
	require.NoError(t, err)

	h.enqueue(t, models.JobEnvelope{
		JobID:    "j1",
		TenantID: "acme",
		UserID:   "u-1",
		JobType:  models.JobTypeQuery,
		DomainID: "civic_complaints",
		Input:    models.JobInput{Question: "Show me high-priority potholes in the downtown area."},
	})

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, job.Status)
	assert.NotEmpty(t, job.Result.Summary)
	assert.Equal(t, []string{"r1"}, job.Result.References)
	assert.Equal(t, 3, countType(h.pub.ForJob("j1"), events.TypeAgentCompleted))

	// No record mutation.
	rec, err := h.records.GetRecord(context.Background(), "acme", recordID)
	require.NoError(t, err)
	assert.Equal(t, "open", rec[recordstore.FieldStatus])
	assert.NotContains(t, rec, recordstore.FieldIngestionData)
}

func TestExecute_SoftAgentFailure(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"geo":      tool.Fail(tool.ErrToolUnavailable),
		"temporal": tool.RespondText(`{"duration": "2 weeks", "confidence": 0.9}`),
	}}
	h := newHarness(t, llm, 0)
	h.seedIngestDomain([]string{"geo", "temporal"}, nil, map[string]map[string]string{
		"geo":      {"location": "string", "confidence": "number"},
		"temporal": {"duration": "string", "confidence": "number"},
	})
	h.enqueue(t, ingestEnvelope("j1", "Pothole on Main Street, noticed 2 weeks ago."))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, job.Status)
	assert.True(t, job.Result.LowConfidence)

	byID := map[string]models.AgentResult{}
	for _, r := range job.Result.PerAgent {
		byID[r.AgentID] = r
	}
	geo := byID["geo"]
	assert.Equal(t, models.AgentStatusFailed, geo.Status)
	assert.Equal(t, 0.0, geo.ConfidenceOrZero())
	assert.Equal(t, models.AgentStatusCompleted, byID["temporal"].Status)

	evts := h.pub.ForJob("j1")
	assert.Equal(t, 1, countType(evts, events.TypeAgentFailed))
	assert.Equal(t, 1, countType(evts, events.TypeAgentCompleted))
}

func TestExecute_Timeout(t *testing.T) {
	llm := &routedLLM{
		byAgent: map[string]tool.ScriptedStep{},
		delay: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	h := newHarness(t, llm, 50*time.Millisecond)
	h.seedIngestDomain(
		[]string{"geo", "severity"},
		[]configstore.Edge{{From: "geo", To: "severity"}},
		map[string]map[string]string{
			"geo":      {"location": "string", "confidence": "number"},
			"severity": {"score": "number", "confidence": "number"},
		},
	)
	h.enqueue(t, ingestEnvelope("j1", "Pothole on Main Street"))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, lifecycle.FailureTimeout, job.FailureKind)
	require.NotNil(t, job.Result)
	for _, r := range job.Result.PerAgent {
		assert.Equal(t, models.AgentStatusCancelled, r.Status)
	}

	evts := h.pub.ForJob("j1")
	require.NotEmpty(t, evts)
	last := evts[len(evts)-1]
	assert.Equal(t, events.TypeJobFailed, last.EventType)
	assert.Equal(t, lifecycle.FailureTimeout, last.Metadata["reason"])

	// geo started before the deadline hit, so its agent_started event gets a
	// terminal counterpart; severity was never scheduled and emits nothing.
	assert.Equal(t, 1, countType(evts, events.TypeAgentStarted))
	assert.Equal(t, 1, countType(evts, events.TypeAgentFailed))
	for _, e := range evts {
		if e.EventType == events.TypeAgentFailed {
			assert.Equal(t, "geo", e.AgentID)
			assert.Equal(t, string(models.AgentStatusCancelled), e.Status)
		}
	}
}

func TestExecute_EmptyPlaybookFails(t *testing.T) {
	h := newHarness(t, &routedLLM{byAgent: map[string]tool.ScriptedStep{}}, 0)
	h.cfg.PutDomain(&configstore.DomainDefinition{
		DomainID: "civic_complaints",
		TenantID: configstore.SystemTenant,
		// Ingestion playbook left empty: disabled.
	})
	h.enqueue(t, ingestEnvelope("j1", "Pothole on Main Street"))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, lifecycle.FailurePlaybookDisabled, job.FailureKind)

	// Only job_started and job_failed; no agent events.
	types := h.pub.Types("j1")
	assert.Equal(t, []string{events.TypeJobStarted, events.TypeJobFailed}, types)
}

func TestExecute_TerminalRedeliveryDoesNotMutate(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"geo": tool.RespondText(`{"location": "Main Street", "confidence": 0.95}`),
	}}
	h := newHarness(t, llm, 0)
	h.seedIngestDomain([]string{"geo"}, nil, map[string]map[string]string{
		"geo": {"location": "string", "confidence": "number"},
	})
	h.enqueue(t, ingestEnvelope("j1", "Pothole on Main Street"))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))
	firstEvents := len(h.pub.ForJob("j1"))
	recordCount := h.records.Len()

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	assert.Equal(t, firstEvents, len(h.pub.ForJob("j1")), "redelivery must emit nothing")
	assert.Equal(t, recordCount, h.records.Len(), "redelivery must not create records")
}

func TestExecute_TenantDomainOverridesSystem(t *testing.T) {
	llm := &routedLLM{byAgent: map[string]tool.ScriptedStep{
		"custom": tool.RespondText(`{"label": "pothole", "confidence": 0.95}`),
	}}
	h := newHarness(t, llm, 0)

	// System domain would run "geo"; the tenant's own domain runs "custom".
	h.seedIngestDomain([]string{"geo"}, nil, map[string]map[string]string{
		"geo": {"location": "string", "confidence": "number"},
	})
	h.cfg.PutAgent(&configstore.AgentDefinition{
		AgentID:      "custom",
		TenantID:     "acme",
		AgentClass:   configstore.AgentClassIngestion,
		Tools:        []string{tool.NameLLM},
		OutputSchema: map[string]string{"label": "string", "confidence": "number"},
		Weight:       1,
	})
	h.cfg.PutDomain(&configstore.DomainDefinition{
		DomainID:  "civic_complaints",
		TenantID:  "acme",
		Ingestion: configstore.Playbook{Nodes: []string{"custom"}},
	})
	h.enqueue(t, ingestEnvelope("j1", "Pothole on Main Street"))

	require.NoError(t, h.orch.Execute(context.Background(), "j1"))

	job, err := h.jobs.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusComplete, job.Status)
	require.Len(t, job.Result.PerAgent, 1)
	assert.Equal(t, "custom", job.Result.PerAgent[0].AgentID)
}
