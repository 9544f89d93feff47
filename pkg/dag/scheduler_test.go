package dag

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/agent"
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/playbook"
)

type runnerFunc func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult

func (f runnerFunc) Invoke(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
	return f(ctx, def, in)
}

func testPlaybook(nodes []string, edges []configstore.Edge, strict ...string) *playbook.Resolved {
	strictSet := map[string]bool{}
	for _, s := range strict {
		strictSet[s] = true
	}
	agents := make(map[string]*configstore.AgentDefinition, len(nodes))
	for _, n := range nodes {
		agents[n] = &configstore.AgentDefinition{
			AgentID: n,
			Tools:   []string{"llm"},
			Strict:  strictSet[n],
		}
	}
	return &playbook.Resolved{
		TenantID: "acme",
		DomainID: "civic_complaints",
		JobType:  models.JobTypeIngest,
		Nodes:    nodes,
		Edges:    edges,
		Agents:   agents,
	}
}

func completedResult(id string, conf float64) *models.AgentResult {
	now := time.Now().UTC()
	return &models.AgentResult{
		AgentID:    id,
		Status:     models.AgentStatusCompleted,
		Output:     map[string]any{"label": id},
		Confidence: models.Float64Ptr(conf),
		StartedAt:  now,
		EndedAt:    now,
		Attempts:   1,
	}
}

func timedRunner() runnerFunc {
	return func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		started := time.Now().UTC()
		time.Sleep(2 * time.Millisecond)
		res := completedResult(def.AgentID, 0.9)
		res.StartedAt = started
		res.EndedAt = time.Now().UTC()
		return res
	}
}

func TestRun_ResultPerNode(t *testing.T) {
	pb := testPlaybook([]string{"geo", "temporal", "entity"}, nil)
	s := NewScheduler(timedRunner(), 4, slog.Default())

	results, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.NoError(t, err)
	require.Len(t, results, 3)

	ids := map[string]bool{}
	for _, r := range results {
		ids[r.AgentID] = true
		assert.Equal(t, models.AgentStatusCompleted, r.Status)
	}
	assert.Len(t, ids, 3)
}

func TestRun_DependencyOrdering(t *testing.T) {
	pb := testPlaybook(
		[]string{"severity", "priority"},
		[]configstore.Edge{{From: "severity", To: "priority"}},
	)
	s := NewScheduler(timedRunner(), 4, slog.Default())

	results, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.NoError(t, err)

	byID := indexResults(results)
	assert.False(t, byID["priority"].StartedAt.Before(byID["severity"].EndedAt),
		"child must not start before its parent ended")
}

func TestRun_ParentOutputsPropagate(t *testing.T) {
	pb := testPlaybook(
		[]string{"a", "b", "c"},
		[]configstore.Edge{{From: "a", To: "c"}, {From: "b", To: "c"}},
	)

	var mu sync.Mutex
	seen := map[string]map[string]map[string]any{}
	runner := runnerFunc(func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		mu.Lock()
		seen[def.AgentID] = in.ParentOutputs
		mu.Unlock()
		return completedResult(def.AgentID, 0.9)
	})

	s := NewScheduler(runner, 4, slog.Default())
	_, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.NoError(t, err)

	assert.Nil(t, seen["a"])
	assert.Nil(t, seen["b"])
	require.Len(t, seen["c"], 2)
	assert.Equal(t, map[string]any{"label": "a"}, seen["c"]["a"])
	assert.Equal(t, map[string]any{"label": "b"}, seen["c"]["b"])
}

func TestRun_ConcurrencyBound(t *testing.T) {
	pb := testPlaybook([]string{"a", "b", "c", "d", "e", "f"}, nil)

	var inflight, peak atomic.Int32
	runner := runnerFunc(func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		cur := inflight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inflight.Add(-1)
		return completedResult(def.AgentID, 0.9)
	})

	s := NewScheduler(runner, 2, slog.Default())
	results, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_SoftFailureChildStillRuns(t *testing.T) {
	pb := testPlaybook(
		[]string{"geo", "priority"},
		[]configstore.Edge{{From: "geo", To: "priority"}},
	)

	var mu sync.Mutex
	var priorityParents map[string]map[string]any
	runner := runnerFunc(func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		if def.AgentID == "geo" {
			return &models.AgentResult{
				AgentID: "geo",
				Status:  models.AgentStatusFailed,
				Error:   "tool unavailable",
			}
		}
		mu.Lock()
		priorityParents = in.ParentOutputs
		mu.Unlock()
		return completedResult(def.AgentID, 0.9)
	})

	s := NewScheduler(runner, 4, slog.Default())
	results, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.NoError(t, err, "soft failure must not abort the job")

	byID := indexResults(results)
	assert.Equal(t, models.AgentStatusFailed, byID["geo"].Status)
	assert.Equal(t, models.AgentStatusCompleted, byID["priority"].Status)

	// The failed parent appears as an explicit null entry.
	require.Contains(t, priorityParents, "geo")
	assert.Nil(t, priorityParents["geo"])
}

func TestRun_StrictFailureAborts(t *testing.T) {
	pb := testPlaybook(
		[]string{"gate", "downstream"},
		[]configstore.Edge{{From: "gate", To: "downstream"}},
		"gate",
	)

	runner := runnerFunc(func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		if def.AgentID == "gate" {
			return &models.AgentResult{AgentID: "gate", Status: models.AgentStatusFailed, Error: "boom"}
		}
		return completedResult(def.AgentID, 0.9)
	})

	s := NewScheduler(runner, 4, slog.Default())
	results, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.ErrorIs(t, err, ErrAgentFailed)
	require.Len(t, results, 2)

	byID := indexResults(results)
	assert.Equal(t, models.AgentStatusFailed, byID["gate"].Status)
	assert.Equal(t, models.AgentStatusCancelled, byID["downstream"].Status)
}

func TestRun_CancellationStopsScheduling(t *testing.T) {
	pb := testPlaybook(
		[]string{"first", "second"},
		[]configstore.Edge{{From: "first", To: "second"}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	runner := runnerFunc(func(c context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		cancel()
		return completedResult(def.AgentID, 0.9)
	})

	obs := &recordingObserver{}
	s := NewScheduler(runner, 4, slog.Default())
	results, err := s.Run(ctx, &Request{TenantID: "acme", JobID: "j1", Playbook: pb, Observer: obs})
	require.NoError(t, err)

	byID := indexResults(results)
	// The in-flight agent finished; its child was never scheduled.
	assert.Equal(t, models.AgentStatusCompleted, byID["first"].Status)
	assert.Equal(t, models.AgentStatusCancelled, byID["second"].Status)

	// The unscheduled child gets neither callback.
	assert.Equal(t, []string{"first"}, obs.started)
	require.Len(t, obs.finished, 1)
	assert.Equal(t, "first", obs.finished[0].AgentID)
}

func TestRun_ObserverCallbacks(t *testing.T) {
	pb := testPlaybook([]string{"geo", "temporal"}, nil)
	obs := &recordingObserver{}

	s := NewScheduler(timedRunner(), 4, slog.Default())
	_, err := s.Run(context.Background(), &Request{
		TenantID: "acme", JobID: "j1", Playbook: pb, Observer: obs,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"geo", "temporal"}, obs.started)
	assert.Len(t, obs.finished, 2)
}

func TestRun_DiamondGraph(t *testing.T) {
	pb := testPlaybook(
		[]string{"root", "left", "right", "sink"},
		[]configstore.Edge{
			{From: "root", To: "left"},
			{From: "root", To: "right"},
			{From: "left", To: "sink"},
			{From: "right", To: "sink"},
		},
	)

	var mu sync.Mutex
	var sinkParents map[string]map[string]any
	runner := runnerFunc(func(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult {
		if def.AgentID == "sink" {
			mu.Lock()
			sinkParents = in.ParentOutputs
			mu.Unlock()
		}
		started := time.Now().UTC()
		time.Sleep(time.Millisecond)
		res := completedResult(def.AgentID, 0.9)
		res.StartedAt = started
		res.EndedAt = time.Now().UTC()
		return res
	})

	s := NewScheduler(runner, 4, slog.Default())
	results, err := s.Run(context.Background(), &Request{TenantID: "acme", JobID: "j1", Playbook: pb})
	require.NoError(t, err)
	require.Len(t, results, 4)

	byID := indexResults(results)
	assert.False(t, byID["sink"].StartedAt.Before(byID["left"].EndedAt))
	assert.False(t, byID["sink"].StartedAt.Before(byID["right"].EndedAt))
	assert.ElementsMatch(t, []string{"left", "right"}, keysOf(sinkParents))
}

type recordingObserver struct {
	mu       sync.Mutex
	started  []string
	finished []*models.AgentResult
}

func (o *recordingObserver) AgentStarted(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = append(o.started, id)
}

func (o *recordingObserver) AgentFinished(res *models.AgentResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished = append(o.finished, res)
}

func indexResults(results []models.AgentResult) map[string]models.AgentResult {
	byID := make(map[string]models.AgentResult, len(results))
	for _, r := range results {
		byID[r.AgentID] = r
	}
	return byID
}

func keysOf(m map[string]map[string]any) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
