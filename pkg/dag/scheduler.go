// Package dag executes a resolved playbook: roots run concurrently up to a
// configured bound, each node starts only after all its parents finished, and
// every node yields exactly one result even under failure or cancellation.
package dag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/intakehq/intake/pkg/agent"
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/playbook"
)

// ErrAgentFailed aborts the job when a strict agent fails.
var ErrAgentFailed = errors.New("agent failed")

// DefaultMaxParallel bounds in-flight agent executions when no override is
// configured.
const DefaultMaxParallel = 4

// AgentRunner executes one agent definition. *agent.Invoker satisfies it;
// tests substitute stubs.
type AgentRunner interface {
	Invoke(ctx context.Context, def *configstore.AgentDefinition, in *agent.Input) *models.AgentResult
}

// Observer receives per-agent execution callbacks. Callbacks come in
// started/finished pairs: a node the scheduler never launched produces
// neither. Implementations must be safe for concurrent use; callbacks for
// one agent arrive in order but callbacks across agents interleave.
type Observer interface {
	AgentStarted(agentID string)
	AgentFinished(result *models.AgentResult)
}

type noopObserver struct{}

func (noopObserver) AgentStarted(string)               {}
func (noopObserver) AgentFinished(*models.AgentResult) {}

// Scheduler walks the dependency graph. One Scheduler serves many jobs
// concurrently; all per-job state lives in Run's frame.
type Scheduler struct {
	runner      AgentRunner
	maxParallel int
	logger      *slog.Logger
}

// NewScheduler creates a scheduler with the given concurrency bound
// (<=0 selects DefaultMaxParallel).
func NewScheduler(runner AgentRunner, maxParallel int, logger *slog.Logger) *Scheduler {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	return &Scheduler{
		runner:      runner,
		maxParallel: maxParallel,
		logger:      logger.With("component", "dag_scheduler"),
	}
}

// Request is one job's execution input.
type Request struct {
	TenantID string
	JobID    string
	Playbook *playbook.Resolved
	Job      models.JobInput
	// Records carries loaded record context for query/management playbooks.
	Records []map[string]any
	// Observer receives agent lifecycle callbacks; nil disables them.
	Observer Observer
}

type completion struct {
	node   string
	result *models.AgentResult
}

// Run executes every node of the playbook and returns one result per node,
// ordered as Playbook.Nodes. The error is non-nil only when a strict agent
// failed (ErrAgentFailed); soft failures and cancellations are reported
// through result statuses. Cancellation is cooperative: in-flight agents run
// to completion, unscheduled nodes come back as cancelled.
func (s *Scheduler) Run(ctx context.Context, req *Request) ([]models.AgentResult, error) {
	obs := req.Observer
	if obs == nil {
		obs = noopObserver{}
	}

	pb := req.Playbook
	indeg := pb.Indegrees()
	children := pb.Children()
	parents := pb.Parents()

	var ready []string
	for _, n := range pb.Nodes {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}

	results := make(map[string]*models.AgentResult, len(pb.Nodes))
	outputs := make(map[string]map[string]any, len(pb.Nodes))
	done := make(chan completion)
	inflight := 0
	var abortErr error

	launch := func(node string) {
		in := &agent.Input{
			TenantID:      req.TenantID,
			JobID:         req.JobID,
			Job:           req.Job,
			Records:       req.Records,
			ParentOutputs: parentOutputs(parents[node], outputs),
		}
		def := pb.Agents[node]
		inflight++
		go func() {
			obs.AgentStarted(node)
			res := s.runner.Invoke(ctx, def, in)
			obs.AgentFinished(res)
			done <- completion{node: node, result: res}
		}()
	}

	for {
		for len(ready) > 0 && inflight < s.maxParallel && abortErr == nil && ctx.Err() == nil {
			node := ready[0]
			ready = ready[1:]
			launch(node)
		}
		if inflight == 0 {
			break
		}

		c := <-done
		inflight--
		results[c.node] = c.result
		if c.result.Status == models.AgentStatusCompleted {
			outputs[c.node] = c.result.Output
		} else {
			// Failed parents appear as explicit nulls in children's input.
			outputs[c.node] = nil
		}

		if c.result.Status == models.AgentStatusFailed && pb.Agents[c.node].Strict && abortErr == nil {
			abortErr = fmt.Errorf("%w: strict agent %s", ErrAgentFailed, c.node)
			s.logger.Warn("Strict agent failed, aborting job",
				"job_id", req.JobID, "agent_id", c.node)
		}

		for _, child := range children[c.node] {
			indeg[child]--
			if indeg[child] == 0 {
				ready = append(ready, child)
			}
		}
	}

	// Every node reports exactly once; unscheduled nodes are cancelled.
	// They never got an AgentStarted callback, so they get no AgentFinished
	// either — observer callbacks always come in started/finished pairs.
	ordered := make([]models.AgentResult, 0, len(pb.Nodes))
	now := time.Now().UTC()
	for _, n := range pb.Nodes {
		if res, ok := results[n]; ok {
			ordered = append(ordered, *res)
			continue
		}
		ordered = append(ordered, models.AgentResult{
			AgentID:   n,
			Status:    models.AgentStatusCancelled,
			StartedAt: now,
			EndedAt:   now,
			Error:     "cancelled",
		})
	}
	return ordered, abortErr
}

// parentOutputs snapshots the finished parents' outputs for a child about to
// run. Reads happen on the scheduling goroutine before launch, so no lock is
// needed.
func parentOutputs(parents []string, outputs map[string]map[string]any) map[string]map[string]any {
	if len(parents) == 0 {
		return nil
	}
	po := make(map[string]map[string]any, len(parents))
	for _, p := range parents {
		po[p] = outputs[p]
	}
	return po
}
