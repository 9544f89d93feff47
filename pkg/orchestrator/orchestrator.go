// Package orchestrator is the entry point for one job: it owns the deadline,
// resolves the playbook, walks the graph, aggregates confidences, and drives
// the lifecycle manager to the terminal transition. Every failure is folded
// into the error taxonomy before it reaches the job record.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/intakehq/intake/pkg/aggregate"
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/dag"
	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/playbook"
	"github.com/intakehq/intake/pkg/recordstore"
)

// QueryCandidateLimit bounds how many records a query job loads as context.
const QueryCandidateLimit = 20

// Orchestrator executes claimed jobs. One instance serves all workers.
type Orchestrator struct {
	loader     *playbook.Loader
	scheduler  *dag.Scheduler
	manager    *lifecycle.Manager
	records    recordstore.Store
	maxWall    time.Duration
	thresholds configstore.Thresholds
	logger     *slog.Logger
}

// New wires the orchestrator. maxWall is the default job deadline applied
// when the envelope carries none (<=0 selects lifecycle.DefaultMaxWallClock).
func New(loader *playbook.Loader, scheduler *dag.Scheduler, manager *lifecycle.Manager, records recordstore.Store, maxWall time.Duration, logger *slog.Logger) *Orchestrator {
	if maxWall <= 0 {
		maxWall = lifecycle.DefaultMaxWallClock
	}
	return &Orchestrator{
		loader:    loader,
		scheduler: scheduler,
		manager:   manager,
		records:   records,
		maxWall:   maxWall,
		logger:    logger.With("component", "orchestrator"),
	}
}

// WithThresholds sets the system-default confidence thresholds applied when
// a domain defines none. Zero values keep the compiled-in defaults.
func (o *Orchestrator) WithThresholds(th configstore.Thresholds) *Orchestrator {
	o.thresholds = th
	return o
}

// Execute runs one job end to end. The returned error is for the worker's
// logs only; job-level failures are already persisted and published by the
// time Execute returns.
func (o *Orchestrator) Execute(ctx context.Context, jobID string) error {
	job, started, err := o.manager.Start(ctx, jobID)
	if err != nil {
		return fmt.Errorf("starting job %s: %w", jobID, err)
	}
	if !started {
		o.logger.Info("Skipping redelivered job", "job_id", jobID, "status", job.Status)
		return nil
	}

	env := &job.Envelope
	deadline := env.Deadline()
	if deadline.IsZero() {
		deadline = time.Now().Add(o.maxWall)
	}
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	pb, err := o.loader.Resolve(ctx, env.TenantID, env.DomainID, env.JobType)
	if err != nil {
		kind, message := resolveFailure(err)
		o.logger.Warn("Playbook resolution failed",
			"job_id", jobID, "tenant_id", env.TenantID, "domain_id", env.DomainID, "error", err)
		return o.manager.Fail(ctx, job, kind, message, nil)
	}

	records, err := o.loadContext(ctx, job)
	if err != nil {
		kind := lifecycle.FailureStoreUnavailable
		message := "could not reach the record store"
		if errors.Is(err, recordstore.ErrRecordNotFound) {
			kind = lifecycle.FailureRecordNotFound
			message = "record not found"
		}
		o.logger.Warn("Record context load failed", "job_id", jobID, "error", err)
		return o.manager.Fail(ctx, job, kind, message, nil)
	}

	results, dagErr := o.scheduler.Run(ctx, &dag.Request{
		TenantID: env.TenantID,
		JobID:    job.ID,
		Playbook: pb,
		Job:      env.Input,
		Records:  records,
		Observer: &lifecycleObserver{ctx: ctx, manager: o.manager, job: job},
	})

	partial := buildResult(job, pb, results)

	if ctx.Err() != nil {
		// The job context is spent; the terminal transition persists under a
		// detached one.
		persistCtx, persistCancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
		defer persistCancel()
		partial.Status = models.JobStatusFailed
		return o.manager.Fail(persistCtx, job, lifecycle.FailureTimeout, "job exceeded its time limit", partial)
	}
	if dagErr != nil {
		partial.Status = models.JobStatusFailed
		return o.manager.Fail(ctx, job, lifecycle.FailureAgentFailed, "a required step failed", partial)
	}

	th := pb.Thresholds
	if th.Complete == 0 {
		th.Complete = o.thresholds.Complete
	}
	if th.Clarify == 0 {
		th.Clarify = o.thresholds.Clarify
	}
	decision := aggregate.Decide(pb, results, th)
	result := partial
	result.Status = decision.Status
	result.NeedsReview = decision.NeedsReview
	result.LowConfidence = decision.LowConfidence

	if decision.Status == models.JobStatusAwaitingClarification {
		if job.ClarificationConsumed {
			// The single follow-up is spent; the job finishes with what it
			// has rather than waiting for an answer that can never arrive.
			o.logger.Info("Clarification already consumed, completing with low confidence", "job_id", jobID)
			result.Status = models.JobStatusComplete
			result.LowConfidence = true
		} else {
			result.ClarificationNeeded = true
			result.ClarificationFields = decision.ClarificationFields
			if err := o.manager.AwaitClarification(ctx, job, result, decision.ClarificationFields, clarificationQuestions(decision.ClarificationFields)); err != nil {
				o.logger.Error("Clarification transition failed", "job_id", jobID, "error", err)
				return o.manager.Fail(ctx, job, lifecycle.FailureStoreUnavailable, "could not persist the result", result)
			}
			return nil
		}
	}

	if err := o.manager.Complete(ctx, job, result); err != nil {
		o.logger.Error("Completion failed", "job_id", jobID, "error", err)
		return o.manager.Fail(ctx, job, lifecycle.FailureStoreUnavailable, "could not persist the result", result)
	}
	return nil
}

// loadContext materialises the record context the playbook runs over:
// candidate records for query, the target record for management, nothing
// for ingest.
func (o *Orchestrator) loadContext(ctx context.Context, job *lifecycle.Job) ([]map[string]any, error) {
	env := &job.Envelope
	switch env.JobType {
	case models.JobTypeQuery:
		return o.records.QueryRecords(ctx, env.TenantID, env.DomainID, env.Input.Filters, QueryCandidateLimit)
	case models.JobTypeManagement:
		rec, err := o.records.GetRecord(ctx, env.TenantID, job.RecordID)
		if err != nil {
			return nil, err
		}
		return []map[string]any{rec}, nil
	default:
		return nil, nil
	}
}

// buildResult assembles the persisted job result from per-agent outcomes.
// MergedOutput is keyed by agent id; Summary and References are collected
// from the agents' well-known output keys, in node order for determinism.
func buildResult(job *lifecycle.Job, pb *playbook.Resolved, results []models.AgentResult) *models.JobResult {
	result := &models.JobResult{
		JobID:    job.ID,
		PerAgent: results,
	}

	byID := make(map[string]*models.AgentResult, len(results))
	for i := range results {
		byID[results[i].AgentID] = &results[i]
	}

	merged := map[string]any{}
	var summaries []string
	refs := map[string]struct{}{}
	for _, node := range pb.Nodes {
		res := byID[node]
		if res == nil || res.Status != models.AgentStatusCompleted {
			continue
		}
		merged[node] = res.Output
		if s, ok := res.Output["summary"].(string); ok && s != "" {
			summaries = append(summaries, s)
		} else if s, ok := res.Output["answer"].(string); ok && s != "" {
			summaries = append(summaries, s)
		}
		if list, ok := res.Output["references"].([]any); ok {
			for _, r := range list {
				if id, ok := r.(string); ok {
					refs[id] = struct{}{}
				}
			}
		}
	}
	if len(merged) > 0 {
		result.MergedOutput = merged
	}

	if job.Envelope.JobType == models.JobTypeQuery {
		result.Summary = strings.Join(summaries, " ")
		result.References = sortedKeys(refs)
		if result.References == nil {
			result.References = []string{}
		}
		// A query result never mutates records; MergedOutput stays for
		// observability only.
	}
	return result
}

// resolveFailure maps playbook resolution errors onto the failure taxonomy
// with user-safe messages.
func resolveFailure(err error) (kind, message string) {
	switch {
	case errors.Is(err, playbook.ErrDomainNotFound):
		return lifecycle.FailureDomainNotFound, "unknown domain"
	case errors.Is(err, playbook.ErrPlaybookDisabled):
		return lifecycle.FailurePlaybookDisabled, "this operation is not enabled for the domain"
	case errors.Is(err, playbook.ErrAgentMissing):
		return lifecycle.FailureAgentMissing, "the domain configuration is incomplete"
	case errors.Is(err, playbook.ErrInvalidGraph):
		return lifecycle.FailureInvalidPlaybook, "the domain configuration is invalid"
	default:
		return lifecycle.FailureStoreUnavailable, "could not load the domain configuration"
	}
}

func clarificationQuestions(fields []string) []string {
	questions := make([]string, 0, len(fields))
	for _, f := range fields {
		questions = append(questions, fmt.Sprintf("Could you provide more detail about the %s?", strings.ReplaceAll(f, "_", " ")))
	}
	return questions
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// lifecycleObserver forwards scheduler callbacks to the lifecycle manager's
// event emission.
type lifecycleObserver struct {
	ctx     context.Context
	manager *lifecycle.Manager
	job     *lifecycle.Job
}

func (o *lifecycleObserver) AgentStarted(agentID string) {
	o.manager.AgentStarted(o.ctx, o.job, agentID)
}

func (o *lifecycleObserver) AgentFinished(res *models.AgentResult) {
	o.manager.AgentFinished(o.ctx, o.job, res)
}
