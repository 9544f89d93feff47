package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/intakehq/intake/pkg/events"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/recordstore"
	"github.com/intakehq/intake/pkg/retry"
)

// FailureKind values persisted on failed jobs. Terse and user-safe; the
// detailed cause stays in the logs.
const (
	FailureBadEnvelope      = "bad_envelope"
	FailureDomainNotFound   = "domain_not_found"
	FailurePlaybookDisabled = "playbook_disabled"
	FailureAgentMissing     = "agent_missing"
	FailureAgentFailed      = "agent_failed"
	FailureInvalidPlaybook  = "invalid_playbook"
	FailureRecordNotFound   = "record_not_found"
	FailureStoreUnavailable = "store_unavailable"
	FailureTimeout          = "timeout"
)

// Record status values written by the manager.
const (
	RecordStatusProcessing            = "processing"
	RecordStatusComplete              = "complete"
	RecordStatusAwaitingClarification = "awaiting_clarification"
)

var errAlreadyTerminal = errors.New("job already terminal")

// Manager drives jobs through the state machine. Every method follows the
// same shape: write the record store if the transition calls for it, persist
// the transition, then emit the event. Emission is best-effort; a failed emit
// is logged and swallowed.
type Manager struct {
	store     JobStore
	records   recordstore.Store
	publisher events.Publisher
	policy    retry.Policy
	logger    *slog.Logger
}

// NewManager wires the manager. policy governs record-store write retries.
func NewManager(store JobStore, records recordstore.Store, publisher events.Publisher, policy retry.Policy, logger *slog.Logger) *Manager {
	return &Manager{
		store:     store,
		records:   records,
		publisher: publisher,
		policy:    policy,
		logger:    logger.With("component", "lifecycle"),
	}
}

// Start moves queued → running. For a fresh ingest job it creates the record
// first (status processing) so the record id rides on the same transition.
// Terminal jobs and already-started jobs are no-ops; the bool reports whether
// the caller should proceed to execute the job.
func (m *Manager) Start(ctx context.Context, jobID string) (*Job, bool, error) {
	job, err := m.store.Get(ctx, jobID)
	if err != nil {
		return nil, false, err
	}
	// Redelivery of a terminal or waiting job is a no-op.
	if job.Status.Terminal() || job.Status == models.JobStatusAwaitingClarification {
		return job, false, nil
	}

	recordID := job.RecordID
	if recordID == "" {
		switch job.Envelope.JobType {
		case models.JobTypeIngest:
			recordID, err = m.createIngestRecord(ctx, job)
			if err != nil {
				return nil, false, err
			}
		case models.JobTypeManagement:
			recordID = job.Envelope.Input.RecordID
		}
	}

	// A resumed job runs a second start cycle under its own marker.
	marker := MarkerStart
	if job.ClarificationConsumed {
		marker = MarkerStart + ":2"
	}

	job, applied, err := m.store.ApplyTransition(ctx, jobID, marker, func(j *Job) error {
		j.Status = models.JobStatusRunning
		j.StartedAt = time.Now().UTC()
		j.LastInteractionAt = j.StartedAt
		if j.RecordID == "" {
			j.RecordID = recordID
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !applied {
		return job, false, nil
	}

	event := &events.StatusEvent{
		JobID:     job.ID,
		EventType: events.TypeJobStarted,
		Status:    string(models.JobStatusRunning),
	}
	if job.ClarificationConsumed {
		event.Metadata = map[string]any{"resumed": true}
	}
	m.emit(ctx, job, event)
	return job, true, nil
}

// AcceptClarification consumes the single allowed follow-up for a job in
// awaiting_clarification: answers fold into the envelope and the job goes
// back to queued for the worker pool to pick up. A second follow-up is
// rejected with ErrClarificationConsumed.
func (m *Manager) AcceptClarification(ctx context.Context, jobID string, answers map[string]any) (*Job, error) {
	job, applied, err := m.store.ApplyTransition(ctx, jobID, MarkerResume, func(j *Job) error {
		if j.ClarificationConsumed {
			return ErrClarificationConsumed
		}
		if j.Status != models.JobStatusAwaitingClarification {
			return ErrNotAwaitingClarification
		}
		j.ClarificationConsumed = true
		j.Status = models.JobStatusQueued
		j.Envelope.Input.ClarificationAnswers = answers
		j.PodID = ""
		j.LastInteractionAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrClarificationConsumed
	}
	return job, nil
}

// AgentStarted emits the agent_started event. Agent events are not persisted
// transitions; the per-agent results land on the job at completion.
func (m *Manager) AgentStarted(ctx context.Context, job *Job, agentID string) {
	m.emit(ctx, job, &events.StatusEvent{
		JobID:     job.ID,
		EventType: events.TypeAgentStarted,
		AgentID:   agentID,
		Status:    string(models.JobStatusRunning),
	})
}

// AgentFinished emits agent_completed or agent_failed with attempts and
// duration. The scheduler only calls this for agents it started, so a
// cancelled result here means an in-flight agent was cut short and its
// agent_started event needs a terminal counterpart.
func (m *Manager) AgentFinished(ctx context.Context, job *Job, res *models.AgentResult) {
	eventType := events.TypeAgentCompleted
	if res.Status != models.AgentStatusCompleted {
		eventType = events.TypeAgentFailed
	}
	meta := map[string]any{
		"attempts":    res.Attempts,
		"duration_ms": res.EndedAt.Sub(res.StartedAt).Milliseconds(),
	}
	if res.Confidence != nil {
		meta["confidence"] = *res.Confidence
	}
	m.emit(ctx, job, &events.StatusEvent{
		JobID:     job.ID,
		EventType: eventType,
		AgentID:   res.AgentID,
		Status:    string(res.Status),
		Message:   res.Error,
		Metadata:  meta,
	})
}

// Complete moves running → complete: merges outputs into the record store
// per job type, persists the result, then emits job_completed.
func (m *Manager) Complete(ctx context.Context, job *Job, result *models.JobResult) error {
	if err := m.writeCompletionRecord(ctx, job, result); err != nil {
		return fmt.Errorf("%s: %w", FailureStoreUnavailable, err)
	}

	job, applied, err := m.store.ApplyTransition(ctx, job.ID, MarkerComplete, func(j *Job) error {
		j.Status = models.JobStatusComplete
		j.Result = result
		j.CompletedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	meta := map[string]any{}
	if result.NeedsReview {
		meta["needs_review"] = true
	}
	if result.LowConfidence {
		meta["low_confidence"] = true
	}
	m.emit(ctx, job, &events.StatusEvent{
		JobID:     job.ID,
		EventType: events.TypeJobCompleted,
		Status:    string(models.JobStatusComplete),
		Metadata:  meta,
	})
	return nil
}

// AwaitClarification moves running → awaiting_clarification, persisting the
// clarification bundle and flipping the record to awaiting_clarification. No
// agent output is merged yet; that happens when the resumed job completes.
func (m *Manager) AwaitClarification(ctx context.Context, job *Job, result *models.JobResult, fields []string, questions []string) error {
	if job.Envelope.JobType == models.JobTypeIngest && job.RecordID != "" {
		err := m.writeRecord(ctx, func(ctx context.Context) error {
			return m.records.MergeRecord(ctx, job.Envelope.TenantID, job.RecordID, map[string]any{
				recordstore.FieldStatus: RecordStatusAwaitingClarification,
			})
		})
		if err != nil {
			return fmt.Errorf("%s: %w", FailureStoreUnavailable, err)
		}
	}

	bundle := map[string]any{"fields": fields}
	if len(questions) > 0 {
		bundle["questions"] = questions
	}

	job, applied, err := m.store.ApplyTransition(ctx, job.ID, MarkerClarify, func(j *Job) error {
		j.Status = models.JobStatusAwaitingClarification
		j.Result = result
		j.Clarification = bundle
		return nil
	})
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	m.emit(ctx, job, &events.StatusEvent{
		JobID:     job.ID,
		EventType: events.TypeClarificationRequired,
		Status:    string(models.JobStatusAwaitingClarification),
		Message:   "more detail needed",
		Metadata:  map[string]any{"fields": fields},
	})
	return nil
}

// Fail moves the job to failed with a taxonomy kind and a terse message.
// Partial agent results ride on the persisted result for observability.
// Failing a job that already reached a terminal state is a no-op, so the
// supervisor cannot race a normal completion into a second terminal event.
func (m *Manager) Fail(ctx context.Context, job *Job, kind, message string, partial *models.JobResult) error {
	job, applied, err := m.store.ApplyTransition(ctx, job.ID, MarkerFail, func(j *Job) error {
		if j.Status.Terminal() {
			return errAlreadyTerminal
		}
		j.Status = models.JobStatusFailed
		j.FailureKind = kind
		j.FailureMessage = message
		j.Result = partial
		j.CompletedAt = time.Now().UTC()
		return nil
	})
	if errors.Is(err, errAlreadyTerminal) {
		return nil
	}
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	m.emit(ctx, job, &events.StatusEvent{
		JobID:     job.ID,
		EventType: events.TypeJobFailed,
		Status:    string(models.JobStatusFailed),
		Message:   message,
		Metadata:  map[string]any{"reason": kind},
	})
	return nil
}

// Cancel moves a queued or running job to cancelled. Terminal jobs are a
// no-op, so a cancel racing the normal completion loses cleanly. The caller
// is responsible for cancelling any in-flight execution context.
func (m *Manager) Cancel(ctx context.Context, jobID string) (*Job, error) {
	job, applied, err := m.store.ApplyTransition(ctx, jobID, MarkerCancel, func(j *Job) error {
		if j.Status.Terminal() {
			return errAlreadyTerminal
		}
		j.Status = models.JobStatusCancelled
		j.CompletedAt = time.Now().UTC()
		return nil
	})
	if errors.Is(err, errAlreadyTerminal) {
		return m.store.Get(ctx, jobID)
	}
	if err != nil {
		return nil, err
	}
	if !applied {
		return job, nil
	}

	m.emit(ctx, job, &events.StatusEvent{
		JobID:     job.ID,
		EventType: events.TypeJobCancelled,
		Status:    string(models.JobStatusCancelled),
		Message:   "cancelled on request",
	})
	return job, nil
}

func (m *Manager) createIngestRecord(ctx context.Context, job *Job) (string, error) {
	var recordID string
	err := m.writeRecord(ctx, func(ctx context.Context) error {
		var err error
		recordID, err = m.records.CreateRecord(ctx, job.Envelope.TenantID, map[string]any{
			recordstore.FieldDomainID: job.Envelope.DomainID,
			recordstore.FieldRawInput: job.Envelope.Input.Text,
			recordstore.FieldStatus:   RecordStatusProcessing,
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", FailureStoreUnavailable, err)
	}
	return recordID, nil
}

func (m *Manager) writeCompletionRecord(ctx context.Context, job *Job, result *models.JobResult) error {
	tenantID := job.Envelope.TenantID
	switch job.Envelope.JobType {
	case models.JobTypeIngest:
		if job.RecordID == "" {
			return nil
		}
		return m.writeRecord(ctx, func(ctx context.Context) error {
			return m.records.MergeRecord(ctx, tenantID, job.RecordID, map[string]any{
				recordstore.FieldIngestionData: result.MergedOutput,
				recordstore.FieldStatus:        RecordStatusComplete,
			})
		})

	case models.JobTypeManagement:
		if job.RecordID == "" {
			return nil
		}
		entry := map[string]any{
			"job_id":    job.ID,
			"action":    "management_update",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		}
		if result.Summary != "" {
			entry["summary"] = result.Summary
		}
		return m.writeRecord(ctx, func(ctx context.Context) error {
			return m.records.MergeRecord(ctx, tenantID, job.RecordID, map[string]any{
				recordstore.FieldManagementData: result.MergedOutput,
				recordstore.FieldHistory:        []any{entry},
			})
		})

	default:
		// Query jobs never mutate records.
		return nil
	}
}

// writeRecord retries record-store writes with the configured backoff; every
// failure is treated as transient until attempts run out.
func (m *Manager) writeRecord(ctx context.Context, fn func(context.Context) error) error {
	_, err := retry.Do(ctx, m.policy, func(err error) retry.Class {
		if err == nil {
			return retry.Success
		}
		return retry.Retriable
	}, fn)
	return err
}

func (m *Manager) emit(ctx context.Context, job *Job, event *events.StatusEvent) {
	if err := m.publisher.Publish(ctx, job.Envelope.TenantID, job.Envelope.UserID, event); err != nil {
		m.logger.Warn("Failed to emit status event",
			"job_id", job.ID, "event_type", event.EventType, "error", err)
	}
}
