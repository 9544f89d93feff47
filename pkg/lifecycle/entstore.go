package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/intakehq/intake/ent"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/pkg/models"
)

// EntJobStore implements JobStore on the jobs table. ApplyTransition locks
// the row (SELECT ... FOR UPDATE) so the marker check and the mutation are
// one atomic step even across replicas.
type EntJobStore struct {
	client *ent.Client
}

// NewEntJobStore creates a store over an existing ent client.
func NewEntJobStore(client *ent.Client) *EntJobStore {
	return &EntJobStore{client: client}
}

// Create implements JobStore.
func (s *EntJobStore) Create(ctx context.Context, j *Job) error {
	create := s.client.Job.Create().
		SetID(j.ID).
		SetTenantID(j.Envelope.TenantID).
		SetUserID(j.Envelope.UserID).
		SetJobType(string(j.Envelope.JobType)).
		SetDomainID(j.Envelope.DomainID).
		SetEnvelope(j.Envelope).
		SetStatus(job.Status(models.JobStatusQueued))
	if j.Envelope.SessionID != "" {
		create = create.SetSessionID(j.Envelope.SessionID)
	}
	if j.RecordID != "" {
		create = create.SetRecordID(j.RecordID)
	}
	if !j.DeadlineAt.IsZero() {
		create = create.SetDeadlineAt(j.DeadlineAt)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("creating job %s: %w", j.ID, err)
	}
	return nil
}

// Get implements JobStore.
func (s *EntJobStore) Get(ctx context.Context, jobID string) (*Job, error) {
	row, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
		}
		return nil, fmt.Errorf("fetching job %s: %w", jobID, err)
	}
	return fromRow(row), nil
}

// ApplyTransition implements JobStore.
func (s *EntJobStore) ApplyTransition(ctx context.Context, jobID, marker string, mutate func(*Job) error) (*Job, bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("beginning transition tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Job.Query().
		Where(job.IDEQ(jobID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
		}
		return nil, false, fmt.Errorf("locking job %s: %w", jobID, err)
	}

	j := fromRow(row)
	if j.Applied(marker) {
		return j, false, nil
	}
	if err := mutate(j); err != nil {
		return nil, false, err
	}
	j.AppliedTransitions = append(j.AppliedTransitions, marker)

	update := tx.Job.UpdateOneID(jobID).
		SetEnvelope(j.Envelope).
		SetStatus(job.Status(j.Status)).
		SetAppliedTransitions(j.AppliedTransitions).
		SetClarificationConsumed(j.ClarificationConsumed)
	if j.Result != nil {
		update = update.SetResult(j.Result)
	}
	if j.Clarification != nil {
		update = update.SetClarification(j.Clarification)
	}
	if j.FailureKind != "" {
		update = update.SetFailureKind(j.FailureKind).SetFailureMessage(j.FailureMessage)
	}
	if j.RecordID != "" {
		update = update.SetRecordID(j.RecordID)
	}
	if j.PodID != "" {
		update = update.SetPodID(j.PodID)
	} else {
		update = update.ClearPodID()
	}
	if !j.StartedAt.IsZero() {
		update = update.SetStartedAt(j.StartedAt)
	}
	if !j.CompletedAt.IsZero() {
		update = update.SetCompletedAt(j.CompletedAt)
	}
	if !j.LastInteractionAt.IsZero() {
		update = update.SetLastInteractionAt(j.LastInteractionAt)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, false, fmt.Errorf("persisting transition %s on job %s: %w", marker, jobID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("committing transition %s on job %s: %w", marker, jobID, err)
	}
	return j, true, nil
}

// ListStuckRunning implements JobStore.
func (s *EntJobStore) ListStuckRunning(ctx context.Context, cutoff time.Time, limit int) ([]*Job, error) {
	rows, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.Status(models.JobStatusRunning)),
			job.LastInteractionAtLT(cutoff),
		).
		Order(ent.Asc(job.FieldLastInteractionAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stuck jobs: %w", err)
	}
	out := make([]*Job, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

func fromRow(row *ent.Job) *Job {
	j := &Job{
		ID:                    row.ID,
		Envelope:              row.Envelope,
		Status:                models.JobStatus(row.Status),
		AppliedTransitions:    row.AppliedTransitions,
		Result:                row.Result,
		Clarification:         row.Clarification,
		ClarificationConsumed: row.ClarificationConsumed,
		CreatedAt:             row.CreatedAt,
	}
	if row.FailureKind != nil {
		j.FailureKind = *row.FailureKind
	}
	if row.FailureMessage != nil {
		j.FailureMessage = *row.FailureMessage
	}
	if row.RecordID != nil {
		j.RecordID = *row.RecordID
	}
	if row.PodID != nil {
		j.PodID = *row.PodID
	}
	if row.DeadlineAt != nil {
		j.DeadlineAt = *row.DeadlineAt
	}
	if row.StartedAt != nil {
		j.StartedAt = *row.StartedAt
	}
	if row.CompletedAt != nil {
		j.CompletedAt = *row.CompletedAt
	}
	if row.LastInteractionAt != nil {
		j.LastInteractionAt = *row.LastInteractionAt
	}
	return j
}
