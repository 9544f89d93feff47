// Package lifecycle owns the job state machine: idempotent persisted
// transitions, the record writes tied to each transition, and the events
// emitted strictly after them.
package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/intakehq/intake/pkg/models"
)

// Transition markers. Each is applied at most once per job; a redelivered
// transition with a marker already on the job is a no-op.
const (
	MarkerStart    = "start"
	MarkerClarify  = "clarify"
	MarkerResume   = "resume"
	MarkerComplete = "complete"
	MarkerFail     = "fail"
	MarkerCancel   = "cancel"
)

var (
	// ErrJobNotFound — no job row with the requested id.
	ErrJobNotFound = errors.New("job not found")

	// ErrNotAwaitingClarification — a clarification follow-up arrived for a
	// job that is not waiting for one.
	ErrNotAwaitingClarification = errors.New("job is not awaiting clarification")

	// ErrClarificationConsumed — a job accepts exactly one follow-up; this
	// was the second.
	ErrClarificationConsumed = errors.New("clarification already consumed")
)

// Job is the queued unit of work plus its lifecycle state. It mirrors the
// jobs table row.
type Job struct {
	ID       string
	Envelope models.JobEnvelope
	Status   models.JobStatus

	AppliedTransitions []string
	Result             *models.JobResult

	Clarification         map[string]any
	ClarificationConsumed bool

	FailureKind    string
	FailureMessage string

	RecordID string
	PodID    string

	DeadlineAt        time.Time
	CreatedAt         time.Time
	StartedAt         time.Time
	CompletedAt       time.Time
	LastInteractionAt time.Time
}

// Applied reports whether the transition marker was already applied.
func (j *Job) Applied(marker string) bool {
	for _, m := range j.AppliedTransitions {
		if m == marker {
			return true
		}
	}
	return false
}

// JobStore persists jobs. ApplyTransition is the only mutation path the
// lifecycle manager uses; implementations must make the marker check and the
// mutation atomic so a replayed delivery cannot double-apply.
type JobStore interface {
	// Create inserts a new job in status queued.
	Create(ctx context.Context, job *Job) error

	// Get returns the job, or ErrJobNotFound.
	Get(ctx context.Context, jobID string) (*Job, error)

	// ApplyTransition atomically checks the marker, runs mutate on the
	// current row, appends the marker, and persists. Returns the job after
	// the call and whether the transition was applied (false means the
	// marker was already present; mutate did not run). An error from mutate
	// aborts without persisting.
	ApplyTransition(ctx context.Context, jobID, marker string, mutate func(*Job) error) (*Job, bool, error)

	// ListStuckRunning returns up to limit running jobs whose last sign of
	// life predates cutoff. Consumed by the timeout supervisor.
	ListStuckRunning(ctx context.Context, cutoff time.Time, limit int) ([]*Job, error)
}
