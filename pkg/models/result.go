package models

import "time"

// JobStatus is the job lifecycle state.
type JobStatus string

const (
	JobStatusQueued                JobStatus = "queued"
	JobStatusRunning               JobStatus = "running"
	JobStatusAwaitingClarification JobStatus = "awaiting_clarification"
	JobStatusComplete              JobStatus = "complete"
	JobStatusFailed                JobStatus = "failed"
	JobStatusCancelled             JobStatus = "cancelled"
)

// Terminal reports whether s is a terminal state.
func (s JobStatus) Terminal() bool {
	return s == JobStatusComplete || s == JobStatusFailed || s == JobStatusCancelled
}

// AgentStatus is the per-agent execution outcome.
type AgentStatus string

const (
	AgentStatusCompleted   AgentStatus = "completed"
	AgentStatusFailed      AgentStatus = "failed"
	AgentStatusParseFailed AgentStatus = "parse_failed"
	AgentStatusCancelled   AgentStatus = "cancelled"
)

// AgentResult is the outcome of a single agent execution within a job.
// Confidence is nil when the agent never produced one (failed/cancelled).
type AgentResult struct {
	AgentID    string         `json:"agent_id"`
	Status     AgentStatus    `json:"status"`
	Output     map[string]any `json:"output"`
	Confidence *float64       `json:"confidence"`
	StartedAt  time.Time      `json:"started_at"`
	EndedAt    time.Time      `json:"ended_at"`
	Attempts   int            `json:"attempts"`
	Error      string         `json:"error,omitempty"`
}

// ConfidenceOrZero returns the confidence for aggregation purposes:
// the recorded value for completed agents, 0 for everything else.
func (r *AgentResult) ConfidenceOrZero() float64 {
	if r.Status == AgentStatusCompleted && r.Confidence != nil {
		return *r.Confidence
	}
	return 0
}

// JobResult is the persisted outcome of a job.
type JobResult struct {
	JobID               string         `json:"job_id"`
	Status              JobStatus      `json:"status"`
	PerAgent            []AgentResult  `json:"per_agent"`
	MergedOutput        map[string]any `json:"merged_output,omitempty"`
	Summary             string         `json:"summary,omitempty"`
	NeedsReview         bool           `json:"needs_review,omitempty"`
	LowConfidence       bool           `json:"low_confidence,omitempty"`
	ClarificationNeeded bool           `json:"clarification_needed,omitempty"`
	ClarificationFields []string       `json:"clarification_fields,omitempty"`
	References          []string       `json:"references,omitempty"`
	FailureKind         string         `json:"failure_kind,omitempty"`
	FailureMessage      string         `json:"failure_message,omitempty"`
}

// Float64Ptr is a small helper for building confidence pointers.
func Float64Ptr(v float64) *float64 { return &v }
