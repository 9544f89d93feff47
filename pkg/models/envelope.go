// Package models defines the wire-level types shared between the HTTP edge,
// the queue, and the orchestrator: job envelopes, per-agent results, and the
// persisted job result.
package models

import (
	"errors"
	"fmt"
	"time"
)

// JobType selects which playbook of a domain the orchestrator runs.
type JobType string

const (
	JobTypeIngest     JobType = "ingest"
	JobTypeQuery      JobType = "query"
	JobTypeManagement JobType = "management"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeIngest, JobTypeQuery, JobTypeManagement:
		return true
	}
	return false
}

// JobInput carries the job-type-specific user input.
// Exactly one of Text/Question is expected depending on JobType.
type JobInput struct {
	Text                 string         `json:"text,omitempty"`
	Question             string         `json:"question,omitempty"`
	Filters              map[string]any `json:"filters,omitempty"`
	RecordID             string         `json:"record_id,omitempty"`
	ImageRefs            []string       `json:"image_refs,omitempty"`
	ClarificationAnswers map[string]any `json:"clarification_answers,omitempty"`
}

// JobEnvelope is the immutable input record the core consumes.
// The HTTP edge validates authentication; the core validates shape.
type JobEnvelope struct {
	JobID           string   `json:"job_id"`
	TenantID        string   `json:"tenant_id"`
	UserID          string   `json:"user_id"`
	JobType         JobType  `json:"job_type"`
	DomainID        string   `json:"domain_id"`
	SessionID       string   `json:"session_id,omitempty"`
	DeadlineEpochMS int64    `json:"deadline_epoch_ms,omitempty"`
	Input           JobInput `json:"input"`
}

// ErrBadEnvelope is the root cause for all envelope validation failures.
var ErrBadEnvelope = errors.New("bad envelope")

// Validate checks envelope shape. All failures wrap ErrBadEnvelope.
func (e *JobEnvelope) Validate() error {
	switch {
	case e.JobID == "":
		return fmt.Errorf("%w: job_id is required", ErrBadEnvelope)
	case e.TenantID == "":
		return fmt.Errorf("%w: tenant_id is required", ErrBadEnvelope)
	case e.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrBadEnvelope)
	case e.DomainID == "":
		return fmt.Errorf("%w: domain_id is required", ErrBadEnvelope)
	case !e.JobType.Valid():
		return fmt.Errorf("%w: unknown job_type %q", ErrBadEnvelope, e.JobType)
	}

	switch e.JobType {
	case JobTypeIngest:
		if e.Input.Text == "" && len(e.Input.ClarificationAnswers) == 0 {
			return fmt.Errorf("%w: ingest requires input.text", ErrBadEnvelope)
		}
	case JobTypeQuery:
		if e.Input.Question == "" {
			return fmt.Errorf("%w: query requires input.question", ErrBadEnvelope)
		}
	case JobTypeManagement:
		if e.Input.RecordID == "" {
			return fmt.Errorf("%w: management requires input.record_id", ErrBadEnvelope)
		}
		if e.Input.Text == "" {
			return fmt.Errorf("%w: management requires input.text", ErrBadEnvelope)
		}
	}
	return nil
}

// Deadline converts DeadlineEpochMS to a time.Time. The zero time means the
// envelope carries no explicit deadline and the configured wall clock applies.
func (e *JobEnvelope) Deadline() time.Time {
	if e.DeadlineEpochMS <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(e.DeadlineEpochMS)
}
