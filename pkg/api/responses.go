package api

import (
	"time"

	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/models"
)

// SubmitJobResponse acknowledges an enqueued job.
type SubmitJobResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JobResponse is the job status view returned by GET /api/v1/jobs/:id.
type JobResponse struct {
	JobID          string            `json:"job_id"`
	TenantID       string            `json:"tenant_id"`
	JobType        string            `json:"job_type"`
	DomainID       string            `json:"domain_id"`
	Status         string            `json:"status"`
	Result         *models.JobResult `json:"result,omitempty"`
	Clarification  map[string]any    `json:"clarification,omitempty"`
	FailureKind    string            `json:"failure_kind,omitempty"`
	FailureMessage string            `json:"failure_message,omitempty"`
	RecordID       string            `json:"record_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	StartedAt      *time.Time        `json:"started_at,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

// jobView projects a lifecycle job onto the API response shape.
func jobView(j *lifecycle.Job) *JobResponse {
	resp := &JobResponse{
		JobID:          j.ID,
		TenantID:       j.Envelope.TenantID,
		JobType:        string(j.Envelope.JobType),
		DomainID:       j.Envelope.DomainID,
		Status:         string(j.Status),
		Result:         j.Result,
		FailureKind:    j.FailureKind,
		FailureMessage: j.FailureMessage,
		RecordID:       j.RecordID,
		CreatedAt:      j.CreatedAt,
	}
	if j.Status == models.JobStatusAwaitingClarification {
		resp.Clarification = j.Clarification
	}
	if !j.StartedAt.IsZero() {
		t := j.StartedAt
		resp.StartedAt = &t
	}
	if !j.CompletedAt.IsZero() {
		t := j.CompletedAt
		resp.CompletedAt = &t
	}
	return resp
}
