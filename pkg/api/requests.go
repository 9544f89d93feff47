package api

import "github.com/intakehq/intake/pkg/models"

// MaxInputBytes bounds the free-text input of one job.
const MaxInputBytes = 32 << 10

// SubmitJobRequest is the request body for POST /api/v1/jobs.
type SubmitJobRequest struct {
	TenantID        string          `json:"tenant_id"`
	UserID          string          `json:"user_id"`
	JobType         string          `json:"job_type"`
	DomainID        string          `json:"domain_id"`
	SessionID       string          `json:"session_id,omitempty"`
	DeadlineEpochMS int64           `json:"deadline_epoch_ms,omitempty"`
	Input           models.JobInput `json:"input"`
}

// ClarificationRequest is the request body for
// POST /api/v1/jobs/:id/clarification.
type ClarificationRequest struct {
	Answers map[string]any `json:"answers"`
}
