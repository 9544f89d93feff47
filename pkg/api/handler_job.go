package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/models"
)

// submitJobHandler handles POST /api/v1/jobs. It validates the envelope,
// creates the job in "queued" status, and returns immediately; the worker
// pool picks the job up from the queue.
func (s *Server) submitJobHandler(c *gin.Context) {
	var req SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Input.Text) > MaxInputBytes || len(req.Input.Question) > MaxInputBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("input exceeds maximum size of %d bytes", MaxInputBytes),
		})
		return
	}

	env := models.JobEnvelope{
		JobID:           uuid.NewString(),
		TenantID:        req.TenantID,
		UserID:          req.UserID,
		JobType:         models.JobType(req.JobType),
		DomainID:        req.DomainID,
		SessionID:       req.SessionID,
		DeadlineEpochMS: req.DeadlineEpochMS,
		Input:           req.Input,
	}
	if err := env.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := &lifecycle.Job{
		ID:         env.JobID,
		Envelope:   env,
		Status:     models.JobStatusQueued,
		DeadlineAt: env.Deadline(),
	}
	if err := s.jobs.Create(c.Request.Context(), job); err != nil {
		s.logger.Error("Failed to create job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not enqueue the job"})
		return
	}

	s.logger.Info("Job enqueued",
		"job_id", env.JobID, "tenant_id", env.TenantID, "job_type", env.JobType, "domain_id", env.DomainID)

	c.JSON(http.StatusAccepted, &SubmitJobResponse{
		JobID:   env.JobID,
		Status:  string(models.JobStatusQueued),
		Message: "Job submitted for processing",
	})
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	job, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobView(job))
}

// clarificationHandler handles POST /api/v1/jobs/:id/clarification. The
// answers fold into the envelope and the job re-enters the queue; a second
// follow-up for the same job is rejected.
func (s *Server) clarificationHandler(c *gin.Context) {
	var req ClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required"})
		return
	}

	job, err := s.manager.AcceptClarification(c.Request.Context(), c.Param("id"), req.Answers)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.logger.Info("Clarification accepted", "job_id", job.ID)
	c.JSON(http.StatusOK, jobView(job))
}

// cancelJobHandler handles POST /api/v1/jobs/:id/cancel. The cancelled
// status is persisted first; only then is the in-flight context cancelled,
// so the executor's own terminal write no-ops against the terminal row.
func (s *Server) cancelJobHandler(c *gin.Context) {
	jobID := c.Param("id")

	job, err := s.manager.Cancel(c.Request.Context(), jobID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if s.canceller != nil && s.canceller.CancelJob(jobID) {
		s.logger.Info("Cancelled in-flight job", "job_id", jobID)
	}

	c.JSON(http.StatusOK, jobView(job))
}
