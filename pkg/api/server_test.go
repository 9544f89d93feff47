package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/database"
	"github.com/intakehq/intake/pkg/events"
	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/queue"
	"github.com/intakehq/intake/pkg/recordstore"
	"github.com/intakehq/intake/pkg/retry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCanceller struct {
	cancelled []string
}

func (f *fakeCanceller) CancelJob(jobID string) bool {
	f.cancelled = append(f.cancelled, jobID)
	return true
}

type apiHarness struct {
	jobs      *lifecycle.FakeJobStore
	manager   *lifecycle.Manager
	canceller *fakeCanceller
	router    *gin.Engine
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	jobs := lifecycle.NewFakeJobStore()
	manager := lifecycle.NewManager(
		jobs,
		recordstore.NewFakeStore(),
		events.NewCapturingPublisher(),
		retry.Policy{MaxAttempts: 2, BaseDelay: time.Millisecond},
		slog.Default(),
	)
	canceller := &fakeCanceller{}
	srv := NewServer(jobs, manager, canceller, nil, nil, slog.Default())
	return &apiHarness{
		jobs:      jobs,
		manager:   manager,
		canceller: canceller,
		router:    srv.Router(),
	}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func submitBody(jobType string) SubmitJobRequest {
	req := SubmitJobRequest{
		TenantID: "acme",
		UserID:   "u-1",
		JobType:  jobType,
		DomainID: "civic_complaints",
	}
	switch jobType {
	case "ingest":
		req.Input = models.JobInput{Text: "pothole on main street"}
	case "query":
		req.Input = models.JobInput{Question: "how many potholes?"}
	case "management":
		req.Input = models.JobInput{RecordID: "rec-1", Text: "close this complaint"}
	}
	return req
}

func TestSubmitJobEnqueues(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/jobs", submitBody("ingest"))
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "queued", resp.Status)

	job, err := h.jobs.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusQueued, job.Status)
	assert.Equal(t, "acme", job.Envelope.TenantID)
	assert.Equal(t, "pothole on main street", job.Envelope.Input.Text)
}

func TestSubmitJobValidatesEnvelope(t *testing.T) {
	h := newAPIHarness(t)

	missingText := submitBody("ingest")
	missingText.Input.Text = ""
	w := h.do(t, http.MethodPost, "/api/v1/jobs", missingText)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "input.text")

	badType := submitBody("ingest")
	badType.JobType = "replicate"
	w = h.do(t, http.MethodPost, "/api/v1/jobs", badType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "job_type")

	noTenant := submitBody("query")
	noTenant.TenantID = ""
	w = h.do(t, http.MethodPost, "/api/v1/jobs", noTenant)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitJobRejectsOversizedInput(t *testing.T) {
	h := newAPIHarness(t)

	big := submitBody("ingest")
	big.Input.Text = strings.Repeat("x", MaxInputBytes+1)
	w := h.do(t, http.MethodPost, "/api/v1/jobs", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestGetJob(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/jobs", submitBody("query"))
	require.Equal(t, http.StatusAccepted, w.Code)
	var created SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = h.do(t, http.MethodGet, "/api/v1/jobs/"+created.JobID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.JobID, resp.JobID)
	assert.Equal(t, "query", resp.JobType)
	assert.Equal(t, "queued", resp.Status)

	w = h.do(t, http.MethodGet, "/api/v1/jobs/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// parkAwaitingClarification drives a job through the real lifecycle into
// awaiting_clarification.
func parkAwaitingClarification(t *testing.T, h *apiHarness, jobID string) {
	t.Helper()
	ctx := context.Background()
	job, started, err := h.manager.Start(ctx, jobID)
	require.NoError(t, err)
	require.True(t, started)
	require.NoError(t, h.manager.AwaitClarification(ctx, job,
		&models.JobResult{JobID: jobID, Status: models.JobStatusAwaitingClarification},
		[]string{"location"}, []string{"Where exactly?"}))
}

func TestClarificationRoundTrip(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/jobs", submitBody("ingest"))
	require.Equal(t, http.StatusAccepted, w.Code)
	var created SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	parkAwaitingClarification(t, h, created.JobID)

	// Status view exposes the clarification bundle.
	w = h.do(t, http.MethodGet, "/api/v1/jobs/"+created.JobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "awaiting_clarification", view.Status)
	require.NotNil(t, view.Clarification)
	assert.Contains(t, fmt.Sprint(view.Clarification["fields"]), "location")

	// Follow-up re-queues the job.
	answers := ClarificationRequest{Answers: map[string]any{"location": "5th and Main"}}
	w = h.do(t, http.MethodPost, "/api/v1/jobs/"+created.JobID+"/clarification", answers)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "queued", view.Status)

	// Second follow-up is rejected.
	w = h.do(t, http.MethodPost, "/api/v1/jobs/"+created.JobID+"/clarification", answers)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClarificationRejectsWrongState(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/jobs", submitBody("ingest"))
	require.Equal(t, http.StatusAccepted, w.Code)
	var created SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	answers := ClarificationRequest{Answers: map[string]any{"location": "here"}}
	w = h.do(t, http.MethodPost, "/api/v1/jobs/"+created.JobID+"/clarification", answers)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/jobs/"+created.JobID+"/clarification", ClarificationRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelJob(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/jobs", submitBody("ingest"))
	require.Equal(t, http.StatusAccepted, w.Code)
	var created SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = h.do(t, http.MethodPost, "/api/v1/jobs/"+created.JobID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "cancelled", view.Status)
	assert.Contains(t, h.canceller.cancelled, created.JobID)

	// Cancelling again is a no-op returning the terminal state.
	w = h.do(t, http.MethodPost, "/api/v1/jobs/"+created.JobID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "cancelled", view.Status)
}

func TestHealthWithoutPool(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

type fakeDBHealth struct {
	status *database.HealthStatus
}

func (f *fakeDBHealth) Health(context.Context) *database.HealthStatus { return f.status }

type fakePoolHealth struct {
	health *queue.PoolHealth
}

func (f *fakePoolHealth) Health() *queue.PoolHealth { return f.health }

func healthRouter(db DBHealther, pool PoolHealther) *gin.Engine {
	srv := NewServer(lifecycle.NewFakeJobStore(), nil, nil, pool, db, slog.Default())
	return srv.Router()
}

func getHealth(t *testing.T, router *gin.Engine) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealthReportsDatabase(t *testing.T) {
	router := healthRouter(&fakeDBHealth{status: &database.HealthStatus{
		Status: database.StatusHealthy, MaxOpenConns: 25,
	}}, nil)

	w, resp := getHealth(t, router)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Contains(t, resp.Checks, "database")
}

func TestHealthUnreachableDatabaseIs503(t *testing.T) {
	router := healthRouter(&fakeDBHealth{status: &database.HealthStatus{
		Status: database.StatusUnhealthy, Error: "connection refused",
	}}, &fakePoolHealth{health: &queue.PoolHealth{IsHealthy: true, DBReachable: true}})

	w, resp := getHealth(t, router)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Contains(t, resp.Checks, "database")
	assert.Contains(t, resp.Checks, "worker_pool")
}

func TestHealthDegradedPoolStaysUp(t *testing.T) {
	// An unhealthy pool on a reachable database degrades but keeps serving.
	router := healthRouter(&fakeDBHealth{status: &database.HealthStatus{
		Status: database.StatusHealthy,
	}}, &fakePoolHealth{health: &queue.PoolHealth{IsHealthy: false, DBReachable: true}})

	w, resp := getHealth(t, router)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", resp.Status)
}
