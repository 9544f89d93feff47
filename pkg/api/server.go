// Package api is the HTTP edge: it validates envelopes, enqueues jobs, and
// exposes job status, clarification follow-ups, cancellation, and health.
// All processing happens in the worker pool; every handler returns fast.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intakehq/intake/pkg/database"
	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/queue"
)

// JobCanceller cancels the in-flight execution context of a job running on
// this pod. Satisfied by *queue.WorkerPool.
type JobCanceller interface {
	CancelJob(jobID string) bool
}

// PoolHealther reports worker pool health. Satisfied by *queue.WorkerPool.
type PoolHealther interface {
	Health() *queue.PoolHealth
}

// DBHealther reports jobs-database health. Satisfied by *database.Client.
type DBHealther interface {
	Health(ctx context.Context) *database.HealthStatus
}

// Server is the API server.
type Server struct {
	jobs      lifecycle.JobStore
	manager   *lifecycle.Manager
	canceller JobCanceller
	pool      PoolHealther
	db        DBHealther
	logger    *slog.Logger

	httpSrv *http.Server
}

// NewServer wires the API server. canceller, pool and db may be nil in tests;
// nil checks are simply skipped by the health endpoint.
func NewServer(jobs lifecycle.JobStore, manager *lifecycle.Manager, canceller JobCanceller, pool PoolHealther, db DBHealther, logger *slog.Logger) *Server {
	return &Server{
		jobs:      jobs,
		manager:   manager,
		canceller: canceller,
		pool:      pool,
		db:        db,
		logger:    logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/jobs", s.submitJobHandler)
		v1.GET("/jobs/:id", s.getJobHandler)
		v1.POST("/jobs/:id/clarification", s.clarificationHandler)
		v1.POST("/jobs/:id/cancel", s.cancelJobHandler)
		v1.GET("/health", s.healthHandler)
	}

	return router
}

// Start serves HTTP on the given port until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context, port int) error {
	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
