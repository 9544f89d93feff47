package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intakehq/intake/pkg/database"
	"github.com/intakehq/intake/pkg/version"
)

// healthCheckTimeout bounds the database ping inside the health handler.
const healthCheckTimeout = 5 * time.Second

// HealthResponse is the GET /api/v1/health payload: an overall status, the
// build version, and one entry per checked subsystem.
type HealthResponse struct {
	Status  string         `json:"status"`
	Version string         `json:"version"`
	Checks  map[string]any `json:"checks,omitempty"`
}

// healthHandler handles GET /api/v1/health. The database check and the worker
// pool check fold into one overall status; only unhealthy returns 503 so a
// degraded pod keeps receiving traffic while it recovers.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := database.StatusHealthy
	checks := map[string]any{}

	if s.db != nil {
		dbHealth := s.db.Health(ctx)
		checks["database"] = dbHealth
		status = worseOf(status, dbHealth.Status)
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		checks["worker_pool"] = poolHealth
		if !poolHealth.IsHealthy {
			if !poolHealth.DBReachable {
				status = database.StatusUnhealthy
			} else {
				status = worseOf(status, database.StatusDegraded)
			}
		}
	}

	code := http.StatusOK
	if status == database.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// worseOf keeps the most severe of two statuses.
func worseOf(a, b string) string {
	rank := map[string]int{
		database.StatusHealthy:   0,
		database.StatusDegraded:  1,
		database.StatusUnhealthy: 2,
	}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
