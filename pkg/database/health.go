package database

import (
	"context"
	"time"
)

// Health status values reported by Client.Health.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus is the jobs-database section of the health endpoint: ping
// latency plus connection pool pressure.
type HealthStatus struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`

	OpenConns    int   `json:"open_conns"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	MaxOpenConns int   `json:"max_open_conns"`
	WaitCount    int64 `json:"wait_count"`
	WaitedMS     int64 `json:"waited_ms"`
}

// Health pings the jobs database and reports pool pressure. A failed ping is
// unhealthy; a saturated pool (every connection in use with callers queued
// behind them) is degraded. The caller bounds the check via ctx.
func (c *Client) Health(ctx context.Context) *HealthStatus {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:    StatusUnhealthy,
			Error:     err.Error(),
			LatencyMS: time.Since(start).Milliseconds(),
		}
	}

	stats := c.db.Stats()
	hs := &HealthStatus{
		Status:       StatusHealthy,
		LatencyMS:    time.Since(start).Milliseconds(),
		OpenConns:    stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		MaxOpenConns: stats.MaxOpenConnections,
		WaitCount:    stats.WaitCount,
		WaitedMS:     stats.WaitDuration.Milliseconds(),
	}
	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections && stats.WaitCount > 0 {
		hs.Status = StatusDegraded
	}
	return hs
}
