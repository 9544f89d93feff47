package tool

import (
	"sync"

	"golang.org/x/time/rate"
)

// QuotaConfig shapes the per-(tenant, tool) token buckets.
type QuotaConfig struct {
	// RatePerSecond is the steady-state refill rate. <= 0 disables quotas.
	RatePerSecond float64
	// Burst is the bucket capacity.
	Burst int
}

// quotaSet holds one token bucket per (tenant, tool) pair, created lazily.
// Buckets are shared process-wide and live for the process lifetime.
type quotaSet struct {
	cfg QuotaConfig

	mu      sync.RWMutex
	buckets map[string]*rate.Limiter
}

func newQuotaSet(cfg QuotaConfig) *quotaSet {
	return &quotaSet{
		cfg:     cfg,
		buckets: make(map[string]*rate.Limiter),
	}
}

// allow consumes one token for the pair, reporting false when the bucket is
// empty. Disabled quotas always allow.
func (q *quotaSet) allow(tenantID, toolName string) bool {
	if q.cfg.RatePerSecond <= 0 {
		return true
	}
	return q.limiter(tenantID + "/" + toolName).Allow()
}

func (q *quotaSet) limiter(key string) *rate.Limiter {
	q.mu.RLock()
	lim, ok := q.buckets[key]
	q.mu.RUnlock()
	if ok {
		return lim
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if lim, ok = q.buckets[key]; ok {
		return lim
	}
	burst := q.cfg.Burst
	if burst < 1 {
		burst = 1
	}
	lim = rate.NewLimiter(rate.Limit(q.cfg.RatePerSecond), burst)
	q.buckets[key] = lim
	return lim
}
