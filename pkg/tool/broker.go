package tool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/intakehq/intake/pkg/retry"
)

// BrokerConfig shapes broker-wide policies.
type BrokerConfig struct {
	Quota QuotaConfig

	// Breaker settings apply per tool.
	BreakerThreshold int
	BreakerCooldown  time.Duration
	BreakerWindow    time.Duration
}

// DefaultBrokerConfig returns the system defaults: quotas disabled, breaker
// opens after 5 consecutive failures with a 60s cooldown.
func DefaultBrokerConfig() BrokerConfig {
	return BrokerConfig{
		BreakerThreshold: 5,
		BreakerCooldown:  60 * time.Second,
		BreakerWindow:    60 * time.Second,
	}
}

// Broker maps tool names to capability providers. It is the single choke
// point for tool calls: quotas and circuit breakers are enforced here so
// providers stay policy-free. Safe for concurrent use.
type Broker struct {
	cfg    BrokerConfig
	quotas *quotaSet

	mu       sync.RWMutex
	tools    map[string]Tool
	breakers map[string]*retry.Breaker
}

// NewBroker creates an empty broker. Providers are registered at init via
// Register, never hard-coded here.
func NewBroker(cfg BrokerConfig) *Broker {
	return &Broker{
		cfg:      cfg,
		quotas:   newQuotaSet(cfg.Quota),
		tools:    make(map[string]Tool),
		breakers: make(map[string]*retry.Breaker),
	}
}

// Register adds a provider under the given name, replacing any previous one.
func (b *Broker) Register(name string, t Tool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tools[name] = t
	if _, ok := b.breakers[name]; !ok {
		b.breakers[name] = retry.NewBreaker(b.cfg.BreakerThreshold, b.cfg.BreakerCooldown, b.cfg.BreakerWindow)
	}
}

// Names returns the registered tool names (unordered).
func (b *Broker) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.tools))
	for name := range b.tools {
		names = append(names, name)
	}
	return names
}

// Invoke routes a request to the named provider, enforcing the tenant's
// quota and the tool's circuit breaker. Returns ErrUnknownTool /
// ErrToolUnavailable / ErrToolBusy for policy rejections; provider errors
// pass through (counted against the breaker unless they classify retriable).
func (b *Broker) Invoke(ctx context.Context, name string, req *Request) (*Response, error) {
	b.mu.RLock()
	t, ok := b.tools[name]
	breaker := b.breakers[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if !breaker.Allow() {
		return nil, fmt.Errorf("%w: %s circuit open", ErrToolUnavailable, name)
	}
	if !b.quotas.allow(req.TenantID, name) {
		// Quota rejections are the caller's fault, not the tool's; the
		// breaker admitted this slot, so close the books on it as a success.
		breaker.Record(true)
		return nil, fmt.Errorf("%w: quota exceeded for tenant %s on %s", ErrToolBusy, req.TenantID, name)
	}

	resp, err := t.Invoke(ctx, req)
	breaker.Record(Classify(err) != retry.Fatal)
	if err != nil {
		slog.Debug("Tool invocation failed",
			"tool", name, "tenant_id", req.TenantID, "job_id", req.JobID, "error", err)
		return nil, err
	}
	return resp, nil
}
