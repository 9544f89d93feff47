package retry

import (
	"sync"
	"time"
)

// Breaker is a per-tool circuit breaker. After Threshold consecutive failures
// inside the rolling Window, the breaker opens for Cooldown; while open, calls
// are rejected immediately. After the cooldown one probe call is let through:
// success closes the breaker, failure re-opens it.
type Breaker struct {
	threshold int
	cooldown  time.Duration
	window    time.Duration

	mu          sync.Mutex
	consecutive int
	lastFailure time.Time
	openedAt    time.Time
	open        bool
	probing     bool

	now func() time.Time // injectable clock for tests
}

// NewBreaker creates a breaker with the given threshold, cooldown, and
// rolling window. Zero values fall back to the system defaults
// (5 failures, 60s cooldown, 60s window).
func NewBreaker(threshold int, cooldown, window time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}
	if window <= 0 {
		window = 60 * time.Second
	}
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		window:    window,
		now:       time.Now,
	}
}

// Allow reports whether a call may proceed. In the open state it returns
// false until the cooldown elapses, then admits a single half-open probe.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return true
	}
	if b.now().Sub(b.openedAt) < b.cooldown {
		return false
	}
	// Half-open: exactly one probe until it reports back.
	if b.probing {
		return false
	}
	b.probing = true
	return true
}

// Record reports the outcome of an admitted call.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		b.open = false
		b.probing = false
		b.consecutive = 0
		return
	}

	now := b.now()
	if b.open && b.probing {
		// Failed probe: re-open for another cooldown.
		b.probing = false
		b.openedAt = now
		return
	}

	// Failures outside the rolling window do not accumulate.
	if !b.lastFailure.IsZero() && now.Sub(b.lastFailure) > b.window {
		b.consecutive = 0
	}
	b.lastFailure = now
	b.consecutive++
	if b.consecutive >= b.threshold {
		b.open = true
		b.probing = false
		b.openedAt = now
		b.consecutive = 0
	}
}

// Open reports whether the breaker currently rejects calls.
func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open && b.now().Sub(b.openedAt) < b.cooldown
}
