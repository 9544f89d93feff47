package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests drive the breaker's notion of time.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(threshold int) (*Breaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewBreaker(threshold, 60*time.Second, 60*time.Second)
	b.now = clock.now
	return b, clock
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker(3)

	for i := 0; i < 3; i++ {
		assert.True(t, b.Allow())
		b.Record(false)
	}
	assert.True(t, b.Open())
	assert.False(t, b.Allow())
}

func TestBreakerSuccessResetsCount(t *testing.T) {
	b, _ := newTestBreaker(3)

	b.Record(false)
	b.Record(false)
	b.Record(true)
	b.Record(false)
	b.Record(false)
	assert.False(t, b.Open())
	assert.True(t, b.Allow())
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	b, clock := newTestBreaker(2)
	b.Record(false)
	b.Record(false)
	assert.False(t, b.Allow())

	// After cooldown, exactly one probe is admitted.
	clock.advance(61 * time.Second)
	assert.True(t, b.Allow())
	assert.False(t, b.Allow())

	// Probe success closes the breaker.
	b.Record(true)
	assert.True(t, b.Allow())
	assert.False(t, b.Open())
}

func TestBreakerFailedProbeReopens(t *testing.T) {
	b, clock := newTestBreaker(2)
	b.Record(false)
	b.Record(false)

	clock.advance(61 * time.Second)
	assert.True(t, b.Allow())
	b.Record(false)

	// Re-opened: rejected again until the next cooldown elapses.
	assert.False(t, b.Allow())
	clock.advance(61 * time.Second)
	assert.True(t, b.Allow())
}

func TestBreakerWindowExpiryResetsCount(t *testing.T) {
	b, clock := newTestBreaker(3)
	b.Record(false)
	b.Record(false)

	// Failures older than the rolling window do not accumulate.
	clock.advance(2 * time.Minute)
	b.Record(false)
	b.Record(false)
	assert.False(t, b.Open())
	b.Record(false)
	assert.True(t, b.Open())
}
