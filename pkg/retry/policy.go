// Package retry provides the shared retry/backoff policy and the per-tool
// circuit breaker consumed by the agent invoker and the tool broker.
package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Class is the outcome classification of a single call attempt.
type Class int

const (
	// Success — the call succeeded; stop.
	Success Class = iota
	// Retriable — transient failure (timeout, busy, 5xx); retry with backoff.
	Retriable
	// Fatal — the call can never succeed as-is (bad prompt, auth, unknown tool).
	Fatal
)

// Classifier maps an attempt error to a Class. A nil error must classify as
// Success.
type Classifier func(error) Class

// Policy controls attempt count and backoff shape.
type Policy struct {
	// MaxAttempts is the total number of attempts, first call included.
	MaxAttempts int
	// BaseDelay seeds the exponential schedule: base * 2^(attempt-1).
	BaseDelay time.Duration
	// MaxDelay caps any single backoff delay.
	MaxDelay time.Duration
	// JitterFrac spreads each delay by ±frac (0.2 = ±20%).
	JitterFrac float64
}

// DefaultPolicy returns the system defaults: 3 attempts, 500ms base,
// 10s cap, 20% jitter.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		JitterFrac:  0.2,
	}
}

// Delay returns the backoff before the given attempt number (2-based: the
// delay preceding attempt 2 is Delay(2)).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 2 {
		return 0
	}
	d := p.BaseDelay << uint(attempt-2)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if p.JitterFrac <= 0 {
		return d
	}
	// Range: [d*(1-frac), d*(1+frac)]
	span := float64(d) * p.JitterFrac
	offset := rand.Float64()*2*span - span
	return time.Duration(float64(d) + offset)
}

// ErrAttemptsExhausted wraps the last retriable error once all attempts fail.
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

// Do runs fn up to p.MaxAttempts times, sleeping the policy's backoff between
// retriable failures. It returns the attempt count actually made and the last
// error (nil on success, the fatal error as-is, or ErrAttemptsExhausted
// wrapping the last retriable error). Context cancellation stops the loop
// immediately and returns ctx.Err().
func Do(ctx context.Context, p Policy, classify Classifier, fn func(context.Context) error) (int, error) {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return attempt - 1, ctx.Err()
			case <-time.After(p.Delay(attempt)):
			}
		}

		lastErr = fn(ctx)
		switch classify(lastErr) {
		case Success:
			return attempt, nil
		case Fatal:
			return attempt, lastErr
		case Retriable:
			if ctx.Err() != nil {
				return attempt, ctx.Err()
			}
			// fall through to next attempt
		}
	}
	return p.MaxAttempts, errors.Join(ErrAttemptsExhausted, lastErr)
}
