package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")
var errPermanent = errors.New("permanent")

func testClassifier(err error) Class {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, errTransient):
		return Retriable
	default:
		return Fatal
	}
}

func fastPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, JitterFrac: 0.2}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	attempts, err := Do(context.Background(), fastPolicy(), testClassifier, func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	attempts, err := Do(context.Background(), fastPolicy(), testClassifier, func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnFatal(t *testing.T) {
	calls := 0
	attempts, err := Do(context.Background(), fastPolicy(), testClassifier, func(context.Context) error {
		calls++
		return errPermanent
	})
	require.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	attempts, err := Do(context.Background(), fastPolicy(), testClassifier, func(context.Context) error {
		return errTransient
	})
	require.ErrorIs(t, err, ErrAttemptsExhausted)
	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, attempts)
}

func TestDoHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, err := Do(ctx, fastPolicy(), testClassifier, func(context.Context) error {
		cancel()
		return errTransient
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDelaySchedule(t *testing.T) {
	p := Policy{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond}

	assert.Equal(t, time.Duration(0), p.Delay(1))
	assert.Equal(t, 100*time.Millisecond, p.Delay(2))
	assert.Equal(t, 200*time.Millisecond, p.Delay(3))
	// Capped at MaxDelay from here on
	assert.Equal(t, 300*time.Millisecond, p.Delay(4))
	assert.Equal(t, 300*time.Millisecond, p.Delay(5))
}

func TestDelayJitterStaysInBounds(t *testing.T) {
	p := Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, JitterFrac: 0.2}
	for i := 0; i < 100; i++ {
		d := p.Delay(2)
		assert.GreaterOrEqual(t, d, 80*time.Millisecond)
		assert.LessOrEqual(t, d, 120*time.Millisecond)
	}
}
