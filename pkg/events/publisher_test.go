package events

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserChannel(t *testing.T) {
	assert.Equal(t, "intake:events:acme:u-7", UserChannel("acme", "u-7"))
}

func TestStatusEvent_Terminal(t *testing.T) {
	assert.True(t, (&StatusEvent{EventType: TypeJobCompleted}).Terminal())
	assert.True(t, (&StatusEvent{EventType: TypeJobFailed}).Terminal())
	assert.False(t, (&StatusEvent{EventType: TypeAgentCompleted}).Terminal())
	assert.False(t, (&StatusEvent{EventType: TypeClarificationRequired}).Terminal())
}

func TestCapturingPublisher_OrderAndSequence(t *testing.T) {
	pub := NewCapturingPublisher()
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, "acme", "u-1", &StatusEvent{JobID: "j1", EventType: TypeJobStarted}))
	require.NoError(t, pub.Publish(ctx, "acme", "u-1", &StatusEvent{JobID: "j1", EventType: TypeAgentStarted, AgentID: "geo"}))
	require.NoError(t, pub.Publish(ctx, "acme", "u-1", &StatusEvent{JobID: "j1", EventType: TypeAgentCompleted, AgentID: "geo"}))
	require.NoError(t, pub.Publish(ctx, "acme", "u-1", &StatusEvent{JobID: "j1", EventType: TypeJobCompleted}))

	types := pub.Types("j1")
	assert.Equal(t, []string{TypeJobStarted, TypeAgentStarted, TypeAgentCompleted, TypeJobCompleted}, types)

	events := pub.ForJob("j1")
	for i, e := range events {
		assert.Equal(t, int64(i+1), e.Sequence)
		assert.NotEmpty(t, e.Timestamp)
	}
}

func TestCapturingPublisher_ConcurrentPublishes(t *testing.T) {
	pub := NewCapturingPublisher()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Publish(context.Background(), "acme", "u-1", &StatusEvent{JobID: "j1", EventType: TypeAgentStarted})
		}()
	}
	wg.Wait()

	events := pub.Events()
	require.Len(t, events, 16)
	seen := map[int64]bool{}
	for _, e := range events {
		assert.False(t, seen[e.Sequence], "duplicate sequence %d", e.Sequence)
		seen[e.Sequence] = true
	}
}
