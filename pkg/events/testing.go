package events

import (
	"context"
	"sync"
)

// CapturingPublisher records every published event for assertions. Safe for
// concurrent use.
type CapturingPublisher struct {
	mu     sync.Mutex
	events []*StatusEvent

	// FailWith, when set, is returned from Publish after recording.
	FailWith error
}

// NewCapturingPublisher creates an empty capture.
func NewCapturingPublisher() *CapturingPublisher {
	return &CapturingPublisher{}
}

// Publish implements Publisher.
func (c *CapturingPublisher) Publish(_ context.Context, _, _ string, event *StatusEvent) error {
	event.stamp()
	c.mu.Lock()
	defer c.mu.Unlock()
	event.Sequence = int64(len(c.events) + 1)
	copied := *event
	c.events = append(c.events, &copied)
	return c.FailWith
}

// Events returns all captured events in publish order.
func (c *CapturingPublisher) Events() []*StatusEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*StatusEvent, len(c.events))
	copy(out, c.events)
	return out
}

// ForJob returns the captured events for one job, in publish order.
func (c *CapturingPublisher) ForJob(jobID string) []*StatusEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*StatusEvent
	for _, e := range c.events {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out
}

// Types returns the event types for one job, in publish order.
func (c *CapturingPublisher) Types(jobID string) []string {
	var types []string
	for _, e := range c.ForJob(jobID) {
		types = append(types, e.EventType)
	}
	return types
}
