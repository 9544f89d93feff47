package events

import "time"

// StatusEvent is the wire payload for every push-channel event.
type StatusEvent struct {
	JobID string `json:"job_id"`
	// EventType is one of the constants in types.go.
	EventType string `json:"event_type"`
	// AgentID is set on agent_* events only.
	AgentID string `json:"agent_id,omitempty"`
	// Status is the job or agent status after the transition.
	Status string `json:"status"`
	// Message is terse and user-safe; diagnostics go to logs.
	Message string `json:"message,omitempty"`
	// Timestamp is RFC3339Nano.
	Timestamp string `json:"timestamp"`
	// Metadata carries attempts, duration, clarification fields, and similar.
	Metadata map[string]any `json:"metadata,omitempty"`
	// Sequence is strictly increasing per job_id.
	Sequence int64 `json:"sequence"`
}

// Terminal reports whether the event closes its job's stream.
func (e *StatusEvent) Terminal() bool {
	return e.EventType == TypeJobCompleted || e.EventType == TypeJobFailed || e.EventType == TypeJobCancelled
}

// stamp fills Timestamp when the caller left it empty.
func (e *StatusEvent) stamp() {
	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
}
