// Package events publishes job status events to the user's push channel.
// Emission is best-effort and always happens after the corresponding
// persisted transition; a lost event is recovered by polling the job record,
// a duplicate never happens.
package events

import "fmt"

// Event types, one per observable transition.
const (
	TypeJobStarted            = "job_started"
	TypeJobCompleted          = "job_completed"
	TypeJobFailed             = "job_failed"
	TypeJobCancelled          = "job_cancelled"
	TypeAgentStarted          = "agent_started"
	TypeAgentCompleted        = "agent_completed"
	TypeAgentFailed           = "agent_failed"
	TypeClarificationRequired = "clarification_required"
)

// ChannelPrefix namespaces push channels in the shared broker.
const ChannelPrefix = "intake:events"

// UserChannel is the push channel carrying every event for one user of one
// tenant. Clients subscribe here and filter by job_id.
func UserChannel(tenantID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", ChannelPrefix, tenantID, userID)
}
