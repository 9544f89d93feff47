package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/intakehq/intake/pkg/models"
)

// Job holds the schema definition for the Job entity — one queued unit of
// orchestration work plus its lifecycle state and persisted result.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("tenant_id"),
		field.String("user_id"),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("job_type").
			Comment("ingest, query, or management"),
		field.String("domain_id"),
		field.JSON("envelope", models.JobEnvelope{}).
			Comment("Immutable envelope snapshot"),
		field.Enum("status").
			Values("queued", "running", "awaiting_clarification", "complete", "failed", "cancelled").
			Default("queued"),
		field.JSON("applied_transitions", []string{}).
			Optional().
			Comment("Idempotence markers, one per applied lifecycle transition"),
		field.JSON("result", &models.JobResult{}).
			Optional(),
		field.JSON("clarification", map[string]any{}).
			Optional().
			Comment("Pending clarification bundle: questions + fields"),
		field.Bool("clarification_consumed").
			Default(false).
			Comment("A job accepts exactly one clarification follow-up"),
		field.String("failure_kind").
			Optional().
			Nillable(),
		field.String("failure_message").
			Optional().
			Nillable().
			Comment("Terse, user-safe"),
		field.String("record_id").
			Optional().
			Nillable().
			Comment("Record created by ingest or targeted by management"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("deadline_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for the stuck-job sweep"),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}

// Annotations of the Job.
func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}
