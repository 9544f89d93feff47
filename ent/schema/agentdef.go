package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentDef holds the schema definition for the AgentDef entity — a tenant's
// agent configuration. Rows with is_builtin=true belong to the "system"
// tenant and are immutable outside the startup seeder.
type AgentDef struct {
	ent.Schema
}

// Fields of the AgentDef.
func (AgentDef) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id"),
		field.String("agent_id"),
		field.String("agent_name"),
		field.String("agent_class").
			Comment("ingestion, query, or management"),
		field.Text("system_prompt").
			MaxLen(2048),
		field.JSON("tools", []string{}).
			Comment("Ordered; first entry is the primary tool"),
		field.JSON("output_schema", map[string]string{}).
			Comment("Output key to declared type; confidence key required"),
		field.Float("weight").
			Default(1).
			Min(0).
			Comment("Share in job-confidence aggregation"),
		field.Bool("strict").
			Default(false).
			Comment("Strict agent failure aborts the job"),
		field.Int("version").
			Default(1).
			Comment("Monotonically increasing per (tenant_id, agent_id)"),
		field.Bool("is_builtin").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentDef.
func (AgentDef) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "agent_id").
			Unique(),
		index.Fields("tenant_id", "agent_class"),
	}
}
