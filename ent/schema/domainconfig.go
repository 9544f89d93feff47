package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/intakehq/intake/pkg/models"
)

// DomainConfig holds the schema definition for the DomainConfig entity — a
// business domain bundling the three playbooks (ingestion, query, management).
type DomainConfig struct {
	ent.Schema
}

// Fields of the DomainConfig.
func (DomainConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id"),
		field.String("domain_id"),
		field.String("domain_name"),
		field.JSON("ingestion_playbook", models.Playbook{}),
		field.JSON("query_playbook", models.Playbook{}),
		field.JSON("management_playbook", models.Playbook{}),
		field.JSON("thresholds", models.Thresholds{}).
			Optional().
			Comment("Per-domain confidence decision overrides"),
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

// Indexes of the DomainConfig.
func (DomainConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "domain_id").
			Unique(),
	}
}
