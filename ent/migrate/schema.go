// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentDefsColumns holds the columns for the "agent_defs" table.
	AgentDefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "agent_class", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Size: 2048},
		{Name: "tools", Type: field.TypeJSON},
		{Name: "output_schema", Type: field.TypeJSON},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "strict", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_builtin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentDefsTable holds the schema information for the "agent_defs" table.
	AgentDefsTable = &schema.Table{
		Name:       "agent_defs",
		Columns:    AgentDefsColumns,
		PrimaryKey: []*schema.Column{AgentDefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentdef_tenant_id_agent_id",
				Unique:  true,
				Columns: []*schema.Column{AgentDefsColumns[1], AgentDefsColumns[2]},
			},
			{
				Name:    "agentdef_tenant_id_agent_class",
				Unique:  false,
				Columns: []*schema.Column{AgentDefsColumns[1], AgentDefsColumns[4]},
			},
		},
	}
	// DomainConfigsColumns holds the columns for the "domain_configs" table.
	DomainConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "domain_name", Type: field.TypeString},
		{Name: "ingestion_playbook", Type: field.TypeJSON},
		{Name: "query_playbook", Type: field.TypeJSON},
		{Name: "management_playbook", Type: field.TypeJSON},
		{Name: "thresholds", Type: field.TypeJSON, Nullable: true},
		{Name: "is_builtin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DomainConfigsTable holds the schema information for the "domain_configs" table.
	DomainConfigsTable = &schema.Table{
		Name:       "domain_configs",
		Columns:    DomainConfigsColumns,
		PrimaryKey: []*schema.Column{DomainConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainconfig_tenant_id_domain_id",
				Unique:  true,
				Columns: []*schema.Column{DomainConfigsColumns[1], DomainConfigsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "envelope", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "awaiting_clarification", "complete", "failed", "cancelled"}, Default: "queued"},
		{Name: "applied_transitions", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "clarification", Type: field.TypeJSON, Nullable: true},
		{Name: "clarification_consumed", Type: field.TypeBool, Default: false},
		{Name: "failure_kind", Type: field.TypeString, Nullable: true},
		{Name: "failure_message", Type: field.TypeString, Nullable: true},
		{Name: "record_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "deadline_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
			{
				Name:    "job_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7], JobsColumns[17]},
			},
			{
				Name:    "job_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7], JobsColumns[20]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentDefsTable,
		DomainConfigsTable,
		JobsTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
}
