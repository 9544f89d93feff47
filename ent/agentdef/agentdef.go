// Code generated by ent, DO NOT EDIT.

package agentdef

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentdef type in the database.
	Label = "agent_def"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldAgentClass holds the string denoting the agent_class field in the database.
	FieldAgentClass = "agent_class"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldTools holds the string denoting the tools field in the database.
	FieldTools = "tools"
	// FieldOutputSchema holds the string denoting the output_schema field in the database.
	FieldOutputSchema = "output_schema"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldStrict holds the string denoting the strict field in the database.
	FieldStrict = "strict"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldIsBuiltin holds the string denoting the is_builtin field in the database.
	FieldIsBuiltin = "is_builtin"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentdef in the database.
	Table = "agent_defs"
)

// Columns holds all SQL columns for agentdef fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAgentID,
	FieldAgentName,
	FieldAgentClass,
	FieldSystemPrompt,
	FieldTools,
	FieldOutputSchema,
	FieldWeight,
	FieldStrict,
	FieldVersion,
	FieldIsBuiltin,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SystemPromptValidator is a validator for the "system_prompt" field. It is called by the builders before save.
	SystemPromptValidator func(string) error
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight float64
	// WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	WeightValidator func(float64) error
	// DefaultStrict holds the default value on creation for the "strict" field.
	DefaultStrict bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultIsBuiltin holds the default value on creation for the "is_builtin" field.
	DefaultIsBuiltin bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentDef queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByAgentClass orders the results by the agent_class field.
func ByAgentClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentClass, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByStrict orders the results by the strict field.
func ByStrict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrict, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByIsBuiltin orders the results by the is_builtin field.
func ByIsBuiltin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBuiltin, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
