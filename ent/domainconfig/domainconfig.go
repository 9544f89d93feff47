// Code generated by ent, DO NOT EDIT.

package domainconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the domainconfig type in the database.
	Label = "domain_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldDomainID holds the string denoting the domain_id field in the database.
	FieldDomainID = "domain_id"
	// FieldDomainName holds the string denoting the domain_name field in the database.
	FieldDomainName = "domain_name"
	// FieldIngestionPlaybook holds the string denoting the ingestion_playbook field in the database.
	FieldIngestionPlaybook = "ingestion_playbook"
	// FieldQueryPlaybook holds the string denoting the query_playbook field in the database.
	FieldQueryPlaybook = "query_playbook"
	// FieldManagementPlaybook holds the string denoting the management_playbook field in the database.
	FieldManagementPlaybook = "management_playbook"
	// FieldThresholds holds the string denoting the thresholds field in the database.
	FieldThresholds = "thresholds"
	// FieldIsBuiltin holds the string denoting the is_builtin field in the database.
	FieldIsBuiltin = "is_builtin"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the domainconfig in the database.
	Table = "domain_configs"
)

// Columns holds all SQL columns for domainconfig fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldDomainID,
	FieldDomainName,
	FieldIngestionPlaybook,
	FieldQueryPlaybook,
	FieldManagementPlaybook,
	FieldThresholds,
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
	// DefaultIsBuiltin holds the default value on creation for the "is_builtin" field.
	DefaultIsBuiltin bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DomainConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByDomainID orders the results by the domain_id field.
func ByDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainID, opts...).ToFunc()
}

// ByDomainName orders the results by the domain_name field.
func ByDomainName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainName, opts...).ToFunc()
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
