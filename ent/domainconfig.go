// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/intakehq/intake/ent/domainconfig"
	"github.com/intakehq/intake/pkg/models"
)

// DomainConfig is the model entity for the DomainConfig schema.
type DomainConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID string `json:"domain_id,omitempty"`
	// DomainName holds the value of the "domain_name" field.
	DomainName string `json:"domain_name,omitempty"`
	// IngestionPlaybook holds the value of the "ingestion_playbook" field.
	IngestionPlaybook models.Playbook `json:"ingestion_playbook,omitempty"`
	// QueryPlaybook holds the value of the "query_playbook" field.
	QueryPlaybook models.Playbook `json:"query_playbook,omitempty"`
	// ManagementPlaybook holds the value of the "management_playbook" field.
	ManagementPlaybook models.Playbook `json:"management_playbook,omitempty"`
	// Per-domain confidence decision overrides
	Thresholds models.Thresholds `json:"thresholds,omitempty"`
	// IsBuiltin holds the value of the "is_builtin" field.
	IsBuiltin bool `json:"is_builtin,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DomainConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case domainconfig.FieldIngestionPlaybook, domainconfig.FieldQueryPlaybook, domainconfig.FieldManagementPlaybook, domainconfig.FieldThresholds:
			values[i] = new([]byte)
		case domainconfig.FieldIsBuiltin:
			values[i] = new(sql.NullBool)
		case domainconfig.FieldID:
			values[i] = new(sql.NullInt64)
		case domainconfig.FieldTenantID, domainconfig.FieldDomainID, domainconfig.FieldDomainName:
			values[i] = new(sql.NullString)
		case domainconfig.FieldCreatedAt, domainconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DomainConfig fields.
func (_m *DomainConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case domainconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case domainconfig.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case domainconfig.FieldDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = value.String
			}
		case domainconfig.FieldDomainName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_name", values[i])
			} else if value.Valid {
				_m.DomainName = value.String
			}
		case domainconfig.FieldIngestionPlaybook:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_playbook", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IngestionPlaybook); err != nil {
					return fmt.Errorf("unmarshal field ingestion_playbook: %w", err)
				}
			}
		case domainconfig.FieldQueryPlaybook:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field query_playbook", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QueryPlaybook); err != nil {
					return fmt.Errorf("unmarshal field query_playbook: %w", err)
				}
			}
		case domainconfig.FieldManagementPlaybook:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field management_playbook", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ManagementPlaybook); err != nil {
					return fmt.Errorf("unmarshal field management_playbook: %w", err)
				}
			}
		case domainconfig.FieldThresholds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thresholds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Thresholds); err != nil {
					return fmt.Errorf("unmarshal field thresholds: %w", err)
				}
			}
		case domainconfig.FieldIsBuiltin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_builtin", values[i])
			} else if value.Valid {
				_m.IsBuiltin = value.Bool
			}
		case domainconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case domainconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DomainConfig.
// This includes values selected through modifiers, order, etc.
func (_m *DomainConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DomainConfig.
// Note that you need to call DomainConfig.Unwrap() before calling this method if this DomainConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DomainConfig) Update() *DomainConfigUpdateOne {
	return NewDomainConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DomainConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DomainConfig) Unwrap() *DomainConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DomainConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DomainConfig) String() string {
	var builder strings.Builder
	builder.WriteString("DomainConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("domain_id=")
	builder.WriteString(_m.DomainID)
	builder.WriteString(", ")
	builder.WriteString("domain_name=")
	builder.WriteString(_m.DomainName)
	builder.WriteString(", ")
	builder.WriteString("ingestion_playbook=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngestionPlaybook))
	builder.WriteString(", ")
	builder.WriteString("query_playbook=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryPlaybook))
	builder.WriteString(", ")
	builder.WriteString("management_playbook=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManagementPlaybook))
	builder.WriteString(", ")
	builder.WriteString("thresholds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Thresholds))
	builder.WriteString(", ")
	builder.WriteString("is_builtin=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBuiltin))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DomainConfigs is a parsable slice of DomainConfig.
type DomainConfigs []*DomainConfig
