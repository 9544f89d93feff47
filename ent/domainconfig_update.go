// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/intakehq/intake/ent/domainconfig"
	"github.com/intakehq/intake/ent/predicate"
	"github.com/intakehq/intake/pkg/models"
)

// DomainConfigUpdate is the builder for updating DomainConfig entities.
type DomainConfigUpdate struct {
	config
	hooks    []Hook
	mutation *DomainConfigMutation
}

// Where appends a list predicates to the DomainConfigUpdate builder.
func (_u *DomainConfigUpdate) Where(ps ...predicate.DomainConfig) *DomainConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *DomainConfigUpdate) SetTenantID(v string) *DomainConfigUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableTenantID(v *string) *DomainConfigUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *DomainConfigUpdate) SetDomainID(v string) *DomainConfigUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableDomainID(v *string) *DomainConfigUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetDomainName sets the "domain_name" field.
func (_u *DomainConfigUpdate) SetDomainName(v string) *DomainConfigUpdate {
	_u.mutation.SetDomainName(v)
	return _u
}

// SetNillableDomainName sets the "domain_name" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableDomainName(v *string) *DomainConfigUpdate {
	if v != nil {
		_u.SetDomainName(*v)
	}
	return _u
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (_u *DomainConfigUpdate) SetIngestionPlaybook(v models.Playbook) *DomainConfigUpdate {
	_u.mutation.SetIngestionPlaybook(v)
	return _u
}

// SetNillableIngestionPlaybook sets the "ingestion_playbook" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableIngestionPlaybook(v *models.Playbook) *DomainConfigUpdate {
	if v != nil {
		_u.SetIngestionPlaybook(*v)
	}
	return _u
}

// SetQueryPlaybook sets the "query_playbook" field.
func (_u *DomainConfigUpdate) SetQueryPlaybook(v models.Playbook) *DomainConfigUpdate {
	_u.mutation.SetQueryPlaybook(v)
	return _u
}

// SetNillableQueryPlaybook sets the "query_playbook" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableQueryPlaybook(v *models.Playbook) *DomainConfigUpdate {
	if v != nil {
		_u.SetQueryPlaybook(*v)
	}
	return _u
}

// SetManagementPlaybook sets the "management_playbook" field.
func (_u *DomainConfigUpdate) SetManagementPlaybook(v models.Playbook) *DomainConfigUpdate {
	_u.mutation.SetManagementPlaybook(v)
	return _u
}

// SetNillableManagementPlaybook sets the "management_playbook" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableManagementPlaybook(v *models.Playbook) *DomainConfigUpdate {
	if v != nil {
		_u.SetManagementPlaybook(*v)
	}
	return _u
}

// SetThresholds sets the "thresholds" field.
func (_u *DomainConfigUpdate) SetThresholds(v models.Thresholds) *DomainConfigUpdate {
	_u.mutation.SetThresholds(v)
	return _u
}

// SetNillableThresholds sets the "thresholds" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableThresholds(v *models.Thresholds) *DomainConfigUpdate {
	if v != nil {
		_u.SetThresholds(*v)
	}
	return _u
}

// ClearThresholds clears the value of the "thresholds" field.
func (_u *DomainConfigUpdate) ClearThresholds() *DomainConfigUpdate {
	_u.mutation.ClearThresholds()
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *DomainConfigUpdate) SetIsBuiltin(v bool) *DomainConfigUpdate {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *DomainConfigUpdate) SetNillableIsBuiltin(v *bool) *DomainConfigUpdate {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainConfigUpdate) SetUpdatedAt(v time.Time) *DomainConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DomainConfigMutation object of the builder.
func (_u *DomainConfigUpdate) Mutation() *DomainConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DomainConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(domainconfig.Table, domainconfig.Columns, sqlgraph.NewFieldSpec(domainconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(domainconfig.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(domainconfig.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainName(); ok {
		_spec.SetField(domainconfig.FieldDomainName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestionPlaybook(); ok {
		_spec.SetField(domainconfig.FieldIngestionPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryPlaybook(); ok {
		_spec.SetField(domainconfig.FieldQueryPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ManagementPlaybook(); ok {
		_spec.SetField(domainconfig.FieldManagementPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Thresholds(); ok {
		_spec.SetField(domainconfig.FieldThresholds, field.TypeJSON, value)
	}
	if _u.mutation.ThresholdsCleared() {
		_spec.ClearField(domainconfig.FieldThresholds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(domainconfig.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainConfigUpdateOne is the builder for updating a single DomainConfig entity.
type DomainConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainConfigMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *DomainConfigUpdateOne) SetTenantID(v string) *DomainConfigUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableTenantID(v *string) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *DomainConfigUpdateOne) SetDomainID(v string) *DomainConfigUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableDomainID(v *string) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetDomainName sets the "domain_name" field.
func (_u *DomainConfigUpdateOne) SetDomainName(v string) *DomainConfigUpdateOne {
	_u.mutation.SetDomainName(v)
	return _u
}

// SetNillableDomainName sets the "domain_name" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableDomainName(v *string) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetDomainName(*v)
	}
	return _u
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (_u *DomainConfigUpdateOne) SetIngestionPlaybook(v models.Playbook) *DomainConfigUpdateOne {
	_u.mutation.SetIngestionPlaybook(v)
	return _u
}

// SetNillableIngestionPlaybook sets the "ingestion_playbook" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableIngestionPlaybook(v *models.Playbook) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetIngestionPlaybook(*v)
	}
	return _u
}

// SetQueryPlaybook sets the "query_playbook" field.
func (_u *DomainConfigUpdateOne) SetQueryPlaybook(v models.Playbook) *DomainConfigUpdateOne {
	_u.mutation.SetQueryPlaybook(v)
	return _u
}

// SetNillableQueryPlaybook sets the "query_playbook" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableQueryPlaybook(v *models.Playbook) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetQueryPlaybook(*v)
	}
	return _u
}

// SetManagementPlaybook sets the "management_playbook" field.
func (_u *DomainConfigUpdateOne) SetManagementPlaybook(v models.Playbook) *DomainConfigUpdateOne {
	_u.mutation.SetManagementPlaybook(v)
	return _u
}

// SetNillableManagementPlaybook sets the "management_playbook" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableManagementPlaybook(v *models.Playbook) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetManagementPlaybook(*v)
	}
	return _u
}

// SetThresholds sets the "thresholds" field.
func (_u *DomainConfigUpdateOne) SetThresholds(v models.Thresholds) *DomainConfigUpdateOne {
	_u.mutation.SetThresholds(v)
	return _u
}

// SetNillableThresholds sets the "thresholds" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableThresholds(v *models.Thresholds) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetThresholds(*v)
	}
	return _u
}

// ClearThresholds clears the value of the "thresholds" field.
func (_u *DomainConfigUpdateOne) ClearThresholds() *DomainConfigUpdateOne {
	_u.mutation.ClearThresholds()
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *DomainConfigUpdateOne) SetIsBuiltin(v bool) *DomainConfigUpdateOne {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *DomainConfigUpdateOne) SetNillableIsBuiltin(v *bool) *DomainConfigUpdateOne {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainConfigUpdateOne) SetUpdatedAt(v time.Time) *DomainConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DomainConfigMutation object of the builder.
func (_u *DomainConfigUpdateOne) Mutation() *DomainConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainConfigUpdate builder.
func (_u *DomainConfigUpdateOne) Where(ps ...predicate.DomainConfig) *DomainConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainConfigUpdateOne) Select(field string, fields ...string) *DomainConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainConfig entity.
func (_u *DomainConfigUpdateOne) Save(ctx context.Context) (*DomainConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainConfigUpdateOne) SaveX(ctx context.Context) *DomainConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DomainConfigUpdateOne) sqlSave(ctx context.Context) (_node *DomainConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(domainconfig.Table, domainconfig.Columns, sqlgraph.NewFieldSpec(domainconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainconfig.FieldID)
		for _, f := range fields {
			if !domainconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(domainconfig.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(domainconfig.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainName(); ok {
		_spec.SetField(domainconfig.FieldDomainName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestionPlaybook(); ok {
		_spec.SetField(domainconfig.FieldIngestionPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryPlaybook(); ok {
		_spec.SetField(domainconfig.FieldQueryPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ManagementPlaybook(); ok {
		_spec.SetField(domainconfig.FieldManagementPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Thresholds(); ok {
		_spec.SetField(domainconfig.FieldThresholds, field.TypeJSON, value)
	}
	if _u.mutation.ThresholdsCleared() {
		_spec.ClearField(domainconfig.FieldThresholds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(domainconfig.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DomainConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
