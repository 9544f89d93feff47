// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/intakehq/intake/ent/agentdef"
	"github.com/intakehq/intake/ent/predicate"
)

// AgentDefUpdate is the builder for updating AgentDef entities.
type AgentDefUpdate struct {
	config
	hooks    []Hook
	mutation *AgentDefMutation
}

// Where appends a list predicates to the AgentDefUpdate builder.
func (_u *AgentDefUpdate) Where(ps ...predicate.AgentDef) *AgentDefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *AgentDefUpdate) SetTenantID(v string) *AgentDefUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableTenantID(v *string) *AgentDefUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentDefUpdate) SetAgentID(v string) *AgentDefUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableAgentID(v *string) *AgentDefUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentDefUpdate) SetAgentName(v string) *AgentDefUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableAgentName(v *string) *AgentDefUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentClass sets the "agent_class" field.
func (_u *AgentDefUpdate) SetAgentClass(v string) *AgentDefUpdate {
	_u.mutation.SetAgentClass(v)
	return _u
}

// SetNillableAgentClass sets the "agent_class" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableAgentClass(v *string) *AgentDefUpdate {
	if v != nil {
		_u.SetAgentClass(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefUpdate) SetSystemPrompt(v string) *AgentDefUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableSystemPrompt(v *string) *AgentDefUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentDefUpdate) SetTools(v []string) *AgentDefUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentDefUpdate) AppendTools(v []string) *AgentDefUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *AgentDefUpdate) SetOutputSchema(v map[string]string) *AgentDefUpdate {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// SetWeight sets the "weight" field.
func (_u *AgentDefUpdate) SetWeight(v float64) *AgentDefUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableWeight(v *float64) *AgentDefUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *AgentDefUpdate) AddWeight(v float64) *AgentDefUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetStrict sets the "strict" field.
func (_u *AgentDefUpdate) SetStrict(v bool) *AgentDefUpdate {
	_u.mutation.SetStrict(v)
	return _u
}

// SetNillableStrict sets the "strict" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableStrict(v *bool) *AgentDefUpdate {
	if v != nil {
		_u.SetStrict(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentDefUpdate) SetVersion(v int) *AgentDefUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableVersion(v *int) *AgentDefUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentDefUpdate) AddVersion(v int) *AgentDefUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *AgentDefUpdate) SetIsBuiltin(v bool) *AgentDefUpdate {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *AgentDefUpdate) SetNillableIsBuiltin(v *bool) *AgentDefUpdate {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentDefUpdate) SetUpdatedAt(v time.Time) *AgentDefUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentDefMutation object of the builder.
func (_u *AgentDefUpdate) Mutation() *AgentDefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentDefUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentDefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentDefUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentdef.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefUpdate) check() error {
	if v, ok := _u.mutation.SystemPrompt(); ok {
		if err := agentdef.SystemPromptValidator(v); err != nil {
			return &ValidationError{Name: "system_prompt", err: fmt.Errorf(`ent: validator failed for field "AgentDef.system_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weight(); ok {
		if err := agentdef.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "AgentDef.weight": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdef.Table, agentdef.Columns, sqlgraph.NewFieldSpec(agentdef.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(agentdef.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentdef.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentdef.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentClass(); ok {
		_spec.SetField(agentdef.FieldAgentClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdef.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agentdef.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdef.FieldTools, value)
		})
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(agentdef.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(agentdef.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(agentdef.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Strict(); ok {
		_spec.SetField(agentdef.FieldStrict, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentdef.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentdef.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(agentdef.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdef.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdef.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentDefUpdateOne is the builder for updating a single AgentDef entity.
type AgentDefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentDefMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *AgentDefUpdateOne) SetTenantID(v string) *AgentDefUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableTenantID(v *string) *AgentDefUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentDefUpdateOne) SetAgentID(v string) *AgentDefUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableAgentID(v *string) *AgentDefUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentDefUpdateOne) SetAgentName(v string) *AgentDefUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableAgentName(v *string) *AgentDefUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentClass sets the "agent_class" field.
func (_u *AgentDefUpdateOne) SetAgentClass(v string) *AgentDefUpdateOne {
	_u.mutation.SetAgentClass(v)
	return _u
}

// SetNillableAgentClass sets the "agent_class" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableAgentClass(v *string) *AgentDefUpdateOne {
	if v != nil {
		_u.SetAgentClass(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefUpdateOne) SetSystemPrompt(v string) *AgentDefUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableSystemPrompt(v *string) *AgentDefUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentDefUpdateOne) SetTools(v []string) *AgentDefUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentDefUpdateOne) AppendTools(v []string) *AgentDefUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *AgentDefUpdateOne) SetOutputSchema(v map[string]string) *AgentDefUpdateOne {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// SetWeight sets the "weight" field.
func (_u *AgentDefUpdateOne) SetWeight(v float64) *AgentDefUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableWeight(v *float64) *AgentDefUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *AgentDefUpdateOne) AddWeight(v float64) *AgentDefUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetStrict sets the "strict" field.
func (_u *AgentDefUpdateOne) SetStrict(v bool) *AgentDefUpdateOne {
	_u.mutation.SetStrict(v)
	return _u
}

// SetNillableStrict sets the "strict" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableStrict(v *bool) *AgentDefUpdateOne {
	if v != nil {
		_u.SetStrict(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentDefUpdateOne) SetVersion(v int) *AgentDefUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableVersion(v *int) *AgentDefUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentDefUpdateOne) AddVersion(v int) *AgentDefUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *AgentDefUpdateOne) SetIsBuiltin(v bool) *AgentDefUpdateOne {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *AgentDefUpdateOne) SetNillableIsBuiltin(v *bool) *AgentDefUpdateOne {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentDefUpdateOne) SetUpdatedAt(v time.Time) *AgentDefUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentDefMutation object of the builder.
func (_u *AgentDefUpdateOne) Mutation() *AgentDefMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentDefUpdate builder.
func (_u *AgentDefUpdateOne) Where(ps ...predicate.AgentDef) *AgentDefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentDefUpdateOne) Select(field string, fields ...string) *AgentDefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentDef entity.
func (_u *AgentDefUpdateOne) Save(ctx context.Context) (*AgentDef, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefUpdateOne) SaveX(ctx context.Context) *AgentDef {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentDefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentDefUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentdef.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefUpdateOne) check() error {
	if v, ok := _u.mutation.SystemPrompt(); ok {
		if err := agentdef.SystemPromptValidator(v); err != nil {
			return &ValidationError{Name: "system_prompt", err: fmt.Errorf(`ent: validator failed for field "AgentDef.system_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weight(); ok {
		if err := agentdef.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "AgentDef.weight": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefUpdateOne) sqlSave(ctx context.Context) (_node *AgentDef, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdef.Table, agentdef.Columns, sqlgraph.NewFieldSpec(agentdef.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentDef.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentdef.FieldID)
		for _, f := range fields {
			if !agentdef.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentdef.FieldID {
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
		_spec.SetField(agentdef.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentdef.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentdef.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentClass(); ok {
		_spec.SetField(agentdef.FieldAgentClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdef.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agentdef.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdef.FieldTools, value)
		})
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(agentdef.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(agentdef.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(agentdef.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Strict(); ok {
		_spec.SetField(agentdef.FieldStrict, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentdef.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentdef.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(agentdef.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdef.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentDef{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdef.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
