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
	"github.com/intakehq/intake/ent/agentdef"
)

// AgentDefCreate is the builder for creating a AgentDef entity.
type AgentDefCreate struct {
	config
	mutation *AgentDefMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *AgentDefCreate) SetTenantID(v string) *AgentDefCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentDefCreate) SetAgentID(v string) *AgentDefCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentDefCreate) SetAgentName(v string) *AgentDefCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetAgentClass sets the "agent_class" field.
func (_c *AgentDefCreate) SetAgentClass(v string) *AgentDefCreate {
	_c.mutation.SetAgentClass(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentDefCreate) SetSystemPrompt(v string) *AgentDefCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetTools sets the "tools" field.
func (_c *AgentDefCreate) SetTools(v []string) *AgentDefCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetOutputSchema sets the "output_schema" field.
func (_c *AgentDefCreate) SetOutputSchema(v map[string]string) *AgentDefCreate {
	_c.mutation.SetOutputSchema(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *AgentDefCreate) SetWeight(v float64) *AgentDefCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *AgentDefCreate) SetNillableWeight(v *float64) *AgentDefCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetStrict sets the "strict" field.
func (_c *AgentDefCreate) SetStrict(v bool) *AgentDefCreate {
	_c.mutation.SetStrict(v)
	return _c
}

// SetNillableStrict sets the "strict" field if the given value is not nil.
func (_c *AgentDefCreate) SetNillableStrict(v *bool) *AgentDefCreate {
	if v != nil {
		_c.SetStrict(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentDefCreate) SetVersion(v int) *AgentDefCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentDefCreate) SetNillableVersion(v *int) *AgentDefCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsBuiltin sets the "is_builtin" field.
func (_c *AgentDefCreate) SetIsBuiltin(v bool) *AgentDefCreate {
	_c.mutation.SetIsBuiltin(v)
	return _c
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_c *AgentDefCreate) SetNillableIsBuiltin(v *bool) *AgentDefCreate {
	if v != nil {
		_c.SetIsBuiltin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentDefCreate) SetCreatedAt(v time.Time) *AgentDefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentDefCreate) SetNillableCreatedAt(v *time.Time) *AgentDefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentDefCreate) SetUpdatedAt(v time.Time) *AgentDefCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentDefCreate) SetNillableUpdatedAt(v *time.Time) *AgentDefCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentDefMutation object of the builder.
func (_c *AgentDefCreate) Mutation() *AgentDefMutation {
	return _c.mutation
}

// Save creates the AgentDef in the database.
func (_c *AgentDefCreate) Save(ctx context.Context) (*AgentDef, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentDefCreate) SaveX(ctx context.Context) *AgentDef {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentDefCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := agentdef.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.Strict(); !ok {
		v := agentdef.DefaultStrict
		_c.mutation.SetStrict(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agentdef.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		v := agentdef.DefaultIsBuiltin
		_c.mutation.SetIsBuiltin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentdef.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentdef.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentDefCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AgentDef.tenant_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentDef.agent_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentDef.agent_name"`)}
	}
	if _, ok := _c.mutation.AgentClass(); !ok {
		return &ValidationError{Name: "agent_class", err: errors.New(`ent: missing required field "AgentDef.agent_class"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "AgentDef.system_prompt"`)}
	}
	if v, ok := _c.mutation.SystemPrompt(); ok {
		if err := agentdef.SystemPromptValidator(v); err != nil {
			return &ValidationError{Name: "system_prompt", err: fmt.Errorf(`ent: validator failed for field "AgentDef.system_prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tools(); !ok {
		return &ValidationError{Name: "tools", err: errors.New(`ent: missing required field "AgentDef.tools"`)}
	}
	if _, ok := _c.mutation.OutputSchema(); !ok {
		return &ValidationError{Name: "output_schema", err: errors.New(`ent: missing required field "AgentDef.output_schema"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "AgentDef.weight"`)}
	}
	if v, ok := _c.mutation.Weight(); ok {
		if err := agentdef.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "AgentDef.weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strict(); !ok {
		return &ValidationError{Name: "strict", err: errors.New(`ent: missing required field "AgentDef.strict"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentDef.version"`)}
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		return &ValidationError{Name: "is_builtin", err: errors.New(`ent: missing required field "AgentDef.is_builtin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentDef.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentDef.updated_at"`)}
	}
	return nil
}

func (_c *AgentDefCreate) sqlSave(ctx context.Context) (*AgentDef, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentDefCreate) createSpec() (*AgentDef, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentDef{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentdef.Table, sqlgraph.NewFieldSpec(agentdef.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(agentdef.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentdef.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentdef.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.AgentClass(); ok {
		_spec.SetField(agentdef.FieldAgentClass, field.TypeString, value)
		_node.AgentClass = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdef.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(agentdef.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.OutputSchema(); ok {
		_spec.SetField(agentdef.FieldOutputSchema, field.TypeJSON, value)
		_node.OutputSchema = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(agentdef.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Strict(); ok {
		_spec.SetField(agentdef.FieldStrict, field.TypeBool, value)
		_node.Strict = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentdef.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsBuiltin(); ok {
		_spec.SetField(agentdef.FieldIsBuiltin, field.TypeBool, value)
		_node.IsBuiltin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentdef.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdef.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentDef.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentDefUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentDefCreate) OnConflict(opts ...sql.ConflictOption) *AgentDefUpsertOne {
	_c.conflict = opts
	return &AgentDefUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentDef.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentDefCreate) OnConflictColumns(columns ...string) *AgentDefUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentDefUpsertOne{
		create: _c,
	}
}

type (
	// AgentDefUpsertOne is the builder for "upsert"-ing
	//  one AgentDef node.
	AgentDefUpsertOne struct {
		create *AgentDefCreate
	}

	// AgentDefUpsert is the "OnConflict" setter.
	AgentDefUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *AgentDefUpsert) SetTenantID(v string) *AgentDefUpsert {
	u.Set(agentdef.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateTenantID() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldTenantID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *AgentDefUpsert) SetAgentID(v string) *AgentDefUpsert {
	u.Set(agentdef.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateAgentID() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldAgentID)
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AgentDefUpsert) SetAgentName(v string) *AgentDefUpsert {
	u.Set(agentdef.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateAgentName() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldAgentName)
	return u
}

// SetAgentClass sets the "agent_class" field.
func (u *AgentDefUpsert) SetAgentClass(v string) *AgentDefUpsert {
	u.Set(agentdef.FieldAgentClass, v)
	return u
}

// UpdateAgentClass sets the "agent_class" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateAgentClass() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldAgentClass)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentDefUpsert) SetSystemPrompt(v string) *AgentDefUpsert {
	u.Set(agentdef.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateSystemPrompt() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldSystemPrompt)
	return u
}

// SetTools sets the "tools" field.
func (u *AgentDefUpsert) SetTools(v []string) *AgentDefUpsert {
	u.Set(agentdef.FieldTools, v)
	return u
}

// UpdateTools sets the "tools" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateTools() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldTools)
	return u
}

// SetOutputSchema sets the "output_schema" field.
func (u *AgentDefUpsert) SetOutputSchema(v map[string]string) *AgentDefUpsert {
	u.Set(agentdef.FieldOutputSchema, v)
	return u
}

// UpdateOutputSchema sets the "output_schema" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateOutputSchema() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldOutputSchema)
	return u
}

// SetWeight sets the "weight" field.
func (u *AgentDefUpsert) SetWeight(v float64) *AgentDefUpsert {
	u.Set(agentdef.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateWeight() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *AgentDefUpsert) AddWeight(v float64) *AgentDefUpsert {
	u.Add(agentdef.FieldWeight, v)
	return u
}

// SetStrict sets the "strict" field.
func (u *AgentDefUpsert) SetStrict(v bool) *AgentDefUpsert {
	u.Set(agentdef.FieldStrict, v)
	return u
}

// UpdateStrict sets the "strict" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateStrict() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldStrict)
	return u
}

// SetVersion sets the "version" field.
func (u *AgentDefUpsert) SetVersion(v int) *AgentDefUpsert {
	u.Set(agentdef.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateVersion() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *AgentDefUpsert) AddVersion(v int) *AgentDefUpsert {
	u.Add(agentdef.FieldVersion, v)
	return u
}

// SetIsBuiltin sets the "is_builtin" field.
func (u *AgentDefUpsert) SetIsBuiltin(v bool) *AgentDefUpsert {
	u.Set(agentdef.FieldIsBuiltin, v)
	return u
}

// UpdateIsBuiltin sets the "is_builtin" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateIsBuiltin() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldIsBuiltin)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentDefUpsert) SetUpdatedAt(v time.Time) *AgentDefUpsert {
	u.Set(agentdef.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentDefUpsert) UpdateUpdatedAt() *AgentDefUpsert {
	u.SetExcluded(agentdef.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentDef.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentDefUpsertOne) UpdateNewValues() *AgentDefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentdef.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentDef.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentDefUpsertOne) Ignore() *AgentDefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentDefUpsertOne) DoNothing() *AgentDefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentDefCreate.OnConflict
// documentation for more info.
func (u *AgentDefUpsertOne) Update(set func(*AgentDefUpsert)) *AgentDefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentDefUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *AgentDefUpsertOne) SetTenantID(v string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateTenantID() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateTenantID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *AgentDefUpsertOne) SetAgentID(v string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateAgentID() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateAgentID()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *AgentDefUpsertOne) SetAgentName(v string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateAgentName() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateAgentName()
	})
}

// SetAgentClass sets the "agent_class" field.
func (u *AgentDefUpsertOne) SetAgentClass(v string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetAgentClass(v)
	})
}

// UpdateAgentClass sets the "agent_class" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateAgentClass() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateAgentClass()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentDefUpsertOne) SetSystemPrompt(v string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateSystemPrompt() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetTools sets the "tools" field.
func (u *AgentDefUpsertOne) SetTools(v []string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetTools(v)
	})
}

// UpdateTools sets the "tools" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateTools() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateTools()
	})
}

// SetOutputSchema sets the "output_schema" field.
func (u *AgentDefUpsertOne) SetOutputSchema(v map[string]string) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetOutputSchema(v)
	})
}

// UpdateOutputSchema sets the "output_schema" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateOutputSchema() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateOutputSchema()
	})
}

// SetWeight sets the "weight" field.
func (u *AgentDefUpsertOne) SetWeight(v float64) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *AgentDefUpsertOne) AddWeight(v float64) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateWeight() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateWeight()
	})
}

// SetStrict sets the "strict" field.
func (u *AgentDefUpsertOne) SetStrict(v bool) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetStrict(v)
	})
}

// UpdateStrict sets the "strict" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateStrict() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateStrict()
	})
}

// SetVersion sets the "version" field.
func (u *AgentDefUpsertOne) SetVersion(v int) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AgentDefUpsertOne) AddVersion(v int) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateVersion() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateVersion()
	})
}

// SetIsBuiltin sets the "is_builtin" field.
func (u *AgentDefUpsertOne) SetIsBuiltin(v bool) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetIsBuiltin(v)
	})
}

// UpdateIsBuiltin sets the "is_builtin" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateIsBuiltin() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateIsBuiltin()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentDefUpsertOne) SetUpdatedAt(v time.Time) *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentDefUpsertOne) UpdateUpdatedAt() *AgentDefUpsertOne {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentDefUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentDefCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentDefUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentDefUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentDefUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentDefCreateBulk is the builder for creating many AgentDef entities in bulk.
type AgentDefCreateBulk struct {
	config
	err      error
	builders []*AgentDefCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentDef entities in the database.
func (_c *AgentDefCreateBulk) Save(ctx context.Context) ([]*AgentDef, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentDef, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentDefMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentDefCreateBulk) SaveX(ctx context.Context) []*AgentDef {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentDef.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentDefUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentDefCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentDefUpsertBulk {
	_c.conflict = opts
	return &AgentDefUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentDef.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentDefCreateBulk) OnConflictColumns(columns ...string) *AgentDefUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentDefUpsertBulk{
		create: _c,
	}
}

// AgentDefUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentDef nodes.
type AgentDefUpsertBulk struct {
	create *AgentDefCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentDef.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentDefUpsertBulk) UpdateNewValues() *AgentDefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentdef.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentDef.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentDefUpsertBulk) Ignore() *AgentDefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentDefUpsertBulk) DoNothing() *AgentDefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentDefCreateBulk.OnConflict
// documentation for more info.
func (u *AgentDefUpsertBulk) Update(set func(*AgentDefUpsert)) *AgentDefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentDefUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *AgentDefUpsertBulk) SetTenantID(v string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateTenantID() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateTenantID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *AgentDefUpsertBulk) SetAgentID(v string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateAgentID() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateAgentID()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *AgentDefUpsertBulk) SetAgentName(v string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateAgentName() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateAgentName()
	})
}

// SetAgentClass sets the "agent_class" field.
func (u *AgentDefUpsertBulk) SetAgentClass(v string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetAgentClass(v)
	})
}

// UpdateAgentClass sets the "agent_class" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateAgentClass() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateAgentClass()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentDefUpsertBulk) SetSystemPrompt(v string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateSystemPrompt() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetTools sets the "tools" field.
func (u *AgentDefUpsertBulk) SetTools(v []string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetTools(v)
	})
}

// UpdateTools sets the "tools" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateTools() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateTools()
	})
}

// SetOutputSchema sets the "output_schema" field.
func (u *AgentDefUpsertBulk) SetOutputSchema(v map[string]string) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetOutputSchema(v)
	})
}

// UpdateOutputSchema sets the "output_schema" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateOutputSchema() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateOutputSchema()
	})
}

// SetWeight sets the "weight" field.
func (u *AgentDefUpsertBulk) SetWeight(v float64) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *AgentDefUpsertBulk) AddWeight(v float64) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateWeight() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateWeight()
	})
}

// SetStrict sets the "strict" field.
func (u *AgentDefUpsertBulk) SetStrict(v bool) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetStrict(v)
	})
}

// UpdateStrict sets the "strict" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateStrict() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateStrict()
	})
}

// SetVersion sets the "version" field.
func (u *AgentDefUpsertBulk) SetVersion(v int) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AgentDefUpsertBulk) AddVersion(v int) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateVersion() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateVersion()
	})
}

// SetIsBuiltin sets the "is_builtin" field.
func (u *AgentDefUpsertBulk) SetIsBuiltin(v bool) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetIsBuiltin(v)
	})
}

// UpdateIsBuiltin sets the "is_builtin" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateIsBuiltin() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateIsBuiltin()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentDefUpsertBulk) SetUpdatedAt(v time.Time) *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentDefUpsertBulk) UpdateUpdatedAt() *AgentDefUpsertBulk {
	return u.Update(func(s *AgentDefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentDefUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentDefCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentDefCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentDefUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
