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
	"github.com/intakehq/intake/pkg/models"
)

// DomainConfigCreate is the builder for creating a DomainConfig entity.
type DomainConfigCreate struct {
	config
	mutation *DomainConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *DomainConfigCreate) SetTenantID(v string) *DomainConfigCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *DomainConfigCreate) SetDomainID(v string) *DomainConfigCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetDomainName sets the "domain_name" field.
func (_c *DomainConfigCreate) SetDomainName(v string) *DomainConfigCreate {
	_c.mutation.SetDomainName(v)
	return _c
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (_c *DomainConfigCreate) SetIngestionPlaybook(v models.Playbook) *DomainConfigCreate {
	_c.mutation.SetIngestionPlaybook(v)
	return _c
}

// SetQueryPlaybook sets the "query_playbook" field.
func (_c *DomainConfigCreate) SetQueryPlaybook(v models.Playbook) *DomainConfigCreate {
	_c.mutation.SetQueryPlaybook(v)
	return _c
}

// SetManagementPlaybook sets the "management_playbook" field.
func (_c *DomainConfigCreate) SetManagementPlaybook(v models.Playbook) *DomainConfigCreate {
	_c.mutation.SetManagementPlaybook(v)
	return _c
}

// SetThresholds sets the "thresholds" field.
func (_c *DomainConfigCreate) SetThresholds(v models.Thresholds) *DomainConfigCreate {
	_c.mutation.SetThresholds(v)
	return _c
}

// SetNillableThresholds sets the "thresholds" field if the given value is not nil.
func (_c *DomainConfigCreate) SetNillableThresholds(v *models.Thresholds) *DomainConfigCreate {
	if v != nil {
		_c.SetThresholds(*v)
	}
	return _c
}

// SetIsBuiltin sets the "is_builtin" field.
func (_c *DomainConfigCreate) SetIsBuiltin(v bool) *DomainConfigCreate {
	_c.mutation.SetIsBuiltin(v)
	return _c
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_c *DomainConfigCreate) SetNillableIsBuiltin(v *bool) *DomainConfigCreate {
	if v != nil {
		_c.SetIsBuiltin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DomainConfigCreate) SetCreatedAt(v time.Time) *DomainConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DomainConfigCreate) SetNillableCreatedAt(v *time.Time) *DomainConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DomainConfigCreate) SetUpdatedAt(v time.Time) *DomainConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DomainConfigCreate) SetNillableUpdatedAt(v *time.Time) *DomainConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DomainConfigMutation object of the builder.
func (_c *DomainConfigCreate) Mutation() *DomainConfigMutation {
	return _c.mutation
}

// Save creates the DomainConfig in the database.
func (_c *DomainConfigCreate) Save(ctx context.Context) (*DomainConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainConfigCreate) SaveX(ctx context.Context) *DomainConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainConfigCreate) defaults() {
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		v := domainconfig.DefaultIsBuiltin
		_c.mutation.SetIsBuiltin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := domainconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := domainconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainConfigCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DomainConfig.tenant_id"`)}
	}
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "DomainConfig.domain_id"`)}
	}
	if _, ok := _c.mutation.DomainName(); !ok {
		return &ValidationError{Name: "domain_name", err: errors.New(`ent: missing required field "DomainConfig.domain_name"`)}
	}
	if _, ok := _c.mutation.IngestionPlaybook(); !ok {
		return &ValidationError{Name: "ingestion_playbook", err: errors.New(`ent: missing required field "DomainConfig.ingestion_playbook"`)}
	}
	if _, ok := _c.mutation.QueryPlaybook(); !ok {
		return &ValidationError{Name: "query_playbook", err: errors.New(`ent: missing required field "DomainConfig.query_playbook"`)}
	}
	if _, ok := _c.mutation.ManagementPlaybook(); !ok {
		return &ValidationError{Name: "management_playbook", err: errors.New(`ent: missing required field "DomainConfig.management_playbook"`)}
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		return &ValidationError{Name: "is_builtin", err: errors.New(`ent: missing required field "DomainConfig.is_builtin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DomainConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DomainConfig.updated_at"`)}
	}
	return nil
}

func (_c *DomainConfigCreate) sqlSave(ctx context.Context) (*DomainConfig, error) {
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

func (_c *DomainConfigCreate) createSpec() (*DomainConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domainconfig.Table, sqlgraph.NewFieldSpec(domainconfig.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(domainconfig.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(domainconfig.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.DomainName(); ok {
		_spec.SetField(domainconfig.FieldDomainName, field.TypeString, value)
		_node.DomainName = value
	}
	if value, ok := _c.mutation.IngestionPlaybook(); ok {
		_spec.SetField(domainconfig.FieldIngestionPlaybook, field.TypeJSON, value)
		_node.IngestionPlaybook = value
	}
	if value, ok := _c.mutation.QueryPlaybook(); ok {
		_spec.SetField(domainconfig.FieldQueryPlaybook, field.TypeJSON, value)
		_node.QueryPlaybook = value
	}
	if value, ok := _c.mutation.ManagementPlaybook(); ok {
		_spec.SetField(domainconfig.FieldManagementPlaybook, field.TypeJSON, value)
		_node.ManagementPlaybook = value
	}
	if value, ok := _c.mutation.Thresholds(); ok {
		_spec.SetField(domainconfig.FieldThresholds, field.TypeJSON, value)
		_node.Thresholds = value
	}
	if value, ok := _c.mutation.IsBuiltin(); ok {
		_spec.SetField(domainconfig.FieldIsBuiltin, field.TypeBool, value)
		_node.IsBuiltin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(domainconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(domainconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DomainConfig.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DomainConfigUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *DomainConfigCreate) OnConflict(opts ...sql.ConflictOption) *DomainConfigUpsertOne {
	_c.conflict = opts
	return &DomainConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DomainConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DomainConfigCreate) OnConflictColumns(columns ...string) *DomainConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DomainConfigUpsertOne{
		create: _c,
	}
}

type (
	// DomainConfigUpsertOne is the builder for "upsert"-ing
	//  one DomainConfig node.
	DomainConfigUpsertOne struct {
		create *DomainConfigCreate
	}

	// DomainConfigUpsert is the "OnConflict" setter.
	DomainConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *DomainConfigUpsert) SetTenantID(v string) *DomainConfigUpsert {
	u.Set(domainconfig.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateTenantID() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldTenantID)
	return u
}

// SetDomainID sets the "domain_id" field.
func (u *DomainConfigUpsert) SetDomainID(v string) *DomainConfigUpsert {
	u.Set(domainconfig.FieldDomainID, v)
	return u
}

// UpdateDomainID sets the "domain_id" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateDomainID() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldDomainID)
	return u
}

// SetDomainName sets the "domain_name" field.
func (u *DomainConfigUpsert) SetDomainName(v string) *DomainConfigUpsert {
	u.Set(domainconfig.FieldDomainName, v)
	return u
}

// UpdateDomainName sets the "domain_name" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateDomainName() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldDomainName)
	return u
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (u *DomainConfigUpsert) SetIngestionPlaybook(v models.Playbook) *DomainConfigUpsert {
	u.Set(domainconfig.FieldIngestionPlaybook, v)
	return u
}

// UpdateIngestionPlaybook sets the "ingestion_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateIngestionPlaybook() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldIngestionPlaybook)
	return u
}

// SetQueryPlaybook sets the "query_playbook" field.
func (u *DomainConfigUpsert) SetQueryPlaybook(v models.Playbook) *DomainConfigUpsert {
	u.Set(domainconfig.FieldQueryPlaybook, v)
	return u
}

// UpdateQueryPlaybook sets the "query_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateQueryPlaybook() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldQueryPlaybook)
	return u
}

// SetManagementPlaybook sets the "management_playbook" field.
func (u *DomainConfigUpsert) SetManagementPlaybook(v models.Playbook) *DomainConfigUpsert {
	u.Set(domainconfig.FieldManagementPlaybook, v)
	return u
}

// UpdateManagementPlaybook sets the "management_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateManagementPlaybook() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldManagementPlaybook)
	return u
}

// SetThresholds sets the "thresholds" field.
func (u *DomainConfigUpsert) SetThresholds(v models.Thresholds) *DomainConfigUpsert {
	u.Set(domainconfig.FieldThresholds, v)
	return u
}

// UpdateThresholds sets the "thresholds" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateThresholds() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldThresholds)
	return u
}

// ClearThresholds clears the value of the "thresholds" field.
func (u *DomainConfigUpsert) ClearThresholds() *DomainConfigUpsert {
	u.SetNull(domainconfig.FieldThresholds)
	return u
}

// SetIsBuiltin sets the "is_builtin" field.
func (u *DomainConfigUpsert) SetIsBuiltin(v bool) *DomainConfigUpsert {
	u.Set(domainconfig.FieldIsBuiltin, v)
	return u
}

// UpdateIsBuiltin sets the "is_builtin" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateIsBuiltin() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldIsBuiltin)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DomainConfigUpsert) SetUpdatedAt(v time.Time) *DomainConfigUpsert {
	u.Set(domainconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DomainConfigUpsert) UpdateUpdatedAt() *DomainConfigUpsert {
	u.SetExcluded(domainconfig.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DomainConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DomainConfigUpsertOne) UpdateNewValues() *DomainConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(domainconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DomainConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DomainConfigUpsertOne) Ignore() *DomainConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DomainConfigUpsertOne) DoNothing() *DomainConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DomainConfigCreate.OnConflict
// documentation for more info.
func (u *DomainConfigUpsertOne) Update(set func(*DomainConfigUpsert)) *DomainConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DomainConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *DomainConfigUpsertOne) SetTenantID(v string) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateTenantID() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateTenantID()
	})
}

// SetDomainID sets the "domain_id" field.
func (u *DomainConfigUpsertOne) SetDomainID(v string) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetDomainID(v)
	})
}

// UpdateDomainID sets the "domain_id" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateDomainID() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateDomainID()
	})
}

// SetDomainName sets the "domain_name" field.
func (u *DomainConfigUpsertOne) SetDomainName(v string) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetDomainName(v)
	})
}

// UpdateDomainName sets the "domain_name" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateDomainName() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateDomainName()
	})
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (u *DomainConfigUpsertOne) SetIngestionPlaybook(v models.Playbook) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetIngestionPlaybook(v)
	})
}

// UpdateIngestionPlaybook sets the "ingestion_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateIngestionPlaybook() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateIngestionPlaybook()
	})
}

// SetQueryPlaybook sets the "query_playbook" field.
func (u *DomainConfigUpsertOne) SetQueryPlaybook(v models.Playbook) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetQueryPlaybook(v)
	})
}

// UpdateQueryPlaybook sets the "query_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateQueryPlaybook() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateQueryPlaybook()
	})
}

// SetManagementPlaybook sets the "management_playbook" field.
func (u *DomainConfigUpsertOne) SetManagementPlaybook(v models.Playbook) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetManagementPlaybook(v)
	})
}

// UpdateManagementPlaybook sets the "management_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateManagementPlaybook() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateManagementPlaybook()
	})
}

// SetThresholds sets the "thresholds" field.
func (u *DomainConfigUpsertOne) SetThresholds(v models.Thresholds) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetThresholds(v)
	})
}

// UpdateThresholds sets the "thresholds" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateThresholds() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateThresholds()
	})
}

// ClearThresholds clears the value of the "thresholds" field.
func (u *DomainConfigUpsertOne) ClearThresholds() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.ClearThresholds()
	})
}

// SetIsBuiltin sets the "is_builtin" field.
func (u *DomainConfigUpsertOne) SetIsBuiltin(v bool) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetIsBuiltin(v)
	})
}

// UpdateIsBuiltin sets the "is_builtin" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateIsBuiltin() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateIsBuiltin()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DomainConfigUpsertOne) SetUpdatedAt(v time.Time) *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DomainConfigUpsertOne) UpdateUpdatedAt() *DomainConfigUpsertOne {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DomainConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DomainConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DomainConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DomainConfigUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DomainConfigUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DomainConfigCreateBulk is the builder for creating many DomainConfig entities in bulk.
type DomainConfigCreateBulk struct {
	config
	err      error
	builders []*DomainConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the DomainConfig entities in the database.
func (_c *DomainConfigCreateBulk) Save(ctx context.Context) ([]*DomainConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DomainConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainConfigMutation)
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
func (_c *DomainConfigCreateBulk) SaveX(ctx context.Context) []*DomainConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DomainConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DomainConfigUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *DomainConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *DomainConfigUpsertBulk {
	_c.conflict = opts
	return &DomainConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DomainConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DomainConfigCreateBulk) OnConflictColumns(columns ...string) *DomainConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DomainConfigUpsertBulk{
		create: _c,
	}
}

// DomainConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of DomainConfig nodes.
type DomainConfigUpsertBulk struct {
	create *DomainConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DomainConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DomainConfigUpsertBulk) UpdateNewValues() *DomainConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(domainconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DomainConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DomainConfigUpsertBulk) Ignore() *DomainConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DomainConfigUpsertBulk) DoNothing() *DomainConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DomainConfigCreateBulk.OnConflict
// documentation for more info.
func (u *DomainConfigUpsertBulk) Update(set func(*DomainConfigUpsert)) *DomainConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DomainConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *DomainConfigUpsertBulk) SetTenantID(v string) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateTenantID() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateTenantID()
	})
}

// SetDomainID sets the "domain_id" field.
func (u *DomainConfigUpsertBulk) SetDomainID(v string) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetDomainID(v)
	})
}

// UpdateDomainID sets the "domain_id" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateDomainID() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateDomainID()
	})
}

// SetDomainName sets the "domain_name" field.
func (u *DomainConfigUpsertBulk) SetDomainName(v string) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetDomainName(v)
	})
}

// UpdateDomainName sets the "domain_name" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateDomainName() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateDomainName()
	})
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (u *DomainConfigUpsertBulk) SetIngestionPlaybook(v models.Playbook) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetIngestionPlaybook(v)
	})
}

// UpdateIngestionPlaybook sets the "ingestion_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateIngestionPlaybook() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateIngestionPlaybook()
	})
}

// SetQueryPlaybook sets the "query_playbook" field.
func (u *DomainConfigUpsertBulk) SetQueryPlaybook(v models.Playbook) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetQueryPlaybook(v)
	})
}

// UpdateQueryPlaybook sets the "query_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateQueryPlaybook() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateQueryPlaybook()
	})
}

// SetManagementPlaybook sets the "management_playbook" field.
func (u *DomainConfigUpsertBulk) SetManagementPlaybook(v models.Playbook) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetManagementPlaybook(v)
	})
}

// UpdateManagementPlaybook sets the "management_playbook" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateManagementPlaybook() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateManagementPlaybook()
	})
}

// SetThresholds sets the "thresholds" field.
func (u *DomainConfigUpsertBulk) SetThresholds(v models.Thresholds) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetThresholds(v)
	})
}

// UpdateThresholds sets the "thresholds" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateThresholds() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateThresholds()
	})
}

// ClearThresholds clears the value of the "thresholds" field.
func (u *DomainConfigUpsertBulk) ClearThresholds() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.ClearThresholds()
	})
}

// SetIsBuiltin sets the "is_builtin" field.
func (u *DomainConfigUpsertBulk) SetIsBuiltin(v bool) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetIsBuiltin(v)
	})
}

// UpdateIsBuiltin sets the "is_builtin" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateIsBuiltin() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateIsBuiltin()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DomainConfigUpsertBulk) SetUpdatedAt(v time.Time) *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DomainConfigUpsertBulk) UpdateUpdatedAt() *DomainConfigUpsertBulk {
	return u.Update(func(s *DomainConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DomainConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DomainConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DomainConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DomainConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
