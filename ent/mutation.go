// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/intakehq/intake/ent/agentdef"
	"github.com/intakehq/intake/ent/domainconfig"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/ent/predicate"
	"github.com/intakehq/intake/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentDef     = "AgentDef"
	TypeDomainConfig = "DomainConfig"
	TypeJob          = "Job"
)

// AgentDefMutation represents an operation that mutates the AgentDef nodes in the graph.
type AgentDefMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tenant_id     *string
	agent_id      *string
	agent_name    *string
	agent_class   *string
	system_prompt *string
	tools         *[]string
	appendtools   []string
	output_schema *map[string]string
	weight        *float64
	addweight     *float64
	strict        *bool
	version       *int
	addversion    *int
	is_builtin    *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentDef, error)
	predicates    []predicate.AgentDef
}

var _ ent.Mutation = (*AgentDefMutation)(nil)

// agentdefOption allows management of the mutation configuration using functional options.
type agentdefOption func(*AgentDefMutation)

// newAgentDefMutation creates new mutation for the AgentDef entity.
func newAgentDefMutation(c config, op Op, opts ...agentdefOption) *AgentDefMutation {
	m := &AgentDefMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentDef,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentDefID sets the ID field of the mutation.
func withAgentDefID(id int) agentdefOption {
	return func(m *AgentDefMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentDef
		)
		m.oldValue = func(ctx context.Context) (*AgentDef, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentDef.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentDef sets the old AgentDef of the mutation.
func withAgentDef(node *AgentDef) agentdefOption {
	return func(m *AgentDefMutation) {
		m.oldValue = func(context.Context) (*AgentDef, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentDefMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentDefMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentDefMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentDefMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentDef.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentDefMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentDefMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentDefMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *AgentDefMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentDefMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentDefMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentDefMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentDefMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentDefMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetAgentClass sets the "agent_class" field.
func (m *AgentDefMutation) SetAgentClass(s string) {
	m.agent_class = &s
}

// AgentClass returns the value of the "agent_class" field in the mutation.
func (m *AgentDefMutation) AgentClass() (r string, exists bool) {
	v := m.agent_class
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentClass returns the old "agent_class" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldAgentClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentClass: %w", err)
	}
	return oldValue.AgentClass, nil
}

// ResetAgentClass resets all changes to the "agent_class" field.
func (m *AgentDefMutation) ResetAgentClass() {
	m.agent_class = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentDefMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentDefMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentDefMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetTools sets the "tools" field.
func (m *AgentDefMutation) SetTools(s []string) {
	m.tools = &s
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *AgentDefMutation) Tools() (r []string, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds s to the "tools" field.
func (m *AgentDefMutation) AppendTools(s []string) {
	m.appendtools = append(m.appendtools, s...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *AgentDefMutation) AppendedTools() ([]string, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ResetTools resets all changes to the "tools" field.
func (m *AgentDefMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
}

// SetOutputSchema sets the "output_schema" field.
func (m *AgentDefMutation) SetOutputSchema(value map[string]string) {
	m.output_schema = &value
}

// OutputSchema returns the value of the "output_schema" field in the mutation.
func (m *AgentDefMutation) OutputSchema() (r map[string]string, exists bool) {
	v := m.output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSchema returns the old "output_schema" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldOutputSchema(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSchema: %w", err)
	}
	return oldValue.OutputSchema, nil
}

// ResetOutputSchema resets all changes to the "output_schema" field.
func (m *AgentDefMutation) ResetOutputSchema() {
	m.output_schema = nil
}

// SetWeight sets the "weight" field.
func (m *AgentDefMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *AgentDefMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *AgentDefMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *AgentDefMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *AgentDefMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetStrict sets the "strict" field.
func (m *AgentDefMutation) SetStrict(b bool) {
	m.strict = &b
}

// Strict returns the value of the "strict" field in the mutation.
func (m *AgentDefMutation) Strict() (r bool, exists bool) {
	v := m.strict
	if v == nil {
		return
	}
	return *v, true
}

// OldStrict returns the old "strict" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldStrict(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrict: %w", err)
	}
	return oldValue.Strict, nil
}

// ResetStrict resets all changes to the "strict" field.
func (m *AgentDefMutation) ResetStrict() {
	m.strict = nil
}

// SetVersion sets the "version" field.
func (m *AgentDefMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentDefMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentDefMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentDefMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentDefMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsBuiltin sets the "is_builtin" field.
func (m *AgentDefMutation) SetIsBuiltin(b bool) {
	m.is_builtin = &b
}

// IsBuiltin returns the value of the "is_builtin" field in the mutation.
func (m *AgentDefMutation) IsBuiltin() (r bool, exists bool) {
	v := m.is_builtin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBuiltin returns the old "is_builtin" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldIsBuiltin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBuiltin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBuiltin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBuiltin: %w", err)
	}
	return oldValue.IsBuiltin, nil
}

// ResetIsBuiltin resets all changes to the "is_builtin" field.
func (m *AgentDefMutation) ResetIsBuiltin() {
	m.is_builtin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentDefMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentDefMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentDefMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentDefMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentDefMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentDef entity.
// If the AgentDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentDefMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentDefMutation builder.
func (m *AgentDefMutation) Where(ps ...predicate.AgentDef) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentDefMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentDefMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentDef, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentDefMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentDefMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentDef).
func (m *AgentDefMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentDefMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, agentdef.FieldTenantID)
	}
	if m.agent_id != nil {
		fields = append(fields, agentdef.FieldAgentID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentdef.FieldAgentName)
	}
	if m.agent_class != nil {
		fields = append(fields, agentdef.FieldAgentClass)
	}
	if m.system_prompt != nil {
		fields = append(fields, agentdef.FieldSystemPrompt)
	}
	if m.tools != nil {
		fields = append(fields, agentdef.FieldTools)
	}
	if m.output_schema != nil {
		fields = append(fields, agentdef.FieldOutputSchema)
	}
	if m.weight != nil {
		fields = append(fields, agentdef.FieldWeight)
	}
	if m.strict != nil {
		fields = append(fields, agentdef.FieldStrict)
	}
	if m.version != nil {
		fields = append(fields, agentdef.FieldVersion)
	}
	if m.is_builtin != nil {
		fields = append(fields, agentdef.FieldIsBuiltin)
	}
	if m.created_at != nil {
		fields = append(fields, agentdef.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentdef.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentDefMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentdef.FieldTenantID:
		return m.TenantID()
	case agentdef.FieldAgentID:
		return m.AgentID()
	case agentdef.FieldAgentName:
		return m.AgentName()
	case agentdef.FieldAgentClass:
		return m.AgentClass()
	case agentdef.FieldSystemPrompt:
		return m.SystemPrompt()
	case agentdef.FieldTools:
		return m.Tools()
	case agentdef.FieldOutputSchema:
		return m.OutputSchema()
	case agentdef.FieldWeight:
		return m.Weight()
	case agentdef.FieldStrict:
		return m.Strict()
	case agentdef.FieldVersion:
		return m.Version()
	case agentdef.FieldIsBuiltin:
		return m.IsBuiltin()
	case agentdef.FieldCreatedAt:
		return m.CreatedAt()
	case agentdef.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentDefMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentdef.FieldTenantID:
		return m.OldTenantID(ctx)
	case agentdef.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentdef.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentdef.FieldAgentClass:
		return m.OldAgentClass(ctx)
	case agentdef.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agentdef.FieldTools:
		return m.OldTools(ctx)
	case agentdef.FieldOutputSchema:
		return m.OldOutputSchema(ctx)
	case agentdef.FieldWeight:
		return m.OldWeight(ctx)
	case agentdef.FieldStrict:
		return m.OldStrict(ctx)
	case agentdef.FieldVersion:
		return m.OldVersion(ctx)
	case agentdef.FieldIsBuiltin:
		return m.OldIsBuiltin(ctx)
	case agentdef.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentdef.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentDef field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentdef.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agentdef.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentdef.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentdef.FieldAgentClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentClass(v)
		return nil
	case agentdef.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agentdef.FieldTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case agentdef.FieldOutputSchema:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSchema(v)
		return nil
	case agentdef.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case agentdef.FieldStrict:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrict(v)
		return nil
	case agentdef.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentdef.FieldIsBuiltin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBuiltin(v)
		return nil
	case agentdef.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentdef.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDef field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentDefMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, agentdef.FieldWeight)
	}
	if m.addversion != nil {
		fields = append(fields, agentdef.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentDefMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentdef.FieldWeight:
		return m.AddedWeight()
	case agentdef.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentdef.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case agentdef.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDef numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentDefMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentDefMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentDefMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentDef nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentDefMutation) ResetField(name string) error {
	switch name {
	case agentdef.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agentdef.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentdef.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentdef.FieldAgentClass:
		m.ResetAgentClass()
		return nil
	case agentdef.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agentdef.FieldTools:
		m.ResetTools()
		return nil
	case agentdef.FieldOutputSchema:
		m.ResetOutputSchema()
		return nil
	case agentdef.FieldWeight:
		m.ResetWeight()
		return nil
	case agentdef.FieldStrict:
		m.ResetStrict()
		return nil
	case agentdef.FieldVersion:
		m.ResetVersion()
		return nil
	case agentdef.FieldIsBuiltin:
		m.ResetIsBuiltin()
		return nil
	case agentdef.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentdef.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentDef field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentDefMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentDefMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentDefMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentDefMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentDefMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentDefMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentDefMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentDef unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentDefMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentDef edge %s", name)
}

// DomainConfigMutation represents an operation that mutates the DomainConfig nodes in the graph.
type DomainConfigMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	tenant_id           *string
	domain_id           *string
	domain_name         *string
	ingestion_playbook  *models.Playbook
	query_playbook      *models.Playbook
	management_playbook *models.Playbook
	thresholds          *models.Thresholds
	is_builtin          *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*DomainConfig, error)
	predicates          []predicate.DomainConfig
}

var _ ent.Mutation = (*DomainConfigMutation)(nil)

// domainconfigOption allows management of the mutation configuration using functional options.
type domainconfigOption func(*DomainConfigMutation)

// newDomainConfigMutation creates new mutation for the DomainConfig entity.
func newDomainConfigMutation(c config, op Op, opts ...domainconfigOption) *DomainConfigMutation {
	m := &DomainConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainConfigID sets the ID field of the mutation.
func withDomainConfigID(id int) domainconfigOption {
	return func(m *DomainConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainConfig
		)
		m.oldValue = func(ctx context.Context) (*DomainConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainConfig sets the old DomainConfig of the mutation.
func withDomainConfig(node *DomainConfig) domainconfigOption {
	return func(m *DomainConfigMutation) {
		m.oldValue = func(context.Context) (*DomainConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DomainConfigMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DomainConfigMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DomainConfigMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDomainID sets the "domain_id" field.
func (m *DomainConfigMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *DomainConfigMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *DomainConfigMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetDomainName sets the "domain_name" field.
func (m *DomainConfigMutation) SetDomainName(s string) {
	m.domain_name = &s
}

// DomainName returns the value of the "domain_name" field in the mutation.
func (m *DomainConfigMutation) DomainName() (r string, exists bool) {
	v := m.domain_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainName returns the old "domain_name" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldDomainName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainName: %w", err)
	}
	return oldValue.DomainName, nil
}

// ResetDomainName resets all changes to the "domain_name" field.
func (m *DomainConfigMutation) ResetDomainName() {
	m.domain_name = nil
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (m *DomainConfigMutation) SetIngestionPlaybook(value models.Playbook) {
	m.ingestion_playbook = &value
}

// IngestionPlaybook returns the value of the "ingestion_playbook" field in the mutation.
func (m *DomainConfigMutation) IngestionPlaybook() (r models.Playbook, exists bool) {
	v := m.ingestion_playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionPlaybook returns the old "ingestion_playbook" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldIngestionPlaybook(ctx context.Context) (v models.Playbook, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionPlaybook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionPlaybook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionPlaybook: %w", err)
	}
	return oldValue.IngestionPlaybook, nil
}

// ResetIngestionPlaybook resets all changes to the "ingestion_playbook" field.
func (m *DomainConfigMutation) ResetIngestionPlaybook() {
	m.ingestion_playbook = nil
}

// SetQueryPlaybook sets the "query_playbook" field.
func (m *DomainConfigMutation) SetQueryPlaybook(value models.Playbook) {
	m.query_playbook = &value
}

// QueryPlaybook returns the value of the "query_playbook" field in the mutation.
func (m *DomainConfigMutation) QueryPlaybook() (r models.Playbook, exists bool) {
	v := m.query_playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryPlaybook returns the old "query_playbook" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldQueryPlaybook(ctx context.Context) (v models.Playbook, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryPlaybook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryPlaybook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryPlaybook: %w", err)
	}
	return oldValue.QueryPlaybook, nil
}

// ResetQueryPlaybook resets all changes to the "query_playbook" field.
func (m *DomainConfigMutation) ResetQueryPlaybook() {
	m.query_playbook = nil
}

// SetManagementPlaybook sets the "management_playbook" field.
func (m *DomainConfigMutation) SetManagementPlaybook(value models.Playbook) {
	m.management_playbook = &value
}

// ManagementPlaybook returns the value of the "management_playbook" field in the mutation.
func (m *DomainConfigMutation) ManagementPlaybook() (r models.Playbook, exists bool) {
	v := m.management_playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldManagementPlaybook returns the old "management_playbook" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldManagementPlaybook(ctx context.Context) (v models.Playbook, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagementPlaybook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagementPlaybook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagementPlaybook: %w", err)
	}
	return oldValue.ManagementPlaybook, nil
}

// ResetManagementPlaybook resets all changes to the "management_playbook" field.
func (m *DomainConfigMutation) ResetManagementPlaybook() {
	m.management_playbook = nil
}

// SetThresholds sets the "thresholds" field.
func (m *DomainConfigMutation) SetThresholds(value models.Thresholds) {
	m.thresholds = &value
}

// Thresholds returns the value of the "thresholds" field in the mutation.
func (m *DomainConfigMutation) Thresholds() (r models.Thresholds, exists bool) {
	v := m.thresholds
	if v == nil {
		return
	}
	return *v, true
}

// OldThresholds returns the old "thresholds" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldThresholds(ctx context.Context) (v models.Thresholds, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThresholds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThresholds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThresholds: %w", err)
	}
	return oldValue.Thresholds, nil
}

// ClearThresholds clears the value of the "thresholds" field.
func (m *DomainConfigMutation) ClearThresholds() {
	m.thresholds = nil
	m.clearedFields[domainconfig.FieldThresholds] = struct{}{}
}

// ThresholdsCleared returns if the "thresholds" field was cleared in this mutation.
func (m *DomainConfigMutation) ThresholdsCleared() bool {
	_, ok := m.clearedFields[domainconfig.FieldThresholds]
	return ok
}

// ResetThresholds resets all changes to the "thresholds" field.
func (m *DomainConfigMutation) ResetThresholds() {
	m.thresholds = nil
	delete(m.clearedFields, domainconfig.FieldThresholds)
}

// SetIsBuiltin sets the "is_builtin" field.
func (m *DomainConfigMutation) SetIsBuiltin(b bool) {
	m.is_builtin = &b
}

// IsBuiltin returns the value of the "is_builtin" field in the mutation.
func (m *DomainConfigMutation) IsBuiltin() (r bool, exists bool) {
	v := m.is_builtin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBuiltin returns the old "is_builtin" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldIsBuiltin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBuiltin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBuiltin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBuiltin: %w", err)
	}
	return oldValue.IsBuiltin, nil
}

// ResetIsBuiltin resets all changes to the "is_builtin" field.
func (m *DomainConfigMutation) ResetIsBuiltin() {
	m.is_builtin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DomainConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DomainConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DomainConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DomainConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DomainConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DomainConfig entity.
// If the DomainConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DomainConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DomainConfigMutation builder.
func (m *DomainConfigMutation) Where(ps ...predicate.DomainConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainConfig).
func (m *DomainConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainConfigMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, domainconfig.FieldTenantID)
	}
	if m.domain_id != nil {
		fields = append(fields, domainconfig.FieldDomainID)
	}
	if m.domain_name != nil {
		fields = append(fields, domainconfig.FieldDomainName)
	}
	if m.ingestion_playbook != nil {
		fields = append(fields, domainconfig.FieldIngestionPlaybook)
	}
	if m.query_playbook != nil {
		fields = append(fields, domainconfig.FieldQueryPlaybook)
	}
	if m.management_playbook != nil {
		fields = append(fields, domainconfig.FieldManagementPlaybook)
	}
	if m.thresholds != nil {
		fields = append(fields, domainconfig.FieldThresholds)
	}
	if m.is_builtin != nil {
		fields = append(fields, domainconfig.FieldIsBuiltin)
	}
	if m.created_at != nil {
		fields = append(fields, domainconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, domainconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domainconfig.FieldTenantID:
		return m.TenantID()
	case domainconfig.FieldDomainID:
		return m.DomainID()
	case domainconfig.FieldDomainName:
		return m.DomainName()
	case domainconfig.FieldIngestionPlaybook:
		return m.IngestionPlaybook()
	case domainconfig.FieldQueryPlaybook:
		return m.QueryPlaybook()
	case domainconfig.FieldManagementPlaybook:
		return m.ManagementPlaybook()
	case domainconfig.FieldThresholds:
		return m.Thresholds()
	case domainconfig.FieldIsBuiltin:
		return m.IsBuiltin()
	case domainconfig.FieldCreatedAt:
		return m.CreatedAt()
	case domainconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domainconfig.FieldTenantID:
		return m.OldTenantID(ctx)
	case domainconfig.FieldDomainID:
		return m.OldDomainID(ctx)
	case domainconfig.FieldDomainName:
		return m.OldDomainName(ctx)
	case domainconfig.FieldIngestionPlaybook:
		return m.OldIngestionPlaybook(ctx)
	case domainconfig.FieldQueryPlaybook:
		return m.OldQueryPlaybook(ctx)
	case domainconfig.FieldManagementPlaybook:
		return m.OldManagementPlaybook(ctx)
	case domainconfig.FieldThresholds:
		return m.OldThresholds(ctx)
	case domainconfig.FieldIsBuiltin:
		return m.OldIsBuiltin(ctx)
	case domainconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case domainconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DomainConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domainconfig.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case domainconfig.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case domainconfig.FieldDomainName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainName(v)
		return nil
	case domainconfig.FieldIngestionPlaybook:
		v, ok := value.(models.Playbook)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionPlaybook(v)
		return nil
	case domainconfig.FieldQueryPlaybook:
		v, ok := value.(models.Playbook)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryPlaybook(v)
		return nil
	case domainconfig.FieldManagementPlaybook:
		v, ok := value.(models.Playbook)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagementPlaybook(v)
		return nil
	case domainconfig.FieldThresholds:
		v, ok := value.(models.Thresholds)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThresholds(v)
		return nil
	case domainconfig.FieldIsBuiltin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBuiltin(v)
		return nil
	case domainconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case domainconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DomainConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DomainConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(domainconfig.FieldThresholds) {
		fields = append(fields, domainconfig.FieldThresholds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainConfigMutation) ClearField(name string) error {
	switch name {
	case domainconfig.FieldThresholds:
		m.ClearThresholds()
		return nil
	}
	return fmt.Errorf("unknown DomainConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainConfigMutation) ResetField(name string) error {
	switch name {
	case domainconfig.FieldTenantID:
		m.ResetTenantID()
		return nil
	case domainconfig.FieldDomainID:
		m.ResetDomainID()
		return nil
	case domainconfig.FieldDomainName:
		m.ResetDomainName()
		return nil
	case domainconfig.FieldIngestionPlaybook:
		m.ResetIngestionPlaybook()
		return nil
	case domainconfig.FieldQueryPlaybook:
		m.ResetQueryPlaybook()
		return nil
	case domainconfig.FieldManagementPlaybook:
		m.ResetManagementPlaybook()
		return nil
	case domainconfig.FieldThresholds:
		m.ResetThresholds()
		return nil
	case domainconfig.FieldIsBuiltin:
		m.ResetIsBuiltin()
		return nil
	case domainconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case domainconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DomainConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainConfig edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	tenant_id                 *string
	user_id                   *string
	session_id                *string
	job_type                  *string
	domain_id                 *string
	envelope                  *models.JobEnvelope
	status                    *job.Status
	applied_transitions       *[]string
	appendapplied_transitions []string
	result                    **models.JobResult
	clarification             *map[string]interface{}
	clarification_consumed    *bool
	failure_kind              *string
	failure_message           *string
	record_id                 *string
	pod_id                    *string
	deadline_at               *time.Time
	created_at                *time.Time
	started_at                *time.Time
	completed_at              *time.Time
	last_interaction_at       *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Job, error)
	predicates                []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *JobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *JobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *JobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *JobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *JobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *JobMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *JobMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *JobMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *JobMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[job.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *JobMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[job.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *JobMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, job.FieldSessionID)
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetDomainID sets the "domain_id" field.
func (m *JobMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *JobMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *JobMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetEnvelope sets the "envelope" field.
func (m *JobMutation) SetEnvelope(me models.JobEnvelope) {
	m.envelope = &me
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *JobMutation) Envelope() (r models.JobEnvelope, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEnvelope(ctx context.Context) (v models.JobEnvelope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *JobMutation) ResetEnvelope() {
	m.envelope = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (m *JobMutation) SetAppliedTransitions(s []string) {
	m.applied_transitions = &s
	m.appendapplied_transitions = nil
}

// AppliedTransitions returns the value of the "applied_transitions" field in the mutation.
func (m *JobMutation) AppliedTransitions() (r []string, exists bool) {
	v := m.applied_transitions
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedTransitions returns the old "applied_transitions" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAppliedTransitions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedTransitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedTransitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedTransitions: %w", err)
	}
	return oldValue.AppliedTransitions, nil
}

// AppendAppliedTransitions adds s to the "applied_transitions" field.
func (m *JobMutation) AppendAppliedTransitions(s []string) {
	m.appendapplied_transitions = append(m.appendapplied_transitions, s...)
}

// AppendedAppliedTransitions returns the list of values that were appended to the "applied_transitions" field in this mutation.
func (m *JobMutation) AppendedAppliedTransitions() ([]string, bool) {
	if len(m.appendapplied_transitions) == 0 {
		return nil, false
	}
	return m.appendapplied_transitions, true
}

// ClearAppliedTransitions clears the value of the "applied_transitions" field.
func (m *JobMutation) ClearAppliedTransitions() {
	m.applied_transitions = nil
	m.appendapplied_transitions = nil
	m.clearedFields[job.FieldAppliedTransitions] = struct{}{}
}

// AppliedTransitionsCleared returns if the "applied_transitions" field was cleared in this mutation.
func (m *JobMutation) AppliedTransitionsCleared() bool {
	_, ok := m.clearedFields[job.FieldAppliedTransitions]
	return ok
}

// ResetAppliedTransitions resets all changes to the "applied_transitions" field.
func (m *JobMutation) ResetAppliedTransitions() {
	m.applied_transitions = nil
	m.appendapplied_transitions = nil
	delete(m.clearedFields, job.FieldAppliedTransitions)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(mr *models.JobResult) {
	m.result = &mr
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r *models.JobResult, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v *models.JobResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetClarification sets the "clarification" field.
func (m *JobMutation) SetClarification(value map[string]interface{}) {
	m.clarification = &value
}

// Clarification returns the value of the "clarification" field in the mutation.
func (m *JobMutation) Clarification() (r map[string]interface{}, exists bool) {
	v := m.clarification
	if v == nil {
		return
	}
	return *v, true
}

// OldClarification returns the old "clarification" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClarification(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarification: %w", err)
	}
	return oldValue.Clarification, nil
}

// ClearClarification clears the value of the "clarification" field.
func (m *JobMutation) ClearClarification() {
	m.clarification = nil
	m.clearedFields[job.FieldClarification] = struct{}{}
}

// ClarificationCleared returns if the "clarification" field was cleared in this mutation.
func (m *JobMutation) ClarificationCleared() bool {
	_, ok := m.clearedFields[job.FieldClarification]
	return ok
}

// ResetClarification resets all changes to the "clarification" field.
func (m *JobMutation) ResetClarification() {
	m.clarification = nil
	delete(m.clearedFields, job.FieldClarification)
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (m *JobMutation) SetClarificationConsumed(b bool) {
	m.clarification_consumed = &b
}

// ClarificationConsumed returns the value of the "clarification_consumed" field in the mutation.
func (m *JobMutation) ClarificationConsumed() (r bool, exists bool) {
	v := m.clarification_consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldClarificationConsumed returns the old "clarification_consumed" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClarificationConsumed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarificationConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarificationConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarificationConsumed: %w", err)
	}
	return oldValue.ClarificationConsumed, nil
}

// ResetClarificationConsumed resets all changes to the "clarification_consumed" field.
func (m *JobMutation) ResetClarificationConsumed() {
	m.clarification_consumed = nil
}

// SetFailureKind sets the "failure_kind" field.
func (m *JobMutation) SetFailureKind(s string) {
	m.failure_kind = &s
}

// FailureKind returns the value of the "failure_kind" field in the mutation.
func (m *JobMutation) FailureKind() (r string, exists bool) {
	v := m.failure_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureKind returns the old "failure_kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFailureKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureKind: %w", err)
	}
	return oldValue.FailureKind, nil
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (m *JobMutation) ClearFailureKind() {
	m.failure_kind = nil
	m.clearedFields[job.FieldFailureKind] = struct{}{}
}

// FailureKindCleared returns if the "failure_kind" field was cleared in this mutation.
func (m *JobMutation) FailureKindCleared() bool {
	_, ok := m.clearedFields[job.FieldFailureKind]
	return ok
}

// ResetFailureKind resets all changes to the "failure_kind" field.
func (m *JobMutation) ResetFailureKind() {
	m.failure_kind = nil
	delete(m.clearedFields, job.FieldFailureKind)
}

// SetFailureMessage sets the "failure_message" field.
func (m *JobMutation) SetFailureMessage(s string) {
	m.failure_message = &s
}

// FailureMessage returns the value of the "failure_message" field in the mutation.
func (m *JobMutation) FailureMessage() (r string, exists bool) {
	v := m.failure_message
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureMessage returns the old "failure_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFailureMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureMessage: %w", err)
	}
	return oldValue.FailureMessage, nil
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (m *JobMutation) ClearFailureMessage() {
	m.failure_message = nil
	m.clearedFields[job.FieldFailureMessage] = struct{}{}
}

// FailureMessageCleared returns if the "failure_message" field was cleared in this mutation.
func (m *JobMutation) FailureMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldFailureMessage]
	return ok
}

// ResetFailureMessage resets all changes to the "failure_message" field.
func (m *JobMutation) ResetFailureMessage() {
	m.failure_message = nil
	delete(m.clearedFields, job.FieldFailureMessage)
}

// SetRecordID sets the "record_id" field.
func (m *JobMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *JobMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRecordID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ClearRecordID clears the value of the "record_id" field.
func (m *JobMutation) ClearRecordID() {
	m.record_id = nil
	m.clearedFields[job.FieldRecordID] = struct{}{}
}

// RecordIDCleared returns if the "record_id" field was cleared in this mutation.
func (m *JobMutation) RecordIDCleared() bool {
	_, ok := m.clearedFields[job.FieldRecordID]
	return ok
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *JobMutation) ResetRecordID() {
	m.record_id = nil
	delete(m.clearedFields, job.FieldRecordID)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetDeadlineAt sets the "deadline_at" field.
func (m *JobMutation) SetDeadlineAt(t time.Time) {
	m.deadline_at = &t
}

// DeadlineAt returns the value of the "deadline_at" field in the mutation.
func (m *JobMutation) DeadlineAt() (r time.Time, exists bool) {
	v := m.deadline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineAt returns the old "deadline_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDeadlineAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineAt: %w", err)
	}
	return oldValue.DeadlineAt, nil
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (m *JobMutation) ClearDeadlineAt() {
	m.deadline_at = nil
	m.clearedFields[job.FieldDeadlineAt] = struct{}{}
}

// DeadlineAtCleared returns if the "deadline_at" field was cleared in this mutation.
func (m *JobMutation) DeadlineAtCleared() bool {
	_, ok := m.clearedFields[job.FieldDeadlineAt]
	return ok
}

// ResetDeadlineAt resets all changes to the "deadline_at" field.
func (m *JobMutation) ResetDeadlineAt() {
	m.deadline_at = nil
	delete(m.clearedFields, job.FieldDeadlineAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *JobMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *JobMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *JobMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[job.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *JobMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *JobMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, job.FieldLastInteractionAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.tenant_id != nil {
		fields = append(fields, job.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, job.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, job.FieldSessionID)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.domain_id != nil {
		fields = append(fields, job.FieldDomainID)
	}
	if m.envelope != nil {
		fields = append(fields, job.FieldEnvelope)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.applied_transitions != nil {
		fields = append(fields, job.FieldAppliedTransitions)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.clarification != nil {
		fields = append(fields, job.FieldClarification)
	}
	if m.clarification_consumed != nil {
		fields = append(fields, job.FieldClarificationConsumed)
	}
	if m.failure_kind != nil {
		fields = append(fields, job.FieldFailureKind)
	}
	if m.failure_message != nil {
		fields = append(fields, job.FieldFailureMessage)
	}
	if m.record_id != nil {
		fields = append(fields, job.FieldRecordID)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.deadline_at != nil {
		fields = append(fields, job.FieldDeadlineAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, job.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTenantID:
		return m.TenantID()
	case job.FieldUserID:
		return m.UserID()
	case job.FieldSessionID:
		return m.SessionID()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldDomainID:
		return m.DomainID()
	case job.FieldEnvelope:
		return m.Envelope()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAppliedTransitions:
		return m.AppliedTransitions()
	case job.FieldResult:
		return m.Result()
	case job.FieldClarification:
		return m.Clarification()
	case job.FieldClarificationConsumed:
		return m.ClarificationConsumed()
	case job.FieldFailureKind:
		return m.FailureKind()
	case job.FieldFailureMessage:
		return m.FailureMessage()
	case job.FieldRecordID:
		return m.RecordID()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldDeadlineAt:
		return m.DeadlineAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTenantID:
		return m.OldTenantID(ctx)
	case job.FieldUserID:
		return m.OldUserID(ctx)
	case job.FieldSessionID:
		return m.OldSessionID(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldDomainID:
		return m.OldDomainID(ctx)
	case job.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAppliedTransitions:
		return m.OldAppliedTransitions(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldClarification:
		return m.OldClarification(ctx)
	case job.FieldClarificationConsumed:
		return m.OldClarificationConsumed(ctx)
	case job.FieldFailureKind:
		return m.OldFailureKind(ctx)
	case job.FieldFailureMessage:
		return m.OldFailureMessage(ctx)
	case job.FieldRecordID:
		return m.OldRecordID(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldDeadlineAt:
		return m.OldDeadlineAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case job.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case job.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case job.FieldEnvelope:
		v, ok := value.(models.JobEnvelope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAppliedTransitions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedTransitions(v)
		return nil
	case job.FieldResult:
		v, ok := value.(*models.JobResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldClarification:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarification(v)
		return nil
	case job.FieldClarificationConsumed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarificationConsumed(v)
		return nil
	case job.FieldFailureKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureKind(v)
		return nil
	case job.FieldFailureMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureMessage(v)
		return nil
	case job.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldDeadlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldSessionID) {
		fields = append(fields, job.FieldSessionID)
	}
	if m.FieldCleared(job.FieldAppliedTransitions) {
		fields = append(fields, job.FieldAppliedTransitions)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldClarification) {
		fields = append(fields, job.FieldClarification)
	}
	if m.FieldCleared(job.FieldFailureKind) {
		fields = append(fields, job.FieldFailureKind)
	}
	if m.FieldCleared(job.FieldFailureMessage) {
		fields = append(fields, job.FieldFailureMessage)
	}
	if m.FieldCleared(job.FieldRecordID) {
		fields = append(fields, job.FieldRecordID)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldDeadlineAt) {
		fields = append(fields, job.FieldDeadlineAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldLastInteractionAt) {
		fields = append(fields, job.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldSessionID:
		m.ClearSessionID()
		return nil
	case job.FieldAppliedTransitions:
		m.ClearAppliedTransitions()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldClarification:
		m.ClearClarification()
		return nil
	case job.FieldFailureKind:
		m.ClearFailureKind()
		return nil
	case job.FieldFailureMessage:
		m.ClearFailureMessage()
		return nil
	case job.FieldRecordID:
		m.ClearRecordID()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldDeadlineAt:
		m.ClearDeadlineAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTenantID:
		m.ResetTenantID()
		return nil
	case job.FieldUserID:
		m.ResetUserID()
		return nil
	case job.FieldSessionID:
		m.ResetSessionID()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldDomainID:
		m.ResetDomainID()
		return nil
	case job.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAppliedTransitions:
		m.ResetAppliedTransitions()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldClarification:
		m.ResetClarification()
		return nil
	case job.FieldClarificationConsumed:
		m.ResetClarificationConsumed()
		return nil
	case job.FieldFailureKind:
		m.ResetFailureKind()
		return nil
	case job.FieldFailureMessage:
		m.ResetFailureMessage()
		return nil
	case job.FieldRecordID:
		m.ResetRecordID()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldDeadlineAt:
		m.ResetDeadlineAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}
