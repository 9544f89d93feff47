// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/pkg/models"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *JobCreate) SetTenantID(v string) *JobCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *JobCreate) SetUserID(v string) *JobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *JobCreate) SetSessionID(v string) *JobCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableSessionID(v *string) *JobCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *JobCreate) SetJobType(v string) *JobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *JobCreate) SetDomainID(v string) *JobCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *JobCreate) SetEnvelope(v models.JobEnvelope) *JobCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (_c *JobCreate) SetAppliedTransitions(v []string) *JobCreate {
	_c.mutation.SetAppliedTransitions(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *JobCreate) SetResult(v *models.JobResult) *JobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetClarification sets the "clarification" field.
func (_c *JobCreate) SetClarification(v map[string]interface{}) *JobCreate {
	_c.mutation.SetClarification(v)
	return _c
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (_c *JobCreate) SetClarificationConsumed(v bool) *JobCreate {
	_c.mutation.SetClarificationConsumed(v)
	return _c
}

// SetNillableClarificationConsumed sets the "clarification_consumed" field if the given value is not nil.
func (_c *JobCreate) SetNillableClarificationConsumed(v *bool) *JobCreate {
	if v != nil {
		_c.SetClarificationConsumed(*v)
	}
	return _c
}

// SetFailureKind sets the "failure_kind" field.
func (_c *JobCreate) SetFailureKind(v string) *JobCreate {
	_c.mutation.SetFailureKind(v)
	return _c
}

// SetNillableFailureKind sets the "failure_kind" field if the given value is not nil.
func (_c *JobCreate) SetNillableFailureKind(v *string) *JobCreate {
	if v != nil {
		_c.SetFailureKind(*v)
	}
	return _c
}

// SetFailureMessage sets the "failure_message" field.
func (_c *JobCreate) SetFailureMessage(v string) *JobCreate {
	_c.mutation.SetFailureMessage(v)
	return _c
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableFailureMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetFailureMessage(*v)
	}
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *JobCreate) SetRecordID(v string) *JobCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableRecordID(v *string) *JobCreate {
	if v != nil {
		_c.SetRecordID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *JobCreate) SetPodID(v string) *JobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *JobCreate) SetNillablePodID(v *string) *JobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetDeadlineAt sets the "deadline_at" field.
func (_c *JobCreate) SetDeadlineAt(v time.Time) *JobCreate {
	_c.mutation.SetDeadlineAt(v)
	return _c
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableDeadlineAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetDeadlineAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *JobCreate) SetLastInteractionAt(v time.Time) *JobCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastInteractionAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ClarificationConsumed(); !ok {
		v := job.DefaultClarificationConsumed
		_c.mutation.SetClarificationConsumed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Job.tenant_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Job.user_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "Job.job_type"`)}
	}
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "Job.domain_id"`)}
	}
	if _, ok := _c.mutation.Envelope(); !ok {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required field "Job.envelope"`)}
	}
	if v, ok := _c.mutation.Envelope(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "envelope", err: fmt.Errorf(`ent: validator failed for field "Job.envelope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClarificationConsumed(); !ok {
		return &ValidationError{Name: "clarification_consumed", err: errors.New(`ent: missing required field "Job.clarification_consumed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(job.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(job.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(job.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(job.FieldEnvelope, field.TypeJSON, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AppliedTransitions(); ok {
		_spec.SetField(job.FieldAppliedTransitions, field.TypeJSON, value)
		_node.AppliedTransitions = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Clarification(); ok {
		_spec.SetField(job.FieldClarification, field.TypeJSON, value)
		_node.Clarification = value
	}
	if value, ok := _c.mutation.ClarificationConsumed(); ok {
		_spec.SetField(job.FieldClarificationConsumed, field.TypeBool, value)
		_node.ClarificationConsumed = value
	}
	if value, ok := _c.mutation.FailureKind(); ok {
		_spec.SetField(job.FieldFailureKind, field.TypeString, value)
		_node.FailureKind = &value
	}
	if value, ok := _c.mutation.FailureMessage(); ok {
		_spec.SetField(job.FieldFailureMessage, field.TypeString, value)
		_node.FailureMessage = &value
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(job.FieldRecordID, field.TypeString, value)
		_node.RecordID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.DeadlineAt(); ok {
		_spec.SetField(job.FieldDeadlineAt, field.TypeTime, value)
		_node.DeadlineAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(job.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *JobUpsert) SetTenantID(v string) *JobUpsert {
	u.Set(job.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateTenantID() *JobUpsert {
	u.SetExcluded(job.FieldTenantID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *JobUpsert) SetUserID(v string) *JobUpsert {
	u.Set(job.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateUserID() *JobUpsert {
	u.SetExcluded(job.FieldUserID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *JobUpsert) SetSessionID(v string) *JobUpsert {
	u.Set(job.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateSessionID() *JobUpsert {
	u.SetExcluded(job.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *JobUpsert) ClearSessionID() *JobUpsert {
	u.SetNull(job.FieldSessionID)
	return u
}

// SetJobType sets the "job_type" field.
func (u *JobUpsert) SetJobType(v string) *JobUpsert {
	u.Set(job.FieldJobType, v)
	return u
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *JobUpsert) UpdateJobType() *JobUpsert {
	u.SetExcluded(job.FieldJobType)
	return u
}

// SetDomainID sets the "domain_id" field.
func (u *JobUpsert) SetDomainID(v string) *JobUpsert {
	u.Set(job.FieldDomainID, v)
	return u
}

// UpdateDomainID sets the "domain_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateDomainID() *JobUpsert {
	u.SetExcluded(job.FieldDomainID)
	return u
}

// SetEnvelope sets the "envelope" field.
func (u *JobUpsert) SetEnvelope(v models.JobEnvelope) *JobUpsert {
	u.Set(job.FieldEnvelope, v)
	return u
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *JobUpsert) UpdateEnvelope() *JobUpsert {
	u.SetExcluded(job.FieldEnvelope)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (u *JobUpsert) SetAppliedTransitions(v []string) *JobUpsert {
	u.Set(job.FieldAppliedTransitions, v)
	return u
}

// UpdateAppliedTransitions sets the "applied_transitions" field to the value that was provided on create.
func (u *JobUpsert) UpdateAppliedTransitions() *JobUpsert {
	u.SetExcluded(job.FieldAppliedTransitions)
	return u
}

// ClearAppliedTransitions clears the value of the "applied_transitions" field.
func (u *JobUpsert) ClearAppliedTransitions() *JobUpsert {
	u.SetNull(job.FieldAppliedTransitions)
	return u
}

// SetResult sets the "result" field.
func (u *JobUpsert) SetResult(v *models.JobResult) *JobUpsert {
	u.Set(job.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsert) UpdateResult() *JobUpsert {
	u.SetExcluded(job.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsert) ClearResult() *JobUpsert {
	u.SetNull(job.FieldResult)
	return u
}

// SetClarification sets the "clarification" field.
func (u *JobUpsert) SetClarification(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldClarification, v)
	return u
}

// UpdateClarification sets the "clarification" field to the value that was provided on create.
func (u *JobUpsert) UpdateClarification() *JobUpsert {
	u.SetExcluded(job.FieldClarification)
	return u
}

// ClearClarification clears the value of the "clarification" field.
func (u *JobUpsert) ClearClarification() *JobUpsert {
	u.SetNull(job.FieldClarification)
	return u
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (u *JobUpsert) SetClarificationConsumed(v bool) *JobUpsert {
	u.Set(job.FieldClarificationConsumed, v)
	return u
}

// UpdateClarificationConsumed sets the "clarification_consumed" field to the value that was provided on create.
func (u *JobUpsert) UpdateClarificationConsumed() *JobUpsert {
	u.SetExcluded(job.FieldClarificationConsumed)
	return u
}

// SetFailureKind sets the "failure_kind" field.
func (u *JobUpsert) SetFailureKind(v string) *JobUpsert {
	u.Set(job.FieldFailureKind, v)
	return u
}

// UpdateFailureKind sets the "failure_kind" field to the value that was provided on create.
func (u *JobUpsert) UpdateFailureKind() *JobUpsert {
	u.SetExcluded(job.FieldFailureKind)
	return u
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (u *JobUpsert) ClearFailureKind() *JobUpsert {
	u.SetNull(job.FieldFailureKind)
	return u
}

// SetFailureMessage sets the "failure_message" field.
func (u *JobUpsert) SetFailureMessage(v string) *JobUpsert {
	u.Set(job.FieldFailureMessage, v)
	return u
}

// UpdateFailureMessage sets the "failure_message" field to the value that was provided on create.
func (u *JobUpsert) UpdateFailureMessage() *JobUpsert {
	u.SetExcluded(job.FieldFailureMessage)
	return u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (u *JobUpsert) ClearFailureMessage() *JobUpsert {
	u.SetNull(job.FieldFailureMessage)
	return u
}

// SetRecordID sets the "record_id" field.
func (u *JobUpsert) SetRecordID(v string) *JobUpsert {
	u.Set(job.FieldRecordID, v)
	return u
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateRecordID() *JobUpsert {
	u.SetExcluded(job.FieldRecordID)
	return u
}

// ClearRecordID clears the value of the "record_id" field.
func (u *JobUpsert) ClearRecordID() *JobUpsert {
	u.SetNull(job.FieldRecordID)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsert) SetPodID(v string) *JobUpsert {
	u.Set(job.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsert) UpdatePodID() *JobUpsert {
	u.SetExcluded(job.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsert) ClearPodID() *JobUpsert {
	u.SetNull(job.FieldPodID)
	return u
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *JobUpsert) SetDeadlineAt(v time.Time) *JobUpsert {
	u.Set(job.FieldDeadlineAt, v)
	return u
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateDeadlineAt() *JobUpsert {
	u.SetExcluded(job.FieldDeadlineAt)
	return u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *JobUpsert) ClearDeadlineAt() *JobUpsert {
	u.SetNull(job.FieldDeadlineAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsert) SetStartedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateStartedAt() *JobUpsert {
	u.SetExcluded(job.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsert) ClearStartedAt() *JobUpsert {
	u.SetNull(job.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsert) SetCompletedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompletedAt() *JobUpsert {
	u.SetExcluded(job.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsert) ClearCompletedAt() *JobUpsert {
	u.SetNull(job.FieldCompletedAt)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *JobUpsert) SetLastInteractionAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastInteractionAt() *JobUpsert {
	u.SetExcluded(job.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *JobUpsert) ClearLastInteractionAt() *JobUpsert {
	u.SetNull(job.FieldLastInteractionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *JobUpsertOne) SetTenantID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTenantID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTenantID()
	})
}

// SetUserID sets the "user_id" field.
func (u *JobUpsertOne) SetUserID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUserID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *JobUpsertOne) SetSessionID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSessionID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *JobUpsertOne) ClearSessionID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSessionID()
	})
}

// SetJobType sets the "job_type" field.
func (u *JobUpsertOne) SetJobType(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateJobType() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobType()
	})
}

// SetDomainID sets the "domain_id" field.
func (u *JobUpsertOne) SetDomainID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDomainID(v)
	})
}

// UpdateDomainID sets the "domain_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDomainID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDomainID()
	})
}

// SetEnvelope sets the "envelope" field.
func (u *JobUpsertOne) SetEnvelope(v models.JobEnvelope) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetEnvelope(v)
	})
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateEnvelope() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateEnvelope()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (u *JobUpsertOne) SetAppliedTransitions(v []string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAppliedTransitions(v)
	})
}

// UpdateAppliedTransitions sets the "applied_transitions" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAppliedTransitions() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAppliedTransitions()
	})
}

// ClearAppliedTransitions clears the value of the "applied_transitions" field.
func (u *JobUpsertOne) ClearAppliedTransitions() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearAppliedTransitions()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertOne) SetResult(v *models.JobResult) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertOne) ClearResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetClarification sets the "clarification" field.
func (u *JobUpsertOne) SetClarification(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetClarification(v)
	})
}

// UpdateClarification sets the "clarification" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateClarification() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateClarification()
	})
}

// ClearClarification clears the value of the "clarification" field.
func (u *JobUpsertOne) ClearClarification() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearClarification()
	})
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (u *JobUpsertOne) SetClarificationConsumed(v bool) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetClarificationConsumed(v)
	})
}

// UpdateClarificationConsumed sets the "clarification_consumed" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateClarificationConsumed() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateClarificationConsumed()
	})
}

// SetFailureKind sets the "failure_kind" field.
func (u *JobUpsertOne) SetFailureKind(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFailureKind(v)
	})
}

// UpdateFailureKind sets the "failure_kind" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFailureKind() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFailureKind()
	})
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (u *JobUpsertOne) ClearFailureKind() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFailureKind()
	})
}

// SetFailureMessage sets the "failure_message" field.
func (u *JobUpsertOne) SetFailureMessage(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFailureMessage(v)
	})
}

// UpdateFailureMessage sets the "failure_message" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFailureMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFailureMessage()
	})
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (u *JobUpsertOne) ClearFailureMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFailureMessage()
	})
}

// SetRecordID sets the "record_id" field.
func (u *JobUpsertOne) SetRecordID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRecordID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRecordID()
	})
}

// ClearRecordID clears the value of the "record_id" field.
func (u *JobUpsertOne) ClearRecordID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearRecordID()
	})
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsertOne) SetPodID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePodID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsertOne) ClearPodID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPodID()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *JobUpsertOne) SetDeadlineAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDeadlineAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDeadlineAt()
	})
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *JobUpsertOne) ClearDeadlineAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearDeadlineAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertOne) SetStartedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertOne) ClearStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertOne) SetCompletedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertOne) ClearCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *JobUpsertOne) SetLastInteractionAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastInteractionAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *JobUpsertOne) ClearLastInteractionAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *JobUpsertBulk) SetTenantID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTenantID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTenantID()
	})
}

// SetUserID sets the "user_id" field.
func (u *JobUpsertBulk) SetUserID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUserID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *JobUpsertBulk) SetSessionID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSessionID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *JobUpsertBulk) ClearSessionID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSessionID()
	})
}

// SetJobType sets the "job_type" field.
func (u *JobUpsertBulk) SetJobType(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateJobType() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobType()
	})
}

// SetDomainID sets the "domain_id" field.
func (u *JobUpsertBulk) SetDomainID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDomainID(v)
	})
}

// UpdateDomainID sets the "domain_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDomainID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDomainID()
	})
}

// SetEnvelope sets the "envelope" field.
func (u *JobUpsertBulk) SetEnvelope(v models.JobEnvelope) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetEnvelope(v)
	})
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateEnvelope() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateEnvelope()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (u *JobUpsertBulk) SetAppliedTransitions(v []string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAppliedTransitions(v)
	})
}

// UpdateAppliedTransitions sets the "applied_transitions" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAppliedTransitions() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAppliedTransitions()
	})
}

// ClearAppliedTransitions clears the value of the "applied_transitions" field.
func (u *JobUpsertBulk) ClearAppliedTransitions() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearAppliedTransitions()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertBulk) SetResult(v *models.JobResult) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertBulk) ClearResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetClarification sets the "clarification" field.
func (u *JobUpsertBulk) SetClarification(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetClarification(v)
	})
}

// UpdateClarification sets the "clarification" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateClarification() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateClarification()
	})
}

// ClearClarification clears the value of the "clarification" field.
func (u *JobUpsertBulk) ClearClarification() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearClarification()
	})
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (u *JobUpsertBulk) SetClarificationConsumed(v bool) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetClarificationConsumed(v)
	})
}

// UpdateClarificationConsumed sets the "clarification_consumed" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateClarificationConsumed() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateClarificationConsumed()
	})
}

// SetFailureKind sets the "failure_kind" field.
func (u *JobUpsertBulk) SetFailureKind(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFailureKind(v)
	})
}

// UpdateFailureKind sets the "failure_kind" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFailureKind() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFailureKind()
	})
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (u *JobUpsertBulk) ClearFailureKind() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFailureKind()
	})
}

// SetFailureMessage sets the "failure_message" field.
func (u *JobUpsertBulk) SetFailureMessage(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFailureMessage(v)
	})
}

// UpdateFailureMessage sets the "failure_message" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFailureMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFailureMessage()
	})
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (u *JobUpsertBulk) ClearFailureMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFailureMessage()
	})
}

// SetRecordID sets the "record_id" field.
func (u *JobUpsertBulk) SetRecordID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRecordID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRecordID()
	})
}

// ClearRecordID clears the value of the "record_id" field.
func (u *JobUpsertBulk) ClearRecordID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearRecordID()
	})
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsertBulk) SetPodID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePodID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsertBulk) ClearPodID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPodID()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *JobUpsertBulk) SetDeadlineAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDeadlineAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDeadlineAt()
	})
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *JobUpsertBulk) ClearDeadlineAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearDeadlineAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertBulk) SetStartedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertBulk) ClearStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertBulk) SetCompletedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertBulk) ClearCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *JobUpsertBulk) SetLastInteractionAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastInteractionAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *JobUpsertBulk) ClearLastInteractionAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
