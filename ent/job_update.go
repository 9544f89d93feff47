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
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/ent/predicate"
	"github.com/intakehq/intake/pkg/models"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *JobUpdate) SetTenantID(v string) *JobUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTenantID(v *string) *JobUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdate) SetUserID(v string) *JobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableUserID(v *string) *JobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdate) SetSessionID(v string) *JobUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSessionID(v *string) *JobUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdate) ClearSessionID() *JobUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdate) SetJobType(v string) *JobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobType(v *string) *JobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *JobUpdate) SetDomainID(v string) *JobUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDomainID(v *string) *JobUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetEnvelope sets the "envelope" field.
func (_u *JobUpdate) SetEnvelope(v models.JobEnvelope) *JobUpdate {
	_u.mutation.SetEnvelope(v)
	return _u
}

// SetNillableEnvelope sets the "envelope" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEnvelope(v *models.JobEnvelope) *JobUpdate {
	if v != nil {
		_u.SetEnvelope(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (_u *JobUpdate) SetAppliedTransitions(v []string) *JobUpdate {
	_u.mutation.SetAppliedTransitions(v)
	return _u
}

// AppendAppliedTransitions appends value to the "applied_transitions" field.
func (_u *JobUpdate) AppendAppliedTransitions(v []string) *JobUpdate {
	_u.mutation.AppendAppliedTransitions(v)
	return _u
}

// ClearAppliedTransitions clears the value of the "applied_transitions" field.
func (_u *JobUpdate) ClearAppliedTransitions() *JobUpdate {
	_u.mutation.ClearAppliedTransitions()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdate) SetResult(v *models.JobResult) *JobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetClarification sets the "clarification" field.
func (_u *JobUpdate) SetClarification(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetClarification(v)
	return _u
}

// ClearClarification clears the value of the "clarification" field.
func (_u *JobUpdate) ClearClarification() *JobUpdate {
	_u.mutation.ClearClarification()
	return _u
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (_u *JobUpdate) SetClarificationConsumed(v bool) *JobUpdate {
	_u.mutation.SetClarificationConsumed(v)
	return _u
}

// SetNillableClarificationConsumed sets the "clarification_consumed" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClarificationConsumed(v *bool) *JobUpdate {
	if v != nil {
		_u.SetClarificationConsumed(*v)
	}
	return _u
}

// SetFailureKind sets the "failure_kind" field.
func (_u *JobUpdate) SetFailureKind(v string) *JobUpdate {
	_u.mutation.SetFailureKind(v)
	return _u
}

// SetNillableFailureKind sets the "failure_kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFailureKind(v *string) *JobUpdate {
	if v != nil {
		_u.SetFailureKind(*v)
	}
	return _u
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (_u *JobUpdate) ClearFailureKind() *JobUpdate {
	_u.mutation.ClearFailureKind()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *JobUpdate) SetFailureMessage(v string) *JobUpdate {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFailureMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *JobUpdate) ClearFailureMessage() *JobUpdate {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *JobUpdate) SetRecordID(v string) *JobUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRecordID(v *string) *JobUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// ClearRecordID clears the value of the "record_id" field.
func (_u *JobUpdate) ClearRecordID() *JobUpdate {
	_u.mutation.ClearRecordID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *JobUpdate) SetPodID(v string) *JobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePodID(v *string) *JobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *JobUpdate) ClearPodID() *JobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *JobUpdate) SetDeadlineAt(v time.Time) *JobUpdate {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDeadlineAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *JobUpdate) ClearDeadlineAt() *JobUpdate {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *JobUpdate) SetLastInteractionAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastInteractionAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *JobUpdate) ClearLastInteractionAt() *JobUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Envelope(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "envelope", err: fmt.Errorf(`ent: validator failed for field "Job.envelope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(job.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(job.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(job.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(job.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Envelope(); ok {
		_spec.SetField(job.FieldEnvelope, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AppliedTransitions(); ok {
		_spec.SetField(job.FieldAppliedTransitions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliedTransitions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldAppliedTransitions, value)
		})
	}
	if _u.mutation.AppliedTransitionsCleared() {
		_spec.ClearField(job.FieldAppliedTransitions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Clarification(); ok {
		_spec.SetField(job.FieldClarification, field.TypeJSON, value)
	}
	if _u.mutation.ClarificationCleared() {
		_spec.ClearField(job.FieldClarification, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClarificationConsumed(); ok {
		_spec.SetField(job.FieldClarificationConsumed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureKind(); ok {
		_spec.SetField(job.FieldFailureKind, field.TypeString, value)
	}
	if _u.mutation.FailureKindCleared() {
		_spec.ClearField(job.FieldFailureKind, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(job.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(job.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(job.FieldRecordID, field.TypeString, value)
	}
	if _u.mutation.RecordIDCleared() {
		_spec.ClearField(job.FieldRecordID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(job.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(job.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(job.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(job.FieldLastInteractionAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *JobUpdateOne) SetTenantID(v string) *JobUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTenantID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdateOne) SetUserID(v string) *JobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableUserID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdateOne) SetSessionID(v string) *JobUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSessionID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdateOne) ClearSessionID() *JobUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdateOne) SetJobType(v string) *JobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *JobUpdateOne) SetDomainID(v string) *JobUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDomainID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetEnvelope sets the "envelope" field.
func (_u *JobUpdateOne) SetEnvelope(v models.JobEnvelope) *JobUpdateOne {
	_u.mutation.SetEnvelope(v)
	return _u
}

// SetNillableEnvelope sets the "envelope" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEnvelope(v *models.JobEnvelope) *JobUpdateOne {
	if v != nil {
		_u.SetEnvelope(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAppliedTransitions sets the "applied_transitions" field.
func (_u *JobUpdateOne) SetAppliedTransitions(v []string) *JobUpdateOne {
	_u.mutation.SetAppliedTransitions(v)
	return _u
}

// AppendAppliedTransitions appends value to the "applied_transitions" field.
func (_u *JobUpdateOne) AppendAppliedTransitions(v []string) *JobUpdateOne {
	_u.mutation.AppendAppliedTransitions(v)
	return _u
}

// ClearAppliedTransitions clears the value of the "applied_transitions" field.
func (_u *JobUpdateOne) ClearAppliedTransitions() *JobUpdateOne {
	_u.mutation.ClearAppliedTransitions()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdateOne) SetResult(v *models.JobResult) *JobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetClarification sets the "clarification" field.
func (_u *JobUpdateOne) SetClarification(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetClarification(v)
	return _u
}

// ClearClarification clears the value of the "clarification" field.
func (_u *JobUpdateOne) ClearClarification() *JobUpdateOne {
	_u.mutation.ClearClarification()
	return _u
}

// SetClarificationConsumed sets the "clarification_consumed" field.
func (_u *JobUpdateOne) SetClarificationConsumed(v bool) *JobUpdateOne {
	_u.mutation.SetClarificationConsumed(v)
	return _u
}

// SetNillableClarificationConsumed sets the "clarification_consumed" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClarificationConsumed(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetClarificationConsumed(*v)
	}
	return _u
}

// SetFailureKind sets the "failure_kind" field.
func (_u *JobUpdateOne) SetFailureKind(v string) *JobUpdateOne {
	_u.mutation.SetFailureKind(v)
	return _u
}

// SetNillableFailureKind sets the "failure_kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFailureKind(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFailureKind(*v)
	}
	return _u
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (_u *JobUpdateOne) ClearFailureKind() *JobUpdateOne {
	_u.mutation.ClearFailureKind()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *JobUpdateOne) SetFailureMessage(v string) *JobUpdateOne {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFailureMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *JobUpdateOne) ClearFailureMessage() *JobUpdateOne {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *JobUpdateOne) SetRecordID(v string) *JobUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRecordID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// ClearRecordID clears the value of the "record_id" field.
func (_u *JobUpdateOne) ClearRecordID() *JobUpdateOne {
	_u.mutation.ClearRecordID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *JobUpdateOne) SetPodID(v string) *JobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePodID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *JobUpdateOne) ClearPodID() *JobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *JobUpdateOne) SetDeadlineAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDeadlineAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *JobUpdateOne) ClearDeadlineAt() *JobUpdateOne {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *JobUpdateOne) SetLastInteractionAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastInteractionAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *JobUpdateOne) ClearLastInteractionAt() *JobUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Envelope(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "envelope", err: fmt.Errorf(`ent: validator failed for field "Job.envelope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
		_spec.SetField(job.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(job.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(job.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(job.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Envelope(); ok {
		_spec.SetField(job.FieldEnvelope, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AppliedTransitions(); ok {
		_spec.SetField(job.FieldAppliedTransitions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliedTransitions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldAppliedTransitions, value)
		})
	}
	if _u.mutation.AppliedTransitionsCleared() {
		_spec.ClearField(job.FieldAppliedTransitions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Clarification(); ok {
		_spec.SetField(job.FieldClarification, field.TypeJSON, value)
	}
	if _u.mutation.ClarificationCleared() {
		_spec.ClearField(job.FieldClarification, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClarificationConsumed(); ok {
		_spec.SetField(job.FieldClarificationConsumed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureKind(); ok {
		_spec.SetField(job.FieldFailureKind, field.TypeString, value)
	}
	if _u.mutation.FailureKindCleared() {
		_spec.ClearField(job.FieldFailureKind, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(job.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(job.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(job.FieldRecordID, field.TypeString, value)
	}
	if _u.mutation.RecordIDCleared() {
		_spec.ClearField(job.FieldRecordID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(job.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(job.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(job.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(job.FieldLastInteractionAt, field.TypeTime)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
