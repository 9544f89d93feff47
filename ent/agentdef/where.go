// Code generated by ent, DO NOT EDIT.

package agentdef

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/intakehq/intake/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldTenantID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldAgentID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldAgentName, v))
}

// AgentClass applies equality check predicate on the "agent_class" field. It's identical to AgentClassEQ.
func AgentClass(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldAgentClass, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldSystemPrompt, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldWeight, v))
}

// Strict applies equality check predicate on the "strict" field. It's identical to StrictEQ.
func Strict(v bool) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldStrict, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldVersion, v))
}

// IsBuiltin applies equality check predicate on the "is_builtin" field. It's identical to IsBuiltinEQ.
func IsBuiltin(v bool) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldIsBuiltin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContainsFold(FieldAgentID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContainsFold(FieldAgentName, v))
}

// AgentClassEQ applies the EQ predicate on the "agent_class" field.
func AgentClassEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldAgentClass, v))
}

// AgentClassNEQ applies the NEQ predicate on the "agent_class" field.
func AgentClassNEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldAgentClass, v))
}

// AgentClassIn applies the In predicate on the "agent_class" field.
func AgentClassIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldAgentClass, vs...))
}

// AgentClassNotIn applies the NotIn predicate on the "agent_class" field.
func AgentClassNotIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldAgentClass, vs...))
}

// AgentClassGT applies the GT predicate on the "agent_class" field.
func AgentClassGT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldAgentClass, v))
}

// AgentClassGTE applies the GTE predicate on the "agent_class" field.
func AgentClassGTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldAgentClass, v))
}

// AgentClassLT applies the LT predicate on the "agent_class" field.
func AgentClassLT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldAgentClass, v))
}

// AgentClassLTE applies the LTE predicate on the "agent_class" field.
func AgentClassLTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldAgentClass, v))
}

// AgentClassContains applies the Contains predicate on the "agent_class" field.
func AgentClassContains(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContains(FieldAgentClass, v))
}

// AgentClassHasPrefix applies the HasPrefix predicate on the "agent_class" field.
func AgentClassHasPrefix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasPrefix(FieldAgentClass, v))
}

// AgentClassHasSuffix applies the HasSuffix predicate on the "agent_class" field.
func AgentClassHasSuffix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasSuffix(FieldAgentClass, v))
}

// AgentClassEqualFold applies the EqualFold predicate on the "agent_class" field.
func AgentClassEqualFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEqualFold(FieldAgentClass, v))
}

// AgentClassContainsFold applies the ContainsFold predicate on the "agent_class" field.
func AgentClassContainsFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContainsFold(FieldAgentClass, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldWeight, v))
}

// StrictEQ applies the EQ predicate on the "strict" field.
func StrictEQ(v bool) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldStrict, v))
}

// StrictNEQ applies the NEQ predicate on the "strict" field.
func StrictNEQ(v bool) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldStrict, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldVersion, v))
}

// IsBuiltinEQ applies the EQ predicate on the "is_builtin" field.
func IsBuiltinEQ(v bool) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldIsBuiltin, v))
}

// IsBuiltinNEQ applies the NEQ predicate on the "is_builtin" field.
func IsBuiltinNEQ(v bool) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldIsBuiltin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentDef {
	return predicate.AgentDef(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentDef) predicate.AgentDef {
	return predicate.AgentDef(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentDef) predicate.AgentDef {
	return predicate.AgentDef(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentDef) predicate.AgentDef {
	return predicate.AgentDef(sql.NotPredicates(p))
}
