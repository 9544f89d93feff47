// Code generated by ent, DO NOT EDIT.

package domainconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/intakehq/intake/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldTenantID, v))
}

// DomainID applies equality check predicate on the "domain_id" field. It's identical to DomainIDEQ.
func DomainID(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldDomainID, v))
}

// DomainName applies equality check predicate on the "domain_name" field. It's identical to DomainNameEQ.
func DomainName(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldDomainName, v))
}

// IsBuiltin applies equality check predicate on the "is_builtin" field. It's identical to IsBuiltinEQ.
func IsBuiltin(v bool) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldIsBuiltin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldContainsFold(FieldTenantID, v))
}

// DomainIDEQ applies the EQ predicate on the "domain_id" field.
func DomainIDEQ(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldDomainID, v))
}

// DomainIDNEQ applies the NEQ predicate on the "domain_id" field.
func DomainIDNEQ(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldDomainID, v))
}

// DomainIDIn applies the In predicate on the "domain_id" field.
func DomainIDIn(vs ...string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIn(FieldDomainID, vs...))
}

// DomainIDNotIn applies the NotIn predicate on the "domain_id" field.
func DomainIDNotIn(vs ...string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotIn(FieldDomainID, vs...))
}

// DomainIDGT applies the GT predicate on the "domain_id" field.
func DomainIDGT(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGT(FieldDomainID, v))
}

// DomainIDGTE applies the GTE predicate on the "domain_id" field.
func DomainIDGTE(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGTE(FieldDomainID, v))
}

// DomainIDLT applies the LT predicate on the "domain_id" field.
func DomainIDLT(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLT(FieldDomainID, v))
}

// DomainIDLTE applies the LTE predicate on the "domain_id" field.
func DomainIDLTE(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLTE(FieldDomainID, v))
}

// DomainIDContains applies the Contains predicate on the "domain_id" field.
func DomainIDContains(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldContains(FieldDomainID, v))
}

// DomainIDHasPrefix applies the HasPrefix predicate on the "domain_id" field.
func DomainIDHasPrefix(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldHasPrefix(FieldDomainID, v))
}

// DomainIDHasSuffix applies the HasSuffix predicate on the "domain_id" field.
func DomainIDHasSuffix(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldHasSuffix(FieldDomainID, v))
}

// DomainIDEqualFold applies the EqualFold predicate on the "domain_id" field.
func DomainIDEqualFold(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEqualFold(FieldDomainID, v))
}

// DomainIDContainsFold applies the ContainsFold predicate on the "domain_id" field.
func DomainIDContainsFold(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldContainsFold(FieldDomainID, v))
}

// DomainNameEQ applies the EQ predicate on the "domain_name" field.
func DomainNameEQ(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldDomainName, v))
}

// DomainNameNEQ applies the NEQ predicate on the "domain_name" field.
func DomainNameNEQ(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldDomainName, v))
}

// DomainNameIn applies the In predicate on the "domain_name" field.
func DomainNameIn(vs ...string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIn(FieldDomainName, vs...))
}

// DomainNameNotIn applies the NotIn predicate on the "domain_name" field.
func DomainNameNotIn(vs ...string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotIn(FieldDomainName, vs...))
}

// DomainNameGT applies the GT predicate on the "domain_name" field.
func DomainNameGT(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGT(FieldDomainName, v))
}

// DomainNameGTE applies the GTE predicate on the "domain_name" field.
func DomainNameGTE(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGTE(FieldDomainName, v))
}

// DomainNameLT applies the LT predicate on the "domain_name" field.
func DomainNameLT(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLT(FieldDomainName, v))
}

// DomainNameLTE applies the LTE predicate on the "domain_name" field.
func DomainNameLTE(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLTE(FieldDomainName, v))
}

// DomainNameContains applies the Contains predicate on the "domain_name" field.
func DomainNameContains(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldContains(FieldDomainName, v))
}

// DomainNameHasPrefix applies the HasPrefix predicate on the "domain_name" field.
func DomainNameHasPrefix(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldHasPrefix(FieldDomainName, v))
}

// DomainNameHasSuffix applies the HasSuffix predicate on the "domain_name" field.
func DomainNameHasSuffix(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldHasSuffix(FieldDomainName, v))
}

// DomainNameEqualFold applies the EqualFold predicate on the "domain_name" field.
func DomainNameEqualFold(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEqualFold(FieldDomainName, v))
}

// DomainNameContainsFold applies the ContainsFold predicate on the "domain_name" field.
func DomainNameContainsFold(v string) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldContainsFold(FieldDomainName, v))
}

// ThresholdsIsNil applies the IsNil predicate on the "thresholds" field.
func ThresholdsIsNil() predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIsNull(FieldThresholds))
}

// ThresholdsNotNil applies the NotNil predicate on the "thresholds" field.
func ThresholdsNotNil() predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotNull(FieldThresholds))
}

// IsBuiltinEQ applies the EQ predicate on the "is_builtin" field.
func IsBuiltinEQ(v bool) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldIsBuiltin, v))
}

// IsBuiltinNEQ applies the NEQ predicate on the "is_builtin" field.
func IsBuiltinNEQ(v bool) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldIsBuiltin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DomainConfig {
	return predicate.DomainConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DomainConfig) predicate.DomainConfig {
	return predicate.DomainConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DomainConfig) predicate.DomainConfig {
	return predicate.DomainConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DomainConfig) predicate.DomainConfig {
	return predicate.DomainConfig(sql.NotPredicates(p))
}
