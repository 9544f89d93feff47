// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/intakehq/intake/ent/agentdef"
	"github.com/intakehq/intake/ent/domainconfig"
	"github.com/intakehq/intake/ent/job"
	"github.com/intakehq/intake/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentdefFields := schema.AgentDef{}.Fields()
	_ = agentdefFields
	// agentdefDescSystemPrompt is the schema descriptor for system_prompt field.
	agentdefDescSystemPrompt := agentdefFields[4].Descriptor()
	// agentdef.SystemPromptValidator is a validator for the "system_prompt" field. It is called by the builders before save.
	agentdef.SystemPromptValidator = agentdefDescSystemPrompt.Validators[0].(func(string) error)
	// agentdefDescWeight is the schema descriptor for weight field.
	agentdefDescWeight := agentdefFields[7].Descriptor()
	// agentdef.DefaultWeight holds the default value on creation for the weight field.
	agentdef.DefaultWeight = agentdefDescWeight.Default.(float64)
	// agentdef.WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	agentdef.WeightValidator = agentdefDescWeight.Validators[0].(func(float64) error)
	// agentdefDescStrict is the schema descriptor for strict field.
	agentdefDescStrict := agentdefFields[8].Descriptor()
	// agentdef.DefaultStrict holds the default value on creation for the strict field.
	agentdef.DefaultStrict = agentdefDescStrict.Default.(bool)
	// agentdefDescVersion is the schema descriptor for version field.
	agentdefDescVersion := agentdefFields[9].Descriptor()
	// agentdef.DefaultVersion holds the default value on creation for the version field.
	agentdef.DefaultVersion = agentdefDescVersion.Default.(int)
	// agentdefDescIsBuiltin is the schema descriptor for is_builtin field.
	agentdefDescIsBuiltin := agentdefFields[10].Descriptor()
	// agentdef.DefaultIsBuiltin holds the default value on creation for the is_builtin field.
	agentdef.DefaultIsBuiltin = agentdefDescIsBuiltin.Default.(bool)
	// agentdefDescCreatedAt is the schema descriptor for created_at field.
	agentdefDescCreatedAt := agentdefFields[11].Descriptor()
	// agentdef.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentdef.DefaultCreatedAt = agentdefDescCreatedAt.Default.(func() time.Time)
	// agentdefDescUpdatedAt is the schema descriptor for updated_at field.
	agentdefDescUpdatedAt := agentdefFields[12].Descriptor()
	// agentdef.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentdef.DefaultUpdatedAt = agentdefDescUpdatedAt.Default.(func() time.Time)
	// agentdef.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentdef.UpdateDefaultUpdatedAt = agentdefDescUpdatedAt.UpdateDefault.(func() time.Time)
	domainconfigFields := schema.DomainConfig{}.Fields()
	_ = domainconfigFields
	// domainconfigDescIsBuiltin is the schema descriptor for is_builtin field.
	domainconfigDescIsBuiltin := domainconfigFields[7].Descriptor()
	// domainconfig.DefaultIsBuiltin holds the default value on creation for the is_builtin field.
	domainconfig.DefaultIsBuiltin = domainconfigDescIsBuiltin.Default.(bool)
	// domainconfigDescCreatedAt is the schema descriptor for created_at field.
	domainconfigDescCreatedAt := domainconfigFields[8].Descriptor()
	// domainconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainconfig.DefaultCreatedAt = domainconfigDescCreatedAt.Default.(func() time.Time)
	// domainconfigDescUpdatedAt is the schema descriptor for updated_at field.
	domainconfigDescUpdatedAt := domainconfigFields[9].Descriptor()
	// domainconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	domainconfig.DefaultUpdatedAt = domainconfigDescUpdatedAt.Default.(func() time.Time)
	// domainconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	domainconfig.UpdateDefaultUpdatedAt = domainconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescClarificationConsumed is the schema descriptor for clarification_consumed field.
	jobDescClarificationConsumed := jobFields[11].Descriptor()
	// job.DefaultClarificationConsumed holds the default value on creation for the clarification_consumed field.
	job.DefaultClarificationConsumed = jobDescClarificationConsumed.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[17].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
}
