// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentDef is the predicate function for agentdef builders.
type AgentDef func(*sql.Selector)

// DomainConfig is the predicate function for domainconfig builders.
type DomainConfig func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)
