// Package configstore provides read-only access to agent and domain
// definitions. Definitions are owned by the relational store; the core reads
// them through the Store interface and caches copies for a job's duration.
package configstore

import (
	"context"
	"errors"

	"github.com/intakehq/intake/pkg/models"
)

// Reserved tenant holding built-in agents and domains visible to every
// tenant. Lookups fall back to it when a tenant-scoped row is absent; the
// fallback itself lives in the playbook loader, not here.
const SystemTenant = "system"

// AgentClass partitions agents by the playbook they may appear in.
type AgentClass string

const (
	AgentClassIngestion  AgentClass = "ingestion"
	AgentClassQuery      AgentClass = "query"
	AgentClassManagement AgentClass = "management"
)

// ConfidenceKey is the output_schema key every agent must declare.
// Its value is a number in [0,1].
const ConfidenceKey = "confidence"

// MaxOutputKeys bounds the size of an agent's output schema.
const MaxOutputKeys = 5

// AgentDefinition is a read-only agent configuration. Agents differ in
// prompts, schemas, and tools — these are data, not subclasses.
type AgentDefinition struct {
	AgentID      string
	TenantID     string
	AgentName    string
	AgentClass   AgentClass
	SystemPrompt string
	// Tools is ordered; the first entry is the agent's primary tool.
	Tools        []string
	OutputSchema map[string]string
	// Weight is the agent's share in job-confidence aggregation. Default 1.
	Weight float64
	// Strict agents abort the whole job on failure.
	Strict    bool
	Version   int
	IsBuiltin bool
}

// PrimaryTool returns the first tool name, or "" when the agent has none.
func (d *AgentDefinition) PrimaryTool() string {
	if len(d.Tools) == 0 {
		return ""
	}
	return d.Tools[0]
}

// Edge is a dependency between two playbook nodes: To runs after From.
// The definition lives in pkg/models so the ent schema can reference it
// without depending on this package.
type Edge = models.Edge

// Playbook is a directed acyclic graph of agent ids. An empty node set means
// the playbook is disabled.
type Playbook = models.Playbook

// Thresholds are the per-domain confidence decision overrides.
// Zero values mean "use the system defaults".
type Thresholds = models.Thresholds

// DomainDefinition bundles the three playbooks plus metadata.
type DomainDefinition struct {
	DomainID   string
	TenantID   string
	DomainName string
	Ingestion  Playbook
	Query      Playbook
	Management Playbook
	Thresholds Thresholds
	IsBuiltin  bool
}

// ErrNotFound is returned when a requested domain does not exist.
var ErrNotFound = errors.New("configuration not found")

// Store is the read-only configuration interface the core consumes.
// Implementations must be safe for concurrent use.
type Store interface {
	// GetDomain returns the domain scoped to tenantID, or ErrNotFound.
	GetDomain(ctx context.Context, tenantID, domainID string) (*DomainDefinition, error)

	// GetAgents returns the subset of requested agents that exist for
	// tenantID, keyed by agent id. Missing ids are simply absent from the
	// result; callers decide whether that is an error.
	GetAgents(ctx context.Context, tenantID string, agentIDs []string) (map[string]*AgentDefinition, error)
}
