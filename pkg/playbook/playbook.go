// Package playbook resolves a (tenant, domain, job type) triple into a fully
// materialised execution graph. Everything the scheduler needs is loaded
// here — no I/O happens inside the scheduler.
package playbook

import (
	"errors"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
)

// Resolution failures; all terminal for the job.
var (
	// ErrDomainNotFound — no domain row for the tenant or the system tenant.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrPlaybookDisabled — the selected playbook has no nodes.
	ErrPlaybookDisabled = errors.New("playbook disabled")

	// ErrAgentMissing — a playbook node has no agent definition after the
	// system-tenant second pass.
	ErrAgentMissing = errors.New("agent missing")

	// ErrInvalidGraph — edges reference unknown nodes or the graph cycles.
	ErrInvalidGraph = errors.New("invalid playbook graph")
)

// Resolved is a playbook ready to execute: every agent definition
// materialised, graph validated acyclic.
type Resolved struct {
	TenantID string
	DomainID string
	JobType  models.JobType

	Nodes  []string
	Edges  []configstore.Edge
	Agents map[string]*configstore.AgentDefinition

	// Thresholds are the effective confidence thresholds for this domain
	// (zero fields mean system defaults apply).
	Thresholds configstore.Thresholds
}

// Children returns the adjacency map (parent -> children) of the graph.
func (r *Resolved) Children() map[string][]string {
	children := make(map[string][]string, len(r.Nodes))
	for _, e := range r.Edges {
		children[e.From] = append(children[e.From], e.To)
	}
	return children
}

// Indegrees returns the indegree of every node.
func (r *Resolved) Indegrees() map[string]int {
	indeg := make(map[string]int, len(r.Nodes))
	for _, n := range r.Nodes {
		indeg[n] = 0
	}
	for _, e := range r.Edges {
		indeg[e.To]++
	}
	return indeg
}

// Parents returns the reverse adjacency map (child -> parents).
func (r *Resolved) Parents() map[string][]string {
	parents := make(map[string][]string, len(r.Nodes))
	for _, e := range r.Edges {
		parents[e.To] = append(parents[e.To], e.From)
	}
	return parents
}
