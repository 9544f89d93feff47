package playbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
)

// Loader resolves playbooks against the config store with system-tenant
// fallback. The fallback policy lives here, not in the store.
type Loader struct {
	store configstore.Store
}

// NewLoader creates a playbook loader over the given config store.
func NewLoader(store configstore.Store) *Loader {
	return &Loader{store: store}
}

// Resolve materialises the playbook for (tenantID, domainID, jobType):
// domain lookup with system fallback, playbook selection, graph validation,
// and a two-pass agent batch load (tenant first, system for the remainder).
func (l *Loader) Resolve(ctx context.Context, tenantID, domainID string, jobType models.JobType) (*Resolved, error) {
	domain, err := l.loadDomain(ctx, tenantID, domainID)
	if err != nil {
		return nil, err
	}

	var pb configstore.Playbook
	switch jobType {
	case models.JobTypeIngest:
		pb = domain.Ingestion
	case models.JobTypeQuery:
		pb = domain.Query
	case models.JobTypeManagement:
		pb = domain.Management
	default:
		return nil, fmt.Errorf("no playbook for job type %q", jobType)
	}

	if pb.Disabled() {
		return nil, fmt.Errorf("%w: domain %s has no %s playbook", ErrPlaybookDisabled, domainID, jobType)
	}
	if err := validateGraph(pb.Nodes, pb.Edges); err != nil {
		return nil, err
	}

	agents, err := l.loadAgents(ctx, tenantID, pb.Nodes)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		TenantID:   tenantID,
		DomainID:   domainID,
		JobType:    jobType,
		Nodes:      pb.Nodes,
		Edges:      pb.Edges,
		Agents:     agents,
		Thresholds: domain.Thresholds,
	}, nil
}

func (l *Loader) loadDomain(ctx context.Context, tenantID, domainID string) (*configstore.DomainDefinition, error) {
	domain, err := l.store.GetDomain(ctx, tenantID, domainID)
	if err == nil {
		return domain, nil
	}
	if !errors.Is(err, configstore.ErrNotFound) {
		return nil, fmt.Errorf("loading domain: %w", err)
	}
	if tenantID != configstore.SystemTenant {
		domain, err = l.store.GetDomain(ctx, configstore.SystemTenant, domainID)
		if err == nil {
			slog.Debug("Domain resolved via system tenant", "tenant_id", tenantID, "domain_id", domainID)
			return domain, nil
		}
		if !errors.Is(err, configstore.ErrNotFound) {
			return nil, fmt.Errorf("loading system domain: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, domainID)
}

func (l *Loader) loadAgents(ctx context.Context, tenantID string, agentIDs []string) (map[string]*configstore.AgentDefinition, error) {
	agents, err := l.store.GetAgents(ctx, tenantID, agentIDs)
	if err != nil {
		return nil, fmt.Errorf("loading agents: %w", err)
	}

	var missing []string
	for _, id := range agentIDs {
		if _, ok := agents[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 && tenantID != configstore.SystemTenant {
		system, err := l.store.GetAgents(ctx, configstore.SystemTenant, missing)
		if err != nil {
			return nil, fmt.Errorf("loading system agents: %w", err)
		}
		for id, def := range system {
			agents[id] = def
		}
		missing = missing[:0]
		for _, id := range agentIDs {
			if _, ok := agents[id]; !ok {
				missing = append(missing, id)
			}
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %v", ErrAgentMissing, missing)
	}
	return agents, nil
}
