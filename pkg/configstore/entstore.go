package configstore

import (
	"context"
	"fmt"

	"github.com/intakehq/intake/ent"
	"github.com/intakehq/intake/ent/agentdef"
	"github.com/intakehq/intake/ent/domainconfig"
)

// EntStore implements Store on top of the relational config tables.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a read-only store over an existing ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// GetDomain returns the domain scoped to exactly tenantID. No system-tenant
// fallback here — the playbook loader owns that policy.
func (s *EntStore) GetDomain(ctx context.Context, tenantID, domainID string) (*DomainDefinition, error) {
	row, err := s.client.DomainConfig.Query().
		Where(
			domainconfig.TenantIDEQ(tenantID),
			domainconfig.DomainIDEQ(domainID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: domain %s/%s", ErrNotFound, tenantID, domainID)
		}
		return nil, fmt.Errorf("querying domain %s/%s: %w", tenantID, domainID, err)
	}

	return &DomainDefinition{
		DomainID:   row.DomainID,
		TenantID:   row.TenantID,
		DomainName: row.DomainName,
		Ingestion:  row.IngestionPlaybook,
		Query:      row.QueryPlaybook,
		Management: row.ManagementPlaybook,
		Thresholds: row.Thresholds,
		IsBuiltin:  row.IsBuiltin,
	}, nil
}

// GetAgents batch-loads agents by id for one tenant. Ids missing from the
// result were not found; callers run the system-tenant second pass.
func (s *EntStore) GetAgents(ctx context.Context, tenantID string, agentIDs []string) (map[string]*AgentDefinition, error) {
	if len(agentIDs) == 0 {
		return map[string]*AgentDefinition{}, nil
	}

	rows, err := s.client.AgentDef.Query().
		Where(
			agentdef.TenantIDEQ(tenantID),
			agentdef.AgentIDIn(agentIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying agents for tenant %s: %w", tenantID, err)
	}

	out := make(map[string]*AgentDefinition, len(rows))
	for _, row := range rows {
		out[row.AgentID] = &AgentDefinition{
			AgentID:      row.AgentID,
			TenantID:     row.TenantID,
			AgentName:    row.AgentName,
			AgentClass:   AgentClass(row.AgentClass),
			SystemPrompt: row.SystemPrompt,
			Tools:        row.Tools,
			OutputSchema: row.OutputSchema,
			Weight:       row.Weight,
			Strict:       row.Strict,
			Version:      row.Version,
			IsBuiltin:    row.IsBuiltin,
		}
	}
	return out, nil
}

// SeedBuiltins upserts the compiled-in system-tenant definitions. Builtin
// rows are immutable from the API; seeding is the only writer.
func SeedBuiltins(ctx context.Context, client *ent.Client, agents []*AgentDefinition, domains []*DomainDefinition) error {
	for _, a := range agents {
		err := client.AgentDef.Create().
			SetTenantID(SystemTenant).
			SetAgentID(a.AgentID).
			SetAgentName(a.AgentName).
			SetAgentClass(string(a.AgentClass)).
			SetSystemPrompt(a.SystemPrompt).
			SetTools(a.Tools).
			SetOutputSchema(a.OutputSchema).
			SetWeight(a.Weight).
			SetStrict(a.Strict).
			SetVersion(a.Version).
			SetIsBuiltin(true).
			OnConflictColumns(agentdef.FieldTenantID, agentdef.FieldAgentID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seeding builtin agent %s: %w", a.AgentID, err)
		}
	}

	for _, d := range domains {
		err := client.DomainConfig.Create().
			SetTenantID(SystemTenant).
			SetDomainID(d.DomainID).
			SetDomainName(d.DomainName).
			SetIngestionPlaybook(d.Ingestion).
			SetQueryPlaybook(d.Query).
			SetManagementPlaybook(d.Management).
			SetThresholds(d.Thresholds).
			SetIsBuiltin(true).
			OnConflictColumns(domainconfig.FieldTenantID, domainconfig.FieldDomainID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seeding builtin domain %s: %w", d.DomainID, err)
		}
	}
	return nil
}
