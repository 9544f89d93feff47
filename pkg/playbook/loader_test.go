package playbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
)

func testAgent(tenant, id string) *configstore.AgentDefinition {
	return &configstore.AgentDefinition{
		AgentID:      id,
		TenantID:     tenant,
		AgentName:    id,
		AgentClass:   configstore.AgentClassIngestion,
		SystemPrompt: "extract structured data",
		Tools:        []string{"llm"},
		OutputSchema: map[string]string{"label": "string", "confidence": "number"},
		Weight:       1,
	}
}

func testDomain(tenant string) *configstore.DomainDefinition {
	return &configstore.DomainDefinition{
		DomainID:   "civic_complaints",
		TenantID:   tenant,
		DomainName: "Civic Complaints",
		Ingestion: configstore.Playbook{
			Nodes: []string{"geo", "temporal"},
			Edges: []configstore.Edge{{From: "geo", To: "temporal"}},
		},
		Query: configstore.Playbook{Nodes: []string{"what"}},
	}
}

func TestResolveTenantScoped(t *testing.T) {
	store := configstore.NewFakeStore()
	store.PutDomain(testDomain("acme"))
	store.PutAgent(testAgent("acme", "geo"))
	store.PutAgent(testAgent("acme", "temporal"))

	resolved, err := NewLoader(store).Resolve(context.Background(), "acme", "civic_complaints", models.JobTypeIngest)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"geo", "temporal"}, resolved.Nodes)
	assert.Len(t, resolved.Agents, 2)
	assert.Equal(t, "acme", resolved.Agents["geo"].TenantID)
}

func TestResolveDomainFallsBackToSystem(t *testing.T) {
	store := configstore.NewFakeStore()
	store.PutDomain(testDomain(configstore.SystemTenant))
	store.PutAgent(testAgent(configstore.SystemTenant, "geo"))
	store.PutAgent(testAgent(configstore.SystemTenant, "temporal"))

	resolved, err := NewLoader(store).Resolve(context.Background(), "acme", "civic_complaints", models.JobTypeIngest)
	require.NoError(t, err)
	assert.Equal(t, "acme", resolved.TenantID)
	assert.Equal(t, configstore.SystemTenant, resolved.Agents["geo"].TenantID)
}

func TestResolveAgentSecondPassMergesSystemAgents(t *testing.T) {
	// Tenant overrides one agent; the other comes from the system tenant.
	store := configstore.NewFakeStore()
	store.PutDomain(testDomain("acme"))
	store.PutAgent(testAgent("acme", "geo"))
	store.PutAgent(testAgent(configstore.SystemTenant, "temporal"))

	resolved, err := NewLoader(store).Resolve(context.Background(), "acme", "civic_complaints", models.JobTypeIngest)
	require.NoError(t, err)
	assert.Equal(t, "acme", resolved.Agents["geo"].TenantID)
	assert.Equal(t, configstore.SystemTenant, resolved.Agents["temporal"].TenantID)
}

func TestResolveDomainNotFound(t *testing.T) {
	store := configstore.NewFakeStore()
	_, err := NewLoader(store).Resolve(context.Background(), "acme", "nope", models.JobTypeIngest)
	require.ErrorIs(t, err, ErrDomainNotFound)
}

func TestResolvePlaybookDisabled(t *testing.T) {
	store := configstore.NewFakeStore()
	d := testDomain("acme")
	d.Management = configstore.Playbook{} // no nodes
	store.PutDomain(d)

	_, err := NewLoader(store).Resolve(context.Background(), "acme", "civic_complaints", models.JobTypeManagement)
	require.ErrorIs(t, err, ErrPlaybookDisabled)
}

func TestResolveAgentMissing(t *testing.T) {
	store := configstore.NewFakeStore()
	store.PutDomain(testDomain("acme"))
	store.PutAgent(testAgent("acme", "geo"))
	// "temporal" exists nowhere.

	_, err := NewLoader(store).Resolve(context.Background(), "acme", "civic_complaints", models.JobTypeIngest)
	require.ErrorIs(t, err, ErrAgentMissing)
	assert.Contains(t, err.Error(), "temporal")
}

func TestValidateGraphRejectsCycle(t *testing.T) {
	err := validateGraph(
		[]string{"a", "b", "c"},
		[]configstore.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}},
	)
	require.ErrorIs(t, err, ErrInvalidGraph)
}

func TestValidateGraphRejectsUnknownEndpoint(t *testing.T) {
	err := validateGraph([]string{"a"}, []configstore.Edge{{From: "a", To: "ghost"}})
	require.ErrorIs(t, err, ErrInvalidGraph)
}

func TestValidateGraphAcceptsDiamond(t *testing.T) {
	err := validateGraph(
		[]string{"a", "b", "c", "d"},
		[]configstore.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "b", To: "d"}, {From: "c", To: "d"}},
	)
	require.NoError(t, err)
}
