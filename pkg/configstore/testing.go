package configstore

import (
	"context"
	"fmt"
	"sync"
)

// FakeStore is an in-memory Store for tests. Zero value is not usable;
// construct with NewFakeStore.
type FakeStore struct {
	mu      sync.RWMutex
	domains map[string]*DomainDefinition // key: tenant/domain
	agents  map[string]*AgentDefinition  // key: tenant/agent
}

// NewFakeStore creates an empty in-memory config store.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		domains: make(map[string]*DomainDefinition),
		agents:  make(map[string]*AgentDefinition),
	}
}

// PutDomain registers a domain definition.
func (f *FakeStore) PutDomain(d *DomainDefinition) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.domains[f.key(d.TenantID, d.DomainID)] = d
}

// PutAgent registers an agent definition.
func (f *FakeStore) PutAgent(a *AgentDefinition) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents[f.key(a.TenantID, a.AgentID)] = a
}

// GetDomain implements Store.
func (f *FakeStore) GetDomain(_ context.Context, tenantID, domainID string) (*DomainDefinition, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	d, ok := f.domains[f.key(tenantID, domainID)]
	if !ok {
		return nil, fmt.Errorf("%w: domain %s/%s", ErrNotFound, tenantID, domainID)
	}
	return d, nil
}

// GetAgents implements Store.
func (f *FakeStore) GetAgents(_ context.Context, tenantID string, agentIDs []string) (map[string]*AgentDefinition, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]*AgentDefinition)
	for _, id := range agentIDs {
		if a, ok := f.agents[f.key(tenantID, id)]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (f *FakeStore) key(tenant, id string) string { return tenant + "/" + id }
