package recordstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FakeStore is an in-memory Store for tests. It round-trips every document
// through the decimal encoding so tests exercise the same numeric path as
// the Mongo implementation.
type FakeStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]any

	// FailWrites, when set, makes every mutation return this error
	// (simulates StoreUnavailable).
	FailWrites error
}

// NewFakeStore creates an empty in-memory record store.
func NewFakeStore() *FakeStore {
	return &FakeStore{docs: make(map[string]map[string]any)}
}

// CreateRecord implements Store.
func (f *FakeStore) CreateRecord(_ context.Context, tenantID string, record map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailWrites != nil {
		return "", f.FailWrites
	}

	id := uuid.NewString()
	doc := roundTrip(record)
	doc[FieldTenantID] = tenantID
	now := time.Now().UTC()
	if _, ok := doc[FieldCreatedAt]; !ok {
		doc[FieldCreatedAt] = now
	}
	doc[FieldUpdatedAt] = now
	f.docs[id] = doc
	return id, nil
}

// MergeRecord implements Store.
func (f *FakeStore) MergeRecord(_ context.Context, tenantID, recordID string, partial map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailWrites != nil {
		return f.FailWrites
	}

	doc, ok := f.docs[recordID]
	if !ok || doc[FieldTenantID] != tenantID {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}
	deepMerge(doc, roundTrip(partial))
	doc[FieldUpdatedAt] = time.Now().UTC()
	return nil
}

// QueryRecords implements Store with equality-predicate filters.
func (f *FakeStore) QueryRecords(_ context.Context, tenantID, domainID string, filters map[string]any, limit int) ([]map[string]any, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []map[string]any
	for id, doc := range f.docs {
		if doc[FieldTenantID] != tenantID || doc[FieldDomainID] != domainID {
			continue
		}
		if !matches(doc, filters) {
			continue
		}
		copied := roundTrip(doc)
		copied["_id"] = id
		out = append(out, copied)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// GetRecord implements Store.
func (f *FakeStore) GetRecord(_ context.Context, tenantID, recordID string) (map[string]any, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	doc, ok := f.docs[recordID]
	if !ok || doc[FieldTenantID] != tenantID {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}
	copied := roundTrip(doc)
	copied["_id"] = recordID
	return copied, nil
}

// Len returns the number of stored records.
func (f *FakeStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.docs)
}

func matches(doc, filters map[string]any) bool {
	for k, want := range filters {
		if doc[k] != want {
			return false
		}
	}
	return true
}

// roundTrip deep-copies via the decimal encode/decode pair.
func roundTrip(m map[string]any) map[string]any {
	return DecodeDecimals(EncodeDecimals(m)).(map[string]any)
}
