// Package recordstore provides the schemaless document store holding user
// records. The production implementation is MongoDB; an in-memory fake backs
// tests. All floating-point numbers traverse a decimal conversion on write so
// the store's numeric type never rejects a float.
package recordstore

import (
	"context"
	"errors"
)

// Well-known record fields written by the lifecycle manager.
const (
	FieldTenantID       = "tenant_id"
	FieldDomainID       = "domain_id"
	FieldRawInput       = "raw_input"
	FieldIngestionData  = "ingestion_data"
	FieldManagementData = "management_data"
	FieldHistory        = "history"
	FieldStatus         = "status"
	FieldCreatedAt      = "created_at"
	FieldUpdatedAt      = "updated_at"
)

// ErrRecordNotFound is returned when the requested record does not exist in
// the tenant's scope.
var ErrRecordNotFound = errors.New("record not found")

// Store is the record persistence interface the core consumes. Every
// operation is scoped to one tenant; cross-tenant reads are impossible by
// construction.
type Store interface {
	// CreateRecord inserts a new document and returns its id.
	CreateRecord(ctx context.Context, tenantID string, record map[string]any) (string, error)

	// MergeRecord deep-merges partial into the existing document. Arrays
	// named "history" append instead of replacing; everything else follows
	// last-writer-wins per leaf.
	MergeRecord(ctx context.Context, tenantID, recordID string, partial map[string]any) error

	// QueryRecords returns up to limit records for the domain matching the
	// optional field filters.
	QueryRecords(ctx context.Context, tenantID, domainID string, filters map[string]any, limit int) ([]map[string]any, error)

	// GetRecord fetches one record, or ErrRecordNotFound.
	GetRecord(ctx context.Context, tenantID, recordID string) (map[string]any, error)
}
