package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateClaimIndex creates the partial index backing the worker claim query.
// Ent/Atlas cannot express partial indexes, so it lives here and in
// 0001_init.up.sql; both use IF NOT EXISTS. The ent auto-migration path used
// by tests relies on this function.
func CreateClaimIndex(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS job_claimable
		ON jobs (created_at)
		WHERE status = 'queued' AND pod_id IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create claimable jobs index: %w", err)
	}

	return nil
}
