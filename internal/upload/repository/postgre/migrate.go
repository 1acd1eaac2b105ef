package postgre

import (
	"context"
	"fmt"

	"partner-dashboard-srv/internal/upload/repository"
)

func (r *implRepository) schemaStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	file_id        TEXT PRIMARY KEY,
	source         TEXT NOT NULL,
	filename       TEXT NOT NULL,
	session_id     TEXT,
	archive_object TEXT,
	size_bytes     BIGINT NOT NULL DEFAULT 0,
	uploaded_at    TIMESTAMPTZ NOT NULL,
	recorded_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, r.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS upload_history_uploaded_at_idx ON %s (uploaded_at DESC)`, r.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS upload_history_session_idx ON %s (session_id)`, r.table),
		// tables created before the optional columns became nullable
		fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN session_id DROP NOT NULL, ALTER COLUMN session_id DROP DEFAULT`, r.table),
		fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN archive_object DROP NOT NULL, ALTER COLUMN archive_object DROP DEFAULT`, r.table),
	}
}

// EnsureSchema creates the ledger table and its indexes when missing.
func (r *implRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range r.schemaStatements() {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "upload.repository.postgre.EnsureSchema: exec failed: %v", err)
			return fmt.Errorf("EnsureSchema: %w: %v", repository.ErrFailedToMigrate, err)
		}
	}
	return nil
}
