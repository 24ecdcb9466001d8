package postgres

import (
	"context"

	"freqsync/models"
	"freqsync/ports"

	"github.com/jmoiron/sqlx"
)

// SyncRunRepositoryImpl implements SyncRunRepository for PostgreSQL
type SyncRunRepositoryImpl struct {
	db *sqlx.DB
}

// NewSyncRunRepository creates a new PostgreSQL sync run repository
func NewSyncRunRepository(db *sqlx.DB) ports.SyncRunRepository {
	return &SyncRunRepositoryImpl{db: db}
}

// Record stores a finished run
func (r *SyncRunRepositoryImpl) Record(ctx context.Context, run *models.SyncRun) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO sync_runs (id, source_file, rows_scanned, rows_skipped, rows_inserted, rows_updated, started_at, completed_at, error_message)
		VALUES (:id, :source_file, :rows_scanned, :rows_skipped, :rows_inserted, :rows_updated, :started_at, :completed_at, :error_message)
	`, run)
	return err
}
