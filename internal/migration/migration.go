package migration

import (
	"context"

	"freqsync/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createChannelFrequenciesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create channel_frequencies table")
	}

	if err := r.createSyncRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create sync_runs table")
	}

	return nil
}

func (r *MigrationRunner) createChannelFrequenciesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS channel_frequencies (
			channel BIGINT NOT NULL UNIQUE,
			frequency DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createSyncRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sync_runs (
			id UUID PRIMARY KEY,
			source_file TEXT NOT NULL,
			rows_scanned INTEGER NOT NULL DEFAULT 0,
			rows_skipped INTEGER NOT NULL DEFAULT 0,
			rows_inserted INTEGER NOT NULL DEFAULT 0,
			rows_updated INTEGER NOT NULL DEFAULT 0,
			started_at TIMESTAMP WITH TIME ZONE NOT NULL,
			completed_at TIMESTAMP WITH TIME ZONE,
			error_message TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs(started_at DESC)
	`)
	return err
}
