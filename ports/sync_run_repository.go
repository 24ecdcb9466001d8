package ports

import (
	"context"

	"freqsync/models"
)

// SyncRunRepository persists the audit trail of import runs.
type SyncRunRepository interface {
	// Record stores a finished run.
	Record(ctx context.Context, run *models.SyncRun) error
}
