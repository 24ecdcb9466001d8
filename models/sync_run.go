package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncRun records the outcome of one import pass over a plan file.
type SyncRun struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	SourceFile   string     `json:"source_file" db:"source_file"`
	RowsScanned  int        `json:"rows_scanned" db:"rows_scanned"`
	RowsSkipped  int        `json:"rows_skipped" db:"rows_skipped"`
	RowsInserted int        `json:"rows_inserted" db:"rows_inserted"`
	RowsUpdated  int        `json:"rows_updated" db:"rows_updated"`
	StartedAt    time.Time  `json:"started_at" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	ErrorMessage *string    `json:"error_message,omitempty" db:"error_message"`
}

// NewSyncRun starts a run record for the given source file.
func NewSyncRun(sourceFile string) *SyncRun {
	return &SyncRun{
		ID:         uuid.New(),
		SourceFile: sourceFile,
		StartedAt:  time.Now(),
	}
}

// Complete marks the run as finished.
func (r *SyncRun) Complete() {
	now := time.Now()
	r.CompletedAt = &now
}

// Fail marks the run as finished with an error.
func (r *SyncRun) Fail(err error) {
	msg := err.Error()
	r.ErrorMessage = &msg
	r.Complete()
}
