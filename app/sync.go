package app

import (
	"context"
	"database/sql"
	"errors"
	"log"

	apperrors "freqsync/internal/errors"
	"freqsync/models"
	"freqsync/ports"
)

// SyncResult reports what one sync pass did.
type SyncResult struct {
	Inserted int
	Updated  int
}

// SyncService reconciles extracted plan records into the store.
//
// Records are processed strictly one at a time; each store round trip
// completes before the next begins. The first store failure aborts the
// remaining loop, retaining progress made so far.
type SyncService struct {
	channels ports.ChannelRepository
}

// NewSyncService creates a new sync service
func NewSyncService(channels ports.ChannelRepository) *SyncService {
	return &SyncService{channels: channels}
}

// Sync upserts each record by channel number: existing channels get their
// frequency overwritten, unknown channels are inserted.
func (s *SyncService) Sync(ctx context.Context, records []models.ChannelFrequency) (SyncResult, error) {
	var result SyncResult

	for _, rec := range records {
		existing, err := s.channels.GetByChannel(ctx, rec.Channel)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return result, apperrors.Wrapf(err, "lookup failed for channel %d", rec.Channel)
		}

		if existing != nil {
			if err := s.channels.UpdateFrequency(ctx, rec.Channel, rec.Frequency); err != nil {
				return result, apperrors.Wrapf(err, "failed to update channel %d", rec.Channel)
			}
			result.Updated++
			log.Printf("[Sync] channel %d updated: %g -> %g", rec.Channel, existing.Frequency, rec.Frequency)
			continue
		}

		if err := s.channels.Create(ctx, &rec); err != nil {
			return result, apperrors.Wrapf(err, "failed to insert channel %d", rec.Channel)
		}
		result.Inserted++
		log.Printf("[Sync] channel %d inserted with frequency %g", rec.Channel, rec.Frequency)
	}

	return result, nil
}
