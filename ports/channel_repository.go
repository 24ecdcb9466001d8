package ports

import (
	"context"

	"freqsync/models"
)

// ChannelRepository defines the interface for channel frequency storage.
type ChannelRepository interface {
	// GetByChannel retrieves the stored record for a channel.
	// Returns sql.ErrNoRows (wrapped or not) when the channel is absent.
	GetByChannel(ctx context.Context, channel int64) (*models.ChannelFrequency, error)

	// UpdateFrequency overwrites the frequency of an existing channel.
	UpdateFrequency(ctx context.Context, channel int64, frequency float64) error

	// Create inserts a new channel record.
	Create(ctx context.Context, rec *models.ChannelFrequency) error

	// ListAll returns every stored channel record.
	ListAll(ctx context.Context) ([]*models.ChannelFrequency, error)
}
