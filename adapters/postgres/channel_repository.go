package postgres

import (
	"context"
	"errors"

	"freqsync/models"
	"freqsync/ports"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ChannelRepositoryImpl implements ChannelRepository for PostgreSQL
type ChannelRepositoryImpl struct {
	db *sqlx.DB
}

// NewChannelRepository creates a new PostgreSQL channel repository
func NewChannelRepository(db *sqlx.DB) ports.ChannelRepository {
	return &ChannelRepositoryImpl{db: db}
}

// GetByChannel retrieves the stored record for a channel
func (r *ChannelRepositoryImpl) GetByChannel(ctx context.Context, channel int64) (*models.ChannelFrequency, error) {
	var rec models.ChannelFrequency
	err := r.db.GetContext(ctx, &rec, `
		SELECT channel, frequency, created_at, updated_at
		FROM channel_frequencies
		WHERE channel = $1
	`, channel)

	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// UpdateFrequency overwrites the frequency of an existing channel
func (r *ChannelRepositoryImpl) UpdateFrequency(ctx context.Context, channel int64, frequency float64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE channel_frequencies
		SET frequency = $2, updated_at = NOW()
		WHERE channel = $1
	`, channel, frequency)
	return err
}

// Create inserts a new channel record
func (r *ChannelRepositoryImpl) Create(ctx context.Context, rec *models.ChannelFrequency) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO channel_frequencies (channel, frequency, created_at, updated_at)
		VALUES (:channel, :frequency, NOW(), NOW())
	`, rec)

	if err != nil {
		// Handle unique constraint violation (channel might have been inserted by another run)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return r.UpdateFrequency(ctx, rec.Channel, rec.Frequency)
		}
		return err
	}

	return nil
}

// ListAll returns every stored channel record
func (r *ChannelRepositoryImpl) ListAll(ctx context.Context) ([]*models.ChannelFrequency, error) {
	var recs []*models.ChannelFrequency
	err := r.db.SelectContext(ctx, &recs, `
		SELECT channel, frequency, created_at, updated_at
		FROM channel_frequencies
		ORDER BY channel
	`)
	return recs, err
}
