package app

import (
	"context"
	"fmt"
	"io"

	apperrors "freqsync/internal/errors"
	"freqsync/ports"

	"github.com/montanaflynn/stats"
)

// ReportService prints the stored channel table.
type ReportService struct {
	channels ports.ChannelRepository
	out      io.Writer
}

// NewReportService creates a new report service writing to out
func NewReportService(channels ports.ChannelRepository, out io.Writer) *ReportService {
	return &ReportService{channels: channels, out: out}
}

// Report fetches every stored record and emits one line per channel,
// followed by a frequency summary.
func (s *ReportService) Report(ctx context.Context) error {
	records, err := s.channels.ListAll(ctx)
	if err != nil {
		return apperrors.Wrap(err, "failed to list stored channels")
	}

	fmt.Fprintf(s.out, "stored channel frequencies (%d):\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(s.out, "  channel %d: %g\n", rec.Channel, rec.Frequency)
	}

	if len(records) == 0 {
		return nil
	}

	frequencies := make([]float64, len(records))
	for i, rec := range records {
		frequencies[i] = rec.Frequency
	}

	min, err := stats.Min(frequencies)
	if err != nil {
		return apperrors.Wrap(err, "failed to summarize frequencies")
	}
	max, _ := stats.Max(frequencies)
	mean, _ := stats.Mean(frequencies)

	fmt.Fprintf(s.out, "frequency summary: min %g, max %g, mean %g\n", min, max, mean)
	return nil
}
