package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"freqsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_OneLinePerChannel(t *testing.T) {
	repo := newFakeChannelRepo()
	repo.store[7] = &models.ChannelFrequency{Channel: 7, Frequency: 101.5}
	repo.store[12] = &models.ChannelFrequency{Channel: 12, Frequency: 100.5}

	var out bytes.Buffer
	svc := NewReportService(repo, &out)

	require.NoError(t, svc.Report(context.Background()))

	assert.Contains(t, out.String(), "stored channel frequencies (2):")
	assert.Equal(t, 1, strings.Count(out.String(), "channel 7:"))
	assert.Equal(t, 1, strings.Count(out.String(), "channel 12:"))
	assert.Contains(t, out.String(), "frequency summary: min 100.5, max 101.5, mean 101")
}

func TestReportService_EmptyStore(t *testing.T) {
	repo := newFakeChannelRepo()

	var out bytes.Buffer
	svc := NewReportService(repo, &out)

	require.NoError(t, svc.Report(context.Background()))

	assert.Contains(t, out.String(), "stored channel frequencies (0):")
	assert.NotContains(t, out.String(), "frequency summary")
}
