package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/freqsync?sslmode=disable")
	t.Setenv("PLAN_FILE", "")
	t.Setenv("PLAN_SHEET", "")
	t.Setenv("CHANNEL_MARKER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./channel_plan.xlsx", cfg.Plan.FilePath)
	assert.Equal(t, "", cfg.Plan.Sheet)
	assert.Equal(t, 'К', cfg.Plan.Marker)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_CustomMarker(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/freqsync?sslmode=disable")
	t.Setenv("CHANNEL_MARKER", "#")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, '#', cfg.Plan.Marker)
}

func TestLoad_RejectsMultiCharacterMarker(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/freqsync?sslmode=disable")
	t.Setenv("CHANNEL_MARKER", "ab")

	_, err := Load()
	require.Error(t, err)
}
