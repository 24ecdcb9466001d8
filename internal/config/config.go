package config

import (
	"os"
	"unicode/utf8"

	"freqsync/internal/errors"
	"freqsync/models"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Plan     PlanConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// PlanConfig holds channel plan input settings
type PlanConfig struct {
	FilePath string
	Sheet    string // empty means first sheet in the workbook
	Marker   rune
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}

	planConfig, err := loadPlanConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load plan configuration")
	}

	return &Config{
		Database: *dbConfig,
		Plan:     *planConfig,
	}, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{URL: url}, nil
}

func loadPlanConfig() (*PlanConfig, error) {
	marker := models.DefaultMarker
	if value := os.Getenv("CHANNEL_MARKER"); value != "" {
		r, size := utf8.DecodeRuneInString(value)
		if r == utf8.RuneError || size != len(value) {
			return nil, errors.ConfigInvalid("CHANNEL_MARKER must be a single character")
		}
		marker = r
	}

	return &PlanConfig{
		FilePath: getEnvOrDefault("PLAN_FILE", "./channel_plan.xlsx"),
		Sheet:    getEnvOrDefault("PLAN_SHEET", ""),
		Marker:   marker,
	}, nil
}

// Helper for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
