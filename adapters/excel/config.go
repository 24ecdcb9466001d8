package excel

import "freqsync/models"

// Config holds settings for reading a channel plan workbook.
type Config struct {
	FilePath string
	Sheet    string // empty means first sheet in the workbook
	Marker   rune
}

// DefaultConfig returns sensible defaults for plan reading
func DefaultConfig() Config {
	return Config{
		Marker: models.DefaultMarker,
	}
}
