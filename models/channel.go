package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultMarker is the channel-number prefix used in plan spreadsheets.
const DefaultMarker = 'К' // U+041A CYRILLIC CAPITAL KA

// ChannelFrequency associates a channel number with its assigned frequency.
// Channel is the natural key; the store holds at most one row per channel.
type ChannelFrequency struct {
	Channel   int64     `json:"channel" db:"channel"`
	Frequency float64   `json:"frequency" db:"frequency"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ParseChannelLabel extracts the channel number from a label of the form
// "<marker><digits>". Anything may precede the marker; after the marker only
// ASCII digits are allowed, and at least one is required.
func ParseChannelLabel(label string, marker rune) (int64, error) {
	idx := strings.IndexRune(label, marker)
	if idx < 0 {
		return 0, fmt.Errorf("channel marker %q not found in label %q", marker, label)
	}

	digits := label[idx+len(string(marker)):]
	if digits == "" {
		return 0, fmt.Errorf("no channel number after marker in label %q", label)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("unexpected character %q after marker in label %q", c, label)
		}
	}

	channel, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel number in label %q: %w", label, err)
	}
	return channel, nil
}
