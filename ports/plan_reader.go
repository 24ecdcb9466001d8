package ports

import "freqsync/models"

// Extract is the outcome of scanning one plan document.
type Extract struct {
	Records     []models.ChannelFrequency // accepted rows, in sheet order
	RowsScanned int
	RowsSkipped int
}

// PlanReader produces channel records from an external plan document.
type PlanReader interface {
	Read() (*Extract, error)
}
