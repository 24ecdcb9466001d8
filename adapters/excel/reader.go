package excel

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"freqsync/models"
	"freqsync/ports"

	"github.com/xuri/excelize/v2"
)

// PlanReader extracts channel frequency records from an xlsx workbook.
//
// Column 1 holds a channel label of the form "<marker><digits>", column 2 the
// frequency. Every row is scanned, including the first; a header row simply
// fails label validation and is skipped.
type PlanReader struct {
	cfg Config
}

// NewPlanReader creates a reader for the workbook described by cfg.
func NewPlanReader(cfg Config) *PlanReader {
	if cfg.Marker == 0 {
		cfg.Marker = models.DefaultMarker
	}
	return &PlanReader{cfg: cfg}
}

// Read opens the workbook and converts its rows into channel records.
// Invalid rows are skipped and logged with their 1-based row number.
func (r *PlanReader) Read() (*ports.Extract, error) {
	log.Printf("[PlanReader] opening plan file: %s", r.cfg.FilePath)

	if _, err := os.Stat(r.cfg.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("plan file not found: %s", r.cfg.FilePath)
	}

	f, err := excelize.OpenFile(r.cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan file: %w", err)
	}
	defer f.Close()

	sheet := r.cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("plan file has no worksheets: %s", r.cfg.FilePath)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	extract := &ports.Extract{RowsScanned: len(rows)}
	for i, row := range rows {
		rowNum := i + 1

		rec, err := r.parseRow(row)
		if err != nil {
			log.Printf("[PlanReader] row %d skipped: %v", rowNum, err)
			extract.RowsSkipped++
			continue
		}

		extract.Records = append(extract.Records, *rec)
	}

	log.Printf("[PlanReader] sheet %q scanned: %d rows, %d accepted, %d skipped",
		sheet, extract.RowsScanned, len(extract.Records), extract.RowsSkipped)

	return extract, nil
}

func (r *PlanReader) parseRow(row []string) (*models.ChannelFrequency, error) {
	if len(row) < 1 || strings.TrimSpace(row[0]) == "" {
		return nil, fmt.Errorf("empty channel label cell")
	}

	// The label is validated raw: anything may precede the marker, but any
	// character after the digits, whitespace included, rejects the row.
	channel, err := models.ParseChannelLabel(row[0], r.cfg.Marker)
	if err != nil {
		return nil, err
	}

	if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
		return nil, fmt.Errorf("empty frequency cell for channel %d", channel)
	}

	frequency, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("non-numeric frequency %q for channel %d", row[1], channel)
	}
	if math.IsNaN(frequency) {
		return nil, fmt.Errorf("frequency is NaN for channel %d", channel)
	}

	return &models.ChannelFrequency{
		Channel:   channel,
		Frequency: frequency,
	}, nil
}
