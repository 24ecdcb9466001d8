package excel

import (
	"path/filepath"
	"testing"

	"freqsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writePlanFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestPlanReader_Read(t *testing.T) {
	path := writePlanFile(t, [][]interface{}{
		{"К7", 101.5},
		{"К7", 102.0},
		{"bad", 5},
		{"К9", nil},
		{"К10", "abc"},
		{"К11", "NaN"},
		{"К12", 98.1},
		{"К13 ", 77.0},
	})

	reader := NewPlanReader(Config{FilePath: path})
	extract, err := reader.Read()
	require.NoError(t, err)

	assert.Equal(t, 8, extract.RowsScanned)
	assert.Equal(t, 5, extract.RowsSkipped)
	assert.Equal(t, []models.ChannelFrequency{
		{Channel: 7, Frequency: 101.5},
		{Channel: 7, Frequency: 102.0},
		{Channel: 12, Frequency: 98.1},
	}, extract.Records)
}

func TestPlanReader_Read_HeaderRowIsSkippedByValidation(t *testing.T) {
	path := writePlanFile(t, [][]interface{}{
		{"channel", "frequency"},
		{"К3", 55.25},
	})

	reader := NewPlanReader(Config{FilePath: path})
	extract, err := reader.Read()
	require.NoError(t, err)

	assert.Equal(t, 2, extract.RowsScanned)
	assert.Equal(t, 1, extract.RowsSkipped)
	require.Len(t, extract.Records, 1)
	assert.Equal(t, int64(3), extract.Records[0].Channel)
	assert.Equal(t, 55.25, extract.Records[0].Frequency)
}

func TestPlanReader_Read_CustomMarker(t *testing.T) {
	path := writePlanFile(t, [][]interface{}{
		{"X8", 440.0},
	})

	reader := NewPlanReader(Config{FilePath: path, Marker: 'X'})
	extract, err := reader.Read()
	require.NoError(t, err)

	require.Len(t, extract.Records, 1)
	assert.Equal(t, int64(8), extract.Records[0].Channel)
}

func TestPlanReader_Read_FileNotFound(t *testing.T) {
	reader := NewPlanReader(Config{FilePath: filepath.Join(t.TempDir(), "missing.xlsx")})

	_, err := reader.Read()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlanReader_Read_MissingSheet(t *testing.T) {
	path := writePlanFile(t, [][]interface{}{
		{"К1", 1.0},
	})

	reader := NewPlanReader(Config{FilePath: path, Sheet: "Nope"})
	_, err := reader.Read()
	assert.Error(t, err)
}
