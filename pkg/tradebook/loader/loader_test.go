package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.csv", FormatCSV},
		{"DATA.CSV", FormatCSV},
		{"book.xlsx", FormatSpreadsheet},
		{"legacy.xls", FormatSpreadsheet},
		{"macro.xlsm", FormatSpreadsheet},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	// The file does not exist: the extension check must fire before any open.
	_, err := Load(filepath.Join(t.TempDir(), "notes.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ".txt", fe.Ext)
	assert.Equal(t, "unsupported input file type: .txt", err.Error())
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "sample.csv",
		"DATE,PORT CODE,IEC,HS CODE,GOODS DESCRIPTION,QUANTITY\n"+
			"2023-01-05,INNSA1,ABC123,73239990,\"STEEL basket QTY-12 units\",0\n"+
			"2024-02-10,INMAA1,0456789,73211900,cutlery set,5.5\n")

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"DATE", "PORT CODE", "IEC", "HS CODE", "GOODS DESCRIPTION", "QUANTITY"}, table.Columns)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), table.Cell(0, 0))
	assert.Equal(t, "INNSA1", table.Cell(0, 1))
	assert.Equal(t, int64(73239990), table.Cell(0, 3))
	assert.Equal(t, "STEEL basket QTY-12 units", table.Cell(0, 4))
	assert.Equal(t, int64(0), table.Cell(0, 5))

	// Zero-padded importer ids stay text
	assert.Equal(t, "0456789", table.Cell(1, 2))
	assert.Equal(t, 5.5, table.Cell(1, 5))
}

func TestReadCSV_ShortRowsBOMAndBlankLines(t *testing.T) {
	input := "\uFEFFIEC,Model Name,Capacity\nX1,M-1\n,,\n\nX2,,2L\n"
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "IEC", table.Columns[0])
	// the ",," record stays as a blank row; the empty line is skipped
	require.Equal(t, 3, table.Len())
	assert.Equal(t, "M-1", table.Cell(0, 1))
	assert.Nil(t, table.Cell(0, 2))
	assert.Equal(t, []models.Value{nil, nil, nil}, table.Rows[1])
	assert.Nil(t, table.Cell(2, 1))
	assert.Equal(t, "2L", table.Cell(2, 2))
}

func TestReadCSV_UTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	input, err := enc.String("IEC,GOODS DESCRIPTION\nX1,Caf\u00e9 basket\n")
	require.NoError(t, err)

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"IEC", "GOODS DESCRIPTION"}, table.Columns)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Caf\u00e9 basket", table.Cell(0, 1))
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoad_Spreadsheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	// Leading blank row before the header
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"DATE", "HS CODE", "TOTAL VALUE_INR", "GOODS DESCRIPTION"}))
	require.NoError(t, f.SetCellValue(sheet, "A3", time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue(sheet, "B3", "73239300"))
	require.NoError(t, f.SetCellValue(sheet, "C3", 1250.75))
	require.NoError(t, f.SetCellValue(sheet, "D3", "lunch box MODEL: LB-200"))
	require.NoError(t, f.SetCellValue(sheet, "C4", 10))

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"DATE", "HS CODE", "TOTAL VALUE_INR", "GOODS DESCRIPTION"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC), table.Cell(0, 0))
	assert.Equal(t, int64(73239300), table.Cell(0, 1))
	assert.Equal(t, 1250.75, table.Cell(0, 2))
	assert.Equal(t, "lunch box MODEL: LB-200", table.Cell(0, 3))

	// Plain numbers are not mistaken for dates
	assert.Equal(t, int64(10), table.Cell(1, 2))
	assert.Nil(t, table.Cell(1, 0))
}

func TestLoad_SpreadsheetNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "missing.xlsx")
}

func TestIsDateFormat(t *testing.T) {
	custom := func(s string) *string { return &s }
	tests := []struct {
		numFmt int
		custom *string
		want   bool
	}{
		{14, nil, true},
		{22, nil, true},
		{0, nil, false},
		{2, nil, false},
		{10, nil, false},
		{0, custom("yyyy-mm-dd"), true},
		{0, custom("dd/mm/yyyy hh:mm"), true},
		{0, custom(`0.00" days"`), false},
		{0, custom("[Red]0.00"), false},
		{0, custom("hh:mm"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isDateFormat(tt.numFmt, tt.custom), "numFmt=%d custom=%v", tt.numFmt, tt.custom)
	}
}
