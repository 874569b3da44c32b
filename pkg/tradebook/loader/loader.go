// Package loader reads a trade-import dataset from CSV or spreadsheet files
// into a models.Table.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
)

// ErrUnsupportedFormat indicates the input file extension is not handled.
var ErrUnsupportedFormat = errors.New("unsupported input file type")

// ErrEmptyInput indicates the input holds no header row.
var ErrEmptyInput = errors.New("input has no header row")

// FormatError reports an input extension that no reader handles.
type FormatError struct {
	Ext string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedFormat, e.Ext)
}

func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// Format identifies an input reader.
type Format string

const (
	// FormatCSV is comma-separated text with a header row.
	FormatCSV Format = "csv"
	// FormatSpreadsheet is an OOXML workbook; only the first sheet is read.
	FormatSpreadsheet Format = "spreadsheet"
)

// DetectFormat maps a file path to its reader by extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls", ".xlsm":
		return FormatSpreadsheet, nil
	default:
		return "", &FormatError{Ext: ext}
	}
}

// Load reads the file at path into a Table.
// The extension is checked before the file is opened.
func Load(path string) (*models.Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var table *models.Table
	switch format {
	case FormatCSV:
		table, err = LoadCSV(path)
	case FormatSpreadsheet:
		table, err = LoadSpreadsheet(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}

// newTable builds a Table from a header and raw string records. Records
// whose cells are all blank are kept as blank rows.
func newTable(header []string, records [][]string) *models.Table {
	table := &models.Table{
		Columns: make([]string, len(header)),
		Rows:    make([][]models.Value, 0, len(records)),
	}
	for i, h := range header {
		table.Columns[i] = strings.TrimSpace(h)
	}
	for _, rec := range records {
		row := make([]models.Value, len(header))
		for c := 0; c < len(rec) && c < len(header); c++ {
			row[c] = ParseValue(rec[c])
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// isEmptyRecord reports whether every cell of rec is blank.
func isEmptyRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
