package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadCSV reads a comma-separated file whose first record is the header.
func LoadCSV(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses comma-separated records from r. A UTF-8 or UTF-16 byte
// order mark selects the decoding and is dropped; input without one is read
// as is.
func ReadCSV(r io.Reader) (*models.Table, error) {
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // Allow variable column counts

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv header: %w", err)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return newTable(header, records), nil
}
