// Package lookup holds the HS code reference table written to the
// Lookup Tables sheet.
package lookup

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrNoEntries indicates a lookup document without any entry.
var ErrNoEntries = errors.New("lookup table has no entries")

var validate = validator.New()

// Entry maps one HS code to its description and main category.
type Entry struct {
	Code        string `yaml:"code" validate:"required,numeric"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// Headers are the column labels of the lookup sheet.
type Headers struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// Table is an ordered HS code reference.
type Table struct {
	Headers Headers `yaml:"headers"`
	Entries []Entry `yaml:"entries"`
}

// Default returns the built-in reference table.
func Default() *Table {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("lookup: embedded table is invalid: %v", err))
	}
	return t
}

// Load reads a reference table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lookup file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML reference table. Missing headers take the default
// labels; every entry needs a numeric code.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if len(t.Entries) == 0 {
		return nil, ErrNoEntries
	}
	if t.Headers.Code == "" {
		t.Headers.Code = "HS Code"
	}
	if t.Headers.Description == "" {
		t.Headers.Description = "HSN Description"
	}
	if t.Headers.Category == "" {
		t.Headers.Category = "Main Category"
	}
	for i := range t.Entries {
		t.Entries[i].Code = strings.TrimSpace(t.Entries[i].Code)
		if err := validate.Struct(t.Entries[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, fieldError(err))
		}
	}
	return &t, nil
}

// fieldError shortens a validator error to its first failing field.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("invalid %s (%s)", strings.ToLower(verrs[0].Field()), verrs[0].Tag())
	}
	return err
}

// Find returns the entry for code.
func (t *Table) Find(code string) (Entry, bool) {
	code = strings.TrimSpace(code)
	for _, e := range t.Entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

// Rows returns the header row followed by one row per entry.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Entries)+1)
	rows = append(rows, []string{t.Headers.Code, t.Headers.Description, t.Headers.Category})
	for _, e := range t.Entries {
		rows = append(rows, []string{e.Code, e.Description, e.Category})
	}
	return rows
}
