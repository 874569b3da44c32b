// Package models defines the data structures shared by the loader, the
// report builder and the workbook inspector.
package models

import "time"

// Value is a single scalar cell value. It is one of nil (blank), string,
// int64, float64 or time.Time.
type Value interface{}

// Table is an in-memory input dataset of named columns.
// Rows are aligned by position with Columns; a row may be shorter than
// Columns, in which case the missing trailing cells are blank.
type Table struct {
	// Columns holds the header labels in input order.
	Columns []string
	// Rows holds the data records, header excluded.
	Rows [][]Value
}

// Index returns the position of the first column named exactly name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether a column named exactly name exists.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Cell returns the value at row r and column c, or nil when the row is short.
func (t *Table) Cell(r, c int) Value {
	if r < 0 || r >= len(t.Rows) || c < 0 {
		return nil
	}
	row := t.Rows[r]
	if c >= len(row) {
		return nil
	}
	return row[c]
}

// Column returns every value of the named column, or nil if it is absent.
func (t *Table) Column(name string) []Value {
	idx := t.Index(name)
	if idx < 0 {
		return nil
	}
	values := make([]Value, len(t.Rows))
	for r := range t.Rows {
		values[r] = t.Cell(r, idx)
	}
	return values
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// IsBlank reports whether v holds no data.
func IsBlank(v Value) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case time.Time:
		return x.IsZero()
	}
	return false
}
