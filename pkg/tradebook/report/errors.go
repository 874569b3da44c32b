package report

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates a summary's grouping column is absent.
var ErrMissingColumn = errors.New("required column missing")

// MissingColumnError names the summary sheet and the absent raw column.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Sheet, ErrMissingColumn, e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// SheetError represents a failure while writing one sheet.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("write sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
