package inspect

import "fmt"

// Error represents a failure while reading one part of a workbook.
type Error struct {
	Sheet     string
	Component string // "cells", "charts"
	Err       error
}

func (e *Error) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("inspect %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("inspect sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
