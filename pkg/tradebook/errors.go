package tradebook

import (
	"fmt"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/loader"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/report"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrUnsupportedFormat indicates an input extension other than
	// .csv, .xlsx, .xls or .xlsm.
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat
	// ErrEmptyInput indicates an input without a header row.
	ErrEmptyInput = loader.ErrEmptyInput
	// ErrMissingColumn indicates a summary's grouping column is absent.
	ErrMissingColumn = report.ErrMissingColumn
)

// Stage names the step of Generate that failed.
type Stage string

const (
	StageLoad  Stage = "load"
	StageBuild Stage = "build"
	StageSave  Stage = "save"
)

// StageError represents a failure during one step of Generate. Path is
// the file the stage was working on.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(stage Stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
