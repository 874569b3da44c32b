// Package tradebook turns a trade-import export (CSV or spreadsheet) into
// an analysis workbook of live formulas, and reads workbooks back for
// inspection.
package tradebook

import (
	"log/slog"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/report"
)

// Options configures Generate.
type Options struct {
	// Report holds the workbook build options.
	Report report.Options
	// LookupFile replaces the built-in HS code table with a YAML file.
	// Ignored when Report.Lookup is already set.
	LookupFile string
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Report: report.DefaultOptions(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// DescribeOptions configures Describe.
type DescribeOptions struct {
	// IncludeFormulas reports the formula text of formula cells.
	IncludeFormulas bool
	// SkipCharts leaves chart parts unread.
	SkipCharts bool
}
