package report

import (
	"log/slog"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/lookup"
)

// Options configures workbook construction.
type Options struct {
	// Lookup is the HS code reference. If nil, lookup.Default() is used.
	Lookup *lookup.Table
	// MinColumnWidth and MaxColumnWidth bound the header-derived widths.
	MinColumnWidth float64
	MaxColumnWidth float64
	// OptionalSummaries turns a missing DATE or HS CODE column into a
	// warning and a header-only summary sheet instead of an error.
	OptionalSummaries bool
	// Charts adds charts to the Year and HSN summaries.
	Charts bool
	// RecalculateOnOpen asks the spreadsheet application to compute every
	// formula when the workbook is opened.
	RecalculateOnOpen bool
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns the default build options.
func DefaultOptions() Options {
	return Options{
		MinColumnWidth:    12,
		MaxColumnWidth:    40,
		Charts:            true,
		RecalculateOnOpen: true,
	}
}

func (o Options) withDefaults() Options {
	if o.Lookup == nil {
		o.Lookup = lookup.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.MinColumnWidth <= 0 {
		o.MinColumnWidth = 12
	}
	if o.MaxColumnWidth < o.MinColumnWidth {
		o.MaxColumnWidth = o.MinColumnWidth
	}
	return o
}

// columnWidth sizes a column from its header label.
func (o Options) columnWidth(header string) float64 {
	w := float64(len([]rune(header)) + 2)
	if w < o.MinColumnWidth {
		return o.MinColumnWidth
	}
	if w > o.MaxColumnWidth {
		return o.MaxColumnWidth
	}
	return w
}
