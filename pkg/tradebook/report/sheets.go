package report

// Sheet names of a generated workbook.
const (
	SheetRaw      = "Raw Data"
	SheetLookup   = "Lookup Tables"
	SheetCleaned  = "Cleaned Data"
	SheetYear     = "Year Summary"
	SheetHSN      = "HSN Summary"
	SheetModel    = "Model Summary"
	SheetSupplier = "Supplier Summary"
	SheetNotes    = "Notes"
)

// SheetOrder lists the sheets in the order they appear in the workbook.
var SheetOrder = []string{
	SheetRaw,
	SheetLookup,
	SheetCleaned,
	SheetYear,
	SheetHSN,
	SheetModel,
	SheetSupplier,
	SheetNotes,
}

// Raw column names the summaries group by.
const (
	RawDate      = "DATE"
	RawHSCode    = "HS CODE"
	RawModelName = "Model Name"
	RawIEC       = "IEC"
)
