package models

// SheetSummary describes one sheet written to a generated workbook.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of populated rows, header included.
	Rows int `json:"rows"`
}

// Report is the outcome of a successful workbook generation.
type Report struct {
	// OutputPath is the path of the written workbook.
	OutputPath string `json:"output_path"`
	// InputRows is the number of data rows read from the input.
	InputRows int `json:"input_rows"`
	// Sheets lists the written sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}

// Sheet returns the summary for the named sheet and whether it exists.
func (r *Report) Sheet(name string) (SheetSummary, bool) {
	for _, s := range r.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetSummary{}, false
}
