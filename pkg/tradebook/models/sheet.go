package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Rows contains extracted rows with cell values and formulas.
	Rows []CellRow `json:"rows,omitempty"`
	// RowCount is the number of rows up to the last populated one.
	RowCount int `json:"row_count"`
	// FormulaCount is the number of cells holding a formula.
	FormulaCount int `json:"formula_count"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// Charts lists embedded charts in drawing order.
	Charts []Chart `json:"charts,omitempty"`
}
