package models

// PrintAreaView is the slice of a sheet that falls inside one print area.
type PrintAreaView struct {
	BookName  string    `json:"book_name"`
	SheetName string    `json:"sheet_name"`
	Area      PrintArea `json:"area"`
	Rows      []CellRow `json:"rows,omitempty"`
	// TableCandidates holds the sheet's table ranges that intersect the area.
	TableCandidates []string `json:"table_candidates,omitempty"`
}
