package models

// CellRow represents a single row of cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// F maps column index to the cell formula (optional).
	F map[string]string `json:"f,omitempty"`
}
