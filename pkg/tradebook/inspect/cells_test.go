package inspect

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "0456789")
	f.SetCellFormula(sheetName, "C2", "A2+B2")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, formulas, err := ExtractCells(f2, sheetName, true)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if formulas != 1 {
		t.Errorf("Expected 1 formula, got %d", formulas)
	}

	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}

	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"])
	}
	if rows[1].F["3"] != "A2+B2" {
		t.Errorf("Expected formula A2+B2, got %q", rows[1].F["3"])
	}

	// Leading zeros survive as text
	if rows[2].C["1"] != "0456789" {
		t.Errorf("Expected '0456789', got %v (type: %T)", rows[2].C["1"], rows[2].C["1"])
	}
}

func TestExtractCells_WithoutFormulas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellFormula("Sheet1", "B1", "A1*2")
	f.SetCellFormula("Sheet1", "A2", "A1*3")

	rows, formulas, err := ExtractCells(f, "Sheet1", false)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if formulas != 2 {
		t.Errorf("Expected formula count 2, got %d", formulas)
	}
	// formula-only rows are still reported
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.F != nil {
			t.Errorf("Expected no formulas in row %d, got %v", row.R, row.F)
		}
	}
}
