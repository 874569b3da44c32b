package report

import (
	"github.com/xuri/excelize/v2"
)

// printAreaName is the reserved defined name spreadsheet applications use
// for a sheet's print range.
const printAreaName = "_xlnm.Print_Area"

// setPrintArea limits printing of sheet to columns 0..cols-1 and rows
// 1..lastRow.
func (b *builder) setPrintArea(sheet string, cols, lastRow int) error {
	if cols <= 0 || lastRow <= 0 {
		return nil
	}
	return b.f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: SheetArea(sheet, 0, 1, cols-1, lastRow),
		Scope:    sheet,
	})
}
