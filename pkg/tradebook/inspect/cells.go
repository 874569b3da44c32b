// Package inspect reads a workbook back into plain data: cell values,
// formulas, table regions, print areas and charts.
package inspect

import (
	"strconv"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/loader"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts the non-empty rows of a sheet. A cell is non-empty
// when it has a value or a formula. Formula text is kept in CellRow.F when
// includeFormulas is set. It also returns the number of formula cells.
func ExtractCells(f *excelize.File, sheetName string, includeFormulas bool) ([]models.CellRow, int, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, 0, err
	}

	var (
		result   []models.CellRow
		formulas int
	)
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]interface{})
		formulaMap := make(map[string]string)
		hasFormula := false

		for colIdx, cellValue := range row {
			colStr := strconv.Itoa(colIdx + 1)
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)

			formula, err := f.GetCellFormula(sheetName, cellName)
			if err == nil && formula != "" {
				formulas++
				hasFormula = true
				if includeFormulas {
					formulaMap[colStr] = formula
				}
			}
			if cellValue != "" {
				cellMap[colStr] = loader.ParseValue(cellValue)
			}
		}

		if len(cellMap) == 0 && !hasFormula {
			continue
		}
		cellRow := models.CellRow{R: rowNum, C: cellMap}
		if len(formulaMap) > 0 {
			cellRow.F = formulaMap
		}
		result = append(result, cellRow)
	}

	return result, formulas, nil
}
