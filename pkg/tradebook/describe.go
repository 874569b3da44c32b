package tradebook

import (
	"path/filepath"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/inspect"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/xuri/excelize/v2"
)

// Describe reads a workbook into structured data: per sheet, the non-empty
// rows, formula count, table candidates, print areas and charts.
func Describe(path string, opts DescribeOptions) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make(map[string]models.SheetData, len(sheetList))

	for _, sheetName := range sheetList {
		rows, formulas, err := inspect.ExtractCells(f, sheetName, opts.IncludeFormulas)
		if err != nil {
			return nil, &inspect.Error{Sheet: sheetName, Component: "cells", Err: err}
		}

		data := models.SheetData{
			Rows:            rows,
			FormulaCount:    formulas,
			TableCandidates: inspect.DetectTables(rows, inspect.DefaultTableParams()),
		}
		if n := len(rows); n > 0 {
			data.RowCount = rows[n-1].R
		}
		sheets[sheetName] = data
	}

	for sheetName, areas := range inspect.ExtractPrintAreas(f) {
		if sheet, ok := sheets[sheetName]; ok {
			sheet.PrintAreas = areas
			sheets[sheetName] = sheet
		}
	}

	if !opts.SkipCharts {
		charts, err := inspect.ExtractCharts(path)
		if err != nil {
			return nil, &inspect.Error{Component: "charts", Err: err}
		}
		for sheetName, list := range charts {
			if sheet, ok := sheets[sheetName]; ok {
				sheet.Charts = list
				sheets[sheetName] = sheet
			}
		}
	}

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetOrder: sheetList,
		Sheets:     sheets,
	}, nil
}
