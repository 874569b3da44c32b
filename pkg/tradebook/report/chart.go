package report

import (
	"github.com/xuri/excelize/v2"
)

const (
	chartWidth  = 480
	chartHeight = 290
)

// addYearChart plots Grand Total INR per year as columns beside the table.
func (b *builder) addYearChart(sheet string, last int) error {
	return b.f.AddChart(sheet, Cell(len(yearHeaders)+1, 2), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       SheetCell(sheet, 3, 1),
			Categories: SheetArea(sheet, 0, 2, 0, last),
			Values:     SheetArea(sheet, 3, 2, 3, last),
		}},
		Title:     []excelize.RichTextRun{{Text: "Grand Total INR by Year"}},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
	})
}

// addHSNChart shows each HS code's share of the grand total.
func (b *builder) addHSNChart(sheet string, last int) error {
	return b.f.AddChart(sheet, Cell(len(hsnHeaders)+1, 2), &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       SheetCell(sheet, 4, 1),
			Categories: SheetArea(sheet, 0, 2, 0, last),
			Values:     SheetArea(sheet, 4, 2, 4, last),
		}},
		Title:     []excelize.RichTextRun{{Text: "Grand Total INR by HS Code"}},
		Legend:    excelize.ChartLegend{Position: "right"},
		Dimension: excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
	})
}
