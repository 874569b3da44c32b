package report

import (
	"fmt"
	"strconv"
)

var yearHeaders = []string{"Year", "Total Value INR", "Duty Paid INR", "Grand Total INR", "YoY Growth %"}

// writeYearSummary totals values per calendar year of the DATE column and
// adds the growth over the previous listed year.
func (b *builder) writeYearSummary(sheet string) error {
	if err := b.writeHeader(sheet, yearHeaders); err != nil {
		return err
	}
	if !b.table.Has(RawDate) {
		if err := b.missingColumn(sheet, RawDate); err != nil {
			return err
		}
		return b.setPrintArea(sheet, len(yearHeaders), 1)
	}

	years := distinctYears(b.table.Column(RawDate))
	for i, year := range years {
		row := i + 2
		criteria := strconv.Itoa(year)
		if err := b.f.SetCellValue(sheet, Cell(0, row), year); err != nil {
			return err
		}
		cells := []string{
			sumIfs(ColTotalValueINR, ColYear, criteria),
			sumIfs(ColDutyPaidINR, ColYear, criteria),
			sumIfs(ColGrandTotalINR, ColYear, criteria),
		}
		for c, formula := range cells {
			if err := b.f.SetCellFormula(sheet, Cell(c+1, row), formula); err != nil {
				return err
			}
		}
		if i > 0 {
			if err := b.f.SetCellFormula(sheet, Cell(4, row), growthFormula(3, row)); err != nil {
				return err
			}
		}
	}

	last := len(years) + 1
	if err := b.styleRange(sheet, 4, 3, last, b.styles.percent); err != nil {
		return err
	}
	for col := 1; col <= 3; col++ {
		if err := b.styleRange(sheet, col, 2, last, b.styles.amount); err != nil {
			return err
		}
	}
	b.rows[sheet] = last

	if b.opts.Charts && len(years) > 0 {
		if err := b.addYearChart(sheet, last); err != nil {
			return err
		}
	}
	return b.setPrintArea(sheet, len(yearHeaders), last)
}

// growthFormula compares col on row with the row above, blank when the
// previous value is zero or not a number.
func growthFormula(col, row int) string {
	cur, prev := Cell(col, row), Cell(col, row-1)
	return fmt.Sprintf(`IFERROR((%s-%s)/%s,"")`, cur, prev, prev)
}
