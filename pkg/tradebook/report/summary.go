package report

import (
	"fmt"
	"sort"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/loader"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
)

// groupSummary describes a summary sheet with one row per distinct key,
// formula columns, a grand total row and a share-of-total column.
type groupSummary struct {
	headers []string
	keys    []string
	// cells builds the formulas of columns 1..len(cells) for a key row.
	cells []func(row int, key string) string
	// totals lists the columns summed on the grand total row.
	totals []int
	// shareOf is the column whose grand total is the share denominator.
	shareOf int
}

// shareCol is the last column, holding each row's share of the total.
func (g groupSummary) shareCol() int {
	return len(g.headers) - 1
}

// totalRow is the grand total row, one blank row below the last key.
func (g groupSummary) totalRow() int {
	return len(g.keys) + 3
}

// sumIfs sums a Cleaned Data column where another column meets criteria.
func sumIfs(valueCol, criteriaCol int, criteria string) string {
	return fmt.Sprintf("SUMIFS(%s,%s,%s)",
		SheetColumn(SheetCleaned, valueCol), SheetColumn(SheetCleaned, criteriaCol), criteria)
}

// averageIfs averages a Cleaned Data column, blank when nothing matches.
func averageIfs(valueCol, criteriaCol int, criteria string) string {
	return fmt.Sprintf(`IFERROR(AVERAGEIFS(%s,%s,%s),"")`,
		SheetColumn(SheetCleaned, valueCol), SheetColumn(SheetCleaned, criteriaCol), criteria)
}

// shareFormula divides a row's value by the grand total, zero when the
// total is zero.
func shareFormula(col, row, totalRow int) string {
	total := AbsCell(col, totalRow)
	return fmt.Sprintf("IF(%s=0,0,%s/%s)", total, Cell(col, row), total)
}

// totalFormula sums rows 2..last of col.
func totalFormula(col, last int) string {
	return fmt.Sprintf("SUM(%s:%s)", Cell(col, 2), Cell(col, last))
}

func (b *builder) writeGroupSummary(sheet string, g groupSummary) error {
	if err := b.writeHeader(sheet, g.headers); err != nil {
		return err
	}
	if len(g.keys) == 0 {
		return b.setPrintArea(sheet, len(g.headers), 1)
	}

	last := len(g.keys) + 1
	total := g.totalRow()
	share := g.shareCol()

	for i, key := range g.keys {
		row := i + 2
		if err := b.f.SetCellStr(sheet, Cell(0, row), key); err != nil {
			return err
		}
		for c, cell := range g.cells {
			if err := b.f.SetCellFormula(sheet, Cell(c+1, row), cell(row, key)); err != nil {
				return err
			}
		}
		if err := b.f.SetCellFormula(sheet, Cell(share, row), shareFormula(g.shareOf, row, total)); err != nil {
			return err
		}
	}

	if err := b.f.SetCellStr(sheet, Cell(0, total), "Total"); err != nil {
		return err
	}
	for _, col := range g.totals {
		if err := b.f.SetCellFormula(sheet, Cell(col, total), totalFormula(col, last)); err != nil {
			return err
		}
	}
	if err := b.f.SetCellStyle(sheet, Cell(0, total), Cell(share, total), b.styles.total); err != nil {
		return err
	}
	if err := b.styleRange(sheet, share, 2, last, b.styles.percent); err != nil {
		return err
	}

	b.rows[sheet] = total
	return b.setPrintArea(sheet, len(g.headers), total)
}

// distinctText returns the sorted distinct non-blank renderings of values.
func distinctText(values []models.Value) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, v := range values {
		if models.IsBlank(v) {
			continue
		}
		key := loader.Text(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// distinctYears returns the sorted distinct years of the date-like values.
func distinctYears(values []models.Value) []int {
	seen := make(map[int]bool)
	var years []int
	for _, v := range values {
		year, ok := loader.YearOf(v)
		if !ok || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
