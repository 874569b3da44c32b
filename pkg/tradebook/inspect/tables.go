package inspect

import (
	"fmt"
	"strconv"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/xuri/excelize/v2"
)

// TableParams tunes table detection.
type TableParams struct {
	// DensityMin is the minimum share of occupied cells in a region.
	DensityMin float64
	// MinNonemptyCells is the smallest region reported.
	MinNonemptyCells int
	// MaxGapRows is the number of blank rows a table may contain before
	// the rows below start a new region.
	MaxGapRows int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
		MaxGapRows:       1,
	}
}

type region struct {
	minRow, maxRow int
	minCol, maxCol int
	cells          int
}

func (g *region) add(row, col int) {
	if g.cells == 0 {
		g.minRow, g.maxRow, g.minCol, g.maxCol = row, row, col, col
	}
	g.minRow = min(g.minRow, row)
	g.maxRow = max(g.maxRow, row)
	g.minCol = min(g.minCol, col)
	g.maxCol = max(g.maxCol, col)
	g.cells++
}

func (g *region) density() float64 {
	total := (g.maxRow - g.minRow + 1) * (g.maxCol - g.minCol + 1)
	return float64(g.cells) / float64(total)
}

func (g *region) ref() string {
	start, _ := excelize.CoordinatesToCellName(g.minCol, g.minRow)
	end, _ := excelize.CoordinatesToCellName(g.maxCol, g.maxRow)
	return fmt.Sprintf("%s:%s", start, end)
}

// DetectTables finds table-like regions among extracted rows, returned as
// ranges such as "A1:D10". Rows must be in ascending order.
func DetectTables(rows []models.CellRow, params TableParams) []string {
	var (
		regions []*region
		cur     *region
		lastRow int
	)
	for _, row := range rows {
		if cur == nil || row.R-lastRow-1 > params.MaxGapRows {
			cur = &region{}
			regions = append(regions, cur)
		}
		for _, col := range occupiedColumns(row) {
			cur.add(row.R, col)
		}
		lastRow = row.R
	}

	var result []string
	for _, g := range regions {
		if g.cells < params.MinNonemptyCells || g.density() < params.DensityMin {
			continue
		}
		result = append(result, g.ref())
	}
	return result
}

// occupiedColumns returns the 1-based columns holding a value or formula.
func occupiedColumns(row models.CellRow) []int {
	seen := make(map[int]bool)
	var cols []int
	visit := func(key string) {
		col, err := strconv.Atoi(key)
		if err != nil || seen[col] {
			return
		}
		seen[col] = true
		cols = append(cols, col)
	}
	for key := range row.C {
		visit(key)
	}
	for key := range row.F {
		visit(key)
	}
	return cols
}
