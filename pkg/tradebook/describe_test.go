package tradebook

import (
	"path/filepath"
	"testing"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generated(t *testing.T) string {
	t.Helper()
	input := writeInput(t, "imports.csv", sampleCSV)
	output := filepath.Join(t.TempDir(), "analysis.xlsx")
	_, err := Generate(input, output, testOptions())
	require.NoError(t, err)
	return output
}

func TestDescribe_GeneratedWorkbook(t *testing.T) {
	path := generated(t)

	data, err := Describe(path, DescribeOptions{IncludeFormulas: true})
	require.NoError(t, err)

	assert.Equal(t, "analysis.xlsx", data.BookName)
	assert.Equal(t, report.SheetOrder, data.SheetOrder)

	raw := data.Sheets[report.SheetRaw]
	require.Len(t, raw.Rows, 3)
	assert.Equal(t, "DATE", raw.Rows[0].C["1"])
	assert.Equal(t, "ABC123", raw.Rows[1].C["3"])
	assert.Equal(t, int64(73239990), raw.Rows[1].C["4"])
	assert.Zero(t, raw.FormulaCount)

	cleaned := data.Sheets[report.SheetCleaned]
	assert.Equal(t, 3, cleaned.RowCount)
	assert.Positive(t, cleaned.FormulaCount)
	require.Len(t, cleaned.Rows, 3)
	assert.Equal(t, `IF('Raw Data'!C2="","",'Raw Data'!C2)`, cleaned.Rows[1].F["3"])

	hsn := data.Sheets[report.SheetHSN]
	assert.Equal(t, []models.PrintArea{{R1: 1, C1: 1, R2: 5, C2: 6}}, hsn.PrintAreas)
	assert.Equal(t, []string{"A1:F5"}, hsn.TableCandidates)
	require.Len(t, hsn.Charts, 1)
	assert.Equal(t, "Pie", hsn.Charts[0].Type)

	year := data.Sheets[report.SheetYear]
	assert.Equal(t, []models.PrintArea{{R1: 1, C1: 1, R2: 3, C2: 5}}, year.PrintAreas)
	require.Len(t, year.Charts, 1)
	assert.Equal(t, "Column", year.Charts[0].Type)
	require.Len(t, year.Charts[0].Series, 1)
	assert.Equal(t, "'Year Summary'!$D$2:$D$3", year.Charts[0].Series[0].Values)

	notes := data.Sheets[report.SheetNotes]
	assert.Equal(t, len(report.NotesLines), notes.RowCount)
}

func TestDescribe_WithoutFormulasOrCharts(t *testing.T) {
	path := generated(t)

	data, err := Describe(path, DescribeOptions{SkipCharts: true})
	require.NoError(t, err)

	cleaned := data.Sheets[report.SheetCleaned]
	assert.Positive(t, cleaned.FormulaCount)
	for _, row := range cleaned.Rows {
		assert.Nil(t, row.F)
	}
	assert.Empty(t, data.Sheets[report.SheetYear].Charts)
}

func TestDescribe_NotFound(t *testing.T) {
	_, err := Describe(filepath.Join(t.TempDir(), "missing.xlsx"), DescribeOptions{})
	assert.Error(t, err)
}
