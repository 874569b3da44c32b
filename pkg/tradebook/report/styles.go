package report

import (
	"github.com/xuri/excelize/v2"
)

const (
	dateFormat    = "yyyy-mm-dd"
	numFmtAmount  = 4  // #,##0.00
	numFmtPercent = 10 // 0.00%
)

// styles holds the style ids registered on a workbook.
type styles struct {
	header  int
	date    int
	amount  int
	percent int
	total   int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return s, err
	}

	format := dateFormat
	if s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &format}); err != nil {
		return s, err
	}
	if s.amount, err = f.NewStyle(&excelize.Style{NumFmt: numFmtAmount}); err != nil {
		return s, err
	}
	if s.percent, err = f.NewStyle(&excelize.Style{NumFmt: numFmtPercent}); err != nil {
		return s, err
	}
	s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: numFmtAmount,
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
		},
	})
	return s, err
}
