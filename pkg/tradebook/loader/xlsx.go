package loader

import (
	"strconv"
	"strings"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/xuri/excelize/v2"
)

// LoadSpreadsheet reads the first sheet of a workbook. The first non-empty
// row is the header. Date-formatted cells are returned as time.Time.
func LoadSpreadsheet(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyInput
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	for i, row := range rows {
		if !isEmptyRecord(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrEmptyInput
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	dates := &dateStyles{f: f, known: make(map[int]bool)}
	records := make([][]string, 0, len(rows)-headerIdx-1)
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		rec := make([]string, len(row))
		for c, raw := range row {
			rec[c] = raw
			if raw == "" {
				continue
			}
			serial, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(c+1, i+1)
			if !dates.isDate(sheetName, cellName) {
				continue
			}
			if t, err := excelize.ExcelDateToTime(serial, date1904); err == nil {
				if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
					rec[c] = t.Format("2006-01-02")
				} else {
					rec[c] = t.Format("2006-01-02 15:04:05")
				}
			}
		}
		records = append(records, rec)
	}

	return newTable(rows[headerIdx], records), nil
}

// dateStyles caches whether a style index renders its cell as a date.
type dateStyles struct {
	f     *excelize.File
	known map[int]bool
}

func (d *dateStyles) isDate(sheet, cell string) bool {
	idx, err := d.f.GetCellStyle(sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if v, ok := d.known[idx]; ok {
		return v
	}
	style, err := d.f.GetStyle(idx)
	isDate := err == nil && style != nil && isDateFormat(style.NumFmt, style.CustomNumFmt)
	d.known[idx] = isDate
	return isDate
}

// isDateFormat reports whether a number format displays dates.
// Built-in ids follow ECMA-376 18.8.30; custom codes are scanned for date
// tokens outside quoted literals and bracketed sections.
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case numFmt >= 14 && numFmt <= 17, numFmt == 22:
		return true
	case numFmt >= 27 && numFmt <= 36, numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

func isDateFormatCode(code string) bool {
	var (
		inQuote   bool
		inBracket bool
	)
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case r == 'y' || r == 'd':
			return true
		}
	}
	return false
}
