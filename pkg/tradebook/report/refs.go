package report

import (
	"fmt"
	"strings"
)

// ColumnName returns the letters of a 0-based column index: A..Z, then
// AA..ZZ, then AAA. Negative indexes yield "".
func ColumnName(col int) string {
	var letters []byte
	for n := col; n >= 0; n = n/26 - 1 {
		letters = append([]byte{byte('A' + n%26)}, letters...)
	}
	return string(letters)
}

// QuoteSheet returns a sheet name usable in a formula reference.
// Names made only of letters, digits, '_' and '.' that do not start with a
// digit are left bare; anything else is single-quoted with quotes doubled.
func QuoteSheet(name string) string {
	bare := name != ""
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' || r == '.':
			if i == 0 {
				bare = false
			}
		default:
			bare = false
		}
	}
	if bare {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// Cell returns an A1 address for a 0-based column and 1-based row.
func Cell(col, row int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row)
}

// AbsCell returns a fully anchored address such as $E$5.
func AbsCell(col, row int) string {
	return fmt.Sprintf("$%s$%d", ColumnName(col), row)
}

// SheetCell returns a cross-sheet address such as 'Raw Data'!C7.
func SheetCell(sheet string, col, row int) string {
	return QuoteSheet(sheet) + "!" + Cell(col, row)
}

// SheetColumn returns a whole-column range such as 'Cleaned Data'!O:O.
func SheetColumn(sheet string, col int) string {
	name := ColumnName(col)
	return QuoteSheet(sheet) + "!" + name + ":" + name
}

// SheetArea returns an anchored range such as 'Year Summary'!$A$1:$E$4.
func SheetArea(sheet string, col1, row1, col2, row2 int) string {
	return QuoteSheet(sheet) + "!" + AbsCell(col1, row1) + ":" + AbsCell(col2, row2)
}

// StringLiteral quotes s as a formula string constant.
func StringLiteral(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CriteriaLiteral quotes s as an exact-match SUMIFS/AVERAGEIFS criterion.
// Wildcards and comparison prefixes are escaped so the value matches only
// itself.
func CriteriaLiteral(s string) string {
	var b strings.Builder
	if s != "" && strings.ContainsRune("=<>", rune(s[0])) {
		b.WriteByte('=')
	}
	for _, r := range s {
		if r == '*' || r == '?' || r == '~' {
			b.WriteByte('~')
		}
		b.WriteRune(r)
	}
	return StringLiteral(b.String())
}
