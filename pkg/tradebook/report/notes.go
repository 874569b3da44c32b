package report

// NotesLines is the fixed text of the Notes sheet, one line per row.
var NotesLines = []string{
	"Notes:",
	"- Cleaned Data contains formulas referencing Raw Data.",
	"- Use Insert > PivotTable in Excel (tbl or range) if you prefer pivot objects.",
	"- All calculations use Excel functions (SUMIFS, AVERAGEIFS, VLOOKUP, IF, MID, SEARCH).",
	"- HS codes missing from Lookup Tables show \"Unknown\"; edit that sheet to extend the mapping.",
}

func (b *builder) writeNotes(sheet string) error {
	for i, line := range NotesLines {
		if err := b.f.SetCellStr(sheet, Cell(0, i+1), line); err != nil {
			return err
		}
	}
	if err := b.f.SetColWidth(sheet, "A", "A", 90); err != nil {
		return err
	}
	b.rows[sheet] = len(NotesLines)
	return nil
}
