package report

import (
	"fmt"
	"log/slog"
	"strings"
)

var hsnHeaders = []string{"HS Code", "HSN Description", "Total Value INR", "Duty Paid INR", "Grand Total INR", "% Contribution"}

// writeHSNSummary totals values per HS code.
func (b *builder) writeHSNSummary(sheet string) error {
	if !b.table.Has(RawHSCode) {
		if err := b.writeHeader(sheet, hsnHeaders); err != nil {
			return err
		}
		if err := b.missingColumn(sheet, RawHSCode); err != nil {
			return err
		}
		return b.setPrintArea(sheet, len(hsnHeaders), 1)
	}

	byCode := func(valueCol int) func(int, string) string {
		return func(_ int, key string) string {
			return sumIfs(valueCol, ColHSCode, CriteriaLiteral(key))
		}
	}
	keys := distinctText(b.table.Column(RawHSCode))
	if unknown := b.unknownCodes(keys); len(unknown) > 0 {
		b.log.Warn("HS codes missing from lookup table",
			slog.Int("count", len(unknown)),
			slog.String("codes", strings.Join(unknown, ",")))
	}
	g := groupSummary{
		headers: hsnHeaders,
		keys:    keys,
		cells: []func(int, string) string{
			func(row int, _ string) string {
				return fmt.Sprintf(`IFERROR(VLOOKUP(%s,%s!$A:$B,2,FALSE),"Unknown")`,
					Cell(0, row), QuoteSheet(SheetLookup))
			},
			byCode(ColTotalValueINR),
			byCode(ColDutyPaidINR),
			byCode(ColGrandTotalINR),
		},
		totals:  []int{2, 3, 4},
		shareOf: 4,
	}
	if err := b.writeGroupSummary(sheet, g); err != nil {
		return err
	}
	for col := 2; col <= 4; col++ {
		if err := b.styleRange(sheet, col, 2, len(g.keys)+1, b.styles.amount); err != nil {
			return err
		}
	}
	if b.opts.Charts && len(g.keys) > 0 {
		return b.addHSNChart(sheet, len(g.keys)+1)
	}
	return nil
}

// unknownCodes lists the codes with no lookup entry. Their HSN Description
// reads "Unknown".
func (b *builder) unknownCodes(codes []string) []string {
	var unknown []string
	for _, code := range codes {
		if _, ok := b.opts.Lookup.Find(code); !ok {
			unknown = append(unknown, code)
		}
	}
	return unknown
}
