package report

var modelHeaders = []string{"Model Name", "Total Qty", "Total Value INR", "Avg Unit Price USD", "Avg Unit Price INR", "% of Total Value"}

// writeModelSummary totals quantity and value per model name. Models come
// from the input's Model Name column only.
func (b *builder) writeModelSummary(sheet string) error {
	g := groupSummary{
		headers: modelHeaders,
		keys:    distinctText(b.table.Column(RawModelName)),
		cells: []func(int, string) string{
			func(_ int, key string) string { return sumIfs(ColQuantity, ColModelName, CriteriaLiteral(key)) },
			func(_ int, key string) string { return sumIfs(ColTotalValueINR, ColModelName, CriteriaLiteral(key)) },
			func(_ int, key string) string { return averageIfs(ColUnitPriceUSD, ColModelName, CriteriaLiteral(key)) },
			func(_ int, key string) string { return averageIfs(ColUnitPriceINR, ColModelName, CriteriaLiteral(key)) },
		},
		totals:  []int{1, 2},
		shareOf: 2,
	}
	if err := b.writeGroupSummary(sheet, g); err != nil {
		return err
	}
	for col := 2; col <= 4; col++ {
		if err := b.styleRange(sheet, col, 2, len(g.keys)+1, b.styles.amount); err != nil {
			return err
		}
	}
	return nil
}
