package report

var supplierHeaders = []string{"IEC", "Total Value INR", "Total Qty", "% Contribution"}

// writeSupplierSummary totals value and quantity per importer id.
func (b *builder) writeSupplierSummary(sheet string) error {
	g := groupSummary{
		headers: supplierHeaders,
		keys:    distinctText(b.table.Column(RawIEC)),
		cells: []func(int, string) string{
			func(_ int, key string) string { return sumIfs(ColTotalValueINR, ColIEC, CriteriaLiteral(key)) },
			func(_ int, key string) string { return sumIfs(ColQuantity, ColIEC, CriteriaLiteral(key)) },
		},
		totals:  []int{1, 2},
		shareOf: 1,
	}
	if err := b.writeGroupSummary(sheet, g); err != nil {
		return err
	}
	return b.styleRange(sheet, 1, 2, len(g.keys)+1, b.styles.amount)
}
