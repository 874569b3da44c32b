package report

import (
	"time"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
)

// writeRaw copies the input table verbatim: header then one row per record.
func (b *builder) writeRaw(sheet string) error {
	if err := b.writeHeader(sheet, b.table.Columns); err != nil {
		return err
	}

	for r, row := range b.table.Rows {
		sheetRow := r + 2
		for c, v := range row {
			if models.IsBlank(v) {
				continue
			}
			cell := Cell(c, sheetRow)
			if err := b.f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
			if _, ok := v.(time.Time); ok {
				if err := b.f.SetCellStyle(sheet, cell, cell, b.styles.date); err != nil {
					return err
				}
			}
		}
	}
	b.rows[sheet] = b.table.Len() + 1
	return nil
}

// writeLookup writes the HS code reference as literal text rows.
func (b *builder) writeLookup(sheet string) error {
	rows := b.opts.Lookup.Rows()
	if err := b.writeHeader(sheet, rows[0]); err != nil {
		return err
	}
	for i, row := range rows[1:] {
		for c, v := range row {
			if err := b.f.SetCellStr(sheet, Cell(c, i+2), v); err != nil {
				return err
			}
		}
	}
	b.rows[sheet] = len(rows)
	return nil
}
