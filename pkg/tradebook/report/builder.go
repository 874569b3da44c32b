// Package report builds the trade analysis workbook: a raw copy of the
// input, a formula-driven cleaned view, a lookup sheet and formula-based
// summaries. Cell values of the cleaned and summary sheets are never
// computed here; the spreadsheet application evaluates them.
package report

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	docTitle   = "Trade Analysis"
	docCreator = "tradebook"
)

// Workbook is a built report held in memory.
type Workbook struct {
	// File is the underlying workbook. The caller owns it and must Close it.
	File *excelize.File
	// Sheets lists the written sheets in workbook order.
	Sheets []models.SheetSummary
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	return w.File.SaveAs(path)
}

// Close releases the workbook resources.
func (w *Workbook) Close() error {
	return w.File.Close()
}

type builder struct {
	f      *excelize.File
	table  *models.Table
	opts   Options
	log    *slog.Logger
	styles styles
	rows   map[string]int
}

// Build produces the report workbook for table.
func Build(table *models.Table, opts Options) (*Workbook, error) {
	opts = opts.withDefaults()
	f := excelize.NewFile()
	b := &builder{
		f:     f,
		table: table,
		opts:  opts,
		log:   opts.Logger,
		rows:  make(map[string]int),
	}
	if err := b.build(); err != nil {
		f.Close()
		return nil, err
	}

	wb := &Workbook{File: f}
	for _, name := range SheetOrder {
		wb.Sheets = append(wb.Sheets, models.SheetSummary{Name: name, Rows: b.rows[name]})
	}
	return wb, nil
}

func (b *builder) build() error {
	var err error
	if b.styles, err = newStyles(b.f); err != nil {
		return err
	}

	writers := map[string]func(string) error{
		SheetRaw:      b.writeRaw,
		SheetLookup:   b.writeLookup,
		SheetCleaned:  b.writeCleaned,
		SheetYear:     b.writeYearSummary,
		SheetHSN:      b.writeHSNSummary,
		SheetModel:    b.writeModelSummary,
		SheetSupplier: b.writeSupplierSummary,
		SheetNotes:    b.writeNotes,
	}

	for i, name := range SheetOrder {
		if i == 0 {
			err = b.f.SetSheetName(b.f.GetSheetName(0), name)
		} else {
			_, err = b.f.NewSheet(name)
		}
		if err != nil {
			return &SheetError{Sheet: name, Err: err}
		}

		if err := writers[name](name); err != nil {
			var mce *MissingColumnError
			if errors.As(err, &mce) {
				return err
			}
			return &SheetError{Sheet: name, Err: err}
		}
		b.log.Debug("Sheet written",
			slog.String("sheet", name),
			slog.Int("rows", b.rows[name]))
	}

	b.f.SetActiveSheet(0)

	if err := b.f.SetDocProps(&excelize.DocProperties{
		Title:      docTitle,
		Creator:    docCreator,
		Identifier: uuid.NewString(),
		Created:    time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	if b.opts.RecalculateOnOpen {
		fullCalc := true
		if err := b.f.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &fullCalc}); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader writes a bold, frozen header row and sizes the columns.
func (b *builder) writeHeader(sheet string, headers []string) error {
	if len(headers) == 0 {
		return nil
	}
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := b.f.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(sheet, "A1", Cell(len(headers)-1, 1), b.styles.header); err != nil {
		return err
	}
	for i, h := range headers {
		col := ColumnName(i)
		if err := b.f.SetColWidth(sheet, col, col, b.opts.columnWidth(h)); err != nil {
			return err
		}
	}
	if err := b.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	b.rows[sheet] = 1
	return nil
}

// styleRange applies a style to column col over rows first..last.
func (b *builder) styleRange(sheet string, col, first, last, style int) error {
	if last < first {
		return nil
	}
	return b.f.SetCellStyle(sheet, Cell(col, first), Cell(col, last), style)
}

// missingColumn reports an absent grouping column. With optional summaries
// the sheet keeps its header only.
func (b *builder) missingColumn(sheet, column string) error {
	if !b.opts.OptionalSummaries {
		return &MissingColumnError{Sheet: sheet, Column: column}
	}
	b.log.Warn("Summary left empty: required column missing",
		slog.String("sheet", sheet),
		slog.String("column", column))
	return nil
}
