package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

type describeFlags struct {
	outputPath    string
	pretty        bool
	formulas      bool
	noCharts      bool
	sheetsDir     string
	printAreasDir string
}

func newDescribeCmd() *cobra.Command {
	var flags describeFlags

	cmd := &cobra.Command{
		Use:   "describe <workbook.xlsx>",
		Short: "Print the structure of a workbook as JSON",
		Long: `describe reads a workbook and outputs, per sheet, the non-empty cells,
formula count, table regions, print areas and charts as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runDescribe(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&flags.formulas, "formulas", false, "Include formula text of formula cells")
	cmd.Flags().BoolVar(&flags.noCharts, "no-charts", false, "Skip reading charts")
	cmd.Flags().StringVar(&flags.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&flags.printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	return cmd
}

func runDescribe(cmd *cobra.Command, inputPath string, flags describeFlags) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := tradebook.Describe(inputPath, tradebook.DescribeOptions{
		IncludeFormulas: flags.formulas,
		SkipCharts:      flags.noCharts,
	})
	if err != nil {
		return fmt.Errorf("describe failed: %w", err)
	}

	jsonData, err := toJSON(wb, flags.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if flags.sheetsDir == "" && flags.printAreasDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if flags.sheetsDir != "" {
		if err := writeSheetFiles(wb, flags.sheetsDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	if flags.printAreasDir != "" {
		if err := writePrintAreaFiles(wb, flags.printAreasDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}
	return nil
}

func toJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// fileName makes a sheet name safe to use as a file name.
func fileName(sheet string) string {
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_").Replace(sheet)
}

func writeSheetFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := toJSON(sheet, pretty)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, fileName(sheetName)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}
	return nil
}

func writePrintAreaFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		for i, area := range sheet.PrintAreas {
			view := printAreaView(wb.BookName, sheetName, sheet, area)
			jsonData, err := toJSON(view, pretty)
			if err != nil {
				return err
			}
			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", fileName(sheetName), i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}
	return nil
}

// printAreaView keeps the cells inside area and the table ranges that
// intersect it.
func printAreaView(bookName, sheetName string, sheet models.SheetData, area models.PrintArea) models.PrintAreaView {
	view := models.PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}

	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		clipped := models.CellRow{R: row.R, C: make(map[string]interface{})}
		for key, v := range row.C {
			if inColumns(key, area) {
				clipped.C[key] = v
			}
		}
		for key, f := range row.F {
			if inColumns(key, area) {
				if clipped.F == nil {
					clipped.F = make(map[string]string)
				}
				clipped.F[key] = f
			}
		}
		if len(clipped.C) > 0 || len(clipped.F) > 0 {
			view.Rows = append(view.Rows, clipped)
		}
	}

	for _, ref := range sheet.TableCandidates {
		if rangeIntersects(ref, area) {
			view.TableCandidates = append(view.TableCandidates, ref)
		}
	}
	return view
}

func inColumns(key string, area models.PrintArea) bool {
	col, err := strconv.Atoi(key)
	if err != nil {
		return false
	}
	return col >= area.C1 && col <= area.C2
}

// rangeIntersects reports whether an A1:D10 range overlaps area.
func rangeIntersects(ref string, area models.PrintArea) bool {
	start, end, ok := strings.Cut(ref, ":")
	if !ok {
		end = start
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return false
	}
	return r1 <= area.R2 && r2 >= area.R1 && c1 <= area.C2 && c2 >= area.C1
}
