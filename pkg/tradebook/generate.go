package tradebook

import (
	"log/slog"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/loader"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/lookup"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/report"
)

// Generate loads inputPath, builds the analysis workbook and writes it to
// outputPath. Nothing is written when loading or building fails.
func Generate(inputPath, outputPath string, opts Options) (*models.Report, error) {
	log := opts.logger()

	reportOpts := opts.Report
	reportOpts.Logger = log
	if reportOpts.Lookup == nil && opts.LookupFile != "" {
		table, err := lookup.Load(opts.LookupFile)
		if err != nil {
			return nil, newStageError(StageLoad, opts.LookupFile, err)
		}
		reportOpts.Lookup = table
	}

	table, err := loader.Load(inputPath)
	if err != nil {
		return nil, newStageError(StageLoad, inputPath, err)
	}
	log.Debug("Input loaded",
		slog.String("path", inputPath),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns)))

	wb, err := report.Build(table, reportOpts)
	if err != nil {
		return nil, newStageError(StageBuild, inputPath, err)
	}
	defer wb.Close()

	if err := wb.SaveAs(outputPath); err != nil {
		return nil, newStageError(StageSave, outputPath, err)
	}
	log.Info("Workbook written", slog.String("path", outputPath))

	return &models.Report{
		OutputPath: outputPath,
		InputRows:  table.Len(),
		Sheets:     wb.Sheets,
	}, nil
}
