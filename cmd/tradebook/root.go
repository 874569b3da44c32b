package main

import (
	"fmt"
	"log/slog"

	"github.com/Srikanth4626/trade-analysis/internal/config"
	"github.com/Srikanth4626/trade-analysis/internal/logging"
	"github.com/Srikanth4626/trade-analysis/pkg/tradebook"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	lookupFile        string
	optionalSummaries bool
	noChart           bool
	logLevel          string
}

func newRootCmd() *cobra.Command {
	var flags generateFlags

	rootCmd := &cobra.Command{
		Use:   "tradebook <input> <output.xlsx>",
		Short: "Build a trade analysis workbook from an import export",
		Long: `tradebook reads a trade-import export (.csv, .xlsx, .xls, .xlsm) and
writes an Excel workbook with the raw data, a formula-driven cleaned view,
HS code lookups and SUMIFS-based summaries by year, HS code, model and
supplier.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, args[0], args[1], flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.lookupFile, "lookup", "", "YAML file replacing the built-in HS code table")
	rootCmd.Flags().BoolVar(&flags.optionalSummaries, "optional-summaries", false,
		"Leave Year/HSN summaries empty instead of failing when DATE or HS CODE is missing")
	rootCmd.Flags().BoolVar(&flags.noChart, "no-chart", false, "Do not add charts to the summaries")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newDescribeCmd())
	return rootCmd
}

func runGenerate(cmd *cobra.Command, input, output string, flags generateFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())

	opts := generateOptions(cfg.Report, logger)
	if flags.lookupFile != "" {
		opts.LookupFile = flags.lookupFile
	}
	if flags.optionalSummaries {
		opts.Report.OptionalSummaries = true
	}
	if flags.noChart {
		opts.Report.Charts = false
	}

	_, err = tradebook.Generate(input, output, opts)
	return err
}

// generateOptions maps the report settings onto Generate options.
func generateOptions(cfg config.ReportConfig, logger *slog.Logger) tradebook.Options {
	opts := tradebook.DefaultOptions()
	opts.Logger = logger
	opts.LookupFile = cfg.LookupFile
	opts.Report.MinColumnWidth = cfg.MinColumnWidth
	opts.Report.MaxColumnWidth = cfg.MaxColumnWidth
	opts.Report.OptionalSummaries = cfg.OptionalSummaries
	opts.Report.Charts = cfg.Charts
	return opts
}
