package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lre-analytics/internal/analytics"
	"lre-analytics/internal/models"
	"lre-analytics/internal/output"
	"lre-analytics/internal/shared/loggers"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the report of one run and print it",
		Example: `  lre-analytics report --run-id 4711
  lre-analytics report --run-id 4711 --strategy digest --percentiles 50,90,99.9 --output json`,
		RunE: runReport,
	}

	cmd.Flags().String("run-id", "", "ID of the run to analyze (required)")
	cmd.Flags().String("strategy", "", "exact or digest (default from config)")
	cmd.Flags().Float64Slice("percentiles", nil, "percentile targets in [0, 100], reported in the given order (default from config)")
	cmd.Flags().Int("batch-size", 0, "rows per batch (default from config)")
	cmd.Flags().String("output", output.FormatTable, "table or json")
	cmd.Flags().Bool("no-color", false, "disable colored table output")
	_ = cmd.MarkFlagRequired("run-id")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	runID, _ := cmd.Flags().GetString("run-id")
	strategyFlag, _ := cmd.Flags().GetString("strategy")
	targets, _ := cmd.Flags().GetFloat64Slice("percentiles")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	format, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	printer, err := output.NewReportPrinter(format, noColor)
	if err != nil {
		return err
	}

	var strategy models.Strategy
	if strategyFlag != "" {
		if strategy, err = models.NewStrategyFromString(strategyFlag); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout carries the report, logs go to stderr
	logger, err := loggers.NewConsole(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	analyticsService, err := newAnalyticsService(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.With().Str(loggers.FieldComponent, "cli").Logger().WithContext(ctx)

	report, err := analyticsService.Run(ctx, analytics.RunRequest{
		RunID:       runID,
		Strategy:    strategy,
		Percentiles: targets,
		BatchSize:   batchSize,
	})
	if err != nil {
		return err
	}

	return printer.Print(cmd.OutOrStdout(), report)
}

