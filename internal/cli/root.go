package cli

import (
	"lre-analytics/internal/app"
	"lre-analytics/internal/shared/configs"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

const defaultConfigPath = "./configs/configs.yml"

// Overridden in tests.
var (
	loadConfig          = configs.LoadConfig
	newAnalyticsService = app.NewAnalyticsService
)

// NewRootCmd builds the lre-analytics command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lre-analytics",
		Short:   "Percentile analytics for LoadRunner Enterprise run results",
		Version: version,
		Long: `lre-analytics computes per-transaction summary statistics and weighted
response-time percentiles from LoadRunner Enterprise run results, either once
from the command line or on demand through an HTTP report API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newReportCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
