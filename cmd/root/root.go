// Package root contains the root command for the application
package root

import (
	"salesops/sales-analytics/internal/config"
	"salesops/sales-analytics/internal/enrich"
	"salesops/sales-analytics/internal/pipeline"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to subcommands
	// after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sales-analytics",
		Short: "A CLI tool to clean, analyze and enrich pipe-delimited sales transaction logs.",
		Long: `sales-analytics ingests a pipe-delimited sales transaction log, validates
and cleans each record, computes descriptive sales analytics, enriches the
records against an external product catalog and writes the enriched dataset
plus a sales report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sales-analytics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			pipeline.SetLogger(Log)
			return nil
		},
	}

	// Shared flags for input/output overrides
	InputFile    string
	EnrichedFile string
	ReportFile   string
	ReportFormat string
	Delimiter    string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&InputFile, "input", "i", "", "Input sales data file (overrides config)")
	Cmd.PersistentFlags().StringVarP(&EnrichedFile, "enriched", "e", "", "Enriched output file (overrides config)")
	Cmd.PersistentFlags().StringVarP(&ReportFile, "report", "r", "", "Report output file (overrides config)")
	Cmd.PersistentFlags().StringVar(&ReportFormat, "format", "", "Report format: text or json (overrides config)")
	Cmd.PersistentFlags().StringVarP(&Delimiter, "delimiter", "d", "|", "Field delimiter for the enriched output file")
}

// ApplyOverrides copies any set flags over the loaded configuration.
func ApplyOverrides(cfg *config.Config) {
	if InputFile != "" {
		cfg.Input.File = InputFile
	}
	if EnrichedFile != "" {
		cfg.Output.EnrichedFile = EnrichedFile
	}
	if ReportFile != "" {
		cfg.Output.ReportFile = ReportFile
	}
	if ReportFormat != "" {
		cfg.Output.ReportFormat = ReportFormat
	}
	if Delimiter != "" {
		enrich.SetDelimiter([]rune(Delimiter)[0])
	}
}
