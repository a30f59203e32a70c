// Package analyze contains the command that runs the full pipeline.
package analyze

import (
	"fmt"

	"salesops/sales-analytics/cmd/root"
	"salesops/sales-analytics/internal/pipeline"
	"salesops/sales-analytics/internal/validator"

	"github.com/spf13/cobra"
)

var (
	regionFilter string
	minAmount    string
	maxAmount    string
)

// Cmd is the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline: parse, validate, analyze, enrich and report",
	Long: `Reads the sales data file, parses and validates every record, computes
the analytics summary, enriches valid records against the product catalog
and writes the enriched dataset and the sales report.

The valid set can optionally be narrowed by region and/or transaction
amount before analytics and enrichment run.`,
	RunE: runAnalyze,
}

func init() {
	Cmd.Flags().StringVar(&regionFilter, "region", "", "Keep only transactions from this region")
	Cmd.Flags().StringVar(&minAmount, "min-amount", "", "Keep only transactions with amount >= this value")
	Cmd.Flags().StringVar(&maxAmount, "max-amount", "", "Keep only transactions with amount <= this value")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	root.ApplyOverrides(cfg)

	// Flags override the configured filter section.
	criteria := pipeline.CriteriaFromConfig(cfg)
	if regionFilter != "" {
		criteria.Region = regionFilter
	}
	if minAmount != "" {
		criteria.MinAmount = pipeline.AmountBound(minAmount)
	}
	if maxAmount != "" {
		criteria.MaxAmount = pipeline.AmountBound(maxAmount)
	}

	p := pipeline.New(cfg)
	result, err := p.Run(cmd.Context(), criteria)
	if err != nil {
		return err
	}

	printRunSummary(result, criteria)
	return nil
}

func printRunSummary(result *pipeline.Result, criteria validator.Criteria) {
	c := result.Counts
	fmt.Printf("Read %d lines, parsed %d (%d skipped)\n", c.LinesRead, c.Parsed, c.ParseSkipped)
	fmt.Printf("Valid: %d | Invalid: %d\n", c.Valid, c.Invalid)
	if !criteria.IsEmpty() {
		fmt.Printf("After filtering: %d records\n", c.Filtered)
	}
	fmt.Printf("Total revenue: %s\n", result.Summary.TotalRevenue.StringFixed(2))
	fmt.Printf("Enriched %d/%d transactions (%.1f%%)\n", c.Matched, c.Enriched, result.Report.MatchRate)
}
