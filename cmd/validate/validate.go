// Package validate contains the command that checks a sales data file
// without producing any output files.
package validate

import (
	"fmt"

	"salesops/sales-analytics/cmd/root"
	"salesops/sales-analytics/internal/fileutils"
	"salesops/sales-analytics/internal/parser"
	"salesops/sales-analytics/internal/validator"

	"github.com/spf13/cobra"
)

// Cmd is the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and validate the sales data file, printing counts only",
	Long: `Reads and parses the sales data file and applies the validation rules,
then prints the aggregate counts (parsed, skipped, valid, invalid) and the
available filter options (regions, amount range) without writing output.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	root.ApplyOverrides(cfg)

	lines, err := fileutils.ReadSalesLines(cfg.Input.File)
	if err != nil {
		return err
	}

	transactions, parseStats := parser.ParseLines(lines)
	result := validator.Validate(transactions, validator.Criteria{})

	fmt.Printf("Lines read:   %d\n", parseStats.LinesRead)
	fmt.Printf("Parsed:       %d\n", parseStats.Parsed)
	fmt.Printf("Parse skipped: %d\n", parseStats.Skipped)
	fmt.Printf("Valid:        %d\n", len(result.Valid))
	fmt.Printf("Invalid:      %d\n", result.InvalidCount)

	if len(result.RejectionsByRule) > 0 {
		fmt.Println("Rejections by rule:")
		for rule, count := range result.RejectionsByRule {
			fmt.Printf("  %-25s %d\n", rule, count)
		}
	}

	regions := validator.Regions(result.Valid)
	if len(regions) > 0 {
		fmt.Printf("Regions: %v\n", regions)
	}
	if min, max, ok := validator.AmountRange(result.Valid); ok {
		fmt.Printf("Amount range: %s to %s\n", min.StringFixed(2), max.StringFixed(2))
	}

	return nil
}
