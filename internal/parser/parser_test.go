package parser_test

import (
	"testing"

	"salesops/sales-analytics/internal/parser"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinesValidLine(t *testing.T) {
	lines := []string{"T001|2024-01-01|P101|Mouse|2|500|C001|North"}

	transactions, stats := parser.ParseLines(lines)

	require.Len(t, transactions, 1)
	assert.Equal(t, 1, stats.Parsed)
	assert.Equal(t, 0, stats.Skipped)

	tx := transactions[0]
	assert.Equal(t, "T001", tx.TransactionID)
	assert.Equal(t, "2024-01-01", tx.Date)
	assert.Equal(t, "P101", tx.ProductID)
	assert.Equal(t, "Mouse", tx.ProductName)
	assert.Equal(t, 2, tx.Quantity)
	assert.True(t, tx.UnitPrice.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "C001", tx.CustomerID)
	assert.Equal(t, "North", tx.Region)
}

func TestParseLinesGroupingSeparators(t *testing.T) {
	lines := []string{"T001|2024-01-01|P101|Laptop|1,500|45,000.50|C001|North"}

	transactions, stats := parser.ParseLines(lines)

	require.Len(t, transactions, 1)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 1500, transactions[0].Quantity)
	assert.True(t, transactions[0].UnitPrice.Equal(decimal.NewFromFloat(45000.50)))
}

func TestParseLinesNameReconciliation(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		expectedName string
	}{
		{
			name:         "Single extra delimiter in name",
			line:         "T001|2024-01-01|P101|Mouse|Wireless|2|500|C001|North",
			expectedName: "Mouse Wireless",
		},
		{
			name:         "Two extra delimiters in name",
			line:         "T001|2024-01-01|P101|Big|Blue|Mouse|2|500|C001|North",
			expectedName: "Big Blue Mouse",
		},
		{
			name:         "Comma artifacts in name",
			line:         "T001|2024-01-01|P101|Mouse,Wireless|2|500|C001|North",
			expectedName: "Mouse Wireless",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, stats := parser.ParseLines([]string{tt.line})
			require.Len(t, transactions, 1)
			assert.Equal(t, 0, stats.Skipped)
			assert.Equal(t, tt.expectedName, transactions[0].ProductName)
			assert.Equal(t, 2, transactions[0].Quantity)
			assert.Equal(t, "North", transactions[0].Region)
		})
	}
}

func TestParseLinesFailures(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{
			name:   "Too few fields",
			line:   "T001|2024-01-01|P101|Mouse|2|500|C001",
			reason: parser.ReasonFieldCount,
		},
		{
			name:   "Non-numeric quantity",
			line:   "T001|2024-01-01|P101|Mouse|two|500|C001|North",
			reason: parser.ReasonQuantity,
		},
		{
			name:   "Non-numeric price",
			line:   "T001|2024-01-01|P101|Mouse|2|expensive|C001|North",
			reason: parser.ReasonUnitPrice,
		},
		{
			name: "Ambiguous reconciliation",
			// The surplus cannot belong to the name column: attributing it
			// there leaves non-numeric fixed columns.
			line:   "T001|2024-01-01|P101|Mouse|2|500|C001|North|Extra",
			reason: parser.ReasonUnitPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, stats := parser.ParseLines([]string{tt.line})
			assert.Empty(t, transactions)
			assert.Equal(t, 1, stats.Skipped)
			assert.Equal(t, 1, stats.Reasons[tt.reason])
		})
	}
}

func TestParseLinesSkipsBadKeepsGood(t *testing.T) {
	lines := []string{
		"T001|2024-01-01|P101|Mouse|2|500|C001|North",
		"bad line",
		"T002|2024-01-02|P102|Keyboard|1|300|C002|South",
	}

	transactions, stats := parser.ParseLines(lines)

	require.Len(t, transactions, 2)
	assert.Equal(t, 3, stats.LinesRead)
	assert.Equal(t, 2, stats.Parsed)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, "T001", transactions[0].TransactionID)
	assert.Equal(t, "T002", transactions[1].TransactionID)
}

func TestParseLinesIdempotent(t *testing.T) {
	lines := []string{
		"T001|2024-01-01|P101|Mouse,Wireless|2|1,500|C001|North",
		"T002|2024-01-02|P102|Keyboard|1|300|C002|South",
		"broken|line",
	}

	first, firstStats := parser.ParseLines(lines)
	second, secondStats := parser.ParseLines(lines)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats, secondStats)
}

func TestParseLinesEmptyInput(t *testing.T) {
	transactions, stats := parser.ParseLines(nil)
	assert.Empty(t, transactions)
	assert.Equal(t, 0, stats.Parsed)
	assert.Equal(t, 0, stats.Skipped)
}
