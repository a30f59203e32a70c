// Package models provides the data structures used throughout the application.
package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction represents a single sales transaction parsed from the
// pipe-delimited input file. A Transaction that has passed all validation
// rules is never re-validated downstream; analytics and enrichment treat
// the valid set as read-only.
type Transaction struct {
	TransactionID string          `csv:"TransactionID"` // Expected to start with "T"
	Date          string          `csv:"Date"`          // Opaque sortable date string (YYYY-MM-DD in practice)
	ProductID     string          `csv:"ProductID"`     // Expected to start with "P"; numeric suffix keys the catalog join
	ProductName   string          `csv:"ProductName"`   // Free text, delimiter artifacts already collapsed by the parser
	Quantity      int             `csv:"Quantity"`
	UnitPrice     decimal.Decimal `csv:"UnitPrice"`
	CustomerID    string          `csv:"CustomerID"` // Expected to start with "C"
	Region        string          `csv:"Region"`
}

// Amount returns the transaction amount (Quantity * UnitPrice).
func (t Transaction) Amount() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// cleanNumber strips grouping separators and surrounding noise from a
// numeric field so values like "1,500" convert to 1500 instead of failing.
func cleanNumber(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// ParseQuantity parses a quantity field, tolerating thousands separators.
func ParseQuantity(raw string) (int, error) {
	return strconv.Atoi(cleanNumber(raw))
}

// ParseUnitPrice parses a unit price field into a decimal, tolerating
// thousands separators.
func ParseUnitPrice(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(cleanNumber(raw))
}

// CatalogKey derives the numeric catalog id from the ProductID by stripping
// a single alphabetic prefix ("P101" -> 101). Any other shape (empty suffix,
// non-digit characters, missing prefix) yields ok=false and is treated as a
// guaranteed catalog miss, never an error.
func (t Transaction) CatalogKey() (int, bool) {
	id := strings.TrimSpace(t.ProductID)
	if len(id) < 2 {
		return 0, false
	}
	prefix := rune(id[0])
	if (prefix < 'A' || prefix > 'Z') && (prefix < 'a' || prefix > 'z') {
		return 0, false
	}
	suffix := id[1:]
	key, err := strconv.Atoi(suffix)
	if err != nil || key < 0 {
		return 0, false
	}
	// strconv.Atoi accepts a leading sign; the suffix must be digits only.
	if strings.ContainsAny(suffix, "+-") {
		return 0, false
	}
	return key, true
}
