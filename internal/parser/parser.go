// Package parser turns raw pipe-delimited lines into typed transactions,
// normalizing numeric and free-text noise. It is a pure transformation:
// failures are counted and skipped, never fatal, and re-parsing the same
// lines yields the same result.
package parser

import (
	"strings"

	"salesops/sales-analytics/internal/models"
	"salesops/sales-analytics/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the field separator of the input file.
const Delimiter = "|"

// schemaWidth is the fixed number of columns in the input schema:
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
const schemaWidth = 8

// Reasons used in the aggregate skip tally.
const (
	ReasonFieldCount = "field count mismatch"
	ReasonQuantity   = "invalid quantity"
	ReasonUnitPrice  = "invalid unit price"
)

// Stats carries the aggregate outcome of a parse pass. Individual line
// failures are tallied by reason, not itemized to the user.
type Stats struct {
	LinesRead int
	Parsed    int
	Skipped   int
	Reasons   map[string]int
}

// ParseLines parses the given data lines (header and blanks already
// stripped) into transactions. Lines that cannot be parsed are counted in
// the returned stats and skipped.
func ParseLines(lines []string) ([]models.Transaction, Stats) {
	stats := Stats{
		LinesRead: len(lines),
		Reasons:   make(map[string]int),
	}

	transactions := make([]models.Transaction, 0, len(lines))
	for i, line := range lines {
		tx, err := parseLine(i, line)
		if err != nil {
			stats.Skipped++
			var perr *parsererror.ParseError
			if e, ok := err.(*parsererror.ParseError); ok {
				perr = e
			}
			if perr != nil {
				stats.Reasons[perr.Reason]++
			}
			log.WithError(err).Debug("Skipping unparseable line")
			continue
		}
		transactions = append(transactions, tx)
	}
	stats.Parsed = len(transactions)

	log.WithFields(logrus.Fields{
		"parsed":  stats.Parsed,
		"skipped": stats.Skipped,
	}).Info("Parsed sales data lines")
	return transactions, stats
}

// parseLine converts a single raw line into a Transaction.
func parseLine(index int, line string) (models.Transaction, error) {
	parts := strings.Split(strings.TrimSpace(line), Delimiter)
	if len(parts) < schemaWidth {
		return models.Transaction{}, &parsererror.ParseError{
			Line:   index,
			Value:  line,
			Reason: ReasonFieldCount,
		}
	}

	// The ProductName column may contain the delimiter as authored free
	// text. A surplus over the schema width is attributed entirely to that
	// column: the excess fields are re-joined into a single normalized
	// name. The surrounding fixed columns must then still convert, which
	// rejects ambiguous reconciliations below.
	surplus := len(parts) - schemaWidth
	name := strings.Join(parts[3:4+surplus], " ")
	// Stray comma separators inside the free text collapse to spaces,
	// e.g. "Mouse,Wireless" -> "Mouse Wireless".
	name = strings.ReplaceAll(name, ",", " ")
	name = strings.Join(strings.Fields(name), " ")
	rest := parts[4+surplus:]

	quantity, err := models.ParseQuantity(rest[0])
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Line:   index,
			Field:  "Quantity",
			Value:  rest[0],
			Reason: ReasonQuantity,
			Err:    err,
		}
	}

	unitPrice, err := models.ParseUnitPrice(rest[1])
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Line:   index,
			Field:  "UnitPrice",
			Value:  rest[1],
			Reason: ReasonUnitPrice,
			Err:    err,
		}
	}

	return models.Transaction{
		TransactionID: strings.TrimSpace(parts[0]),
		Date:          strings.TrimSpace(parts[1]),
		ProductID:     strings.TrimSpace(parts[2]),
		ProductName:   name,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(rest[2]),
		Region:        strings.TrimSpace(rest[3]),
	}, nil
}
