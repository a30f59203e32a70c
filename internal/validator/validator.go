// Package validator rejects structurally or semantically invalid
// transactions and applies the optional user-supplied filter to the valid
// set. A transaction failing any rule is dropped before analytics or
// enrichment ever see it.
package validator

import (
	"fmt"
	"sort"

	"salesops/sales-analytics/internal/models"
	"salesops/sales-analytics/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rule names, used in the aggregate rejection tally. Rules apply in this
// order; the first failing rule determines the recorded reason.
const (
	RuleQuantityPositive  = "quantity > 0"
	RulePricePositive     = "unit_price > 0"
	RuleTransactionPrefix = "transaction_id prefix T"
	RuleProductPrefix     = "product_id prefix P"
	RuleCustomerPrefix    = "customer_id prefix C"
	RuleRegionPresent     = "region non-empty"
)

// Criteria is the optional post-validation filter. The zero value is the
// identity filter. It narrows the already-valid set only; rejected records
// are never resurrected.
type Criteria struct {
	Region    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// IsEmpty reports whether the criteria would pass every transaction.
func (c Criteria) IsEmpty() bool {
	return c.Region == "" && c.MinAmount == nil && c.MaxAmount == nil
}

// amountInRange reports whether the transaction amount falls within the
// inclusive [min, max] bound of the criteria.
func (c Criteria) amountInRange(tx models.Transaction) bool {
	amount := tx.Amount()
	if c.MinAmount != nil && amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	return true
}

// Result carries the outcome of a validate-and-filter pass.
type Result struct {
	Valid            []models.Transaction
	InvalidCount     int
	RejectionsByRule map[string]int
	FilteredByRegion int
	FilteredByAmount int
}

// checkRules returns the name of the first rule the transaction fails, or
// "" when it is valid.
func checkRules(tx models.Transaction) string {
	switch {
	case tx.Quantity <= 0:
		return RuleQuantityPositive
	case !tx.UnitPrice.IsPositive():
		return RulePricePositive
	case tx.TransactionID == "" || tx.TransactionID[0] != 'T':
		return RuleTransactionPrefix
	case tx.ProductID == "" || tx.ProductID[0] != 'P':
		return RuleProductPrefix
	case tx.CustomerID == "" || tx.CustomerID[0] != 'C':
		return RuleCustomerPrefix
	case tx.Region == "":
		return RuleRegionPresent
	}
	return ""
}

// Validate applies the validation rules in order and then the optional
// filter criteria, returning the surviving set and aggregate counts.
func Validate(transactions []models.Transaction, criteria Criteria) Result {
	result := Result{
		RejectionsByRule: make(map[string]int),
	}

	valid := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if rule := checkRules(tx); rule != "" {
			result.InvalidCount++
			result.RejectionsByRule[rule]++
			log.WithError(&parsererror.ValidationError{
				TransactionID: tx.TransactionID,
				Rule:          rule,
			}).Debug("Rejected invalid transaction")
			continue
		}
		valid = append(valid, tx)
	}

	if criteria.IsEmpty() {
		result.Valid = valid
		logOutcome(len(transactions), result)
		return result
	}

	filtered := make([]models.Transaction, 0, len(valid))
	for _, tx := range valid {
		if criteria.Region != "" && tx.Region != criteria.Region {
			result.FilteredByRegion++
			continue
		}
		if !criteria.amountInRange(tx) {
			result.FilteredByAmount++
			continue
		}
		filtered = append(filtered, tx)
	}
	result.Valid = filtered
	logOutcome(len(transactions), result)
	return result
}

// Regions returns the sorted-unique region values present in a set. Used by
// callers to surface the available filter options.
func Regions(transactions []models.Transaction) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, tx := range transactions {
		if tx.Region != "" && !seen[tx.Region] {
			seen[tx.Region] = true
			regions = append(regions, tx.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// AmountRange returns the minimum and maximum transaction amounts in a set.
// ok is false for an empty set.
func AmountRange(transactions []models.Transaction) (min, max decimal.Decimal, ok bool) {
	for i, tx := range transactions {
		amount := tx.Amount()
		if i == 0 {
			min, max = amount, amount
			continue
		}
		if amount.LessThan(min) {
			min = amount
		}
		if amount.GreaterThan(max) {
			max = amount
		}
	}
	return min, max, len(transactions) > 0
}

func logOutcome(total int, result Result) {
	log.WithFields(logrus.Fields{
		"input":              total,
		"valid":              len(result.Valid),
		"invalid":            result.InvalidCount,
		"filtered_by_region": result.FilteredByRegion,
		"filtered_by_amount": result.FilteredByAmount,
	}).Info(fmt.Sprintf("Validated transactions: %d valid, %d invalid", len(result.Valid), result.InvalidCount))
}
