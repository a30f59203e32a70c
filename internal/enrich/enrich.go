// Package enrich joins valid transactions against the product catalog and
// handles the pipe-delimited enriched output file. Enrichment never fails
// the run: an empty catalog simply produces all-unmatched output.
package enrich

import (
	"sort"

	"salesops/sales-analytics/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// MatchStats summarizes the enrichment outcome. It feeds a status line and
// the report; nothing else acts on it.
type MatchStats struct {
	Total   int
	Matched int
}

// Rate returns the match percentage (0-100).
func (s MatchStats) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Total) * 100
}

// Enrich produces one EnrichedTransaction per input transaction, preserving
// input order. A transaction matches when its product id yields a numeric
// catalog key present in the mapping; everything else is a clean non-match.
func Enrich(transactions []models.Transaction, catalog models.Catalog) ([]models.EnrichedTransaction, MatchStats) {
	enriched := make([]models.EnrichedTransaction, 0, len(transactions))
	stats := MatchStats{Total: len(transactions)}

	for _, tx := range transactions {
		key, ok := tx.CatalogKey()
		if !ok {
			enriched = append(enriched, models.NewUnmatched(tx))
			continue
		}
		entry, found := catalog[key]
		if !found {
			enriched = append(enriched, models.NewUnmatched(tx))
			continue
		}
		enriched = append(enriched, models.NewMatched(tx, entry))
		stats.Matched++
	}

	log.WithFields(logrus.Fields{
		"total":   stats.Total,
		"matched": stats.Matched,
		"rate":    stats.Rate(),
	}).Info("Enriched transactions against catalog")
	return enriched, stats
}

// UnmatchedProductIDs returns the sorted-unique product ids that did not
// match the catalog, for the report's enrichment section.
func UnmatchedProductIDs(enriched []models.EnrichedTransaction) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range enriched {
		if e.APIMatch || e.ProductID == "" || seen[e.ProductID] {
			continue
		}
		seen[e.ProductID] = true
		ids = append(ids, e.ProductID)
	}
	sort.Strings(ids)
	return ids
}
