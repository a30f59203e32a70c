package models

// EnrichedTransaction is a valid Transaction plus the catalog metadata
// attached by the enricher. Enrichment is all-or-nothing: either APIMatch is
// true and all three API fields are populated, or APIMatch is false and all
// three are absent. Instances are never mutated after creation.
type EnrichedTransaction struct {
	Transaction
	APICategory string   `csv:"API_Category"`
	APIBrand    string   `csv:"API_Brand"`
	APIRating   *float64 `csv:"API_Rating"` // nil when unmatched
	APIMatch    bool     `csv:"API_Match"`
}

// NewUnmatched returns the enrichment outcome for a transaction with no
// catalog hit.
func NewUnmatched(tx Transaction) EnrichedTransaction {
	return EnrichedTransaction{Transaction: tx}
}

// NewMatched returns the enrichment outcome for a catalog hit.
func NewMatched(tx Transaction, entry CatalogEntry) EnrichedTransaction {
	rating := entry.Rating
	return EnrichedTransaction{
		Transaction: tx,
		APICategory: entry.Category,
		APIBrand:    entry.Brand,
		APIRating:   &rating,
		APIMatch:    true,
	}
}
