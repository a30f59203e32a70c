package models

// CatalogEntry holds the product metadata supplied by the external catalog
// service, keyed by its numeric id.
type CatalogEntry struct {
	ID       int     `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Brand    string  `json:"brand" yaml:"brand"`
	Rating   float64 `json:"rating" yaml:"rating"`
}

// Catalog maps numeric product ids to their metadata. An empty catalog is a
// legal state (the fetch failed); enrichment then degrades to all-unmatched.
type Catalog map[int]CatalogEntry
