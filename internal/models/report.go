package models

import "time"

// RunCounts carries the aggregate record counts of a pipeline run. Each
// stage returns its own counts; nothing downstream recomputes them.
type RunCounts struct {
	LinesRead    int `json:"lines_read"`
	Parsed       int `json:"parsed"`
	ParseSkipped int `json:"parse_skipped"`
	Valid        int `json:"valid"`
	Invalid      int `json:"invalid"`
	Filtered     int `json:"filtered"` // Size of the valid set after optional filtering
	Enriched     int `json:"enriched"`
	Matched      int `json:"matched"`
}

// Report is the structured payload handed to the renderers. It shapes data
// produced by the analytics engine and the enricher without recomputing any
// aggregate.
type Report struct {
	GeneratedAt       time.Time        `json:"generated_at"`
	Counts            RunCounts        `json:"counts"`
	Summary           AnalyticsSummary `json:"summary"`
	MatchRate         float64          `json:"match_rate"`         // 0-100
	UnmatchedProducts []string         `json:"unmatched_products"` // ProductIDs, sorted
}
