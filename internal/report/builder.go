// Package report assembles the analytics and enrichment results into the
// report payload and renders it as text or JSON. It shapes data only; no
// aggregate is recomputed here.
package report

import (
	"time"

	"salesops/sales-analytics/internal/enrich"
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

// Build assembles the report payload from the stage outputs.
func Build(counts models.RunCounts, summary models.AnalyticsSummary, enriched []models.EnrichedTransaction, stats enrich.MatchStats) models.Report {
	return models.Report{
		GeneratedAt:       time.Now(),
		Counts:            counts,
		Summary:           summary,
		MatchRate:         stats.Rate(),
		UnmatchedProducts: enrich.UnmatchedProductIDs(enriched),
	}
}
