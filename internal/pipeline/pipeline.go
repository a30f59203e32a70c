// Package pipeline orchestrates the end-to-end run: read, parse, validate,
// analyze, fetch catalog, enrich, persist, report. Stages run strictly in
// sequence; each returns an immutable result that is threaded forward, and
// only the input read can abort the run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"salesops/sales-analytics/internal/analytics"
	"salesops/sales-analytics/internal/catalog"
	"salesops/sales-analytics/internal/config"
	"salesops/sales-analytics/internal/enrich"
	"salesops/sales-analytics/internal/fileutils"
	"salesops/sales-analytics/internal/models"
	"salesops/sales-analytics/internal/parser"
	"salesops/sales-analytics/internal/report"
	"salesops/sales-analytics/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets the logger for the pipeline and all its stages.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
	fileutils.SetLogger(logger)
	parser.SetLogger(logger)
	validator.SetLogger(logger)
	analytics.SetLogger(logger)
	catalog.SetLogger(logger)
	enrich.SetLogger(logger)
	report.SetLogger(logger)
}

// Result is the outcome of a completed run.
type Result struct {
	Counts   models.RunCounts
	Summary  models.AnalyticsSummary
	Enriched []models.EnrichedTransaction
	Report   models.Report
}

// Pipeline wires the stages together according to the configuration.
type Pipeline struct {
	cfg    *config.Config
	client *catalog.Client
	store  *catalog.Store
}

// New creates a pipeline from the application configuration.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		client: catalog.NewClient(
			cfg.Catalog.BaseURL,
			cfg.Catalog.Limit,
			time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		),
		store: catalog.NewStore(cfg.Catalog.CacheFile),
	}
}

// CriteriaFromConfig builds the filter criteria from the configured filter
// section. Unset or unparseable bounds are skipped, matching the original's
// "invalid amount entered, skipping filter" behavior.
func CriteriaFromConfig(cfg *config.Config) validator.Criteria {
	criteria := validator.Criteria{Region: cfg.Filter.Region}
	if cfg.Filter.MinAmount != "" {
		if min, err := models.ParseUnitPrice(cfg.Filter.MinAmount); err == nil {
			criteria.MinAmount = &min
		} else {
			log.Warnf("Invalid min amount '%s', skipping min filter", cfg.Filter.MinAmount)
		}
	}
	if cfg.Filter.MaxAmount != "" {
		if max, err := models.ParseUnitPrice(cfg.Filter.MaxAmount); err == nil {
			criteria.MaxAmount = &max
		} else {
			log.Warnf("Invalid max amount '%s', skipping max filter", cfg.Filter.MaxAmount)
		}
	}
	return criteria
}

// Run executes the full pipeline. It returns an error only for the fatal
// class (unreadable input); per-record and catalog failures degrade to
// counts in the result.
func (p *Pipeline) Run(ctx context.Context, criteria validator.Criteria) (*Result, error) {
	// Stage 1: read. The one fatal failure point; nothing has been
	// written yet when it trips.
	lines, err := fileutils.ReadSalesLines(p.cfg.Input.File)
	if err != nil {
		return nil, err
	}

	// Stage 2: parse and clean.
	transactions, parseStats := parser.ParseLines(lines)

	// Stage 3: validate and apply the optional filter.
	validation := validator.Validate(transactions, criteria)

	// Stage 4: analytics over the surviving set.
	summary := analytics.Summarize(validation.Valid, analytics.Options{
		TopProducts:          p.cfg.Analytics.TopProducts,
		TopCustomers:         p.cfg.Analytics.TopCustomers,
		LowQuantityThreshold: p.cfg.Analytics.LowQuantityThreshold,
	})

	// Stage 5: catalog fetch, fail-soft.
	mapping := p.acquireCatalog(ctx)

	// Stage 6: enrichment, order-preserving.
	enriched, matchStats := enrich.Enrich(validation.Valid, mapping)

	// Stage 7: persist the enriched dataset.
	if err := enrich.WriteEnrichedFile(enriched, p.cfg.Output.EnrichedFile); err != nil {
		return nil, fmt.Errorf("failed to save enriched data: %w", err)
	}

	counts := models.RunCounts{
		LinesRead:    parseStats.LinesRead,
		Parsed:       parseStats.Parsed,
		ParseSkipped: parseStats.Skipped,
		Valid:        len(validation.Valid) + validation.FilteredByRegion + validation.FilteredByAmount,
		Invalid:      validation.InvalidCount,
		Filtered:     len(validation.Valid),
		Enriched:     len(enriched),
		Matched:      matchStats.Matched,
	}

	// Stage 8: report payload and rendering.
	rep := report.Build(counts, summary, enriched, matchStats)
	rendered, err := report.Generate(rep, p.cfg.Output.ReportFormat)
	if err != nil {
		return nil, err
	}
	if err := fileutils.WriteFile(p.cfg.Output.ReportFile, rendered, 0600); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"enriched_file": p.cfg.Output.EnrichedFile,
		"report_file":   p.cfg.Output.ReportFile,
	}).Info("Pipeline run complete")

	return &Result{
		Counts:   counts,
		Summary:  summary,
		Enriched: enriched,
		Report:   rep,
	}, nil
}

// acquireCatalog fetches the product catalog, falling back to the local
// cache and finally to an empty mapping. Enrichment proceeds either way.
func (p *Pipeline) acquireCatalog(ctx context.Context) models.Catalog {
	products, err := p.client.FetchProducts(ctx)
	if err == nil {
		if p.cfg.Catalog.CacheFile != "" {
			if saveErr := p.store.Save(products); saveErr != nil {
				log.WithError(saveErr).Warn("Failed to cache catalog")
			}
		}
		return catalog.BuildMapping(products)
	}

	log.WithError(err).Warn("Catalog fetch failed, continuing without enrichment")
	if p.cfg.Catalog.CacheFile != "" {
		if cached, loadErr := p.store.Load(); loadErr == nil {
			log.WithField("count", len(cached)).Info("Using cached catalog")
			return catalog.BuildMapping(cached)
		}
	}
	return models.Catalog{}
}

// AmountBound parses an amount flag value into a criteria bound. Empty or
// unparseable values yield nil (no bound).
func AmountBound(value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	d, err := models.ParseUnitPrice(value)
	if err != nil {
		return nil
	}
	return &d
}
