// Package catalog fetches the external product catalog and builds the
// id -> metadata mapping used for enrichment. The fetch is a single attempt
// with a bounded timeout; any failure degrades to an empty catalog so the
// pipeline can proceed unenriched.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

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

// DefaultBaseURL points at the public product listing service the original
// dataset is keyed against.
const DefaultBaseURL = "https://dummyjson.com"

const (
	defaultLimit   = 100
	defaultTimeout = 10 * time.Second
)

// Client fetches products from the catalog service.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

// NewClient creates a catalog client. Zero arguments fall back to the
// defaults (base URL above, limit 100, 10s timeout).
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// listResponse mirrors the product listing payload of the catalog service.
type listResponse struct {
	Products []models.CatalogEntry `json:"products"`
}

// FetchProducts performs the single catalog request and returns the cleaned
// product entries. Transport errors, non-success statuses and malformed
// bodies all surface as a FetchError; callers degrade to an empty catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]models.CatalogEntry, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)
	log.WithField("url", url).Info("Fetching product catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Catalog request failed")
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Catalog request returned non-success status")
		return nil, &parsererror.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode catalog response")
		return nil, &parsererror.FetchError{URL: url, Err: err}
	}

	log.WithField("count", len(payload.Products)).Info("Fetched product catalog")
	return payload.Products, nil
}

// BuildMapping turns a product list into the id -> entry mapping used by
// the enricher. Entries without a positive id are dropped.
func BuildMapping(products []models.CatalogEntry) models.Catalog {
	mapping := make(models.Catalog, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			continue
		}
		mapping[p.ID] = p
	}
	return mapping
}
