package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"salesops/sales-analytics/internal/catalog"
	"salesops/sales-analytics/internal/models"
	"salesops/sales-analytics/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsPayload = `{
	"products": [
		{"id": 1, "title": "iPhone 9", "category": "smartphones", "brand": "Apple", "rating": 4.69},
		{"id": 2, "title": "Laptop Pro", "category": "laptops", "brand": "Acme", "rating": 4.5}
	],
	"total": 2, "skip": 0, "limit": 100
}`

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsPayload))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 100, 10*time.Second)
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "iPhone 9", products[0].Title)
	assert.Equal(t, "smartphones", products[0].Category)
	assert.Equal(t, "Apple", products[0].Brand)
	assert.InDelta(t, 4.69, products[0].Rating, 0.001)
}

func TestFetchProductsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 100, 10*time.Second)
	products, err := client.FetchProducts(context.Background())
	assert.Nil(t, products)

	var fetchErr *parsererror.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestFetchProductsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [truncated`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 100, 10*time.Second)
	_, err := client.FetchProducts(context.Background())

	var fetchErr *parsererror.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchProductsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := catalog.NewClient(server.URL, 100, time.Second)
	_, err := client.FetchProducts(context.Background())

	var fetchErr *parsererror.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestNewClientDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	// Zero limit and timeout fall back to the documented defaults.
	client := catalog.NewClient(server.URL, 0, 0)
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestBuildMapping(t *testing.T) {
	products := []models.CatalogEntry{
		{ID: 101, Title: "Wireless Mouse", Category: "Electronics", Brand: "Acme", Rating: 4.5},
		{ID: 0, Title: "No ID"},
		{ID: -3, Title: "Negative"},
		{ID: 102, Title: "Laptop", Category: "Electronics", Brand: "Acme", Rating: 4.7},
	}

	mapping := catalog.BuildMapping(products)
	require.Len(t, mapping, 2)
	assert.Equal(t, "Wireless Mouse", mapping[101].Title)
	assert.Equal(t, "Laptop", mapping[102].Title)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog_cache.yaml")
	store := catalog.NewStore(path)

	products := []models.CatalogEntry{
		{ID: 102, Title: "Laptop", Category: "Electronics", Brand: "Acme", Rating: 4.7},
		{ID: 101, Title: "Wireless Mouse", Category: "Electronics", Brand: "Acme", Rating: 4.5},
	}
	require.NoError(t, store.Save(products))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Save sorts by id for stable cache files.
	assert.Equal(t, 101, loaded[0].ID)
	assert.Equal(t, 102, loaded[1].ID)
	assert.Equal(t, "Wireless Mouse", loaded[0].Title)
	assert.InDelta(t, 4.5, loaded[0].Rating, 0.001)
}

func TestStoreMissingFile(t *testing.T) {
	store := catalog.NewStore(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := store.Load()
	assert.Error(t, err)
}

func TestStoreNoPath(t *testing.T) {
	store := catalog.NewStore("")
	assert.Error(t, store.Save(nil))
	_, err := store.Load()
	assert.Error(t, err)
}
