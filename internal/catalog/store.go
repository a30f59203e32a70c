package catalog

import (
	"fmt"
	"os"
	"sort"

	"salesops/sales-analytics/internal/fileutils"
	"salesops/sales-analytics/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Store persists a fetched catalog to a local YAML file so later runs can
// fall back to it when the catalog service is unreachable.
type Store struct {
	Path string
}

// NewStore creates a catalog store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// cacheFile is the on-disk layout of the catalog cache.
type cacheFile struct {
	Products []models.CatalogEntry `yaml:"products"`
}

// Save writes the product entries to the cache file, sorted by id for
// stable output.
func (s *Store) Save(products []models.CatalogEntry) error {
	if s.Path == "" {
		return fmt.Errorf("no catalog cache file configured")
	}

	sorted := make([]models.CatalogEntry, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	data, err := yaml.Marshal(cacheFile{Products: sorted})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog cache: %w", err)
	}
	if err := fileutils.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  s.Path,
		"count": len(sorted),
	}).Info("Saved catalog cache")
	return nil
}

// Load reads the cached catalog. A missing or unreadable cache returns an
// error; callers treat that the same as a failed fetch.
func (s *Store) Load() ([]models.CatalogEntry, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("no catalog cache file configured")
	}

	data, err := os.ReadFile(s.Path) // #nosec G304 -- cache path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var cache cacheFile
	if err := yaml.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse catalog cache: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  s.Path,
		"count": len(cache.Products),
	}).Info("Loaded catalog cache")
	return cache.Products, nil
}
