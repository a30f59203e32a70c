// Package catalog contains the command that fetches the product catalog
// and caches it locally.
package catalog

import (
	"fmt"
	"time"

	"salesops/sales-analytics/cmd/root"
	"salesops/sales-analytics/internal/catalog"

	"github.com/spf13/cobra"
)

var cacheFile string

// Cmd is the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch the product catalog and cache it to a local YAML file",
	Long: `Performs the catalog fetch that the analyze pipeline would do and saves
the result to a local YAML cache. Later pipeline runs fall back to this
cache when the catalog service is unreachable.`,
	RunE: runCatalog,
}

func init() {
	Cmd.Flags().StringVar(&cacheFile, "cache-file", "", "Cache file path (overrides config)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	if cacheFile != "" {
		cfg.Catalog.CacheFile = cacheFile
	}
	if cfg.Catalog.CacheFile == "" {
		return fmt.Errorf("no cache file configured; set catalog.cache_file or pass --cache-file")
	}

	client := catalog.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.Limit,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
	)
	products, err := client.FetchProducts(cmd.Context())
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}

	store := catalog.NewStore(cfg.Catalog.CacheFile)
	if err := store.Save(products); err != nil {
		return err
	}

	fmt.Printf("Cached %d products to %s\n", len(products), cfg.Catalog.CacheFile)
	return nil
}
