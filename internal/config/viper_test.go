package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data/sales_data.txt", cfg.Input.File)
	assert.Equal(t, "data/enriched_sales_data.txt", cfg.Output.EnrichedFile)
	assert.Equal(t, "output/sales_report.txt", cfg.Output.ReportFile)
	assert.Equal(t, "text", cfg.Output.ReportFormat)
	assert.Equal(t, "https://dummyjson.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 100, cfg.Catalog.Limit)
	assert.Equal(t, 10, cfg.Catalog.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Analytics.TopProducts)
	assert.Equal(t, 5, cfg.Analytics.TopCustomers)
	assert.Equal(t, 10, cfg.Analytics.LowQuantityThreshold)
	assert.Empty(t, cfg.Filter.Region)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("SALES_LOG_LEVEL", "debug")
	t.Setenv("SALES_INPUT_FILE", "custom/sales.txt")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "custom/sales.txt", cfg.Input.File)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Output.ReportFormat = "text"
		cfg.Catalog.Limit = 100
		cfg.Catalog.TimeoutSeconds = 10
		cfg.Analytics.LowQuantityThreshold = 10
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *Config) { cfg.Log.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			mutate:  func(cfg *Config) { cfg.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "bad report format",
			mutate:  func(cfg *Config) { cfg.Output.ReportFormat = "pdf" },
			wantErr: "invalid report format",
		},
		{
			name:    "catalog limit out of range",
			mutate:  func(cfg *Config) { cfg.Catalog.Limit = 5000 },
			wantErr: "catalog.limit",
		},
		{
			name:    "timeout out of range",
			mutate:  func(cfg *Config) { cfg.Catalog.TimeoutSeconds = 0 },
			wantErr: "catalog.timeout_seconds",
		},
		{
			name:    "non-positive low quantity threshold",
			mutate:  func(cfg *Config) { cfg.Analytics.LowQuantityThreshold = 0 },
			wantErr: "low_quantity_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
