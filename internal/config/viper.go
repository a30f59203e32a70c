// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		EnrichedFile string `mapstructure:"enriched_file" yaml:"enriched_file"`
		ReportFile   string `mapstructure:"report_file" yaml:"report_file"`
		ReportFormat string `mapstructure:"report_format" yaml:"report_format"`
	} `mapstructure:"output" yaml:"output"`

	Catalog struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		Limit          int    `mapstructure:"limit" yaml:"limit"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CacheFile      string `mapstructure:"cache_file" yaml:"cache_file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Analytics struct {
		TopProducts          int `mapstructure:"top_products" yaml:"top_products"`
		TopCustomers         int `mapstructure:"top_customers" yaml:"top_customers"`
		LowQuantityThreshold int `mapstructure:"low_quantity_threshold" yaml:"low_quantity_threshold"`
	} `mapstructure:"analytics" yaml:"analytics"`

	Filter struct {
		Region    string `mapstructure:"region" yaml:"region"`
		MinAmount string `mapstructure:"min_amount" yaml:"min_amount"`
		MaxAmount string `mapstructure:"max_amount" yaml:"max_amount"`
	} `mapstructure:"filter" yaml:"filter"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sales-analytics")
	v.AddConfigPath(".sales-analytics")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Input/output defaults mirror the layout of the original dataset
	v.SetDefault("input.file", "data/sales_data.txt")
	v.SetDefault("output.enriched_file", "data/enriched_sales_data.txt")
	v.SetDefault("output.report_file", "output/sales_report.txt")
	v.SetDefault("output.report_format", "text")

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://dummyjson.com")
	v.SetDefault("catalog.limit", 100)
	v.SetDefault("catalog.timeout_seconds", 10)
	v.SetDefault("catalog.cache_file", "")

	// Analytics defaults
	v.SetDefault("analytics.top_products", 5)
	v.SetDefault("analytics.top_customers", 5)
	v.SetDefault("analytics.low_quantity_threshold", 10)

	// Filter defaults (identity filter)
	v.SetDefault("filter.region", "")
	v.SetDefault("filter.min_amount", "")
	v.SetDefault("filter.max_amount", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Output.ReportFormat != "text" && config.Output.ReportFormat != "json" {
		return fmt.Errorf("invalid report format: %s (must be 'text' or 'json')", config.Output.ReportFormat)
	}

	if config.Catalog.Limit < 1 || config.Catalog.Limit > 1000 {
		return fmt.Errorf("catalog.limit must be between 1 and 1000, got: %d", config.Catalog.Limit)
	}

	if config.Catalog.TimeoutSeconds < 1 || config.Catalog.TimeoutSeconds > 300 {
		return fmt.Errorf("catalog.timeout_seconds must be between 1 and 300, got: %d", config.Catalog.TimeoutSeconds)
	}

	if config.Analytics.LowQuantityThreshold < 1 {
		return fmt.Errorf("analytics.low_quantity_threshold must be positive, got: %d", config.Analytics.LowQuantityThreshold)
	}

	return nil
}
