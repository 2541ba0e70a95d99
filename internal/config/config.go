// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DataFilePath is the JSON document served by GET /api/data.
	DataFilePath string `koanf:"data_file_path"`

	// APITitle and APIVersion describe the API in /api/info and the docs.
	APITitle   string `koanf:"api_title"`
	APIVersion string `koanf:"api_version"`

	// StaticDir holds the pre-built front-end bundle mounted at "/".
	// Nothing is mounted when the directory does not exist.
	StaticDir string `koanf:"static_dir"`

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string `koanf:"cors_origins"`

	// Metrics* tune the Prometheus manager behind /metrics.
	MetricsEnabled         bool              `koanf:"metrics_enabled"`
	MetricsNamespace       string            `koanf:"metrics_namespace"`
	MetricsSubsystem       string            `koanf:"metrics_subsystem"`
	MetricsPrefix          string            `koanf:"metrics_prefix"`
	MetricsRefreshInterval time.Duration     `koanf:"metrics_refresh_interval"`
	MetricsBuckets         []float64         `koanf:"metrics_buckets"`
	MetricsLabels          map[string]string `koanf:"metrics_labels"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8000",
		DataFilePath: "data.json",
		APITitle:     "Data Visualization API",
		APIVersion:   "1.0.0",
		StaticDir:    "../frontend/dist",
		CORSOrigins:  []string{"*"},

		MetricsEnabled:         true,
		MetricsNamespace:       "vizboard",
		MetricsSubsystem:       "api",
		MetricsRefreshInterval: 10 * time.Second,
	}
}
