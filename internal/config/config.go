// SPDX-License-Identifier: MIT

// Package config loads gridpatrol settings from YAML or JSON files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpatrol/internal/logging"
)

// Sentinel errors for configuration.
var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrInvalidConfig is returned for undecodable or out-of-range settings.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrMissingEnvVar is returned when a ${VAR:?msg} reference is unset.
	ErrMissingEnvVar = errors.New("config: missing environment variable")
)

// Config is the complete settings tree.
type Config struct {
	Search  SearchConfig   `yaml:"search" json:"search"`
	Log     logging.Config `yaml:"log" json:"log"`
	Metrics MetricsConfig  `yaml:"metrics" json:"metrics"`
}

// SearchConfig tunes the obstacle search.
type SearchConfig struct {
	// Workers is the worker count; 0 means hardware parallelism.
	Workers int `yaml:"workers" json:"workers"`
}

// MetricsConfig controls OpenTelemetry instruments.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Meter   string `yaml:"meter" json:"meter"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	log := logging.DefaultConfig()
	return Config{
		Log: logging.Config{Level: log.Level, Format: log.Format},
		Metrics: MetricsConfig{
			Meter: "github.com/katalvlaran/gridpatrol",
		},
	}
}

// Validate reports every out-of-range setting, joined under ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if c.Search.Workers < 0 {
		errs = append(errs, fmt.Errorf("search.workers must be >= 0, got %d", c.Search.Workers))
	}
	if !slices.Contains(logging.Levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of %v", c.Log.Level, logging.Levels))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format %q is not console or json", c.Log.Format))
	}
	if c.Metrics.Enabled && c.Metrics.Meter == "" {
		errs = append(errs, errors.New("metrics.meter is required when metrics are enabled"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
