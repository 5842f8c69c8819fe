// Package config loads CLI configuration for multidiff from a YAML file,
// falling back to defaults when none is present.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI's tunables.
type Config struct {
	// DefaultAlgorithm names the generator Create uses when none is given
	// on the command line ("megatron", "zoom", "flash", "starscream",
	// "optimus").
	DefaultAlgorithm string `yaml:"default_algorithm"`

	// LocatorThreshold is the context locator's minimum confidence score
	// (spec §9, Open Question 2).
	LocatorThreshold float64 `yaml:"locator_threshold"`

	Color ColorConfig `yaml:"color"`

	Logging LoggingConfig `yaml:"logging"`
}

// ColorConfig toggles the display package's terminal rendering.
type ColorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig configures the CLI's zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns multidiff's default configuration.
func Default() *Config {
	return &Config{
		DefaultAlgorithm: "megatron",
		LocatorThreshold: 1.5,
		Color:            ColorConfig{Enabled: true},
		Logging:          LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from path, returning defaults unchanged if the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.Logging.Level, err)
	}
	zcfg.Level = level
	return zcfg.Build()
}
