// Package config holds the options of the parser and the command line
// driver, optionally loaded from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxArgs is the default limit on call arguments
const DefaultMaxArgs = 6

// Color modes for diagnostics
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config configures a parse session
type Config struct {
	// MaxArgs is the maximum number of arguments in a function call
	MaxArgs int `yaml:"max_args"`
	// StopOnError aborts the parse at the first error instead of skipping
	// to the next statement boundary
	StopOnError bool `yaml:"stop_on_error"`
	// Color selects highlighting of diagnostics: auto, always or never
	Color string `yaml:"color"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		MaxArgs: DefaultMaxArgs,
		Color:   ColorAuto,
	}
}

// Load reads a YAML configuration file. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration data over the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the option values
func (c *Config) Validate() error {
	if c.MaxArgs < 0 {
		return fmt.Errorf("invalid config: max_args must not be negative, got %d", c.MaxArgs)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid config: color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
