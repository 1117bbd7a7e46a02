package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Styles recognized by the "style" option.
const (
	StyleColor = "color"
	StylePlain = "plain"
)

// Config holds rendering defaults for the CLI and exporters.
type Config struct {
	Style      string   `yaml:"style,omitempty"`      // color or plain
	Durations  *bool    `yaml:"durations,omitempty"`  // include the duration column
	Reporters  []string `yaml:"reporters,omitempty"`  // text, tap, json, xml
	OutputFile string   `yaml:"outputFile,omitempty"` // default: stdout
	Bail       *bool    `yaml:"bail,omitempty"`
	Verbose    *bool    `yaml:"verbose,omitempty"`
}

// Filenames lists recognized config file names, in search order.
var Filenames = []string{
	".attest.yml",
	".attest.yaml",
	"attest.yml",
	"attest.yaml",
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Style:     StyleColor,
		Reporters: []string{"text"},
	}
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetDurations returns the durations setting, defaulting to false.
func (c *Config) GetDurations() bool { return getBool(c.Durations, false) }

// GetBail returns the bail setting, defaulting to false.
func (c *Config) GetBail() bool { return getBool(c.Bail, false) }

// GetVerbose returns the verbose setting, defaulting to false.
func (c *Config) GetVerbose() bool { return getBool(c.Verbose, false) }

// Load reads configuration from a specific file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Style != StyleColor && cfg.Style != StylePlain {
		return nil, fmt.Errorf("parsing %s: unknown style %q", path, cfg.Style)
	}
	return cfg, nil
}

// Find searches dir for a recognized config file and loads the first match,
// falling back to defaults when none exists.
func Find(dir string) (*Config, error) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// Merge overlays other on top of c, with other taking precedence for every
// field it sets, and returns the result.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c
	if other.Style != "" {
		result.Style = other.Style
	}
	if other.Durations != nil {
		result.Durations = other.Durations
	}
	if len(other.Reporters) > 0 {
		result.Reporters = other.Reporters
	}
	if other.OutputFile != "" {
		result.OutputFile = other.OutputFile
	}
	if other.Bail != nil {
		result.Bail = other.Bail
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	return &result
}
