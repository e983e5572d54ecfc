// SPDX-License-Identifier: MIT

// Package config loads the vecgrid CLI configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/katalvlaran/vecgrid/grid"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MaxElements bounds each dimension and the cell count of a generated grid.
const MaxElements = 1 << 20

// ValidFormats lists every accepted Format value.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// Config holds the CLI defaults. Command-line flags override file values.
type Config struct {
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Seed    int64  `yaml:"seed"`
	Order   string `yaml:"order"`  // row-major | column-major
	Format  string `yaml:"format"` // text | json | yaml
}

// DefaultConfig returns the built-in defaults: a 3×2 board, seed 1,
// row-major order, text output.
func DefaultConfig() *Config {
	return &Config{
		Rows:    3,
		Columns: 2,
		Seed:    1,
		Order:   grid.RowMajor.String(),
		Format:  FormatText,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets VECGRID_SEED and VECGRID_FORMAT win over the file.
// An unparsable seed is ignored.
func (c *Config) applyEnvOverrides() {
	if s := os.Getenv("VECGRID_SEED"); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if f := os.Getenv("VECGRID_FORMAT"); f != "" {
		c.Format = f
	}
}

// GridOrder parses Order, falling back to row-major when invalid.
func (c *Config) GridOrder() grid.Order {
	o, err := grid.ParseOrder(c.Order)
	if err != nil {
		return grid.RowMajor
	}

	return o
}

// Validate checks dimensions, order and format.
func (c *Config) Validate() error {
	if c.Rows < 0 || c.Columns < 0 {
		return fmt.Errorf("invalid dimensions %d×%d: must be non-negative", c.Rows, c.Columns)
	}
	if c.Rows > MaxElements || c.Columns > MaxElements || c.Rows*c.Columns > MaxElements {
		return fmt.Errorf("invalid dimensions %d×%d: at most %d cells", c.Rows, c.Columns, MaxElements)
	}
	if _, err := grid.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", c.Format, ValidFormats)
	}

	return nil
}
