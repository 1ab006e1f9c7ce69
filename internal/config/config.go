// Package config loads the carrito configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds all carrito configuration.
type Config struct {
	// Variant is "static" or "remote".
	Variant string `yaml:"variant"`

	Catalog CatalogConfig `yaml:"catalog"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig configures the remote catalog.
type CatalogConfig struct {
	// Location is an http(s) URL, a file:// URL or a filesystem path.
	Location string `yaml:"location"`
}

// StorageConfig configures the cart snapshot database.
type StorageConfig struct {
	Path string `yaml:"path"`
	Key  string `yaml:"key"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means stderr
}

var (
	validVariants = []string{"static", "remote"}
	validLevels   = []string{"debug", "info", "warn", "error"}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Variant: "remote",
		Catalog: CatalogConfig{Location: "productos.json"},
		Storage: StorageConfig{Path: "carrito.db", Key: "carrito"},
		Logging: LoggingConfig{Level: "info", File: "carrito.log"},
	}
}

// Load reads a YAML config file on top of Default. An empty path returns
// the defaults. Unknown fields are rejected so typos surface early.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !slices.Contains(validVariants, c.Variant) {
		return fmt.Errorf("variant %q: must be one of %v", c.Variant, validVariants)
	}
	if c.Variant == "remote" && c.Catalog.Location == "" {
		return errors.New("catalog.location is required for the remote variant")
	}
	if c.Storage.Path == "" {
		return errors.New("storage.path is required")
	}
	if c.Storage.Key == "" {
		return errors.New("storage.key is required")
	}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q: must be one of %v", c.Logging.Level, validLevels)
	}
	return nil
}
