package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration of the generator: document metadata,
// output settings and the docs server.
type Config struct {
	Info   InfoConfig   `toml:"info"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
}

// Load reads the TOML file at path (when path is not empty), applies
// defaults and environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	c.Info.Merge(&overlay.Info)
	c.Output.Merge(&overlay.Output)
	c.Server.Merge(&overlay.Server)
}

// Validate checks every sub-config. Call it again after merging an overlay
// into a loaded config.
func (c *Config) Validate() error {
	if err := c.Output.validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func (c *Config) finalize() error {
	c.Info.Finalize()
	c.Output.Finalize()
	c.Server.Finalize()
	return c.Validate()
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
