package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvServerAddr            = "OPENAPI_ADDR"
	EnvServerBasePath        = "OPENAPI_BASE_PATH"
	EnvServerUI              = "OPENAPI_UI"
	EnvServerShutdownTimeout = "OPENAPI_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds the docs server parameters.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	BasePath        string `toml:"base_path"`
	UI              string `toml:"ui"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Finalize applies defaults and environment variable overrides.
func (c *ServerConfig) Finalize() {
	c.loadDefaults()
	c.loadEnv()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Addr != "" {
		c.Addr = overlay.Addr
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.UI != "" {
		c.UI = overlay.UI
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.UI == "" {
		c.UI = "swagger"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "10s"
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvServerBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvServerUI); v != "" {
		c.UI = v
	}
	if v := os.Getenv(EnvServerShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *ServerConfig) validate() error {
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path %q: must start with /", c.BasePath)
	}
	switch strings.ToLower(c.UI) {
	case "swagger", "rapidoc", "redoc":
	default:
		return fmt.Errorf("invalid ui %q", c.UI)
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}
