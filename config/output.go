package config

import (
	"os"

	"github.com/vitalvas/oasgen/generator"
	"github.com/vitalvas/oasgen/openapi"
)

const (
	EnvOutputFormat   = "OPENAPI_FORMAT"
	EnvOutputMode     = "OPENAPI_OUTPUT"
	EnvOutputFilename = "OPENAPI_FILENAME"
	EnvOutputDir      = "OPENAPI_DIR"
	EnvOutputParamsIn = "OPENAPI_PARAMS_IN"
)

// OutputConfig controls how the generated document is encoded and where it
// goes.
type OutputConfig struct {
	Format   string `toml:"format"`
	Output   string `toml:"output"`
	Filename string `toml:"filename"`
	Dir      string `toml:"dir"`
	ParamsIn string `toml:"params_in"`
	Strict   bool   `toml:"strict"`
}

// Finalize applies defaults and environment variable overrides.
func (c *OutputConfig) Finalize() {
	c.loadDefaults()
	c.loadEnv()
}

// Merge overwrites non-zero fields from overlay. Strict can only be turned
// on by an overlay.
func (c *OutputConfig) Merge(overlay *OutputConfig) {
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
	if overlay.Filename != "" {
		c.Filename = overlay.Filename
	}
	if overlay.Dir != "" {
		c.Dir = overlay.Dir
	}
	if overlay.ParamsIn != "" {
		c.ParamsIn = overlay.ParamsIn
	}
	if overlay.Strict {
		c.Strict = true
	}
}

// FormatValue returns Format parsed. Only meaningful after validation.
func (c *OutputConfig) FormatValue() openapi.Format {
	f, _ := openapi.ParseFormat(c.Format)
	return f
}

// OutputValue returns Output parsed. Only meaningful after validation.
func (c *OutputConfig) OutputValue() openapi.Output {
	o, _ := openapi.ParseOutput(c.Output)
	return o
}

// ParamsInValue returns ParamsIn parsed. Only meaningful after validation.
func (c *OutputConfig) ParamsInValue() generator.ParameterLocation {
	in, _ := generator.ParseParameterLocation(c.ParamsIn)
	return in
}

func (c *OutputConfig) loadDefaults() {
	if c.Format == "" {
		c.Format = string(openapi.FormatJSON)
	}
	if c.Output == "" {
		c.Output = string(openapi.OutputFile)
	}
	if c.Filename == "" {
		c.Filename = "openapi"
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.ParamsIn == "" {
		c.ParamsIn = string(generator.ParamsInQuery)
	}
}

func (c *OutputConfig) loadEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvOutputMode); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvOutputFilename); v != "" {
		c.Filename = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Dir = v
	}
	if v := os.Getenv(EnvOutputParamsIn); v != "" {
		c.ParamsIn = v
	}
}

func (c *OutputConfig) validate() error {
	if _, err := openapi.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := openapi.ParseOutput(c.Output); err != nil {
		return err
	}
	if _, err := generator.ParseParameterLocation(c.ParamsIn); err != nil {
		return err
	}
	return nil
}
