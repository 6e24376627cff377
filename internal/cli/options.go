package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vitalvas/oasgen/config"
	"github.com/vitalvas/oasgen/generator"
	"github.com/vitalvas/oasgen/manifest"
	"github.com/vitalvas/oasgen/openapi"
)

// Options captures everything a command needs after merging defaults, the
// config file, environment variables and flags.
type Options struct {
	Manifest   string
	ConfigPath string
	Verbose    bool
	Config     *config.Config

	Stdout io.Writer
	Logger *slog.Logger
}

func resolveOptions(cmd *cobra.Command, overlay *config.Config) (*Options, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	manifestPath, err := flags.GetString("manifest")
	if err != nil {
		return nil, err
	}

	manifestPath = strings.TrimSpace(manifestPath)
	if manifestPath == "" {
		return nil, newUsageError(fmt.Sprintf("%s: --manifest is required", cmd.Name()))
	}

	cfg, err := config.Load(strings.TrimSpace(configPath))
	if err != nil {
		return nil, err
	}
	cfg.Merge(overlay)
	if err := cfg.Validate(); err != nil {
		return nil, newUsageError(fmt.Sprintf("%s: %v", cmd.Name(), err))
	}

	return &Options{
		Manifest:   manifestPath,
		ConfigPath: configPath,
		Verbose:    verbose,
		Config:     cfg,
		Stdout:     cmd.OutOrStdout(),
		Logger:     newLogger(cmd.ErrOrStderr(), verbose),
	}, nil
}

func stringFlag(flags *pflag.FlagSet, name string, dst *string) error {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return err
	}
	*dst = strings.TrimSpace(value)
	return nil
}

// buildDocument loads the manifest and compiles it with the resolved
// settings.
func buildDocument(opts *Options) (*openapi.Document, error) {
	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return nil, err
	}

	catalog, err := m.Catalog()
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", opts.Manifest, err)
	}

	descriptors, err := m.Descriptors()
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", opts.Manifest, err)
	}

	cfg := opts.Config
	gen := generator.New(catalog,
		generator.WithInfo(cfg.Info.Info()),
		generator.WithServers(cfg.Info.Servers()...),
		generator.WithLogger(opts.Logger),
		generator.WithStrict(cfg.Output.Strict),
		generator.WithParameterLocation(cfg.Output.ParamsInValue()),
	)

	return gen.Generate(descriptors)
}
