package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/oasgen/config"
	"github.com/vitalvas/oasgen/internal/server"
	"github.com/vitalvas/oasgen/openapi"
)

var serveRunner = runServe

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the OpenAPI document for a manifest over HTTP",
		Long: "Compile a manifest once and serve the result as <filename>.json and <filename>.yaml " +
			"together with an interactive docs page at /docs.",
		Example: strings.TrimSpace(`  oasgen serve --manifest routes.yaml
  oasgen serve --manifest routes.yaml --addr 127.0.0.1:9000 --ui redoc`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return newUsageError(fmt.Sprintf("serve: unexpected arguments %v\n\n%s", args, cmd.UsageString()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveServeOptions(cmd)
			if err != nil {
				return err
			}
			return serveRunner(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringP("manifest", "m", "", "Route and controller manifest (YAML, TOML or JSON)")
	flags.String("addr", "", "Listen address; defaults to :8080")
	flags.String("base-path", "", "Path prefix of the served endpoints")
	flags.String("ui", "", "Docs UI (swagger|rapidoc|redoc); defaults to swagger")
	flags.String("filename", "", "Base name of the served documents; defaults to openapi")
	flags.String("params-in", "", "Location of route parameters (query|path); defaults to query")
	flags.Bool("strict", false, "Fail on routes whose handler is not declared")

	return cmd
}

func resolveServeOptions(cmd *cobra.Command) (*Options, error) {
	flags := cmd.Flags()
	overlay := &config.Config{}

	for name, dst := range map[string]*string{
		"addr":      &overlay.Server.Addr,
		"base-path": &overlay.Server.BasePath,
		"ui":        &overlay.Server.UI,
		"filename":  &overlay.Output.Filename,
		"params-in": &overlay.Output.ParamsIn,
	} {
		if err := stringFlag(flags, name, dst); err != nil {
			return nil, err
		}
	}

	strict, err := flags.GetBool("strict")
	if err != nil {
		return nil, err
	}
	overlay.Output.Strict = strict

	return resolveOptions(cmd, overlay)
}

// newDocsHandler compiles the manifest and mounts the document endpoints.
func newDocsHandler(opts *Options) (http.Handler, error) {
	doc, err := buildDocument(opts)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	mux := http.NewServeMux()
	if err := openapi.Handle(mux, cfg.Server.BasePath, doc, &openapi.HandleConfig{
		UI:       openapi.ParseDocsUI(cfg.Server.UI),
		Filename: cfg.Output.Filename,
	}); err != nil {
		return nil, err
	}
	return mux, nil
}

func runServe(ctx context.Context, opts *Options) error {
	handler, err := newDocsHandler(opts)
	if err != nil {
		return err
	}

	srv := server.New(opts.Config.Server.Addr, handler, opts.Config.Server.ShutdownTimeoutDuration(), opts.Logger)
	return srv.Run(ctx)
}
