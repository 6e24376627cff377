package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/oasgen/config"
	"github.com/vitalvas/oasgen/openapi"
)

var generateRunner = runGenerate

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [filename]",
		Short: "Write the OpenAPI document for a manifest",
		Long: "Compile the routes and controllers of a manifest into an OpenAPI 3.0.0 document. " +
			"The document is written to <filename>.<format>, or printed as JSON with --output print.",
		Example: strings.TrimSpace(`  oasgen generate --manifest routes.yaml
  oasgen generate api --manifest routes.toml --format yaml
  oasgen --config oasgen.toml generate --manifest routes.yaml --output print`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return newUsageError(fmt.Sprintf("generate: accepts at most one filename, got %d\n\n%s", len(args), cmd.UsageString()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGenerateOptions(cmd, args)
			if err != nil {
				return err
			}
			return generateRunner(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringP("manifest", "m", "", "Route and controller manifest (YAML, TOML or JSON)")
	flags.String("format", "", "Document format (json|yaml); defaults to json")
	flags.String("output", "", "Output mode (file|print); defaults to file")
	flags.String("filename", "", "Output file name without extension; defaults to openapi")
	flags.String("dir", "", "Output directory; defaults to the working directory")
	flags.String("params-in", "", "Location of route parameters (query|path); defaults to query")
	flags.Bool("strict", false, "Fail on routes whose handler is not declared")

	return cmd
}

func resolveGenerateOptions(cmd *cobra.Command, args []string) (*Options, error) {
	flags := cmd.Flags()
	overlay := &config.Config{}

	if len(args) == 1 {
		if flags.Changed("filename") {
			return nil, newUsageError("generate: filename given both as argument and --filename")
		}
		overlay.Output.Filename = strings.TrimSpace(args[0])
	}

	for name, dst := range map[string]*string{
		"format":    &overlay.Output.Format,
		"output":    &overlay.Output.Output,
		"filename":  &overlay.Output.Filename,
		"dir":       &overlay.Output.Dir,
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

func runGenerate(_ context.Context, opts *Options) error {
	doc, err := buildDocument(opts)
	if err != nil {
		return err
	}

	out := opts.Config.Output
	w := openapi.Writer{
		Format:   out.FormatValue(),
		Output:   out.OutputValue(),
		Filename: out.Filename,
		Dir:      out.Dir,
		Stdout:   opts.Stdout,
	}

	path, err := w.Write(doc)
	if err != nil {
		return err
	}
	if path != "" {
		opts.Logger.Info("document written", "path", path, "format", out.Format)
	}
	return nil
}
