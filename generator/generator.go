package generator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/openapi"
	"github.com/vitalvas/oasgen/routes"
)

// Option configures a Generator.
type Option func(*Generator)

// WithInfo sets the document info object.
func WithInfo(info openapi.Info) Option {
	return func(g *Generator) {
		g.info = info
	}
}

// WithServers sets the document servers.
func WithServers(servers ...openapi.Server) Option {
	return func(g *Generator) {
		g.servers = servers
	}
}

// WithLogger sets the logger used to report skipped routes and results.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithStrict turns routes with unresolved handlers into an error instead of
// skipping them.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// WithParameterLocation sets the "in" value of emitted route parameters.
func WithParameterLocation(in ParameterLocation) Option {
	return func(g *Generator) {
		g.paramsIn = in
	}
}

// Generator compiles route descriptors into an OpenAPI document. A Generator
// holds only configuration; every Generate call builds its document from
// scratch, so one Generator can be reused.
type Generator struct {
	catalog  *controller.Catalog
	info     openapi.Info
	servers  []openapi.Server
	logger   *slog.Logger
	strict   bool
	paramsIn ParameterLocation
}

// New creates a Generator resolving handlers against catalog.
func New(catalog *controller.Catalog, opts ...Option) *Generator {
	if catalog == nil {
		catalog = controller.NewCatalog()
	}
	g := &Generator{
		catalog:  catalog,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		paramsIn: ParamsInQuery,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// build is the accumulator of a single Generate call.
type build struct {
	paths   map[string]*openapi.PathItem
	tags    *TagSet
	schemas map[string]*openapi.Schema
	models  map[Model]bool
	skipped int
}

func newBuild() *build {
	return &build{
		paths:   make(map[string]*openapi.PathItem),
		tags:    NewTagSet(),
		schemas: make(map[string]*openapi.Schema),
		models:  make(map[Model]bool),
	}
}

// Generate walks descriptors in order and assembles the document. Routes at
// "/" and routes whose handler is not in the catalog are skipped; in strict
// mode the latter fail the run with ErrUnresolvedHandler. No document is
// returned on error.
func (g *Generator) Generate(descriptors []routes.Descriptor) (*openapi.Document, error) {
	b := newBuild()

	for _, d := range descriptors {
		if err := g.process(b, d); err != nil {
			return nil, err
		}
	}

	for model := range b.models {
		if _, ok := b.schemas[string(model)]; !ok {
			g.logger.Warn("model has no component schema", "model", model)
		}
	}

	doc := &openapi.Document{
		OpenAPI:    openapi.Version,
		Info:       g.info,
		Servers:    g.servers,
		Tags:       b.tags.Tags(),
		Paths:      b.paths,
		Components: &openapi.Components{Schemas: b.schemas},
	}

	g.logger.Info("document generated",
		"routes", len(descriptors),
		"skipped", b.skipped,
		"paths", len(doc.Paths),
		"tags", len(doc.Tags),
		"schemas", len(b.schemas),
	)

	return doc, nil
}

func (g *Generator) process(b *build, d routes.Descriptor) error {
	path := RecompilePath(d.Path())

	ctrl, method, eligibility := Check(d, path, g.catalog)
	if eligibility != Eligible {
		if eligibility == SkipUnresolved && g.strict {
			return fmt.Errorf("%w: %s %s -> %s", ErrUnresolvedHandler, d.Method(), d.Path(), d.Handler())
		}
		b.skipped++
		g.logger.Debug("route skipped",
			"method", d.Method(),
			"path", d.Path(),
			"name", d.Name(),
			"handler", d.Handler().String(),
			"reason", eligibility.String(),
		)
		return nil
	}

	if lookupOperation(b.paths, path, d.Method()) != nil {
		b.skipped++
		g.logger.Warn("duplicate operation skipped",
			"method", d.Method(),
			"path", path,
			"handler", d.Handler().String(),
		)
		return nil
	}

	model := ResolveModel(ctrl)
	codes := CodesFor(d.Method(), d.HasParams())

	ep := Endpoint{
		Route:      d,
		Controller: ctrl,
		Method:     method,
		Path:       path,
		Model:      model,
		Responses:  BuildResponses(model, codes),
		Tags:       b.tags.Accumulate(ctrl),
	}
	RecordPath(b.paths, ep, g.paramsIn)
	b.models[model] = true

	if schema, ok := DeriveSchema(method, model); ok {
		if existing, found := b.schemas[string(model)]; found {
			mergeSchema(existing, schema)
		} else {
			b.schemas[string(model)] = schema
		}
	}

	return nil
}
