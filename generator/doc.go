// Package generator compiles route descriptors and controller metadata into
// an OpenAPI 3.0.0 document.
//
// For each route, in registration order, the generator:
//
//  1. recompiles the route template into an OpenAPI path (RecompilePath)
//  2. skips the index route and routes with unknown handlers (Check)
//  3. resolves the route's model (ResolveModel)
//  4. picks status codes (CodesFor) and builds responses (BuildResponses)
//  5. accumulates tags (TagSet.Accumulate)
//  6. records the operation under its path and method (RecordPath)
//  7. derives the model's component schema (DeriveSchema)
//
// All accumulated state belongs to a single Generate call:
//
//	gen := generator.New(catalog,
//	    generator.WithInfo(openapi.Info{Title: "API", Version: "1.0.0"}),
//	    generator.WithServers(openapi.Server{URL: "http://localhost:8000"}),
//	)
//	doc, err := gen.Generate(descriptors)
package generator
