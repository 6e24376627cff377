// Package openapi holds the OpenAPI v3.0.0 document model produced by the
// generator, together with its JSON and YAML encodings.
//
// See: https://spec.openapis.org/oas/v3.0.0
//
// # Document Model
//
// Only the objects the generator emits are modeled: Info, Contact, Server,
// Tag, PathItem, Operation, Parameter, Response, MediaType, Schema and
// Components. Every struct carries both json and yaml tags so the two
// encodings use identical key names.
//
// # Writing
//
// Writer serializes a Document fully in memory and then writes it to
// "<filename>.json" or "<filename>.yaml", or prints it as JSON:
//
//	w := openapi.Writer{Format: openapi.FormatYAML, Output: openapi.OutputFile, Filename: "openapi"}
//	path, err := w.Write(doc)
//
// # Serving the Document
//
// Handle registers read-only endpoints for a built Document on a
// http.ServeMux:
//
//	mux := http.NewServeMux()
//	if err := openapi.Handle(mux, "/api", doc, nil); err != nil {
//	    return err
//	}
//	// /api/openapi.json, /api/openapi.yaml, /api/docs
package openapi
