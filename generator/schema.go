package generator

import (
	"strings"

	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/openapi"
)

const genericType = "object"

// primitiveTypes maps accepted type tags to OpenAPI types. Tuples are
// emitted as arrays.
var primitiveTypes = map[string]string{
	"string":  "string",
	"str":     "string",
	"integer": "integer",
	"int":     "integer",
	"number":  "number",
	"float":   "number",
	"array":   "array",
	"list":    "array",
	"tuple":   "array",
	"object":  "object",
	"dict":    "object",
}

// ClassifyType maps a declared parameter type to an OpenAPI type. Unknown
// or empty types degrade to "object".
func ClassifyType(declared string) string {
	if t, ok := primitiveTypes[strings.ToLower(strings.TrimSpace(declared))]; ok {
		return t
	}
	return genericType
}

// propertySchema builds the schema of one classified property. Arrays carry
// an unconstrained items schema, which OpenAPI 3.0 requires.
func propertySchema(declared string) *openapi.Schema {
	t := ClassifyType(declared)
	if t == "array" {
		return &openapi.Schema{Type: t, Items: &openapi.Schema{}}
	}
	return &openapi.Schema{Type: t}
}

// DeriveSchema builds the component schema for model from a handler's
// parameter annotations. Handlers without a return annotation produce no
// schema.
func DeriveSchema(m controller.Method, model Model) (*openapi.Schema, bool) {
	if !m.HasReturn() {
		return nil, false
	}

	schema := &openapi.Schema{
		Title: string(model),
		Type:  genericType,
	}

	for _, p := range m.Params {
		if p.Name == "" {
			continue
		}
		if schema.Properties == nil {
			schema.Properties = make(map[string]*openapi.Schema, len(m.Params))
		}
		schema.Properties[p.Name] = propertySchema(p.Type)
	}

	return schema, true
}

// mergeSchema adds properties of src missing from dst. Properties already
// present in dst keep their type.
func mergeSchema(dst, src *openapi.Schema) {
	for name, prop := range src.Properties {
		if _, ok := dst.Properties[name]; ok {
			continue
		}
		if dst.Properties == nil {
			dst.Properties = make(map[string]*openapi.Schema, len(src.Properties))
		}
		dst.Properties[name] = prop
	}
}
