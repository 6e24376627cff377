package openapi

// Version is the OpenAPI specification version emitted in every Document.
const Version = "3.0.0"

// Document represents the root of an OpenAPI v3.0.0 document.
//
// See: https://spec.openapis.org/oas/v3.0.0#openapi-object
type Document struct {
	OpenAPI    string               `json:"openapi" yaml:"openapi"`
	Info       Info                 `json:"info" yaml:"info"`
	Servers    []Server             `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag                `json:"tags" yaml:"tags"`
	Paths      map[string]*PathItem `json:"paths" yaml:"paths"`
	Components *Components          `json:"components,omitempty" yaml:"components,omitempty"`
}

// Info provides metadata about the API.
//
// See: https://spec.openapis.org/oas/v3.0.0#info-object
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Version        string   `json:"version" yaml:"version"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Contact represents contact information for the API.
//
// See: https://spec.openapis.org/oas/v3.0.0#contact-object
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Server represents a server.
//
// See: https://spec.openapis.org/oas/v3.0.0#server-object
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag adds metadata to a single tag used by Operation Objects.
//
// See: https://spec.openapis.org/oas/v3.0.0#tag-object
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem describes the operations available on a single path.
// Each HTTP method is a separate field, so the encoded form is a map of
// lowercase method name to Operation.
//
// See: https://spec.openapis.org/oas/v3.0.0#path-item-object
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Trace   *Operation `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// Operations returns the non-nil operations of the path item in a fixed
// method order.
func (p *PathItem) Operations() []*Operation {
	var ops []*Operation
	for _, op := range []*Operation{
		p.Get, p.Put, p.Post, p.Delete,
		p.Options, p.Head, p.Patch, p.Trace,
	} {
		if op != nil {
			ops = append(ops, op)
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
//
// See: https://spec.openapis.org/oas/v3.0.0#operation-object
type Operation struct {
	OperationID string               `json:"operationId" yaml:"operationId"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags        []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
	Responses   map[string]*Response `json:"responses" yaml:"responses"`
	Parameters  []*Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Parameter describes a single operation parameter.
// The "in" field determines the parameter location: "query", "header",
// "path", or "cookie". Path parameters must set Required.
//
// See: https://spec.openapis.org/oas/v3.0.0#parameter-object
type Parameter struct {
	Name     string  `json:"name" yaml:"name"`
	In       string  `json:"in" yaml:"in"`
	Required bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema   *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Response describes a single response from an API operation.
// Description is required by OpenAPI.
//
// See: https://spec.openapis.org/oas/v3.0.0#response-object
type Response struct {
	Description string                `json:"description" yaml:"description"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType describes a media type with a schema.
//
// See: https://spec.openapis.org/oas/v3.0.0#media-type-object
type MediaType struct {
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Schema represents the subset of the OpenAPI 3.0 Schema Object that the
// generator emits: component object schemas, their primitive properties,
// and $ref pointers into components.
//
// See: https://spec.openapis.org/oas/v3.0.0#schema-object
type Schema struct {
	Ref        string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Title      string             `json:"title,omitempty" yaml:"title,omitempty"`
	Type       string             `json:"type,omitempty" yaml:"type,omitempty"`
	Items      *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Components holds reusable OpenAPI objects.
//
// See: https://spec.openapis.org/oas/v3.0.0#components-object
type Components struct {
	Schemas map[string]*Schema `json:"schemas" yaml:"schemas"`
}

// SchemaRef returns a Schema with a $ref to the named component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// JSONContent wraps a schema in an "application/json" content map.
func JSONContent(schema *Schema) map[string]*MediaType {
	return map[string]*MediaType{
		"application/json": {Schema: schema},
	}
}
