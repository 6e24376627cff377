package generator

import (
	"fmt"
	"strings"

	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/openapi"
	"github.com/vitalvas/oasgen/routes"
)

// ParameterLocation is the "in" value emitted for route parameters.
type ParameterLocation string

const (
	// ParamsInQuery documents route parameters as query parameters. This
	// is the default.
	ParamsInQuery ParameterLocation = "query"

	// ParamsInPath documents route parameters as required path parameters.
	ParamsInPath ParameterLocation = "path"
)

// ParseParameterLocation validates a parameter location name.
func ParseParameterLocation(s string) (ParameterLocation, error) {
	switch l := ParameterLocation(s); l {
	case ParamsInQuery, ParamsInPath:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidParameterLocation, s)
}

// Endpoint carries everything computed for one eligible route.
type Endpoint struct {
	Route      routes.Descriptor
	Controller controller.Controller
	Method     controller.Method
	Path       string
	Model      Model
	Tags       []string
	Responses  map[string]*openapi.Response
}

// HandlerName returns the "Controller.method" name of the endpoint handler.
func (ep Endpoint) HandlerName() string {
	return ep.Route.Handler().String()
}

// OperationID returns "<module>.<Controller>.<method>", or the bare handler
// name when the controller has no module location.
func (ep Endpoint) OperationID() string {
	if ep.Controller.Module == "" {
		return ep.HandlerName()
	}
	return ep.Controller.Module + "." + ep.HandlerName()
}

// RecordPath writes the endpoint's operation into paths under its path and
// lowercase method, creating the path item when needed.
func RecordPath(paths map[string]*openapi.PathItem, ep Endpoint, in ParameterLocation) *openapi.Operation {
	description := strings.TrimSpace(ep.Method.Doc)
	if description == "" {
		description = strings.TrimSpace(ep.Controller.Doc)
	}

	op := &openapi.Operation{
		OperationID: ep.OperationID(),
		Description: description,
		Summary:     fmt.Sprintf("Endpoint '%s' handled by '%s'", ep.Path, ep.HandlerName()),
		Tags:        ep.Tags,
		Responses:   ep.Responses,
	}

	for _, name := range ep.Route.Params() {
		op.Parameters = append(op.Parameters, &openapi.Parameter{
			Name:     name,
			In:       string(in),
			Required: in == ParamsInPath,
			Schema:   &openapi.Schema{Type: "string"},
		})
	}

	item, ok := paths[ep.Path]
	if !ok {
		item = &openapi.PathItem{}
		paths[ep.Path] = item
	}
	assignOperation(item, ep.Route.Method(), op)

	return op
}

// assignOperation assigns an operation to the correct HTTP method field
// on the path item.
func assignOperation(item *openapi.PathItem, method routes.Method, op *openapi.Operation) {
	switch method {
	case routes.MethodGet:
		item.Get = op
	case routes.MethodPost:
		item.Post = op
	case routes.MethodPut:
		item.Put = op
	case routes.MethodDelete:
		item.Delete = op
	case routes.MethodPatch:
		item.Patch = op
	case routes.MethodHead:
		item.Head = op
	case routes.MethodOptions:
		item.Options = op
	case routes.MethodTrace:
		item.Trace = op
	}
}

// lookupOperation returns the operation recorded for path and method.
func lookupOperation(paths map[string]*openapi.PathItem, path string, method routes.Method) *openapi.Operation {
	item, ok := paths[path]
	if !ok {
		return nil
	}

	switch method {
	case routes.MethodGet:
		return item.Get
	case routes.MethodPost:
		return item.Post
	case routes.MethodPut:
		return item.Put
	case routes.MethodDelete:
		return item.Delete
	case routes.MethodPatch:
		return item.Patch
	case routes.MethodHead:
		return item.Head
	case routes.MethodOptions:
		return item.Options
	case routes.MethodTrace:
		return item.Trace
	}
	return nil
}
