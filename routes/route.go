package routes

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

var (
	// ErrInvalidHandler is returned when a handler string is not of the form
	// "Controller@method".
	ErrInvalidHandler = errors.New("routes: invalid handler")

	// ErrInvalidMethod is returned for an unknown HTTP method.
	ErrInvalidMethod = errors.New("routes: invalid method")

	// ErrInvalidPath is returned when a path template does not start with "/".
	ErrInvalidPath = errors.New("routes: invalid path")
)

// Method is an HTTP request method.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodDelete  Method = http.MethodDelete
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
	MethodTrace   Method = http.MethodTrace
)

var knownMethods = []Method{
	MethodGet, MethodPost, MethodPut, MethodPatch,
	MethodDelete, MethodHead, MethodOptions, MethodTrace,
}

// ParseMethod validates a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if slices.Contains(knownMethods, m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// Lower returns the method in lowercase, as used for OpenAPI path item keys.
func (m Method) Lower() string {
	return strings.ToLower(string(m))
}

// HandlerRef identifies the controller type and method that serve a route.
type HandlerRef struct {
	Controller string
	Method     string
}

// ParseHandler parses a "Controller@method" handler string.
func ParseHandler(s string) (HandlerRef, error) {
	controller, method, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok || controller == "" || method == "" || strings.Contains(method, "@") {
		return HandlerRef{}, fmt.Errorf("%w: %q", ErrInvalidHandler, s)
	}
	return HandlerRef{Controller: controller, Method: method}, nil
}

// String returns the handler in "Controller.method" form.
func (h HandlerRef) String() string {
	return h.Controller + "." + h.Method
}

// Descriptor is an immutable description of one registered route.
type Descriptor struct {
	path    string
	method  Method
	handler HandlerRef
	params  []string
	name    string
}

// NewDescriptor builds a Descriptor. When params is nil the path parameter
// names are extracted from the template.
func NewDescriptor(method Method, path string, handler HandlerRef, name string, params []string) Descriptor {
	if params == nil {
		params = Params(path)
	}
	return Descriptor{
		path:    path,
		method:  method,
		handler: handler,
		params:  slices.Clone(params),
		name:    name,
	}
}

// Path returns the raw path template.
func (d Descriptor) Path() string { return d.path }

// Method returns the HTTP method.
func (d Descriptor) Method() Method { return d.method }

// Handler returns the handler reference.
func (d Descriptor) Handler() HandlerRef { return d.handler }

// Name returns the human-readable route name, which may be empty.
func (d Descriptor) Name() string { return d.name }

// Params returns a copy of the declared path parameter names.
func (d Descriptor) Params() []string { return slices.Clone(d.params) }

// HasParams reports whether the route declares any path parameters.
func (d Descriptor) HasParams() bool { return len(d.params) > 0 }

// Params extracts parameter names from a path template in registration
// order. Recognized segment forms are "@name", "@name:type", "@name?",
// ":name", "{name}" and "{name:pattern}".
func Params(tpl string) []string {
	var names []string
	for _, segment := range strings.Split(tpl, "/") {
		if name, ok := ParamName(segment); ok {
			names = append(names, name)
		}
	}
	return names
}

// ParamName returns the parameter name of a single path segment and whether
// the segment is a parameter marker at all.
func ParamName(segment string) (string, bool) {
	var name string
	switch {
	case strings.HasPrefix(segment, "@"):
		name = segment[1:]
	case strings.HasPrefix(segment, ":"):
		name = segment[1:]
	case strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}"):
		name = segment[1 : len(segment)-1]
	default:
		return "", false
	}

	name, _, _ = strings.Cut(name, ":")
	name = strings.TrimSuffix(name, "?")
	if name == "" {
		return "", false
	}
	return name, true
}
