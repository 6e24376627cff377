package routes

import (
	"fmt"
	"strings"
)

// Route is a route under construction in a Registry. Builder methods record
// the first error and Registry.Descriptors reports it.
type Route struct {
	method  Method
	path    string
	handler HandlerRef
	name    string
	params  []string
	err     error
}

// Name sets the human-readable route name, e.g. "sample.one".
func (r *Route) Name(name string) *Route {
	r.name = name
	return r
}

// Params declares the path parameter names explicitly instead of extracting
// them from the template.
func (r *Route) Params(names ...string) *Route {
	if names == nil {
		names = []string{}
	}
	r.params = names
	return r
}

// GetName returns the route name.
func (r *Route) GetName() string {
	return r.name
}

// GetError returns the error recorded while building the route, if any.
func (r *Route) GetError() error {
	return r.err
}

// Registry collects routes in registration order.
//
//	reg := routes.NewRegistry()
//	reg.Get("/", "IndexController@show").Name("index.show")
//	reg.Get("/sample/@id", "SampleController@one").Name("sample.one")
type Registry struct {
	routes []*Route
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Handle registers a route for method and path served by a
// "Controller@method" handler string.
func (reg *Registry) Handle(method Method, path, handler string) *Route {
	r := &Route{method: method, path: path}

	ref, err := ParseHandler(handler)
	switch {
	case err != nil:
		r.err = err
	case !strings.HasPrefix(path, "/"):
		r.err = fmt.Errorf("%w: %q must start with /", ErrInvalidPath, path)
	default:
		r.handler = ref
	}

	reg.routes = append(reg.routes, r)
	return r
}

// Get registers a GET route.
func (reg *Registry) Get(path, handler string) *Route {
	return reg.Handle(MethodGet, path, handler)
}

// Post registers a POST route.
func (reg *Registry) Post(path, handler string) *Route {
	return reg.Handle(MethodPost, path, handler)
}

// Put registers a PUT route.
func (reg *Registry) Put(path, handler string) *Route {
	return reg.Handle(MethodPut, path, handler)
}

// Patch registers a PATCH route.
func (reg *Registry) Patch(path, handler string) *Route {
	return reg.Handle(MethodPatch, path, handler)
}

// Delete registers a DELETE route.
func (reg *Registry) Delete(path, handler string) *Route {
	return reg.Handle(MethodDelete, path, handler)
}

// Len returns the number of registered routes.
func (reg *Registry) Len() int {
	return len(reg.routes)
}

// Descriptors snapshots every registered route in registration order.
// It fails on the first route that recorded a build error.
func (reg *Registry) Descriptors() ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(reg.routes))
	for i, r := range reg.routes {
		if r.err != nil {
			return nil, fmt.Errorf("route %d (%s %s): %w", i, r.method, r.path, r.err)
		}
		out = append(out, NewDescriptor(r.method, r.path, r.handler, r.name, r.params))
	}
	return out, nil
}
