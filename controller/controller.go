package controller

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vitalvas/oasgen/routes"
)

var (
	// ErrDuplicateController is returned when a catalog already holds a
	// controller with the same name.
	ErrDuplicateController = errors.New("controller: duplicate controller")

	// ErrInvalidController is returned for a controller without a name.
	ErrInvalidController = errors.New("controller: invalid controller")
)

// Param is one declared handler parameter. Type is a semantic type tag such
// as "string", "integer" or "array"; it may be empty when the parameter is
// unannotated.
type Param struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Type string `yaml:"type" toml:"type" json:"type"`
}

// Method describes a controller method that can serve a route.
type Method struct {
	Name   string  `yaml:"name" toml:"name" json:"name"`
	Doc    string  `yaml:"doc" toml:"doc" json:"doc"`
	Params []Param `yaml:"params" toml:"params" json:"params"`

	// Returns is the declared return annotation. Empty means the method
	// declares no return type.
	Returns string `yaml:"returns" toml:"returns" json:"returns"`
}

// HasReturn reports whether the method declares a return type.
func (m Method) HasReturn() bool {
	return m.Returns != ""
}

// Controller describes the type that owns one or more handler methods.
type Controller struct {
	// Name is the owning type name, e.g. "SampleController".
	Name string `yaml:"name" toml:"name" json:"name"`

	// Module is the location of the type, e.g. "app.http.controllers".
	Module string `yaml:"module" toml:"module" json:"module"`

	Doc string `yaml:"doc" toml:"doc" json:"doc"`

	// Model is an explicit model binding. Empty means the model is
	// derived from Name.
	Model string `yaml:"model" toml:"model" json:"model"`

	// Tags is an explicit tag list. Empty means a single tag is derived
	// from Name.
	Tags []string `yaml:"tags" toml:"tags" json:"tags"`

	Methods []Method `yaml:"methods" toml:"methods" json:"methods"`
}

// Method looks up a method by name.
func (c Controller) Method(name string) (Method, bool) {
	i := slices.IndexFunc(c.Methods, func(m Method) bool { return m.Name == name })
	if i < 0 {
		return Method{}, false
	}
	return c.Methods[i], true
}

// Catalog indexes controllers by name.
type Catalog struct {
	byName map[string]Controller
	order  []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]Controller)}
}

// Add registers a controller.
func (c *Catalog) Add(ctrl Controller) error {
	if ctrl.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidController)
	}
	if _, ok := c.byName[ctrl.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateController, ctrl.Name)
	}
	c.byName[ctrl.Name] = ctrl
	c.order = append(c.order, ctrl.Name)
	return nil
}

// MustAdd registers controllers and panics on error. Intended for statically
// declared catalogs.
func (c *Catalog) MustAdd(ctrls ...Controller) *Catalog {
	for _, ctrl := range ctrls {
		if err := c.Add(ctrl); err != nil {
			panic(err)
		}
	}
	return c
}

// Lookup returns the controller with the given name.
func (c *Catalog) Lookup(name string) (Controller, bool) {
	ctrl, ok := c.byName[name]
	return ctrl, ok
}

// Resolve returns the controller and method a handler reference points to.
// ok is false when either is unknown.
func (c *Catalog) Resolve(ref routes.HandlerRef) (Controller, Method, bool) {
	ctrl, ok := c.byName[ref.Controller]
	if !ok {
		return Controller{}, Method{}, false
	}
	m, ok := ctrl.Method(ref.Method)
	if !ok {
		return Controller{}, Method{}, false
	}
	return ctrl, m, true
}

// Names returns controller names in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// Len returns the number of controllers.
func (c *Catalog) Len() int {
	return len(c.order)
}
