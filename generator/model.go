package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vitalvas/oasgen/controller"
)

const controllerSuffix = "Controller"

// Model names the resource a route operates on. It keys the component
// schema that success responses reference.
type Model string

// ResolveModel returns the controller's explicit model binding, or derives
// one from the controller name: "SampleController" resolves to "Sample".
func ResolveModel(c controller.Controller) Model {
	if c.Model != "" {
		return Model(c.Model)
	}
	return Model(baseName(c.Name))
}

// baseName strips the "Controller" suffix from a type name and capitalizes
// the first letter of what remains. A name that is only the suffix is kept
// as is.
func baseName(typeName string) string {
	name := strings.TrimSuffix(typeName, controllerSuffix)
	if name == "" {
		name = typeName
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
