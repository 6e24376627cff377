package generator

import (
	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/routes"
)

// Eligibility is the outcome of checking a route for documentation.
type Eligibility int

const (
	Eligible Eligibility = iota
	// SkipRoot marks the index route "/".
	SkipRoot
	// SkipUnresolved marks a route whose controller or method is not in
	// the catalog.
	SkipUnresolved
)

func (e Eligibility) String() string {
	switch e {
	case Eligible:
		return "eligible"
	case SkipRoot:
		return "root path"
	case SkipUnresolved:
		return "unresolved handler"
	}
	return "unknown"
}

// Check decides whether a route is documented and, when it is, returns the
// controller and method serving it. path is the recompiled route path.
func Check(d routes.Descriptor, path string, catalog *controller.Catalog) (controller.Controller, controller.Method, Eligibility) {
	if path == "/" {
		return controller.Controller{}, controller.Method{}, SkipRoot
	}

	ctrl, method, ok := catalog.Resolve(d.Handler())
	if !ok {
		return controller.Controller{}, controller.Method{}, SkipUnresolved
	}

	return ctrl, method, Eligible
}

// IsEligible reports whether a route would appear in the generated document.
func IsEligible(d routes.Descriptor, catalog *controller.Catalog) bool {
	_, _, e := Check(d, RecompilePath(d.Path()), catalog)
	return e == Eligible
}
