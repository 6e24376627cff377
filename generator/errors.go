package generator

import "errors"

var (
	// ErrUnresolvedHandler is returned in strict mode when a route points at
	// a controller or method missing from the catalog.
	ErrUnresolvedHandler = errors.New("generator: unresolved handler")

	// ErrInvalidParameterLocation is returned for an unknown parameter
	// location name.
	ErrInvalidParameterLocation = errors.New("generator: invalid parameter location")
)
