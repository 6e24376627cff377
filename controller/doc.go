// Package controller declares the metadata of route handlers: the owning
// controller type, its optional model and tag bindings, and each method's
// parameter annotations and return annotation.
//
// The metadata is supplied up front rather than discovered at runtime, so
// the generator never inspects live handler values.
package controller
