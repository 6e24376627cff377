// Package manifest loads a declarative description of an application's
// routes and controllers from YAML, TOML or JSON.
package manifest
