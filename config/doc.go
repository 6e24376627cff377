// Package config resolves generator settings from built-in defaults, an
// optional TOML file and environment variables, in that order of
// precedence from lowest to highest.
package config
