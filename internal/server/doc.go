// Package server runs the HTTP server that publishes generated documents.
package server
