// Package cli implements the oasgen command tree.
package cli
