// Package pongo wraps the pongo2 template engine with the report engine's
// filter set and a small compile-and-execute renderer. Filters registered
// here are pure and locale-free; locale-aware formatting reaches templates
// as per-request closures injected through the execution context.
package pongo

import (
	"github.com/flosch/pongo2/v6"
)

func init() {
	filters := map[string]pongo2.FilterFunction{
		"scale":      scaleFilter,
		"percent_of": percentOfFilter,
		"progress":   progressFilter,
	}

	for name, fn := range filters {
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			panic("failed to register filter " + name + ": " + err.Error())
		}
	}
}
