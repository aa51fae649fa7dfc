// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Immutable name → builder table used by the CLI and batch callers.

package liftings

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topolift/lifting"
)

// Catalog names.
const (
	CliqueName = "graph2simplicial/clique"
	KHopName   = "graph2hypergraph/khop"
	CycleName  = "graph2cell/cycle"
)

var catalog = map[string]func() lifting.Lifting{
	CliqueName: func() lifting.Lifting { return SimplicialCliqueLifting{} },
	KHopName:   func() lifting.Lifting { return HypergraphKHopLifting{} },
	CycleName:  func() lifting.Lifting { return CellCycleLifting{} },
}

// Lookup returns the builder registered under name with default parameters.
func Lookup(name string) (lifting.Lifting, error) {
	ctor, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownLifting)
	}

	return ctor(), nil
}

// New builds a Transform for the catalog entry name.
// Unknown names fail with ErrUnknownLifting; configuration errors are
// those of lifting.New.
func New(name string, cfg lifting.Config, opts ...lifting.Option) (*lifting.Transform, error) {
	l, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	t, err := lifting.New(l, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("New(%q): %w", name, err)
	}

	return t, nil
}

// Names returns the catalog names in ascending order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
