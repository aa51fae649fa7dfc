// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Immutable name → Strategy constructor table and its lookup.
// Concurrency:
//   - Populated at init; read-only afterwards.

package feature

import (
	"fmt"
	"sort"
)

// Constructor creates a ready-to-call Strategy.
type Constructor func() Strategy

// registry holds the named strategies; None is handled by noneStrategy.
var registry = map[string]Constructor{
	SumLiftingName: func() Strategy { return SumLifting{} },
}

// noneStrategy is resolved for the None identifier.
var noneStrategy Constructor = func() Strategy { return Identity{} }

// Resolve returns the Strategy registered for n.
// Returns ErrUnknownStrategy for names that are not registered.
// Complexity: O(1).
func Resolve(n Name) (Strategy, error) {
	name, ok := n.Get()
	if !ok {
		return noneStrategy(), nil
	}
	ctor, found := registry[name]
	if !found {
		return nil, fmt.Errorf("Resolve(%q): %w", name, ErrUnknownStrategy)
	}

	return ctor(), nil
}

// Names returns the registered strategy names in ascending order.
// None is not listed.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
