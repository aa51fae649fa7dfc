// SPDX-License-Identifier: MIT

package feature

import "github.com/katalvlaran/topolift/topology"

// Strategy computes the feature matrices of higher-order cells from
// lower-order ones. Implementations must not mutate the input descriptor.
type Strategy interface {
	Enrich(topo topology.Descriptor) (topology.Descriptor, error)
}

// Identity returns the descriptor unchanged.
type Identity struct{}

// Enrich implements Strategy.
func (Identity) Enrich(topo topology.Descriptor) (topology.Descriptor, error) {
	return topo, nil
}
