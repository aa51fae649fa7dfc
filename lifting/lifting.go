// SPDX-License-Identifier: MIT
//
// File: lifting.go
// Role: The topology-builder contract every concrete lifting implements.

package lifting

import (
	"fmt"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/topology"
)

// Lifting builds the topology of one source domain.
//
// LiftTopology must not mutate rec; the descriptor it returns is owned by
// the caller. Implementations are expected to be safe for concurrent use.
type Lifting interface {
	Domain() Domain
	LiftTopology(rec *data.Record, p Params) (topology.Descriptor, error)
}

// Params carries the construction-time options resolved from Config.
type Params struct {
	// PreserveEdgeAttr requests that edge_attr be carried onto the graph.
	// Only meaningful for the Graph domain.
	PreserveEdgeAttr bool
}

// Unimplemented is a Lifting without a topology builder. Embed it to
// declare a domain before its LiftTopology exists; calling it fails with
// ErrNotImplemented.
type Unimplemented struct {
	D Domain
}

// Domain returns the declared domain.
func (u Unimplemented) Domain() Domain { return u.D }

// LiftTopology always fails with ErrNotImplemented.
func (u Unimplemented) LiftTopology(*data.Record, Params) (topology.Descriptor, error) {
	return nil, fmt.Errorf("LiftTopology(%s): %w", u.D, ErrNotImplemented)
}
