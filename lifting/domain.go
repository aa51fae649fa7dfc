// SPDX-License-Identifier: MIT
//
// File: domain.go
// Role: Closed set of source domains and their default feature strategies.

package lifting

import (
	"fmt"

	"github.com/katalvlaran/topolift/feature"
)

// Domain identifies the kind of structure a lifting starts from.
type Domain int

// The source domains. Any is the domain-agnostic base.
const (
	Any Domain = iota
	Graph
	PointCloud
	Simplicial
	CellComplex
	Hypergraph
	Combinatorial
)

var domainNames = [...]string{
	Any:           "any",
	Graph:         "graph",
	PointCloud:    "pointcloud",
	Simplicial:    "simplicial",
	CellComplex:   "cell",
	Hypergraph:    "hypergraph",
	Combinatorial: "combinatorial",
}

// Domains returns every domain in declaration order.
func Domains() []Domain {
	return []Domain{Any, Graph, PointCloud, Simplicial, CellComplex, Hypergraph, Combinatorial}
}

// Valid reports whether d is one of the declared domains.
func (d Domain) Valid() bool { return d >= Any && d <= Combinatorial }

// String returns the lower-case domain name.
func (d Domain) String() string {
	if !d.Valid() {
		return fmt.Sprintf("domain(%d)", int(d))
	}

	return domainNames[d]
}

// DefaultFeatureLifting returns the strategy a domain uses when the
// configuration leaves feature_lifting unset.
func (d Domain) DefaultFeatureLifting() feature.Name {
	if d == Any {
		return feature.None
	}

	return feature.Some(feature.SumLiftingName)
}
