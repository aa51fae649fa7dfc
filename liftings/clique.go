// SPDX-License-Identifier: MIT
//
// File: clique.go
// Role: Graph → simplicial complex via the clique complex.
// Determinism:
//   - Simplices of each rank are sorted lexicographically by vertex tuple.
// AI-HINT (file):
//   - k-simplices are the (k+1)-cliques, for k ≤ ComplexDim.
//   - Ranks with no simplices still emit correctly shaped empty matrices.

package liftings

import (
	"fmt"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/graph"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/tensor"
	"github.com/katalvlaran/topolift/topology"
)

// DefaultComplexDim is the highest simplex rank built when ComplexDim is 0.
const DefaultComplexDim = 2

// SimplicialCliqueLifting lifts a graph to its clique complex.
type SimplicialCliqueLifting struct {
	// ComplexDim is the highest simplex rank; 0 selects DefaultComplexDim.
	ComplexDim int
}

// Domain implements lifting.Lifting.
func (SimplicialCliqueLifting) Domain() lifting.Domain { return lifting.Graph }

// LiftTopology emits, for r = 1..ComplexDim, incidence_r and
// down_laplacian_r; up_laplacian_r for r = 0..ComplexDim-1; shape; x_0;
// and x_1 when edge attributes were carried.
func (l SimplicialCliqueLifting) LiftTopology(rec *data.Record, p lifting.Params) (topology.Descriptor, error) {
	dim := l.ComplexDim
	if dim < 0 {
		return nil, fmt.Errorf("SimplicialCliqueLifting: ComplexDim %d: %w", dim, ErrInvalidParam)
	}
	if dim == 0 {
		dim = DefaultComplexDim
	}
	g, err := lifting.BuildGraph(rec, p.PreserveEdgeAttr)
	if err != nil {
		return nil, fmt.Errorf("SimplicialCliqueLifting: %w", err)
	}
	sk, err := newSkeleton(g)
	if err != nil {
		return nil, fmt.Errorf("SimplicialCliqueLifting: %w", err)
	}

	simplices := cliqueSimplices(g, sk, dim)
	topo := topology.Descriptor{topology.FeatureKey(0): sk.x0}
	if sk.x1 != nil {
		topo[topology.FeatureKey(1)] = sk.x1
	}

	shape := make([]int, dim+1)
	for r := range shape {
		shape[r] = len(simplices[r])
	}
	topo[topology.KeyShape] = shape

	inc := make([]*tensor.Dense, dim+1)
	for r := 1; r <= dim; r++ {
		inc[r] = boundary(simplices[r-1], simplices[r])
		topo[topology.IncidenceKey(r)] = inc[r]
		down, err := gram(inc[r], true)
		if err != nil {
			return nil, fmt.Errorf("SimplicialCliqueLifting: down_laplacian_%d: %w", r, err)
		}
		topo[topology.DownLaplacianKey(r)] = down
	}
	for r := 0; r < dim; r++ {
		up, err := gram(inc[r+1], false)
		if err != nil {
			return nil, fmt.Errorf("SimplicialCliqueLifting: up_laplacian_%d: %w", r, err)
		}
		topo[topology.UpLaplacianKey(r)] = up
	}

	return topo, nil
}

// cliqueSimplices returns the sorted k-simplices for k = 0..dim.
// Each (k+1)-simplex extends a k-simplex by a common neighbor larger than
// its last vertex, so every clique is generated exactly once.
func cliqueSimplices(g *graph.Graph, sk *skeleton, dim int) [][][]int {
	out := make([][][]int, dim+1)
	for v := 0; v < sk.nodes; v++ {
		out[0] = append(out[0], []int{v})
	}
	if dim >= 1 {
		for _, e := range sk.edges {
			out[1] = append(out[1], []int{e[0], e[1]})
		}
	}
	for k := 2; k <= dim; k++ {
		for _, s := range out[k-1] {
			last := s[len(s)-1]
			for w := last + 1; w < sk.nodes; w++ {
				if adjacentToAll(g, s, w) {
					next := make([]int, len(s)+1)
					copy(next, s)
					next[len(s)] = w
					out[k] = append(out[k], next)
				}
			}
		}
	}

	return out
}

func adjacentToAll(g *graph.Graph, s []int, w int) bool {
	for _, v := range s {
		if !g.HasEdge(v, w) {
			return false
		}
	}

	return true
}

// boundary returns the signed incidence between faces and cells: the face
// obtained by dropping vertex i of a cell has coefficient (−1)^i.
func boundary(faces, cells [][]int) *tensor.Dense {
	index := make(map[string]int, len(faces))
	for i, f := range faces {
		index[fmt.Sprint(f)] = i
	}
	b, _ := tensor.NewDense(len(faces), len(cells))
	face := make([]int, 0)
	for j, c := range cells {
		for i := range c {
			face = face[:0]
			face = append(face, c[:i]...)
			face = append(face, c[i+1:]...)
			sign := 1.0
			if i%2 == 1 {
				sign = -1
			}
			_ = b.Set(index[fmt.Sprint(face)], j, sign)
		}
	}

	return b
}
