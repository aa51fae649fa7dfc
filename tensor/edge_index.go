// SPDX-License-Identifier: MIT

package tensor

// EdgeIndex lists E directed edges as two aligned rows of endpoints,
// the (2, E) layout used by graph learning datasets.
type EdgeIndex struct {
	Src []int
	Dst []int
}

// NewEdgeIndex builds an EdgeIndex from aligned source and destination rows.
// Rows of different lengths return ErrBadShape. Inputs are copied.
func NewEdgeIndex(src, dst []int) (EdgeIndex, error) {
	if len(src) != len(dst) {
		return EdgeIndex{}, opErrorf("NewEdgeIndex", ErrBadShape)
	}
	ei := EdgeIndex{Src: make([]int, len(src)), Dst: make([]int, len(dst))}
	copy(ei.Src, src)
	copy(ei.Dst, dst)

	return ei, nil
}

// EdgeIndexFromPairs builds an EdgeIndex from (src, dst) pairs.
func EdgeIndexFromPairs(pairs [][2]int) EdgeIndex {
	ei := EdgeIndex{Src: make([]int, len(pairs)), Dst: make([]int, len(pairs))}
	for k, p := range pairs {
		ei.Src[k], ei.Dst[k] = p[0], p[1]
	}

	return ei
}

// Len returns the number of edges E.
func (ei EdgeIndex) Len() int { return len(ei.Src) }

// Pair returns the k-th edge as (src, dst).
func (ei EdgeIndex) Pair(k int) (int, int) { return ei.Src[k], ei.Dst[k] }

// Pairs returns all edges as (src, dst) pairs in column order.
func (ei EdgeIndex) Pairs() [][2]int {
	out := make([][2]int, ei.Len())
	for k := range ei.Src {
		out[k] = [2]int{ei.Src[k], ei.Dst[k]}
	}

	return out
}

// Validate reports ErrBadShape when the two rows are misaligned.
func (ei EdgeIndex) Validate() error {
	if len(ei.Src) != len(ei.Dst) {
		return opErrorf("EdgeIndex.Validate", ErrBadShape)
	}

	return nil
}
