// SPDX-License-Identifier: MIT

// Package tensor provides the two numeric containers a lifting pipeline moves
// around: Dense, a row-major float64 matrix used for node, edge and cell
// feature matrices as well as incidence and Laplacian operators, and
// EdgeIndex, the 2×E integer list of directed edge endpoints.
//
// What & Why:
//
//	Feature matrices are indexed by cell id (row) and feature channel (column).
//	A sample may legitimately have no nodes, so unlike a general linear-algebra
//	package, zero-row and zero-column shapes are valid here. Operations are
//	deliberately few: transpose, product and element-wise absolute value are
//	all a feature-aggregation rule such as sum needs (x_r = |B_r|ᵀ · x_{r-1}).
//
// Errors:
//
//	ErrBadShape          - negative dimensions or ragged row input.
//	ErrOutOfRange        - row/column index outside bounds.
//	ErrDimensionMismatch - incompatible operand shapes.
//	ErrNilMatrix         - nil *Dense operand.
//
// Complexity:
//
//	At/Set are O(1); Clone, Abs, Transpose are O(r·c); Mul is O(r·k·c).
//
// Values are read-only by convention once they are stored in a data.Record;
// every operation returns a fresh matrix.
package tensor
