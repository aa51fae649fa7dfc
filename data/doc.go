// SPDX-License-Identifier: MIT

// Package data defines Record, the open keyed field container that flows
// through every lifting stage.
//
// A Record has no fixed schema. A raw graph sample usually carries:
//
//	x          *tensor.Dense      node feature matrix, one row per node
//	edge_index tensor.EdgeIndex   directed edge endpoints, shape (2, E)
//	edge_attr  *tensor.Dense      optional, one row per edge_index column
//
// and lifting stages add higher-order structures (incidence_1, x_1, shape, ...)
// as they run. Records are values: ToDict returns a private copy of the field
// set and FromDict builds a new Record from one, so a lifting never mutates
// its input. Field values themselves are shared and must be treated as
// read-only once stored.
//
// The YAML codec (Decode/Encode) is the on-disk shape used by cmd/topolift:
// matrices are lists of rows and edge_index is [[src...], [dst...]].
package data
