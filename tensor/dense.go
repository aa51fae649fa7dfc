// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: Dense row-major float64 matrix: construction, indexed access, rows, clone.
// Determinism:
//   - Rows() returns rows in index order; String() is stable.
// AI-HINT (file):
//   - Zero-row matrices are valid (empty samples); negative shapes are not.
//   - Row(i) and Rows2D() return copies; mutate the result freely.

package tensor

import (
	"strconv"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, opErrorf("NewDense", ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equally sized rows.
// An empty (or nil) input yields a 0×0 matrix. Ragged input returns ErrBadShape.
// The input is copied; later changes to rows do not affect the result.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	cols := len(rows[0])
	m := &Dense{r: len(rows), c: cols, data: make([]float64, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf("FromRows", i, len(row), ErrBadShape)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// MustFromRows is FromRows for literals in tests and fixtures; it panics on
// ragged input.
func MustFromRows(rows [][]float64) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Rows2D returns a copy of the matrix as a slice of rows.
// Complexity: O(r*c).
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether a and b have the same shape and bit-identical entries.
// Two nil matrices are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix row by row, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
