// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: Pure matrix operations (Transpose, Mul, Abs). Inputs are never mutated.
// AI-HINT (file):
//   - Mul accepts empty inner dimensions: (r×0)·(0×c) is an r×c zero matrix.

package tensor

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opAbs       = "Abs"
)

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Mul returns the matrix product a·b.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Execute): i-k-j loop for row-major locality.
// Complexity: O(r·k·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var i, k, j int
	var aik float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Abs returns the element-wise absolute value of m.
// Complexity: O(r*c).
func Abs(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opAbs, ErrNilMatrix)
	}
	out := m.Clone()
	for i, v := range out.data {
		if v < 0 {
			out.data[i] = -v
		}
	}

	return out, nil
}
