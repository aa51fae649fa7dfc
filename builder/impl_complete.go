// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// impl_complete.go - Complete(n) and RandomSparse(n, p) constructors.
//
// Contract:
//   • Complete: n ≥ 1; every pair i<j in lexicographic order.
//   • RandomSparse: n ≥ 1, p ∈ [0,1]; each pair i<j kept with probability p.
//     0 < p < 1 requires an RNG (ErrNeedRandSource).

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodRandomSparse      = "RandomSparse"
	minCompleteNodes        = 1
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.link(i, j)
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) fixture.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					s.link(i, j)
				}
			}
		}

		return nil
	}
}
