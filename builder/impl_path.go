// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// impl_path.go - Path(n) and Star(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; edges i → i+1.
//   • Star: n ≥ 2; center 0 joined to 1..n-1.

package builder

import "fmt"

const (
	methodPath   = "Path"
	methodStar   = "Star"
	minPathNodes = 2
	minStarNodes = 2
)

// Path returns a Constructor for the path P_n.
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i+1 < n; i++ {
			s.link(i, i+1)
		}

		return nil
	}
}

// Star returns a Constructor for the star S_n with center 0.
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 1; i < n; i++ {
			s.link(0, i)
		}

		return nil
	}
}
