// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// impl_cycle.go - Cycle(n) and Wheel(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; edges i → (i+1)%n for i = 0..n-1.
//   • Wheel: n ≥ 4; hub 0 joined to every rim node 1..n-1, rim is a cycle.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	methodWheel   = "Wheel"
	minCycleNodes = 3
	minWheelNodes = 4
)

// Cycle returns a Constructor that builds the n-node cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			s.link(i, (i+1)%n)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 0 plus a rim cycle over 1..n-1.
func Wheel(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		s.grow(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.link(1+i, 1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			s.link(0, i)
		}

		return nil
	}
}
