// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors wrap with method context via %w.
//   • Option constructors (WithX) panic on meaningless inputs; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an otherwise unbuildable fixture.
var ErrConstructFailed = errors.New("builder: construction failed")
