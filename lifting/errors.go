// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for the lifting pipeline.
// Policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Call sites attach context with %w.
//   - Option constructors may panic on nil inputs; Apply and BuildGraph never panic.

package lifting

import "errors"

var (
	// ErrNotImplemented signals that a topology builder has no concrete
	// LiftTopology. It is a programming error and is never retried.
	ErrNotImplemented = errors.New("lifting: lift topology not implemented")

	// ErrUnknownOption indicates a configuration key that is not recognized,
	// or an option that does not apply to the lifting's domain.
	ErrUnknownOption = errors.New("lifting: unknown option")

	// ErrEdgeAttrConflict indicates that (i,j) and (j,i) carry different
	// edge attributes while edge-attribute preservation is requested.
	ErrEdgeAttrConflict = errors.New("lifting: conflicting edge attributes")

	// ErrShapeMismatch indicates that edge_attr is not aligned with edge_index.
	ErrShapeMismatch = errors.New("lifting: shape mismatch")

	// ErrNilLifting is returned by New when no topology builder is supplied.
	ErrNilLifting = errors.New("lifting: nil lifting")

	// ErrNilRecord is returned by Apply for a nil input record.
	ErrNilRecord = errors.New("lifting: nil record")
)
