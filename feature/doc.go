// SPDX-License-Identifier: MIT

// Package feature implements the feature-lifting registry: the fixed mapping
// from a policy name, or the absence of one, to a feature-aggregation
// Strategy.
//
// A Strategy receives a topology.Descriptor that may lack the feature
// matrices of its higher-order cells and returns a descriptor enriched with
// them. Strategies are stateless; one instance is resolved when a lifting is
// constructed and reused for every call.
//
// Registered policies:
//
//	None               Identity, descriptor passes through unchanged
//	Some("SumLifting") x_r = |incidence_r|ᵀ · x_{r-1} for every missing x_r
//
// Resolution happens once, at construction: an unknown name fails there with
// ErrUnknownStrategy and never at call time. The registry is populated at
// package initialization and is read-only afterwards, so concurrent Resolve
// calls are safe.
package feature
