// SPDX-License-Identifier: MIT

package feature

import "errors"

// Sentinel errors for strategy resolution and execution.
var (
	// ErrUnknownStrategy is the configuration error for a name that is not
	// present in the registry.
	ErrUnknownStrategy = errors.New("feature: unknown feature lifting")

	// ErrMissingSource indicates that the lower-rank feature matrix a rank
	// is aggregated from is absent from the descriptor.
	ErrMissingSource = errors.New("feature: source features missing")
)
