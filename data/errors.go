// SPDX-License-Identifier: MIT

package data

import "errors"

// Sentinel errors for record access and decoding.
var (
	// ErrFieldMissing indicates a required field is absent (or nil).
	ErrFieldMissing = errors.New("data: field missing")

	// ErrFieldType indicates a field holds a value of an unexpected type.
	ErrFieldType = errors.New("data: field has unexpected type")

	// ErrDecode indicates a record document could not be decoded.
	ErrDecode = errors.New("data: decode failed")
)
