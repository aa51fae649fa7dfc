// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "tensor: ..." for consistent grepping.
// Wrap with context at the call site; callers match with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions) or when row input is ragged.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was used as an operand.
	ErrNilMatrix = errors.New("tensor: nil matrix")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps an underlying error with an operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
