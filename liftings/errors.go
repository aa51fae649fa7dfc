// SPDX-License-Identifier: MIT

package liftings

import "errors"

var (
	// ErrUnknownLifting indicates a catalog name with no registered builder.
	ErrUnknownLifting = errors.New("liftings: unknown lifting")

	// ErrInvalidParam indicates a builder parameter outside its domain
	// (negative dimension, hop count or cell length).
	ErrInvalidParam = errors.New("liftings: invalid parameter")
)
