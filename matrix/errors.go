// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Callers match these via errors.Is; context is added with %w at the
// boundary where it is known.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)

// matrixErrorf prefixes err with the operation name, keeping it matchable by errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// denseErrorf wraps an underlying error with Dense method and index context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
