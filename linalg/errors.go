// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All operations return these sentinels (possibly wrapped with call-site
// context) and tests check them via errors.Is. No exported operation panics on
// user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "linalg: ..." so failures surfacing from a
// render loop are easy to attribute. Wrap with linalgErrorf at the detection
// site; callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (no rows or no columns).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrNotRectangular is returned by New when rows have unequal length.
	ErrNotRectangular = errors.New("linalg: values must be a rectangular array")

	// ErrOutOfRange indicates that a row, column or component index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Mul where a.Cols != b.Rows, or Dot of vectors of
	// different dimension.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when a matrix has no inverse.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrDegenerateVector is returned instead of producing NaN when a
	// zero-length vector (or quaternion) is normalised, inverted or used as a
	// rotation axis.
	ErrDegenerateVector = errors.New("linalg: degenerate (zero-length) vector")

	// ErrInvalidProjection rejects perspective parameters that cannot describe a frustum.
	ErrInvalidProjection = errors.New("linalg: invalid projection parameters")

	// ErrTooFewOperands is returned by MultiplyMatrices with fewer than two matrices.
	ErrTooFewOperands = errors.New("linalg: multiplication requires at least two matrices")

	// ErrInvalidOrder is returned for an unknown TransformOrder.
	ErrInvalidOrder = errors.New("linalg: unknown transform order")
)

// linalgErrorf tags err with the operation that detected it.
// err must be non-nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
