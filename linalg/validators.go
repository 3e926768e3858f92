// SPDX-License-Identifier: MIT
// Package linalg: shared shape checks.
//
// Purpose:
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Each composite validator follows a fixed sequence (NotNil → Shape).

package linalg

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return linalgErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return linalgErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return linalgErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a×b.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return linalgErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return linalgErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateShape checks that m is exactly rows×cols.
func validateShape(m *Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != rows || m.c != cols {
		return linalgErrorf("validateShape", ErrDimensionMismatch)
	}

	return nil
}
