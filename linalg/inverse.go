// SPDX-License-Identifier: MIT
// Package linalg - determinant and inverse.
//
// Both delegate the factorisation to gonum's mat.Dense (LU with partial
// pivoting); the receiver is copied into a gonum matrix so it stays immutable.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// dense copies m into a gonum matrix.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.r, m.c, append([]float64(nil), m.data...))
}

// Determinant returns det(m).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, linalgErrorf(opDet, err)
	}

	return mat.Det(m.dense()), nil
}

// Inverse returns m⁻¹.
// For a View matrix this recovers the camera-to-world transform.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (including matrices too
// ill-conditioned for gonum to invert reliably).
// Complexity: O(n^3).
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	src := m.dense()
	if mat.Det(src) == 0 {
		return nil, linalgErrorf(opInverse, ErrSingular)
	}
	var inv mat.Dense
	if err := inv.Inverse(src); err != nil {
		return nil, fmt.Errorf("%s: %w (%v)", opInverse, ErrSingular, err)
	}
	res := newZero(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[i*m.c+j] = inv.At(i, j)
		}
	}

	return res, nil
}
