// SPDX-License-Identifier: MIT
// Package linalg - variable-length vectors.
//
// Vector is the value returned by Matrix.Row and Matrix.Column. Operations
// between two Vectors require equal dimension and return ErrDimensionMismatch
// otherwise. Fixed-size work should use Vector2/Vector3/Vector4, where the
// dimension is part of the type.

package linalg

import (
	"fmt"
)

// Vector is a column vector of arbitrary dimension.
type Vector []float64

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v) }

// Dot returns the sum of elementwise products.
// Errors: ErrDimensionMismatch when dimensions differ.
func (v Vector) Dot(o Vector) (float64, error) {
	if len(v) != len(o) {
		return 0, fmt.Errorf("Dot %d·%d: %w", len(v), len(o), ErrDimensionMismatch)
	}

	return dot(v, o), nil
}

// Add returns v + o.
// Errors: ErrDimensionMismatch when dimensions differ.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("Add %d+%d: %w", len(v), len(o), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}

	return out, nil
}

// Scale returns s·v.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = s * v[i]
	}

	return out
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 { return euclidean(v...) }

// Normalized returns v / |v|.
// Errors: ErrDegenerateVector when |v| is zero or not finite.
func (v Vector) Normalized() (Vector, error) {
	l := v.Length()
	if !usableLength(l) {
		return nil, linalgErrorf(opNormalize, ErrDegenerateVector)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] / l
	}

	return out, nil
}

// Matrix returns v as a len(v)×1 column matrix.
// Errors: ErrBadShape for an empty vector.
func (v Vector) Matrix() (*Matrix, error) {
	if len(v) == 0 {
		return nil, linalgErrorf("Vector.Matrix", ErrBadShape)
	}

	return &Matrix{r: len(v), c: 1, data: append([]float64(nil), v...)}, nil
}

// Vector2 converts v to a Vector2.
// Errors: ErrDimensionMismatch unless v has 2 components.
func (v Vector) Vector2() (Vector2, error) {
	if len(v) != 2 {
		return Vector2{}, fmt.Errorf("Vector2 from %d components: %w", len(v), ErrDimensionMismatch)
	}

	return Vector2{v[0], v[1]}, nil
}

// Vector3 converts v to a Vector3.
// Errors: ErrDimensionMismatch unless v has 3 components.
func (v Vector) Vector3() (Vector3, error) {
	if len(v) != 3 {
		return Vector3{}, fmt.Errorf("Vector3 from %d components: %w", len(v), ErrDimensionMismatch)
	}

	return Vector3{v[0], v[1], v[2]}, nil
}

// Vector4 converts v to a Vector4.
// Errors: ErrDimensionMismatch unless v has 4 components.
func (v Vector) Vector4() (Vector4, error) {
	if len(v) != 4 {
		return Vector4{}, fmt.Errorf("Vector4 from %d components: %w", len(v), ErrDimensionMismatch)
	}

	return Vector4{v[0], v[1], v[2], v[3]}, nil
}

// dot assumes len(a) == len(b).
func dot(a, b []float64) (d float64) {
	for i := range a {
		d += a[i] * b[i]
	}

	return
}
