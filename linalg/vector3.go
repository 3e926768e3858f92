// SPDX-License-Identifier: MIT

package linalg

import (
	"math"
)

// Vector3 is a 3-component vector of float64.
// It is a value type: every operation returns a fresh Vector3.
type Vector3 [3]float64

// Zero3 returns (0, 0, 0).
func Zero3() Vector3 { return Vector3{} }

// One3 returns (1, 1, 1).
func One3() Vector3 { return Vector3{1, 1, 1} }

// UnitX returns (1, 0, 0).
func UnitX() Vector3 { return Vector3{1, 0, 0} }

// UnitY returns (0, 1, 0).
func UnitY() Vector3 { return Vector3{0, 1, 0} }

// UnitZ returns (0, 0, 1).
func UnitZ() Vector3 { return Vector3{0, 0, 1} }

// X returns the first component.
func (v Vector3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector3) Z() float64 { return v[2] }

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s·v.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{s * v[0], s * v[1], s * v[2]}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return v.Scale(-1) }

// Dot returns v·w.
func (v Vector3) Dot(w Vector3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the right-handed cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length returns |v|. Components near the float64 range limits do not
// overflow to +Inf or underflow to 0.
func (v Vector3) Length() float64 { return euclidean(v[0], v[1], v[2]) }

// Normalized returns v / |v|.
// Errors: ErrDegenerateVector when |v| is zero or not finite.
func (v Vector3) Normalized() (Vector3, error) {
	l := v.Length()
	if !usableLength(l) {
		return Vector3{}, linalgErrorf(opNormalize, ErrDegenerateVector)
	}

	return Vector3{v[0] / l, v[1] / l, v[2] / l}, nil
}

// Rotate returns v rotated by degrees about axis, using the matrix built by
// Rotate applied to the direction (x, y, z, 0).
// Errors: ErrDegenerateVector for a zero-length axis.
func (v Vector3) Rotate(degrees float64, axis Vector3) (Vector3, error) {
	r, err := Rotate(degrees, axis)
	if err != nil {
		return Vector3{}, err
	}
	out, err := r.MulVec4(v.Homogeneous(0))
	if err != nil {
		return Vector3{}, err
	}

	return out.XYZ(), nil
}

// Homogeneous returns (x, y, z, w).
// Use w = 1 for points and w = 0 for directions.
func (v Vector3) Homogeneous(w float64) Vector4 {
	return Vector4{v[0], v[1], v[2], w}
}

// ApproxEqual reports whether every component of v and w differs by at most eps.
func (v Vector3) ApproxEqual(w Vector3, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-w[i]) > eps {
			return false
		}
	}

	return true
}

// Vector returns v as a variable-length Vector.
func (v Vector3) Vector() Vector { return Vector{v[0], v[1], v[2]} }

// Matrix returns v as a 3×1 column matrix.
func (v Vector3) Matrix() *Matrix {
	return &Matrix{r: 3, c: 1, data: []float64{v[0], v[1], v[2]}}
}
