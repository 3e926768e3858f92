// SPDX-License-Identifier: MIT

package linalg

import (
	"math"
)

// Vector4 is a 4-component (homogeneous) vector of float64.
type Vector4 [4]float64

// Zero4 returns (0, 0, 0, 0).
func Zero4() Vector4 { return Vector4{} }

// One4 returns (1, 1, 1, 1).
func One4() Vector4 { return Vector4{1, 1, 1, 1} }

// UnitX4 returns (1, 0, 0, 0).
func UnitX4() Vector4 { return Vector4{1, 0, 0, 0} }

// UnitY4 returns (0, 1, 0, 0).
func UnitY4() Vector4 { return Vector4{0, 1, 0, 0} }

// UnitZ4 returns (0, 0, 1, 0).
func UnitZ4() Vector4 { return Vector4{0, 0, 1, 0} }

// UnitW4 returns (0, 0, 0, 1), the homogeneous origin.
func UnitW4() Vector4 { return Vector4{0, 0, 0, 1} }

// X returns the first component.
func (v Vector4) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector4) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector4) Z() float64 { return v[2] }

// W returns the homogeneous component.
func (v Vector4) W() float64 { return v[3] }

// Add returns v + w.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns s·v.
func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{s * v[0], s * v[1], s * v[2], s * v[3]}
}

// Dot returns v·w.
func (v Vector4) Dot(w Vector4) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Cross returns the right-handed cross product of the xyz parts of v and w
// as a direction (w = 0). Both w components are ignored.
func (v Vector4) Cross(w Vector4) Vector4 {
	return v.XYZ().Cross(w.XYZ()).Homogeneous(0)
}

// Length returns |v| over all four components, overflow-safe like
// Vector3.Length.
func (v Vector4) Length() float64 { return euclidean(v[0], v[1], v[2], v[3]) }

// Normalized returns v / |v|.
// Errors: ErrDegenerateVector when |v| is zero or not finite.
func (v Vector4) Normalized() (Vector4, error) {
	l := v.Length()
	if !usableLength(l) {
		return Vector4{}, linalgErrorf(opNormalize, ErrDegenerateVector)
	}

	return Vector4{v[0] / l, v[1] / l, v[2] / l, v[3] / l}, nil
}

// XYZ drops the w component.
func (v Vector4) XYZ() Vector3 { return Vector3{v[0], v[1], v[2]} }

// ApproxEqual reports whether every component of v and w differs by at most eps.
func (v Vector4) ApproxEqual(w Vector4, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-w[i]) > eps {
			return false
		}
	}

	return true
}

// Vector returns v as a variable-length Vector.
func (v Vector4) Vector() Vector { return Vector{v[0], v[1], v[2], v[3]} }

// Matrix returns v as a 4×1 column matrix.
func (v Vector4) Matrix() *Matrix {
	return &Matrix{r: 4, c: 1, data: []float64{v[0], v[1], v[2], v[3]}}
}
