// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
)

// Vector2 is a 2-component vector of float64.
type Vector2 [2]float64

// Zero2 returns (0, 0).
func Zero2() Vector2 { return Vector2{} }

// One2 returns (1, 1).
func One2() Vector2 { return Vector2{1, 1} }

// X returns the first component.
func (v Vector2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector2) Y() float64 { return v[1] }

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v[0] - w[0], v[1] - w[1]} }

// Scale returns s·v.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{s * v[0], s * v[1]} }

// Dot returns v·w.
func (v Vector2) Dot(w Vector2) float64 { return v[0]*w[0] + v[1]*w[1] }

// Length returns |v|.
func (v Vector2) Length() float64 { return math.Hypot(v[0], v[1]) }

// Normalized returns v / |v|.
// Errors: ErrDegenerateVector when |v| is zero or not finite.
func (v Vector2) Normalized() (Vector2, error) {
	l := v.Length()
	if !usableLength(l) {
		return Vector2{}, linalgErrorf(opNormalize, ErrDegenerateVector)
	}

	return Vector2{v[0] / l, v[1] / l}, nil
}

// Vector returns v as a variable-length Vector.
func (v Vector2) Vector() Vector { return Vector{v[0], v[1]} }

// ToPolar returns v in polar coordinates. The zero vector maps to (0, 0).
func (v Vector2) ToPolar() Polar {
	return Polar{R: v.Length(), Theta: math.Atan2(v[1], v[0])}
}

// Polar is a point in polar coordinates; Theta is in radians.
type Polar struct {
	R     float64
	Theta float64
}

// ToCartesian returns p as a Vector2.
func (p Polar) ToCartesian() Vector2 {
	return Vector2{math.Cos(p.Theta) * p.R, math.Sin(p.Theta) * p.R}
}

// String renders p as "r θ°" with one decimal.
func (p Polar) String() string {
	return fmt.Sprintf("%.1f %.1f°", p.R, RadiansToDegrees(p.Theta))
}
