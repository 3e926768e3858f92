// SPDX-License-Identifier: MIT
// Package linalg - quaternions.
//
// Quaternions are the intermediate representation used to build rotation
// matrices (see Rotate). A rotation quaternion must be unit length
// (s² + |v|² = 1); nothing here enforces it, callers normalise when required.

package linalg

import (
	"fmt"
	"math"
)

// Quaternion is s + v.x·i + v.y·j + v.z·k.
type Quaternion struct {
	S float64 // scalar part
	V Vector3 // vector part
}

// IdentityQuaternion returns 1 + 0i + 0j + 0k (no rotation).
func IdentityQuaternion() Quaternion { return Quaternion{S: 1} }

// Pure returns the pure (vector) quaternion 0 + v.
func Pure(v Vector3) Quaternion { return Quaternion{V: v} }

// Scalar returns the real quaternion s + 0.
func Scalar(s float64) Quaternion { return Quaternion{S: s} }

// FromRotation returns the unit quaternion rotating by degrees about axis.
// The vector part is sin(θ/2) times the direction cosines of axis against
// the standard basis, so axis need not be normalised.
// Errors: ErrDegenerateVector for a zero-length axis.
func FromRotation(degrees float64, axis Vector3) (Quaternion, error) {
	half := DegreesToRadians(degrees) / 2
	sin, cos := math.Sincos(half)
	var v Vector3
	for i, e := range [...]Vector3{UnitX(), UnitY(), UnitZ()} {
		dc, err := DirectionCosine(axis, e)
		if err != nil {
			return Quaternion{}, linalgErrorf("FromRotation", err)
		}
		v[i] = sin * dc
	}

	return Quaternion{S: cos, V: v}, nil
}

// Add returns q + p.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{S: q.S + p.S, V: q.V.Add(p.V)}
}

// Mul returns the Hamilton product q·p:
//
//	s = s1·s2 − v1·v2
//	v = s1·v2 + s2·v1 + v1×v2
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		S: q.S*p.S - q.V.Dot(p.V),
		V: p.V.Scale(q.S).Add(q.V.Scale(p.S)).Add(q.V.Cross(p.V)),
	}
}

// Scale returns α·q (both parts scaled).
func (q Quaternion) Scale(alpha float64) Quaternion {
	return Quaternion{S: q.S * alpha, V: q.V.Scale(alpha)}
}

// Norm returns the Euclidean 4-norm over (s, v.x, v.y, v.z).
func (q Quaternion) Norm() float64 {
	return euclidean(q.S, q.V[0], q.V[1], q.V[2])
}

// Len is an alias for Norm.
func (q Quaternion) Len() float64 { return q.Norm() }

// Normalized returns q / |q|.
// Errors: ErrDegenerateVector when |q| is zero or not finite.
func (q Quaternion) Normalized() (Quaternion, error) {
	n := q.Norm()
	if !usableLength(n) {
		return Quaternion{}, linalgErrorf(opNormalize, ErrDegenerateVector)
	}

	return Quaternion{S: q.S / n, V: Vector3{q.V[0] / n, q.V[1] / n, q.V[2] / n}}, nil
}

// Conjugate returns s − v.
func (q Quaternion) Conjugate() Quaternion { return Quaternion{S: q.S, V: q.V.Negate()} }

// Inverse returns conjugate(q) / |q|².
// Errors: ErrDegenerateVector when |q| is zero or not finite.
func (q Quaternion) Inverse() (Quaternion, error) {
	n := q.Norm()
	if !usableLength(n) {
		return Quaternion{}, linalgErrorf("Inverse", ErrDegenerateVector)
	}
	c := q.Conjugate()

	// two divisions keep |q|² from overflowing
	return Quaternion{S: c.S / n / n, V: Vector3{c.V[0] / n / n, c.V[1] / n / n, c.V[2] / n / n}}, nil
}

// RotateVector returns v rotated by the unit quaternion q, computed as q·(0,v)·q*.
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	return q.Mul(Pure(v)).Mul(q.Conjugate()).V
}

// Matrix expands the unit quaternion q into a 4×4 homogeneous rotation matrix.
func (q Quaternion) Matrix() *Matrix {
	q0, q1, q2, q3 := q.S, q.V[0], q.V[1], q.V[2]

	return fromRows(
		[]float64{1 - 2*(q2*q2+q3*q3), 2 * (q1*q2 - q0*q3), 2 * (q0*q2 + q1*q3), 0},
		[]float64{2 * (q1*q2 + q0*q3), 1 - 2*(q1*q1+q3*q3), 2 * (q2*q3 - q0*q1), 0},
		[]float64{2 * (q1*q3 - q0*q2), 2 * (q0*q1 + q2*q3), 1 - 2*(q1*q1+q2*q2), 0},
		[]float64{0, 0, 0, 1},
	)
}

// QuaternionFromMatrix recovers the unit quaternion of a rotation matrix
// (3×3 or the upper-left block of a 4×4). The result has s >= 0 except when
// the rotation is by exactly 180°, where the sign is arbitrary.
//
// Implementation: branch on the largest of trace and diagonal entries so the
// square root argument stays well away from zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch for other shapes.
func QuaternionFromMatrix(m *Matrix) (Quaternion, error) {
	if err := ValidateNotNil(m); err != nil {
		return Quaternion{}, linalgErrorf(opFromMat, err)
	}
	if !(m.r == 3 && m.c == 3) && !(m.r == 4 && m.c == 4) {
		return Quaternion{}, fmt.Errorf("%s %dx%d: %w", opFromMat, m.r, m.c, ErrDimensionMismatch)
	}
	m00, m01, m02 := m.at(0, 0), m.at(0, 1), m.at(0, 2)
	m10, m11, m12 := m.at(1, 0), m.at(1, 1), m.at(1, 2)
	m20, m21, m22 := m.at(2, 0), m.at(2, 1), m.at(2, 2)

	var q Quaternion
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = Quaternion{S: s / 4, V: Vector3{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s}}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = Quaternion{S: (m21 - m12) / s, V: Vector3{s / 4, (m01 + m10) / s, (m02 + m20) / s}}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = Quaternion{S: (m02 - m20) / s, V: Vector3{(m01 + m10) / s, s / 4, (m12 + m21) / s}}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = Quaternion{S: (m10 - m01) / s, V: Vector3{(m02 + m20) / s, (m12 + m21) / s, s / 4}}
	}
	if q.S < 0 {
		q = q.Scale(-1)
	}

	return q, nil
}

// ApproxEqual reports whether all four components differ by at most eps.
func (q Quaternion) ApproxEqual(p Quaternion, eps float64) bool {
	return math.Abs(q.S-p.S) <= eps && q.V.ApproxEqual(p.V, eps)
}

// String renders q as "s + xi + yj + zk" with two decimals.
func (q Quaternion) String() string {
	return fmt.Sprintf("%.2f + %.2fi + %.2fj + %.2fk", q.S, q.V[0], q.V[1], q.V[2])
}
