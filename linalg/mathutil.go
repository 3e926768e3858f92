// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by tests and callers comparing
// derived bases (orthogonality, unit length).
const DefaultEpsilon = 1e-6

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(degrees float64) float64 { return degrees / 180 * math.Pi }

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(radians float64) float64 { return radians / math.Pi * 180 }

// DirectionCosine returns the cosine of the angle between axis and the unit
// vector unit, i.e. axis·unit / |axis|.
// Errors: ErrDegenerateVector when |axis| is zero or not finite.
func DirectionCosine(axis, unit Vector3) (float64, error) {
	l := axis.Length()
	if !usableLength(l) {
		return 0, linalgErrorf("DirectionCosine", ErrDegenerateVector)
	}
	// divide before the dot so huge axes stay finite
	var c float64
	for i := range axis {
		c += axis[i] / l * unit[i]
	}

	return c, nil
}

// euclidean returns sqrt(Σ xs[i]²) without overflowing or underflowing
// the intermediate squares.
//
// Implementation:
//   - Stage 1: find m = max |xs[i]|.
//   - Stage 2: m of 0, NaN or ±Inf is returned as is.
//   - Stage 3: return m·sqrt(Σ (xs[i]/m)²); every ratio lies in [-1, 1].
func euclidean(xs ...float64) float64 {
	var m float64
	for _, x := range xs {
		a := math.Abs(x)
		if math.IsNaN(a) {
			return a
		}
		if a > m {
			m = a
		}
	}
	if m == 0 || math.IsInf(m, 0) {
		return m
	}
	var sum float64
	for _, x := range xs {
		r := x / m
		sum += r * r
	}

	return m * math.Sqrt(sum)
}

// usableLength reports whether l can be divided out of a vector to give
// unit length.
func usableLength(l float64) bool {
	return l != 0 && !math.IsInf(l, 0) && !math.IsNaN(l)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// MultiplyMatrices returns ms[0]×ms[1]×…×ms[n-1], folding left to right.
// Errors: ErrTooFewOperands for fewer than two matrices; the first Mul error
// otherwise, tagged with the failing operand index.
func MultiplyMatrices(ms ...*Matrix) (*Matrix, error) {
	if len(ms) < 2 {
		return nil, linalgErrorf(opMultiply, ErrTooFewOperands)
	}
	acc := ms[0]
	for i, m := range ms[1:] {
		next, err := acc.Mul(m)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %d: %w", opMultiply, i+1, err)
		}
		acc = next
	}

	return acc, nil
}
