// SPDX-License-Identifier: MIT
// Package linalg - constructors for common matrices.
//
// All 4×4 factories use homogeneous coordinates and assume column vectors
// (M×v), so the rightmost factor of a product is applied first.

package linalg

import (
	"fmt"
	"math"
)

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape when n <= 0.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opIdentity, n, ErrBadShape)
	}
	m := newZero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ScaleMatrix returns the homogeneous scaling matrix diag(x, y, z, 1).
func ScaleMatrix(x, y, z float64) *Matrix {
	return fromRows(
		[]float64{x, 0, 0, 0},
		[]float64{0, y, 0, 0},
		[]float64{0, 0, z, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Translate returns the homogeneous translation matrix by (x, y, z).
func Translate(x, y, z float64) *Matrix {
	return fromRows(
		[]float64{1, 0, 0, x},
		[]float64{0, 1, 0, y},
		[]float64{0, 0, 1, z},
		[]float64{0, 0, 0, 1},
	)
}

// Rotate returns the 4×4 matrix rotating by degrees about axis (right-handed).
// The axis need not be normalised.
//
// Implementation:
//   - Stage 1: FromRotation(degrees, axis) builds the unit quaternion.
//   - Stage 2: expand it with the quaternion→matrix formula.
//
// Errors: ErrDegenerateVector for a zero-length axis.
func Rotate(degrees float64, axis Vector3) (*Matrix, error) {
	q, err := FromRotation(degrees, axis)
	if err != nil {
		return nil, linalgErrorf(opRotate, err)
	}

	return q.Matrix(), nil
}

// View returns the world-to-view transform for a camera at position with the
// orthonormal basis {u, v, n}: rows u, v, n carry the basis and the last
// column holds -dot(position, u), -dot(position, v), -dot(position, n).
func View(position, u, v, n Vector3) *Matrix {
	return fromRows(
		[]float64{u[0], u[1], u[2], -position.Dot(u)},
		[]float64{v[0], v[1], v[2], -position.Dot(v)},
		[]float64{n[0], n[1], n[2], -position.Dot(n)},
		[]float64{0, 0, 0, 1},
	)
}

// Perspective returns a projection for the view space produced by View,
// where the camera looks down +z. Points at depth near map to clip z = -1
// and points at depth far map to clip z = +1; w receives the view depth.
//
// Errors: ErrInvalidProjection unless 0 < fovDegrees < 180, aspect > 0 and
// 0 < near < far (all finite).
func Perspective(fovDegrees, aspect, near, far float64) (*Matrix, error) {
	for _, x := range [...]float64{fovDegrees, aspect, near, far} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, linalgErrorf(opPerspect, ErrInvalidProjection)
		}
	}
	if fovDegrees <= 0 || fovDegrees >= 180 || aspect <= 0 || near <= 0 || far <= near {
		return nil, fmt.Errorf("%s(fov=%g, aspect=%g, near=%g, far=%g): %w",
			opPerspect, fovDegrees, aspect, near, far, ErrInvalidProjection)
	}
	f := 1 / math.Tan(DegreesToRadians(fovDegrees)/2)
	depth := far - near

	return fromRows(
		[]float64{f / aspect, 0, 0, 0},
		[]float64{0, f, 0, 0},
		[]float64{0, 0, (far + near) / depth, -2 * far * near / depth},
		[]float64{0, 0, 1, 0},
	), nil
}
