// SPDX-License-Identifier: MIT

package camera

import (
	"fmt"

	"github.com/katalvlaran/uvncam/linalg"
)

// View is the derived UVN basis of a camera and its world-to-view matrix.
// U (right), V (up) and N (forward) are mutually orthogonal unit vectors.
type View struct {
	U, V, N linalg.Vector3
	Matrix  *linalg.Matrix
}

// DeriveView computes the view for a camera at position looking along
// target with the up hint up:
//
//	n = normalise(target)
//	u = normalise(up × n)
//	v = n × u
//
// and the matrix with rows u, v, n and translation -dot(position, ·).
// It is pure: every Camera mutator calls it after changing state.
//
// Errors: linalg.ErrDegenerateVector when target is zero or up is parallel
// to target.
func DeriveView(position, target, up linalg.Vector3) (View, error) {
	n, err := target.Normalized()
	if err != nil {
		return View{}, fmt.Errorf("DeriveView: target: %w", err)
	}
	u, err := up.Cross(n).Normalized()
	if err != nil {
		return View{}, fmt.Errorf("DeriveView: up parallel to target: %w", err)
	}
	v := n.Cross(u)

	return View{U: u, V: v, N: n, Matrix: linalg.View(position, u, v, n)}, nil
}

// orient rotates initialTarget by the cumulative rotation (yaw about worldUp,
// then pitch about the yawed horizontal axis) and returns the new forward
// direction and up vector. Composing the two rotations this way keeps roll
// from creeping in during mouse-look.
//
// A positive pitch tilts the forward direction towards worldUp.
func orient(initialTarget, worldUp linalg.Vector3, yaw, pitch float64) (target, up linalg.Vector3, err error) {
	yawed, err := initialTarget.Rotate(yaw, worldUp)
	if err != nil {
		return target, up, err
	}
	axis, err := worldUp.Cross(yawed).Normalized()
	if err != nil {
		return target, up, fmt.Errorf("orient: forward parallel to world up: %w", err)
	}
	// Rotating about worldUp×forward by a positive angle tips forward away
	// from worldUp, hence the negated pitch.
	pitched, err := yawed.Rotate(-pitch, axis)
	if err != nil {
		return target, up, err
	}
	n, err := pitched.Normalized()
	if err != nil {
		return target, up, err
	}

	return n, n.Cross(axis), nil
}
