// SPDX-License-Identifier: MIT
// Package linalg - model transforms.
//
// A model matrix combines translation, Euler rotations (degrees about the
// world x, y and z axes) and scale. The order in which the factors are
// multiplied is an explicit parameter: TransformOrder names the product from
// left to right, and with column vectors the rightmost factor is applied
// first.

package linalg

import "fmt"

// TransformOrder selects how ComposeModel multiplies its factors.
type TransformOrder int

const (
	// OrderTRS is T × Rx × Ry × Rz × S: scale, then rotate, then translate.
	// This is the default order.
	OrderTRS TransformOrder = iota

	// OrderTSR is T × S × Rx × Ry × Rz: rotate, then scale, then translate.
	// Non-uniform scale then acts along the world axes rather than the
	// object's own axes.
	OrderTSR

	// OrderSRT is S × Rx × Ry × Rz × T: translate first, so the translation
	// itself is rotated and scaled.
	OrderSRT
)

// DefaultTransformOrder is the order used when none is given.
const DefaultTransformOrder = OrderTRS

// String implements fmt.Stringer.
func (o TransformOrder) String() string {
	switch o {
	case OrderTRS:
		return "TRS"
	case OrderTSR:
		return "TSR"
	case OrderSRT:
		return "SRT"
	default:
		return fmt.Sprintf("TransformOrder(%d)", int(o))
	}
}

// Transform is the pose of an object: Rotation holds Euler angles in degrees.
type Transform struct {
	Position Vector3
	Rotation Vector3
	Scale    Vector3
}

// NewTransform returns the identity pose (zero position and rotation, unit scale).
func NewTransform() Transform {
	return Transform{Position: Zero3(), Rotation: Zero3(), Scale: One3()}
}

// ComposeModel builds the 4×4 model matrix of t with the given order.
// Errors: ErrInvalidOrder for an unknown order.
func ComposeModel(t Transform, order TransformOrder) (*Matrix, error) {
	translate := Translate(t.Position[0], t.Position[1], t.Position[2])
	scale := ScaleMatrix(t.Scale[0], t.Scale[1], t.Scale[2])
	rx := mustRotate(t.Rotation[0], UnitX())
	ry := mustRotate(t.Rotation[1], UnitY())
	rz := mustRotate(t.Rotation[2], UnitZ())

	var factors []*Matrix
	switch order {
	case OrderTRS:
		factors = []*Matrix{translate, rx, ry, rz, scale}
	case OrderTSR:
		factors = []*Matrix{translate, scale, rx, ry, rz}
	case OrderSRT:
		factors = []*Matrix{scale, rx, ry, rz, translate}
	default:
		return nil, fmt.Errorf("%s(%v): %w", opCompose, order, ErrInvalidOrder)
	}
	m, err := MultiplyMatrices(factors...)
	if err != nil {
		return nil, linalgErrorf(opCompose, err)
	}

	return m, nil
}

// mustRotate is Rotate for the standard basis axes, which are never degenerate.
func mustRotate(degrees float64, axis Vector3) *Matrix {
	m, err := Rotate(degrees, axis)
	if err != nil {
		panic(err)
	}

	return m
}
