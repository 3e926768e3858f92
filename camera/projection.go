// SPDX-License-Identifier: MIT

package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/uvncam/linalg"
)

// Projection defaults.
const (
	DefaultFieldOfView = 90.0
	DefaultNear        = 0.1
	DefaultFar         = 100.0
)

// Projection holds the perspective parameters a host binds to its UI
// (field of view in degrees, aspect ratio, clip planes).
type Projection struct {
	FieldOfView float64
	AspectRatio float64
	Near        float64
	Far         float64
}

// DefaultProjection returns the default frustum for the given aspect ratio.
func DefaultProjection(aspect float64) Projection {
	return Projection{
		FieldOfView: DefaultFieldOfView,
		AspectRatio: aspect,
		Near:        DefaultNear,
		Far:         DefaultFar,
	}
}

// Matrix returns the perspective matrix matching the camera's view space.
// Errors: linalg.ErrInvalidProjection for an impossible frustum.
func (p Projection) Matrix() (*linalg.Matrix, error) {
	return linalg.Perspective(p.FieldOfView, p.AspectRatio, p.Near, p.Far)
}

// Uniform returns the perspective matrix as a float32 column-major mgl32.Mat4.
func (p Projection) Uniform() (mgl32.Mat4, error) {
	m, err := p.Matrix()
	if err != nil {
		return mgl32.Mat4{}, err
	}

	return m.Uniform()
}
