// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform returns m as an mgl32.Mat4: float32, column-major, ready for
// gl.UniformMatrix4fv(loc, 1, false, &u[0]).
// Errors: ErrNilMatrix, ErrDimensionMismatch when m is not 4×4.
func (m *Matrix) Uniform() (mgl32.Mat4, error) {
	if err := validateShape(m, 4, 4); err != nil {
		return mgl32.Mat4{}, linalgErrorf(opUniform, err)
	}
	var u mgl32.Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			u[j*4+i] = float32(m.data[i*4+j])
		}
	}

	return u, nil
}

// Vec3 narrows v to an mgl32.Vec3, e.g. for a camera-position uniform.
func (v Vector3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
