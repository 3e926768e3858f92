// SPDX-License-Identifier: MIT
package camera_test

import (
	"testing"

	"github.com/katalvlaran/uvncam/camera"
	"github.com/katalvlaran/uvncam/linalg"
	"github.com/stretchr/testify/require"
)

func TestMovement_Axes(t *testing.T) {
	const dt = 0.5
	step := camera.DefaultSpeed * dt

	cases := []struct {
		name string
		move func(*camera.Camera, float64)
		want linalg.Vector3
	}{
		{"forward", (*camera.Camera).Forward, linalg.Vector3{0, 0, step}},
		{"backward", (*camera.Camera).Backward, linalg.Vector3{0, 0, -step}},
		{"strafe right", (*camera.Camera).StrafeRight, linalg.Vector3{step, 0, 0}},
		{"strafe left", (*camera.Camera).StrafeLeft, linalg.Vector3{-step, 0, 0}},
		{"strafe up", (*camera.Camera).StrafeUp, linalg.Vector3{0, step, 0}},
		{"strafe down", (*camera.Camera).StrafeDown, linalg.Vector3{0, -step, 0}},
		{"move up", (*camera.Camera).MoveUp, linalg.Vector3{0, step, 0}},
		{"move down", (*camera.Camera).MoveDown, linalg.Vector3{0, -step, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newDefault(t)
			n := c.N()
			tc.move(c, dt)
			requireVec3(t, tc.want, c.Position(), tol)
			require.Equal(t, n, c.N(), "movement must not change orientation")
		})
	}
}

func TestMovement_StrafeLeftIsTargetCrossUp(t *testing.T) {
	c := newDefault(t)
	c.Rotate(linalg.Vector2{37, 12})
	left, err := c.Target().Cross(c.Up()).Normalized()
	require.NoError(t, err)

	c.StrafeLeft(1)
	requireVec3(t, left.Scale(camera.DefaultSpeed), c.Position(), tol)
}

func TestMovement_PitchedForwardVsMoveUp(t *testing.T) {
	c := newDefault(t, camera.WithSpeed(2))
	c.Rotate(linalg.Vector2{0, 30})

	c.Forward(1)
	require.InDelta(t, 1, c.Position().Y(), tol) // 2 × sin 30°

	c.SetPosition(linalg.Zero3())
	c.MoveUp(1)
	requireVec3(t, linalg.Vector3{0, 2, 0}, c.Position(), tol)
}

func TestMovement_RefreshesView(t *testing.T) {
	c := newDefault(t)
	c.Forward(1)
	arr := c.ViewArray()
	// translation column holds -dot(p, n)
	require.InDelta(t, -camera.DefaultSpeed, arr[14], tol)
	u := c.Uniform()
	require.Equal(t, c.ViewMatrix().ToArray32(), u[:])
}

func TestMovement_NegativeDeltaReverses(t *testing.T) {
	c := newDefault(t)
	c.Forward(-1)
	requireVec3(t, linalg.Vector3{0, 0, -camera.DefaultSpeed}, c.Position(), tol)
}
