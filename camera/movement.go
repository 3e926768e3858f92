// SPDX-License-Identifier: MIT

package camera

import (
	"github.com/katalvlaran/uvncam/linalg"
)

// Movement primitives displace the position by Speed() × deltaTime along one
// axis and recompute the view matrix. They never change the orientation.
// deltaTime is whatever unit the host render loop reports (seconds in
// practice); a negative value moves the other way.

// Forward moves along the look direction.
func (c *Camera) Forward(deltaTime float64) { c.move(c.view.N, deltaTime) }

// Backward moves against the look direction.
func (c *Camera) Backward(deltaTime float64) { c.move(c.view.N, -deltaTime) }

// StrafeLeft moves along target × up.
func (c *Camera) StrafeLeft(deltaTime float64) { c.move(c.left(), deltaTime) }

// StrafeRight moves along up × target.
func (c *Camera) StrafeRight(deltaTime float64) { c.move(c.left(), -deltaTime) }

// StrafeUp moves along the camera's own up vector.
func (c *Camera) StrafeUp(deltaTime float64) { c.move(c.view.V, deltaTime) }

// StrafeDown moves against the camera's own up vector.
func (c *Camera) StrafeDown(deltaTime float64) { c.move(c.view.V, -deltaTime) }

// MoveUp moves along the world up axis regardless of pitch.
func (c *Camera) MoveUp(deltaTime float64) { c.move(c.opts.worldUp, deltaTime) }

// MoveDown moves against the world up axis regardless of pitch.
func (c *Camera) MoveDown(deltaTime float64) { c.move(c.opts.worldUp, -deltaTime) }

// left is normalise(target × up), which equals -u.
func (c *Camera) left() linalg.Vector3 { return c.view.U.Negate() }

func (c *Camera) move(dir linalg.Vector3, deltaTime float64) {
	c.position = c.position.Add(dir.Scale(c.opts.speed * deltaTime))
	c.mustRefreshView()
}
