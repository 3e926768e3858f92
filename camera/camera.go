// SPDX-License-Identifier: MIT

package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/uvncam/linalg"
)

// parallelTol is the smallest |a×b| for unit a and b that still counts as
// "not parallel" when validating directions.
const parallelTol = 1e-9

// Camera is a first-person UVN camera.
//
// State is a continuous pose: position, cumulative rotation (yaw, pitch in
// degrees; z is always 0) applied to the initial target, and the derived
// target/up pair. Every mutator recomputes the basis and view matrix eagerly,
// so the cached matrix is never stale when the render loop reads it.
//
// A Camera is not safe for concurrent use; it is owned by a single render loop.
type Camera struct {
	position      linalg.Vector3
	rotation      linalg.Vector3
	deltaRotation linalg.Vector3
	initialTarget linalg.Vector3 // unit
	target        linalg.Vector3 // unit
	up            linalg.Vector3

	view      View
	viewArray []float64
	uniform   mgl32.Mat4

	opts options
}

// New returns a camera at position looking along target with the up hint up.
//
// Errors:
//   - ErrNonFinite when any component is NaN or ±Inf;
//   - linalg.ErrDegenerateVector when target or up is zero,
//     up is parallel to target, or target is parallel to the world up axis
//     (yaw would have no horizontal axis to pitch about).
//
// Implementation:
//   - Stage 1: apply options (panicking ones fail before any validation).
//   - Stage 2: validate finiteness, then target and up separately.
//   - Stage 3: derive the first view; rotation starts at (0, 0, 0).
func New(position, target, up linalg.Vector3, opts ...Option) (*Camera, error) {
	o := gatherOptions(opts)

	// 1) Reject NaN/Inf before any normalisation can hide them
	if !finite(position) || !finite(target) || !finite(up) {
		return nil, fmt.Errorf("camera.New: %w", ErrNonFinite)
	}

	// 2) The stored reference direction is always unit length
	dir, err := target.Normalized()
	if err != nil {
		return nil, fmt.Errorf("camera.New: target: %w", err)
	}
	if _, err = up.Normalized(); err != nil {
		return nil, fmt.Errorf("camera.New: up: %w", err)
	}

	// 3) Yaw needs a horizontal axis to pitch about
	if parallel(dir, o.worldUp) {
		return nil, fmt.Errorf("camera.New: target parallel to world up: %w", linalg.ErrDegenerateVector)
	}
	c := &Camera{
		position:      position,
		initialTarget: dir,
		target:        dir,
		up:            up,
		opts:          o,
	}
	if err = c.refreshView(); err != nil {
		return nil, fmt.Errorf("camera.New: %w", err)
	}

	return c, nil
}

// parallel reports whether a and b (non-zero) point along the same line.
func parallel(a, b linalg.Vector3) bool {
	ua, _ := a.Normalized()
	ub, _ := b.Normalized()

	return ua.Cross(ub).Length() < parallelTol
}

// ---------- Accessors ----------

// Position returns the camera position.
func (c *Camera) Position() linalg.Vector3 { return c.position }

// Rotation returns the cumulative (yaw, pitch, 0) in degrees.
func (c *Camera) Rotation() linalg.Vector3 { return c.rotation }

// DeltaRotation returns the rotation actually applied by the last rotation
// call, after clamping.
func (c *Camera) DeltaRotation() linalg.Vector3 { return c.deltaRotation }

// Target returns the unit look direction.
func (c *Camera) Target() linalg.Vector3 { return c.target }

// Up returns the current up vector.
func (c *Camera) Up() linalg.Vector3 { return c.up }

// U returns the derived right vector.
func (c *Camera) U() linalg.Vector3 { return c.view.U }

// V returns the derived up vector.
func (c *Camera) V() linalg.Vector3 { return c.view.V }

// N returns the derived forward vector.
func (c *Camera) N() linalg.Vector3 { return c.view.N }

// View returns the derived basis and view matrix.
func (c *Camera) View() View { return c.view }

// ViewMatrix returns the cached world-to-view matrix.
func (c *Camera) ViewMatrix() *linalg.Matrix { return c.view.Matrix }

// ViewArray returns a copy of the view matrix in column-major order.
func (c *Camera) ViewArray() []float64 {
	return append([]float64(nil), c.viewArray...)
}

// Uniform returns the view matrix as a float32 column-major mgl32.Mat4.
func (c *Camera) Uniform() mgl32.Mat4 { return c.uniform }

// Speed returns the configured movement speed.
func (c *Camera) Speed() float64 { return c.opts.speed }

// PitchLimit returns the configured cumulative pitch bound in degrees.
func (c *Camera) PitchLimit() float64 { return c.opts.pitchLimit }

// ---------- Orientation ----------

// SetPosition replaces the position. Orientation is unaffected.
func (c *Camera) SetPosition(p linalg.Vector3) {
	c.position = p
	c.mustRefreshView()
}

// Rotate applies an incremental rotation: delta.X() is yaw about the world
// up axis, delta.Y() is pitch (positive looks up unless WithInvertY).
// The cumulative pitch is clamped to ±PitchLimit(); once at a bound, further
// input in that direction has no effect. Yaw is unbounded.
// A NaN or ±Inf component is ignored; the other component still applies.
func (c *Camera) Rotate(delta linalg.Vector2) {
	dy := delta.Y()
	if c.opts.invertY {
		dy = -dy
	}
	c.setRotation(c.rotation.X()+delta.X(), c.rotation.Y()+dy)
}

// SetRotation sets the cumulative rotation from the initial target directly.
// The pitch is clamped like in Rotate; the vertical sign convention applies.
// A NaN or ±Inf component keeps its current value.
func (c *Camera) SetRotation(r linalg.Vector2) {
	pitch := r.Y()
	if c.opts.invertY {
		pitch = -pitch
	}
	c.setRotation(r.X(), pitch)
}

// setRotation stores the absolute (yaw, pitch) and reorients.
//
// Inputs:
//   - yaw, pitch: degrees; a non-finite value keeps the current component.
//
// Implementation:
//   - Stage 1: drop non-finite components (Clamp passes NaN through).
//   - Stage 2: clamp the pitch to ±pitchLimit.
//   - Stage 3: record the applied delta and rebuild the basis.
func (c *Camera) setRotation(yaw, pitch float64) {
	if !finiteAngle(yaw) {
		yaw = c.rotation.X()
	}
	if !finiteAngle(pitch) {
		pitch = c.rotation.Y()
	}
	limit := c.opts.pitchLimit
	pitch = linalg.Clamp(pitch, -limit, limit)

	next := linalg.Vector3{yaw, pitch, 0}
	c.deltaRotation = next.Sub(c.rotation)
	c.rotation = next
	c.mustReorient()
}

// LookAt turns the camera towards point. The horizontal part of that
// direction becomes the new yaw reference, so the rotation afterwards is
// (0, elevation, 0) where elevation is the angle above the horizon in
// degrees. The elevation is clamped to ±PitchLimit(), so a point steeper
// than the limit is looked at from the limit instead.
//
// Errors: ErrNonFinite for a NaN/Inf point; linalg.ErrDegenerateVector when
// point equals the position or the direction is parallel to the world up
// axis. The camera is left unchanged on error.
//
// Implementation:
//   - Stage 1: validate and normalise point - position.
//   - Stage 2: split it into elevation and horizontal heading.
//   - Stage 3: re-base initialTarget on the heading and seed the pitch.
func (c *Camera) LookAt(point linalg.Vector3) error {
	if !finite(point) {
		return fmt.Errorf("camera.LookAt: %w", ErrNonFinite)
	}
	dir, err := point.Sub(c.position).Normalized()
	if err != nil {
		return fmt.Errorf("camera.LookAt: %w", err)
	}
	if parallel(dir, c.opts.worldUp) {
		return fmt.Errorf("camera.LookAt: direction parallel to world up: %w", linalg.ErrDegenerateVector)
	}

	// 1) sin(elevation) is the component along the world up axis
	worldUp := c.opts.worldUp
	e := linalg.Clamp(dir.Dot(worldUp), -1, 1)
	elevation := linalg.RadiansToDegrees(math.Asin(e))

	// 2) The heading is non-zero since dir is not parallel to worldUp
	heading, err := dir.Sub(worldUp.Scale(e)).Normalized()
	if err != nil {
		return fmt.Errorf("camera.LookAt: %w", err)
	}

	// 3) Pitch is now measured from the horizon, so the clamp bounds it
	limit := c.opts.pitchLimit
	next := linalg.Vector3{0, linalg.Clamp(elevation, -limit, limit), 0}
	c.initialTarget = heading
	c.deltaRotation = next.Sub(c.rotation)
	c.rotation = next
	c.mustReorient()

	return nil
}

// ---------- Recomputation ----------

// reorient recomputes target and up from the cumulative rotation, then the view.
func (c *Camera) reorient() error {
	target, up, err := orient(c.initialTarget, c.opts.worldUp, c.rotation.X(), c.rotation.Y())
	if err != nil {
		return err
	}
	c.target, c.up = target, up

	return c.refreshView()
}

// refreshView recomputes {u, v, n}, the view matrix and its flattened forms.
// Nothing is stored unless every step succeeds.
func (c *Camera) refreshView() error {
	// 1) Basis and matrix
	view, err := DeriveView(c.position, c.target, c.up)
	if err != nil {
		return err
	}

	// 2) float32 column-major copy for the shader
	uniform, err := view.Matrix.Uniform()
	if err != nil {
		return err
	}

	// 3) Commit
	c.view = view
	c.viewArray = view.Matrix.ToArray()
	c.uniform = uniform

	return nil
}

// mustReorient and mustRefreshView back the mutators, which cannot fail
// once New has validated the initial pose: the yawed forward keeps its angle
// to the world up axis and the derived up is orthogonal to the forward.
func (c *Camera) mustReorient() {
	if err := c.reorient(); err != nil {
		panic(fmt.Sprintf("camera: orientation invariant violated: %v", err))
	}
}

func (c *Camera) mustRefreshView() {
	if err := c.refreshView(); err != nil {
		panic(fmt.Sprintf("camera: view invariant violated: %v", err))
	}
}

// finite reports whether all components of v are finite.
func finite(v linalg.Vector3) bool {
	for _, x := range v {
		if !finiteAngle(x) {
			return false
		}
	}

	return true
}

func finiteAngle(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
