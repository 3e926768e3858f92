// Package camera implements a first-person UVN camera on top of linalg.
//
// What & Why:
//
//	A UVN camera is parameterised by three mutually orthogonal unit vectors:
//	u (right), v (up) and n (forward), derived from a look direction and an
//	up hint. Mouse-look is expressed as a cumulative (yaw, pitch) applied to
//	the initial look direction: yaw about the world up axis, then pitch about
//	the yawed horizontal axis. The pitch is clamped (±89° by default) so the
//	view never flips over at the poles.
//
// Data flow:
//
//	input handlers call Rotate / Forward / StrafeLeft / ... each frame →
//	the camera recomputes {u, v, n} and the view matrix synchronously →
//	the render loop reads ViewArray or Uniform and uploads it.
//
// Mutators never return errors: New validates the initial pose, and every
// later state is derived from it. A Camera is meant to be owned by a single
// render loop and is not safe for concurrent use.
package camera
