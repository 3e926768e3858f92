// SPDX-License-Identifier: MIT

// Package camera: functional configuration.
//
// Design goals:
//   - No global state: every Camera resolves its own options at New.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on runtime input.

package camera

import (
	"math"

	"github.com/katalvlaran/uvncam/linalg"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSpeed scales every movement: displacement = speed × deltaTime.
	DefaultSpeed = 5.0

	// DefaultPitchLimit bounds the cumulative pitch, in degrees, on both sides
	// of the initial forward direction. Stopping short of 90 keeps the view
	// from flipping over at the poles.
	DefaultPitchLimit = 89.0

	// DefaultInvertY keeps the default vertical convention: a positive pitch
	// input looks up.
	DefaultInvertY = false
)

// DefaultWorldUp returns the default world up axis, +Y.
func DefaultWorldUp() linalg.Vector3 { return linalg.UnitY() }

// ---------- Internal panic messages ----------

const (
	panicSpeedInvalid      = "camera: WithSpeed: speed must be finite and > 0"
	panicPitchLimitInvalid = "camera: WithPitchLimit: limit must be in (0, 90) degrees"
	panicWorldUpInvalid    = "camera: WithWorldUp: axis must be finite and non-zero"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	speed      float64
	pitchLimit float64
	invertY    bool
	worldUp    linalg.Vector3 // unit length
}

func defaultOptions() options {
	return options{
		speed:      DefaultSpeed,
		pitchLimit: DefaultPitchLimit,
		invertY:    DefaultInvertY,
		worldUp:    DefaultWorldUp(),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithSpeed sets the movement speed in world units per second.
// Panics when speed is not finite or not positive.
func WithSpeed(speed float64) Option {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		panic(panicSpeedInvalid)
	}

	return func(o *options) { o.speed = speed }
}

// WithPitchLimit sets the cumulative pitch bound in degrees.
// Panics unless 0 < limit < 90.
func WithPitchLimit(limit float64) Option {
	if math.IsNaN(limit) || limit <= 0 || limit >= 90 {
		panic(panicPitchLimitInvalid)
	}

	return func(o *options) { o.pitchLimit = limit }
}

// WithInvertY flips the sign of vertical rotation input, for hosts that
// report mouse movement with y growing downwards and want "mouse down" to
// look down.
func WithInvertY() Option {
	return func(o *options) { o.invertY = true }
}

// WithWorldUp sets the world up axis used for yaw and for MoveUp/MoveDown.
// The axis is normalised. Panics for a zero or non-finite axis.
func WithWorldUp(axis linalg.Vector3) Option {
	for _, x := range axis {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic(panicWorldUpInvalid)
		}
	}
	unit, err := axis.Normalized()
	if err != nil {
		panic(panicWorldUpInvalid)
	}

	return func(o *options) { o.worldUp = unit }
}
