// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/uvncam/camera"
)

// Scene is an ordered collection of objects.
type Scene struct {
	objects []*Object
}

// New returns an empty scene.
func New() *Scene { return &Scene{} }

// Add appends obj. Nil objects are ignored.
func (s *Scene) Add(obj *Object) {
	if obj == nil {
		return
	}
	s.objects = append(s.objects, obj)
}

// Remove deletes obj and reports whether it was present.
// The vacated slot is cleared so the scene does not keep obj reachable.
func (s *Scene) Remove(obj *Object) bool {
	i := slices.Index(s.objects, obj)
	if i < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, i, i+1)

	return true
}

// Objects returns the objects in insertion order. The slice is a copy.
func (s *Scene) Objects() []*Object {
	return append([]*Object(nil), s.objects...)
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// Frame is the set of column-major uniform arrays a render loop uploads for
// one frame.
type Frame struct {
	View       []float64
	Projection []float64
	Models     [][]float64 // one per object, in scene order
}

// Frame snapshots the camera view, the projection and every model matrix.
// Errors: linalg.ErrInvalidProjection for an impossible frustum.
func (s *Scene) Frame(cam *camera.Camera, proj camera.Projection) (Frame, error) {
	p, err := proj.Matrix()
	if err != nil {
		return Frame{}, fmt.Errorf("scene.Frame: %w", err)
	}
	f := Frame{
		View:       cam.ViewArray(),
		Projection: p.ToArray(),
		Models:     make([][]float64, len(s.objects)),
	}
	for i, o := range s.objects {
		f.Models[i] = o.ModelArray()
	}

	return f, nil
}
