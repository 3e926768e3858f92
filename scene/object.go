// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/uvncam/linalg"
)

// Mesh is draw data produced by an external loader (e.g. an OBJ parser).
// The scene never interprets it; it is carried alongside the model matrix so
// a render loop can issue the draw call.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	DrawMode uint32 // host graphics API primitive, e.g. TRIANGLES
}

// Option configures an Object.
type Option func(*Object)

// WithOrder sets the factor order of the model matrix.
// Panics for an unknown order.
func WithOrder(order linalg.TransformOrder) Option {
	switch order {
	case linalg.OrderTRS, linalg.OrderTSR, linalg.OrderSRT:
	default:
		panic(fmt.Sprintf("scene: WithOrder: unknown order %v", order))
	}

	return func(o *Object) { o.order = order }
}

// WithTransform sets the initial pose.
func WithTransform(t linalg.Transform) Option {
	return func(o *Object) { o.transform = t }
}

// Object is a mesh with a pose. The model matrix is recomputed eagerly by
// every setter.
type Object struct {
	mesh      Mesh
	transform linalg.Transform
	order     linalg.TransformOrder

	model      *linalg.Matrix
	modelArray []float64
}

// NewObject returns an object at the identity pose.
func NewObject(mesh Mesh, opts ...Option) *Object {
	o := &Object{
		mesh:      mesh,
		transform: linalg.NewTransform(),
		order:     linalg.DefaultTransformOrder,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(o)
		}
	}
	o.updateModel()

	return o
}

// Mesh returns the draw data.
func (o *Object) Mesh() Mesh { return o.mesh }

// Transform returns the current pose.
func (o *Object) Transform() linalg.Transform { return o.transform }

// Order returns the model matrix factor order.
func (o *Object) Order() linalg.TransformOrder { return o.order }

// Position returns the translation.
func (o *Object) Position() linalg.Vector3 { return o.transform.Position }

// Scale returns the per-axis scale.
func (o *Object) Scale() linalg.Vector3 { return o.transform.Scale }

// Rotation returns the Euler rotation in degrees.
func (o *Object) Rotation() linalg.Vector3 { return o.transform.Rotation }

// SetPosition replaces the translation.
func (o *Object) SetPosition(p linalg.Vector3) {
	o.transform.Position = p
	o.updateModel()
}

// SetScale replaces the per-axis scale.
func (o *Object) SetScale(s linalg.Vector3) {
	o.transform.Scale = s
	o.updateModel()
}

// SetRotation replaces the Euler rotation (degrees about x, y, z).
func (o *Object) SetRotation(r linalg.Vector3) {
	o.transform.Rotation = r
	o.updateModel()
}

// SetTransform replaces the whole pose.
func (o *Object) SetTransform(t linalg.Transform) {
	o.transform = t
	o.updateModel()
}

// Model returns the cached model matrix.
func (o *Object) Model() *linalg.Matrix { return o.model }

// ModelArray returns a copy of the model matrix in column-major order.
func (o *Object) ModelArray() []float64 {
	return append([]float64(nil), o.modelArray...)
}

// Uniform returns the model matrix as a float32 column-major mgl32.Mat4.
func (o *Object) Uniform() mgl32.Mat4 {
	u, err := o.model.Uniform()
	if err != nil {
		panic(fmt.Sprintf("scene: model matrix is not 4x4: %v", err))
	}

	return u
}

// updateModel cannot fail: the order is validated by WithOrder and the
// rotation axes are the standard basis.
func (o *Object) updateModel() {
	m, err := linalg.ComposeModel(o.transform, o.order)
	if err != nil {
		panic(fmt.Sprintf("scene: compose model: %v", err))
	}
	o.model = m
	o.modelArray = m.ToArray()
}
