// Package uvncam is the math core of a small real-time 3D viewer: a
// linear-algebra toolkit and a first-person UVN camera built on it.
//
// 🚀 What is inside?
//
//	• Matrices: immutable row-major storage, products, column-major export
//	• Vectors: fixed-size Vector2/3/4 plus a variable-length Vector
//	• Quaternions: Hamilton product, rotation matrices, matrix→quaternion
//	• Transforms: translate, scale, rotate, view, perspective, model order
//	• Camera: yaw/pitch mouse-look with a pitch clamp, strafing, LookAt
//	• Scene: objects with eagerly recomputed model matrices, frame snapshots
//
// Everything is organized under three subpackages:
//
//	linalg/: Matrix, Vector*, Quaternion, factories (Rotate, View, Perspective)
//	camera/: Camera, options, movement, Projection
//	scene/:  Object, Scene, Frame
//
// Matrices multiply column vectors on the right. ToArray and Uniform emit
// column-major data ready for a uniformMatrix4fv-style upload; the package
// never touches a GPU itself.
//
// Quick example:
//
//	cam, _ := camera.New(linalg.Zero3(), linalg.UnitZ(), linalg.UnitY())
//	cam.Rotate(linalg.Vector2{90, 0}) // now facing +x
//	cam.Forward(dt)
//	view := cam.Uniform()             // mgl32.Mat4
//
//	go get github.com/katalvlaran/uvncam
package uvncam
