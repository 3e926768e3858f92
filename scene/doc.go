// Package scene holds renderable objects and their model matrices.
//
// Each Object carries opaque draw data from an external loader and a pose
// (position, Euler rotation in degrees, scale). Setting any part of the pose
// recomputes the model matrix with linalg.ComposeModel in the object's
// TransformOrder (translate × rotations × scale by default).
//
// Scene.Frame gathers the view, projection and model arrays for one frame so
// the render loop uploads a consistent set.
package scene
