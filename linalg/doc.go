// Package linalg is the small linear-algebra core behind the camera and
// scene packages: rectangular matrices, fixed-size vectors and quaternions.
//
// The linalg package provides:
//
//   - Matrix, an immutable rectangular grid with Mul/Add/Scale, row and
//     column extraction, and column-major linearisation (ToArray, Uniform)
//     for shader uniform upload.
//   - Vector (any dimension) and Vector2/Vector3/Vector4 value types with
//     dot and cross products, normalisation and rotation.
//   - Quaternion, used to derive rotation matrices from an axis and angle.
//   - Factories for identity, scale, translation, rotation, view and
//     perspective matrices, plus ComposeModel with an explicit TransformOrder.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrDegenerateVector,
// ErrNotRectangular, ...) wrapped with call-site context; match them with
// errors.Is. A zero-length vector is never silently normalised to NaN.
//
// Angles are in degrees at the API surface. All 4×4 matrices assume column
// vectors, so in A×B×v the factor B is applied first.
package linalg
