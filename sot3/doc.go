// Package sot3 implements the scaled-rotation group SOT(3) = SO(3) × ℝ₊:
// a 3D rotation composed with a strictly positive isotropic scale.
//
// 🚀 What is SOT(3)?
//
//	An element T = (R, a) maps a point p to a·R·p. It is the similarity
//	transform without translation, used by robotics, vision and estimation
//	filters that must compose rotation and scale with Lie-group discipline.
//
// ✨ Key features:
//   - generic over the scalar (float32, float64, complex64, complex128)
//   - generic over the rotation representation (so3.Matrix, so3.Quat, or
//     any type satisfying so3.Rotation)
//   - identity, composition, inversion, point action and inverse action
//   - exponential / logarithm maps and wedge / vee on the 4-vector algebra
//     (ω₀, ω₁, ω₂, log a)
//   - opt-in validation (Validate, FromMatrixChecked, FromDense)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlie/sot3"
//
//	T := sot3.Exp[so3.Matrix[float64]](linalg.Vec4[float64]{0, 0, math.Pi / 2, math.Log(2)})
//	p := T.Apply(linalg.Vec3[float64]{1, 0, 0}) // (0, 2, 0)
//	q := T.ApplyInverse(p)                      // (1, 0, 0)
//	v := sot3.Log(T)                            // (0, 0, π/2, ln 2)
//
// Invariants:
//
//	The rotation must be valid and the scale positive. Neither is checked
//	by the operations: degenerate values (zero scale, non-orthonormal
//	blocks) propagate as NaN/Inf. Call Validate on untrusted input.
//
// Concurrency:
//
//	Elements are plain values. Concurrent reads are safe; concurrent calls
//	to SetIdentity/Invert on the same value need external synchronisation.
//
// Performance:
//
//	Every operation is O(1) and allocation-free, except Dense/FromDense
//	which copy into gonum matrices.
package sot3
