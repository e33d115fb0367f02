// Package lvlie is a small, pure-Go toolkit of Lie groups for geometry:
// value types you can compose, invert, exponentiate and take logarithms of
// with the same algebraic discipline robotics and vision code expects.
//
// 🚀 What is inside?
//
//	• linalg/ — fixed-size generic vectors and matrices (Vec3, Vec4, Mat3,
//	            Mat4) over float32, float64, complex64 and complex128, with
//	            gonum interop
//	• so3/    — the rotation-group capability (Rotation) plus matrix- and
//	            quaternion-backed implementations
//	• sot3/   — the scaled-rotation group SO(3) × ℝ₊ (rotation + isotropic
//	            scale): identity, composition, inversion, point action,
//	            exp/log and wedge/vee on the 4-vector algebra
//
// ✨ Why lvlie?
//
//   - Value semantics – every element is a plain array-backed value
//   - Representation-agnostic – sot3 works over any so3.Rotation
//   - Generic scalars – single/double precision, real or complex
//   - No hidden checks – invariants are documented; Validate is opt-in
//
// Quick example:
//
//	T := sot3.Exp[so3.Quat](linalg.Vec4[float64]{0, 0, math.Pi / 2, math.Log(2)})
//	p := T.Apply(linalg.Vec3[float64]{1, 0, 0}) // (0, 2, 0)
//
// See examples/ for a runnable scenario.
//
//	go get github.com/katalvlaran/lvlie
package lvlie
