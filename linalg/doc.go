// Package linalg provides the small fixed-size numeric containers used by the
// Lie group packages of this module.
//
// What is inside:
//
//   - Scalar: the numeric capability set (float32, float64, complex64,
//     complex128) together with the transcendental helpers (Exp, Log, Sqrt,
//     Sin, Cos, Acos) dispatched to math or math/cmplx.
//   - Vec3, Vec4: column vectors stored by value.
//   - Mat3, Mat4: row-major square matrices stored by value.
//   - gonum interop for float64 data (r3.Vec, *mat.Dense).
//
// Every container is an array type, so values are copied on assignment and
// no operation allocates. Dimensions are compile-time constants; the only
// fallible operations are the conversions from dynamically sized gonum
// matrices, which report ErrDimensionMismatch.
//
//	v := linalg.Vec3[float64]{1, 2, 3}
//	m := linalg.Identity3[float64]().Scale(2)
//	w := m.MulVec(v) // {2, 4, 6}
package linalg
