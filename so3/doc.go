// Package so3 defines the rotation-group capability (Rotation) consumed by
// the scaled-rotation group, and two representations satisfying it:
//
//   - Matrix[S]: an orthonormal 3×3 matrix, generic over every linalg.Scalar.
//     Exp uses Rodrigues' formula, Log returns angles in [0, π] with
//     dedicated small-angle and near-π branches.
//   - Quat: a float64 unit quaternion built on gonum's num/quat, rotating
//     points through spatial/r3.
//
// Both agree on conventions: Mul composes right-to-left on points, Skew/Vee
// is the standard hat map, and Random samples uniformly (Shoemake).
package so3
