// SPDX-License-Identifier: MIT

// Package so3: the rotation-group capability consumed by the scaled-rotation
// group. Anything satisfying Rotation can serve as the rotation part of a
// sot3.SOT3, whatever its storage (matrix, quaternion, ...).
package so3

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvlie/linalg"
)

// Rotation is the capability set of a 3D rotation group representation R
// over scalar S.
//
// Go has no static interface methods, so group-level operations (Identity,
// FromMatrix, Exp, Random, Skew, Vee) are methods whose receiver is ignored;
// callers invoke them on the zero value:
//
//	var zero R
//	r := zero.Exp(w)
//
// Element operations act on the receiver and never mutate it.
type Rotation[S linalg.Scalar, R any] interface {
	// Identity returns the identity rotation.
	Identity() R
	// FromMatrix coerces a 3×3 matrix into the representation. Input that is
	// not orthonormal is handled by the representation's own policy.
	FromMatrix(m linalg.Mat3[S]) R
	// Exp maps angular coordinates (axis·angle) onto the group.
	Exp(w linalg.Vec3[S]) R
	// Random samples a rotation uniformly. A nil rnd uses the package-level
	// math/rand/v2 source.
	Random(rnd *rand.Rand) R
	// Skew maps w to the skew-symmetric matrix [w]× with [w]×v = w × v.
	Skew(w linalg.Vec3[S]) linalg.Mat3[S]
	// Vee is the inverse of Skew on skew-symmetric matrices.
	Vee(m linalg.Mat3[S]) linalg.Vec3[S]

	// Log maps the rotation to angular coordinates with angle in [0, π].
	Log() linalg.Vec3[S]
	// Mul composes: (a.Mul(b)).Apply(p) == a.Apply(b.Apply(p)).
	Mul(other R) R
	// Inverse returns the inverse rotation.
	Inverse() R
	// Apply rotates point p.
	Apply(p linalg.Vec3[S]) linalg.Vec3[S]
	// ApplyInverse rotates point p by the inverse rotation.
	ApplyInverse(p linalg.Vec3[S]) linalg.Vec3[S]
	// Matrix returns the 3×3 rotation matrix.
	Matrix() linalg.Mat3[S]
}

// Skew returns the skew-symmetric matrix of w:
//
//	⎡  0  -w2   w1 ⎤
//	⎢  w2   0  -w0 ⎥
//	⎣ -w1  w0    0 ⎦
func Skew[S linalg.Scalar](w linalg.Vec3[S]) linalg.Mat3[S] {
	return linalg.Mat3[S]{
		{0, -w[2], w[1]},
		{w[2], 0, -w[0]},
		{-w[1], w[0], 0},
	}
}

// Vee extracts w from a skew-symmetric matrix. Only the lower triangle is
// read, so Vee(Skew(w)) == w exactly.
func Vee[S linalg.Scalar](m linalg.Mat3[S]) linalg.Vec3[S] {
	return linalg.Vec3[S]{m[2][1], m[0][2], m[1][0]}
}

// IsOrthonormal reports whether mᵀm ≈ I and det(m) ≈ +1 within tol.
func IsOrthonormal[S linalg.Scalar](m linalg.Mat3[S], tol float64) bool {
	if !m.Transpose().Mul(m).ApproxEqual(linalg.Identity3[S](), tol) {
		return false
	}

	return linalg.EqualWithin(m.Det(), 1, tol)
}
