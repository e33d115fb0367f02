// SPDX-License-Identifier: MIT

package so3

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvlie/linalg"
)

// Series cut-offs for the exponential and logarithm maps.
const (
	// smallAngleSqr: below this |θ²| Rodrigues coefficients use Taylor series.
	smallAngleSqr = 1e-8
	// smallAngle: below this |θ| the logarithm uses θ/sinθ ≈ 1 + θ²/6.
	smallAngle = 1e-4
	// nearPi: when π-θ is below this the axis is recovered from the
	// symmetric part of R instead of dividing by sinθ.
	nearPi = 1e-3
)

// Matrix is a rotation stored as an orthonormal 3×3 matrix.
//
// Construct with a conversion, Matrix[S](m), or through Identity/Exp/Random.
// The zero value is the zero matrix, not the identity; it is only meant as a
// receiver for the group-level methods.
type Matrix[S linalg.Scalar] linalg.Mat3[S]

var (
	_ Rotation[float64, Matrix[float64]]       = Matrix[float64]{}
	_ Rotation[float32, Matrix[float32]]       = Matrix[float32]{}
	_ Rotation[complex128, Matrix[complex128]] = Matrix[complex128]{}
	_ Rotation[complex64, Matrix[complex64]]   = Matrix[complex64]{}
)

// Identity returns the 3×3 identity matrix.
func (Matrix[S]) Identity() Matrix[S] {
	return Matrix[S](linalg.Identity3[S]())
}

// FromMatrix stores m unchanged; no re-orthonormalisation is performed.
func (Matrix[S]) FromMatrix(m linalg.Mat3[S]) Matrix[S] {
	return Matrix[S](m)
}

// Exp evaluates Rodrigues' formula R = I + (sinθ/θ)[w]× + ((1-cosθ)/θ²)[w]×²
// with θ = |w|.
func (Matrix[S]) Exp(w linalg.Vec3[S]) Matrix[S] {
	k := Skew(w)
	theta2 := w.Dot(w)

	var a, b S
	if linalg.Abs(theta2) < smallAngleSqr {
		a = 1 - theta2/6
		b = 0.5 - theta2/24
	} else {
		theta := linalg.Sqrt(theta2)
		a = linalg.Sin(theta) / theta
		b = (1 - linalg.Cos(theta)) / theta2
	}

	r := linalg.Identity3[S]().Add(k.Scale(a)).Add(k.Mul(k).Scale(b))

	return Matrix[S](r)
}

// Random samples a rotation uniformly (Shoemake) and lifts it to S.
func (Matrix[S]) Random(rnd *rand.Rand) Matrix[S] {
	q := quatToMat(randomUnitQuat(rnd))

	var out Matrix[S]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = linalg.FromFloat[S](q[r][c])
		}
	}

	return out
}

// Skew implements Rotation via the package-level Skew.
func (Matrix[S]) Skew(w linalg.Vec3[S]) linalg.Mat3[S] { return Skew(w) }

// Vee implements Rotation via the package-level Vee.
func (Matrix[S]) Vee(m linalg.Mat3[S]) linalg.Vec3[S] { return Vee(m) }

// Log returns axis·θ with θ = acos((tr R - 1)/2) ∈ [0, π].
func (r Matrix[S]) Log() linalg.Vec3[S] {
	m := linalg.Mat3[S](r)
	c := (m.Trace() - 1) / 2
	theta := linalg.Acos(c)
	// vex = 2·sinθ·axis
	vex := Vee(m.Sub(m.Transpose()))

	switch {
	case linalg.Abs(theta) < smallAngle:
		return vex.Scale(0.5 * (1 + theta*theta/6))
	case math.Pi-linalg.Real(theta) < nearPi:
		return logNearPi(m, c, theta, vex)
	default:
		return vex.Scale(theta / (2 * linalg.Sin(theta)))
	}
}

// logNearPi recovers the axis from B = (R+Rᵀ)/2 - cI = (1-c)·a·aᵀ using the
// row with the largest diagonal entry, then fixes the sign against vex.
func logNearPi[S linalg.Scalar](m linalg.Mat3[S], c, theta S, vex linalg.Vec3[S]) linalg.Vec3[S] {
	b := m.Add(m.Transpose()).Scale(0.5).Sub(linalg.Identity3[S]().Scale(c))

	k := 0
	for i := 1; i < 3; i++ {
		if linalg.Real(b[i][i]) > linalg.Real(b[k][k]) {
			k = i
		}
	}

	axis := linalg.Vec3[S](b[k]).Scale(1 / linalg.Sqrt(b[k][k]*(1-c)))
	if linalg.Real(axis.Dot(vex)) < 0 {
		axis = axis.Scale(-1)
	}

	return axis.Scale(theta)
}

// Mul returns the matrix product r·other.
func (r Matrix[S]) Mul(other Matrix[S]) Matrix[S] {
	return Matrix[S](linalg.Mat3[S](r).Mul(linalg.Mat3[S](other)))
}

// Inverse returns Rᵀ.
func (r Matrix[S]) Inverse() Matrix[S] {
	return Matrix[S](linalg.Mat3[S](r).Transpose())
}

// Apply returns R·p.
func (r Matrix[S]) Apply(p linalg.Vec3[S]) linalg.Vec3[S] {
	return linalg.Mat3[S](r).MulVec(p)
}

// ApplyInverse returns Rᵀ·p.
func (r Matrix[S]) ApplyInverse(p linalg.Vec3[S]) linalg.Vec3[S] {
	return linalg.Mat3[S](r).Transpose().MulVec(p)
}

// Matrix returns the stored entries.
func (r Matrix[S]) Matrix() linalg.Mat3[S] {
	return linalg.Mat3[S](r)
}

// String formats r as "so3[a b c; d e f; g h i]".
func (r Matrix[S]) String() string {
	return "so3" + linalg.Mat3[S](r).String()
}
