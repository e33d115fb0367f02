// SPDX-License-Identifier: MIT

package sot3

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvlie/linalg"
	"github.com/katalvlaran/lvlie/so3"
)

// SOT3 is an element of the scaled-rotation group SO(3) × ℝ₊: a rotation R
// composed with an isotropic scale A.
//
// Invariant (documented, not enforced): R is a valid rotation and A > 0.
// Constructors and operations never check it; use Validate on untrusted data.
// Violations propagate as NaN/Inf through later computations.
//
// SOT3 is a plain value: copies are independent, and only SetIdentity and
// Invert mutate the receiver.
type SOT3[S linalg.Scalar, Rot so3.Rotation[S, Rot]] struct {
	R Rot // rotation part
	A S   // scale part
}

// Common instantiations.
type (
	// SOT3d is the double-precision, matrix-backed group.
	SOT3d = SOT3[float64, so3.Matrix[float64]]
	// SOT3f is the single-precision, matrix-backed group.
	SOT3f = SOT3[float32, so3.Matrix[float32]]
	// SOT3cd is the complex128, matrix-backed group.
	SOT3cd = SOT3[complex128, so3.Matrix[complex128]]
	// SOT3cf is the complex64, matrix-backed group.
	SOT3cf = SOT3[complex64, so3.Matrix[complex64]]
	// SOT3q is the double-precision, quaternion-backed group.
	SOT3q = SOT3[float64, so3.Quat]
)

// New wraps r and a unmodified. The caller guarantees a > 0.
func New[S linalg.Scalar, Rot so3.Rotation[S, Rot]](r Rot, a S) SOT3[S, Rot] {
	return SOT3[S, Rot]{R: r, A: a}
}

// Identity returns the element with identity rotation and unit scale.
func Identity[Rot so3.Rotation[S, Rot], S linalg.Scalar]() SOT3[S, Rot] {
	var t SOT3[S, Rot]
	t.SetIdentity()

	return t
}

// Random returns an element with a uniformly sampled rotation and scale
// exp(u), u uniform in [0, 1). The scale distribution carries no statistical
// meaning; use it for smoke tests. A nil rnd uses the math/rand/v2
// package-level source.
func Random[Rot so3.Rotation[S, Rot], S linalg.Scalar](rnd *rand.Rand) SOT3[S, Rot] {
	var zero Rot
	r := zero.Random(rnd)

	u := so3.Uniform(rnd)

	return SOT3[S, Rot]{R: r, A: linalg.Exp(linalg.FromFloat[S](u))}
}

// FromMatrix reads the rotation from the top-left 3×3 block of m (coerced by
// the rotation representation) and the scale from m[3][3]. Nothing is
// validated; see FromMatrixChecked.
func FromMatrix[Rot so3.Rotation[S, Rot], S linalg.Scalar](m linalg.Mat4[S]) SOT3[S, Rot] {
	var zero Rot

	return SOT3[S, Rot]{R: zero.FromMatrix(m.Block3()), A: m[3][3]}
}

// SetIdentity resets t to the identity element.
func (t *SOT3[S, Rot]) SetIdentity() {
	var zero Rot
	t.R = zero.Identity()
	t.A = 1
}

// Apply maps point p to A·R(p).
func (t SOT3[S, Rot]) Apply(p linalg.Vec3[S]) linalg.Vec3[S] {
	return t.R.Apply(p).Scale(t.A)
}

// Mul returns the group product t·o: rotations composed in the same order
// as Rot.Mul, scales multiplied. t.Mul(o).Apply(p) == t.Apply(o.Apply(p)).
func (t SOT3[S, Rot]) Mul(o SOT3[S, Rot]) SOT3[S, Rot] {
	return SOT3[S, Rot]{R: t.R.Mul(o.R), A: t.A * o.A}
}

// ApplyInverse maps p to R⁻¹(p)/A, the point before t was applied.
// Equivalent to t.Inverse().Apply(p) without building the inverse.
func (t SOT3[S, Rot]) ApplyInverse(p linalg.Vec3[S]) linalg.Vec3[S] {
	return t.R.ApplyInverse(p).Scale(1 / t.A)
}

// Invert replaces t with its inverse. A zero scale yields ±Inf.
func (t *SOT3[S, Rot]) Invert() {
	t.R = t.R.Inverse()
	t.A = 1 / t.A
}

// Inverse returns the group inverse of t, leaving t unchanged.
func (t SOT3[S, Rot]) Inverse() SOT3[S, Rot] {
	return SOT3[S, Rot]{R: t.R.Inverse(), A: 1 / t.A}
}

// Matrix returns the 4×4 block matrix diag(R, A). This is the algebra-sized
// container used for matrix interop, not a linear action on homogeneous points.
func (t SOT3[S, Rot]) Matrix() linalg.Mat4[S] {
	m := linalg.Identity4[S]().WithBlock3(t.R.Matrix())
	m[3][3] = t.A

	return m
}

// Matrix3 returns A·R, the linear map t applies to points.
func (t SOT3[S, Rot]) Matrix3() linalg.Mat3[S] {
	return t.R.Matrix().Scale(t.A)
}

// Log is shorthand for Log(t).
func (t SOT3[S, Rot]) Log() linalg.Vec4[S] {
	return Log(t)
}

// ApproxEqual compares rotation matrices and scales entry-wise within eps
// (DefaultEpsilon unless WithEpsilon is given).
func (t SOT3[S, Rot]) ApproxEqual(o SOT3[S, Rot], opts ...Option) bool {
	cfg := gatherOptions(opts...)

	return linalg.EqualWithin(t.A, o.A, cfg.eps) && t.R.Matrix().ApproxEqual(o.R.Matrix(), cfg.eps)
}

func (t SOT3[S, Rot]) String() string {
	return fmt.Sprintf("sot3(a=%v, R=%v)", t.A, t.R.Matrix())
}
