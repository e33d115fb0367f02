// SPDX-License-Identifier: MIT

package sot3

import (
	"github.com/katalvlaran/lvlie/linalg"
	"github.com/katalvlaran/lvlie/so3"
)

// The Lie algebra of SO(3) × ℝ₊ is so(3) × ℝ, written as a Vec4:
//
//	v = (ω₀, ω₁, ω₂, s)
//
// where ω are the rotation's angular coordinates and s is the log-scale.
// Using log-scale rather than scale makes Exp land on A = eˢ > 0 for every v.

// Wedge maps v to the 4×4 matrix with [ω]× in the top-left block, s at
// (3,3) and zeros elsewhere.
func Wedge[Rot so3.Rotation[S, Rot], S linalg.Scalar](v linalg.Vec4[S]) linalg.Mat4[S] {
	var zero Rot
	m := linalg.Mat4[S]{}.WithBlock3(zero.Skew(v.Head()))
	m[3][3] = v.Tail()

	return m
}

// Vee is the inverse of Wedge: Vee(Wedge(v)) == v exactly.
func Vee[Rot so3.Rotation[S, Rot], S linalg.Scalar](m linalg.Mat4[S]) linalg.Vec4[S] {
	var zero Rot

	return linalg.Vec4Of(zero.Vee(m.Block3()), m[3][3])
}

// Exp returns the element with rotation Rot.Exp(ω) and scale eˢ.
func Exp[Rot so3.Rotation[S, Rot], S linalg.Scalar](v linalg.Vec4[S]) SOT3[S, Rot] {
	var zero Rot

	return SOT3[S, Rot]{R: zero.Exp(v.Head()), A: linalg.Exp(v.Tail())}
}

// Log returns (R.Log(), ln A). A scale <= 0 yields NaN or -Inf in the last
// component; the rotation part is exact for angles in [0, π] up to the
// representation's own round-off.
func Log[Rot so3.Rotation[S, Rot], S linalg.Scalar](t SOT3[S, Rot]) linalg.Vec4[S] {
	return linalg.Vec4Of(t.R.Log(), linalg.Log(t.A))
}
