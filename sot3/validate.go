// SPDX-License-Identifier: MIT
// Package: sot3
//
// Purpose:
//  - Opt-in invariant checks for elements built from untrusted data.
//  - Keep the group operations themselves check-free.
//
// Order of checks (first failure wins):
//  finite → scale real → scale positive → rotation orthonormal.

package sot3

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlie/linalg"
	"github.com/katalvlaran/lvlie/so3"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks the SOT3 invariant: finite entries, a real positive scale
// and an orthonormal rotation with determinant +1, all within eps.
//
// Errors: ErrNonFinite, ErrNonRealScale, ErrNonPositiveScale, ErrNotOrthonormal.
// Complexity: O(1).
func (t SOT3[S, Rot]) Validate(opts ...Option) error {
	cfg := gatherOptions(opts...)
	rm := t.R.Matrix()

	if !linalg.IsFinite(t.A) {
		return validatorErrorf("Validate: scale", ErrNonFinite)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !linalg.IsFinite(rm[r][c]) {
				return validatorErrorf("Validate: rotation", ErrNonFinite)
			}
		}
	}

	im := linalg.Imag(t.A)
	if (cfg.strictComplex && im != 0) || math.Abs(im) > cfg.eps {
		return validatorErrorf("Validate", ErrNonRealScale)
	}
	if linalg.Real(t.A) <= 0 {
		return validatorErrorf("Validate", ErrNonPositiveScale)
	}
	if !so3.IsOrthonormal(rm, cfg.eps) {
		return validatorErrorf("Validate", ErrNotOrthonormal)
	}

	return nil
}

// IsValid reports whether Validate returns nil.
func (t SOT3[S, Rot]) IsValid(opts ...Option) bool {
	return t.Validate(opts...) == nil
}

// FromMatrixChecked is FromMatrix preceded by structural checks on m and
// followed by Validate.
//
// The rotation block is checked before the representation coerces it, so a
// representation that renormalises (so3.Quat) cannot hide a bad input.
//
// Errors: ErrNonFinite, ErrNotBlockDiagonal, ErrNotOrthonormal,
// ErrNonRealScale, ErrNonPositiveScale.
func FromMatrixChecked[Rot so3.Rotation[S, Rot], S linalg.Scalar](m linalg.Mat4[S], opts ...Option) (SOT3[S, Rot], error) {
	cfg := gatherOptions(opts...)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !linalg.IsFinite(m[r][c]) {
				return SOT3[S, Rot]{}, validatorErrorf("FromMatrixChecked", ErrNonFinite)
			}
		}
	}
	for i := 0; i < 3; i++ {
		if linalg.Abs(m[3][i]) > cfg.eps || linalg.Abs(m[i][3]) > cfg.eps {
			return SOT3[S, Rot]{}, validatorErrorf("FromMatrixChecked", ErrNotBlockDiagonal)
		}
	}
	if !so3.IsOrthonormal(m.Block3(), cfg.eps) {
		return SOT3[S, Rot]{}, validatorErrorf("FromMatrixChecked", ErrNotOrthonormal)
	}

	t := FromMatrix[Rot](m)
	if err := t.Validate(opts...); err != nil {
		return SOT3[S, Rot]{}, validatorErrorf("FromMatrixChecked", err)
	}

	return t, nil
}
