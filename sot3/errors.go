// SPDX-License-Identifier: MIT
// Package sot3: sentinel error set.
// The group operations themselves never fail (degenerate input propagates as
// NaN/Inf); these sentinels are returned ONLY by the opt-in validation
// routines (Validate, FromMatrixChecked, FromDense). Tests MUST match them via
// errors.Is.

package sot3

import "errors"

// Every message is prefixed with "sot3: ...". Validators wrap the sentinel once
// with their tag (see validatorErrorf); errors.Is still matches.

var (
	// ErrNonFinite indicates a NaN or ±Inf in the scale or the rotation matrix.
	ErrNonFinite = errors.New("sot3: NaN or Inf encountered")

	// ErrNonPositiveScale indicates a scale whose real part is <= 0.
	ErrNonPositiveScale = errors.New("sot3: scale must be positive")

	// ErrNonRealScale indicates a complex scale with a non-negligible
	// imaginary part (or any imaginary part under WithStrictComplex).
	ErrNonRealScale = errors.New("sot3: scale must be real")

	// ErrNotOrthonormal indicates a rotation block that is not orthonormal
	// with determinant +1 within eps.
	ErrNotOrthonormal = errors.New("sot3: rotation is not orthonormal")

	// ErrNotBlockDiagonal indicates a 4×4 matrix with non-zero entries
	// outside the rotation block and the scale entry.
	ErrNotBlockDiagonal = errors.New("sot3: matrix is not block diagonal")
)
