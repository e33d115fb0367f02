// SPDX-License-Identifier: MIT

package sot3

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlie/linalg"
	"github.com/katalvlaran/lvlie/so3"
)

// FromDense builds a float64 element from a 4×4 gonum matrix laid out as
// diag(R, A), running the same checks as FromMatrixChecked.
//
// Errors: linalg.ErrNilMatrix, linalg.ErrDimensionMismatch, plus every
// FromMatrixChecked sentinel.
func FromDense[Rot so3.Rotation[float64, Rot]](a mat.Matrix, opts ...Option) (SOT3[float64, Rot], error) {
	m, err := linalg.Mat4FromDense(a)
	if err != nil {
		return SOT3[float64, Rot]{}, validatorErrorf("FromDense", err)
	}

	return FromMatrixChecked[Rot](m, opts...)
}

// Dense returns t.Matrix() as a freshly allocated 4×4 *mat.Dense.
func Dense[Rot so3.Rotation[float64, Rot]](t SOT3[float64, Rot]) *mat.Dense {
	return linalg.Dense4(t.Matrix())
}
