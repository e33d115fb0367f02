// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR3 converts v into a gonum r3.Vec.
func ToR3(v Vec3[float64]) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// FromR3 converts a gonum r3.Vec into a Vec3.
func FromR3(v r3.Vec) Vec3[float64] {
	return Vec3[float64]{v.X, v.Y, v.Z}
}

// Dense3 copies m into a freshly allocated 3×3 *mat.Dense.
func Dense3(m Mat3[float64]) *mat.Dense {
	data := make([]float64, 0, 9)
	for r := 0; r < 3; r++ {
		data = append(data, m[r][:]...)
	}

	return mat.NewDense(3, 3, data)
}

// Dense4 copies m into a freshly allocated 4×4 *mat.Dense.
func Dense4(m Mat4[float64]) *mat.Dense {
	data := make([]float64, 0, 16)
	for r := 0; r < 4; r++ {
		data = append(data, m[r][:]...)
	}

	return mat.NewDense(4, 4, data)
}

// Mat3FromDense copies a 3×3 gonum matrix into a Mat3.
// Returns ErrNilMatrix for nil input and ErrDimensionMismatch for any other shape.
func Mat3FromDense(a mat.Matrix) (Mat3[float64], error) {
	var out Mat3[float64]
	if err := checkDims("Mat3FromDense", a, 3); err != nil {
		return out, err
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = a.At(r, c)
		}
	}

	return out, nil
}

// Mat4FromDense copies a 4×4 gonum matrix into a Mat4.
// Returns ErrNilMatrix for nil input and ErrDimensionMismatch for any other shape.
func Mat4FromDense(a mat.Matrix) (Mat4[float64], error) {
	var out Mat4[float64]
	if err := checkDims("Mat4FromDense", a, 4); err != nil {
		return out, err
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = a.At(r, c)
		}
	}

	return out, nil
}

func checkDims(tag string, a mat.Matrix, n int) error {
	if a == nil {
		return fmt.Errorf("%s: %w", tag, ErrNilMatrix)
	}
	if r, c := a.Dims(); r != n || c != n {
		return fmt.Errorf("%s: got %dx%d, want %dx%d: %w", tag, r, c, n, n, ErrDimensionMismatch)
	}

	return nil
}
