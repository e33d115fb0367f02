// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// Mat3 is a 3×3 matrix in row-major order: m[r][c].
type Mat3[S Scalar] [3][3]S

// Mat4 is a 4×4 matrix in row-major order: m[r][c].
type Mat4[S Scalar] [4][4]S

// Identity3 returns the 3×3 identity matrix.
func Identity3[S Scalar]() Mat3[S] {
	return Mat3[S]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[S Scalar]() Mat4[S] {
	return Mat4[S]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m·n.
func (m Mat3[S]) Mul(n Mat3[S]) Mat3[S] {
	var out Mat3[S]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*n[0][c] + m[r][1]*n[1][c] + m[r][2]*n[2][c]
		}
	}

	return out
}

// MulVec returns m·v.
func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns mᵀ (no conjugation for complex S).
func (m Mat3[S]) Transpose() Mat3[S] {
	var out Mat3[S]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c][r] = m[r][c]
		}
	}

	return out
}

// Scale returns s·m.
func (m Mat3[S]) Scale(s S) Mat3[S] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] *= s
		}
	}

	return m
}

// Add returns m + n.
func (m Mat3[S]) Add(n Mat3[S]) Mat3[S] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] += n[r][c]
		}
	}

	return m
}

// Sub returns m - n.
func (m Mat3[S]) Sub(n Mat3[S]) Mat3[S] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] -= n[r][c]
		}
	}

	return m
}

// Trace returns the sum of the diagonal.
func (m Mat3[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant (cofactor expansion along the first row).
func (m Mat3[S]) Det() S {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// ApproxEqual reports whether every entry agrees within tol.
func (m Mat3[S]) ApproxEqual(n Mat3[S], tol float64) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !EqualWithin(m[r][c], n[r][c], tol) {
				return false
			}
		}
	}

	return true
}

func (m Mat3[S]) String() string {
	return fmt.Sprintf("[%v %v %v; %v %v %v; %v %v %v]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// Block3 returns the top-left 3×3 block.
func (m Mat4[S]) Block3() Mat3[S] {
	var out Mat3[S]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][c]
		}
	}

	return out
}

// WithBlock3 returns a copy of m whose top-left 3×3 block is b.
func (m Mat4[S]) WithBlock3(b Mat3[S]) Mat4[S] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = b[r][c]
		}
	}

	return m
}

// ApproxEqual reports whether every entry agrees within tol.
func (m Mat4[S]) ApproxEqual(n Mat4[S], tol float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !EqualWithin(m[r][c], n[r][c], tol) {
				return false
			}
		}
	}

	return true
}
