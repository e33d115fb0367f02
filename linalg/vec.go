// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// Vec3 is a 3-component column vector (points, angular coordinates).
type Vec3[S Scalar] [3]S

// Vec4 is a 4-component column vector. The Lie algebra of the scaled-rotation
// group uses components 0..2 for angular coordinates and component 3 for the
// log-scale.
type Vec4[S Scalar] [4]S

// Vec4Of joins a 3-vector head and a scalar tail into a Vec4.
func Vec4Of[S Scalar](head Vec3[S], tail S) Vec4[S] {
	return Vec4[S]{head[0], head[1], head[2], tail}
}

// Add returns v + o.
func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns s·v.
func (v Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the bilinear dot product vᵀo (no conjugation for complex S).
func (v Vec3[S]) Dot(o Vec3[S]) S {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns v × o.
func (v Vec3[S]) Cross(o Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Norm returns sqrt(vᵀv).
func (v Vec3[S]) Norm() S {
	return Sqrt(v.Dot(v))
}

// ApproxEqual reports whether every component agrees within tol.
func (v Vec3[S]) ApproxEqual(o Vec3[S], tol float64) bool {
	for i := range v {
		if !EqualWithin(v[i], o[i], tol) {
			return false
		}
	}

	return true
}

func (v Vec3[S]) String() string {
	return fmt.Sprintf("vec3(%v, %v, %v)", v[0], v[1], v[2])
}

// Head returns components 0..2.
func (v Vec4[S]) Head() Vec3[S] {
	return Vec3[S]{v[0], v[1], v[2]}
}

// Tail returns component 3.
func (v Vec4[S]) Tail() S {
	return v[3]
}

// ApproxEqual reports whether every component agrees within tol.
func (v Vec4[S]) ApproxEqual(o Vec4[S], tol float64) bool {
	for i := range v {
		if !EqualWithin(v[i], o[i], tol) {
			return false
		}
	}

	return true
}

func (v Vec4[S]) String() string {
	return fmt.Sprintf("vec4(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}
