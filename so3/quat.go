// SPDX-License-Identifier: MIT

package so3

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvlie/linalg"
)

// Quat is a rotation stored as a float64 unit quaternion.
//
// q and -q describe the same rotation; Log always answers for the
// representative with non-negative real part. As with Matrix, the zero value
// is not a rotation and only serves as a receiver for group-level methods.
type Quat quat.Number

var _ Rotation[float64, Quat] = Quat{}

// Identity returns the unit quaternion 1.
func (Quat) Identity() Quat {
	return Quat{Real: 1}
}

// FromMatrix converts m with Shepperd's method (pivot on the largest of the
// trace and the diagonal) and renormalises, which projects a nearly
// orthonormal m onto the closest representable rotation.
func (Quat) FromMatrix(m linalg.Mat3[float64]) Quat {
	var q quat.Number
	switch tr := m.Trace(); {
	case tr > 0:
		s := 2 * math.Sqrt(1+tr)
		q = quat.Number{
			Real: s / 4,
			Imag: (m[2][1] - m[1][2]) / s,
			Jmag: (m[0][2] - m[2][0]) / s,
			Kmag: (m[1][0] - m[0][1]) / s,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := 2 * math.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		q = quat.Number{
			Real: (m[2][1] - m[1][2]) / s,
			Imag: s / 4,
			Jmag: (m[0][1] + m[1][0]) / s,
			Kmag: (m[0][2] + m[2][0]) / s,
		}
	case m[1][1] > m[2][2]:
		s := 2 * math.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		q = quat.Number{
			Real: (m[0][2] - m[2][0]) / s,
			Imag: (m[0][1] + m[1][0]) / s,
			Jmag: s / 4,
			Kmag: (m[1][2] + m[2][1]) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		q = quat.Number{
			Real: (m[1][0] - m[0][1]) / s,
			Imag: (m[0][2] + m[2][0]) / s,
			Jmag: (m[1][2] + m[2][1]) / s,
			Kmag: s / 4,
		}
	}

	return Quat(quat.Scale(1/quat.Abs(q), q))
}

// Exp returns exp(w/2) taken in the quaternion algebra.
func (q Quat) Exp(w linalg.Vec3[float64]) Quat {
	if w == (linalg.Vec3[float64]{}) {
		return q.Identity()
	}

	return Quat(quat.Exp(quat.Number{Imag: w[0] / 2, Jmag: w[1] / 2, Kmag: w[2] / 2}))
}

// Random samples a unit quaternion uniformly over S³.
func (Quat) Random(rnd *rand.Rand) Quat {
	w, x, y, z := randomUnitQuat(rnd)

	return Quat{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// Skew implements Rotation via the package-level Skew.
func (Quat) Skew(w linalg.Vec3[float64]) linalg.Mat3[float64] { return Skew(w) }

// Vee implements Rotation via the package-level Vee.
func (Quat) Vee(m linalg.Mat3[float64]) linalg.Vec3[float64] { return Vee(m) }

// Log returns 2·log(q) restricted to the imaginary part, i.e. axis·θ with θ ∈ [0, π].
func (q Quat) Log() linalg.Vec3[float64] {
	n := quat.Number(q)
	if n.Imag == 0 && n.Jmag == 0 && n.Kmag == 0 {
		return linalg.Vec3[float64]{}
	}
	if n.Real < 0 {
		n = quat.Scale(-1, n)
	}
	l := quat.Log(n)

	return linalg.Vec3[float64]{2 * l.Imag, 2 * l.Jmag, 2 * l.Kmag}
}

// Mul returns the Hamilton product q·other.
func (q Quat) Mul(other Quat) Quat {
	return Quat(quat.Mul(quat.Number(q), quat.Number(other)))
}

// Inverse returns the conjugate, which is the inverse for unit q.
func (q Quat) Inverse() Quat {
	return Quat(quat.Conj(quat.Number(q)))
}

// Apply returns q·p·q*. For non-unit q the result is scaled by |q|².
func (q Quat) Apply(p linalg.Vec3[float64]) linalg.Vec3[float64] {
	return linalg.FromR3(r3.Rotation(q).Rotate(linalg.ToR3(p)))
}

// ApplyInverse returns q*·p·q.
func (q Quat) ApplyInverse(p linalg.Vec3[float64]) linalg.Vec3[float64] {
	return q.Inverse().Apply(p)
}

// Matrix returns the matrix of p ↦ q·p·q*. r3.Rotation.Mat assumes |q| = 1,
// so its diagonal is shifted by |q|²-1 to keep Matrix()·p equal to Apply(p);
// a non-unit q then shows up as a non-orthonormal matrix.
func (q Quat) Matrix() linalg.Mat3[float64] {
	rm := r3.Rotation(q).Mat()
	n2 := q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag

	var m linalg.Mat3[float64]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = rm.At(i, j)
		}
		m[i][i] += n2 - 1
	}

	return m
}
