// SPDX-License-Identifier: MIT

package so3

import (
	"math"
	"math/rand/v2"
)

// Uniform draws from [0, 1) using rnd, or the math/rand/v2 package-level
// source when rnd is nil. Every sampler in this module goes through it.
func Uniform(rnd *rand.Rand) float64 {
	if rnd == nil {
		return rand.Float64()
	}

	return rnd.Float64()
}

// randomUnitQuat samples a unit quaternion (w, x, y, z) uniformly over S³
// with Shoemake's subgroup algorithm.
func randomUnitQuat(rnd *rand.Rand) (w, x, y, z float64) {
	u1, u2, u3 := Uniform(rnd), Uniform(rnd), Uniform(rnd)
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	s2, c2 := math.Sincos(2 * math.Pi * u2)
	s3, c3 := math.Sincos(2 * math.Pi * u3)

	return b * c3, a * s2, a * c2, b * s3
}

// quatToMat returns the rotation matrix of the unit quaternion (w, x, y, z)
// as row-major entries. It only serves the generic Matrix[S].Random lift;
// Quat.Matrix goes through r3.Rotation.Mat.
func quatToMat(w, x, y, z float64) [3][3]float64 {
	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}
