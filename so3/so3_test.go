package so3_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvlie/linalg"
	"github.com/katalvlaran/lvlie/so3"
)

const tol = 1e-9

// randomAxisAngle returns axis·θ with a random unit axis and θ in [0, maxAngle).
func randomAxisAngle(rnd *rand.Rand, maxAngle float64) linalg.Vec3[float64] {
	for {
		v := linalg.Vec3[float64]{2*rnd.Float64() - 1, 2*rnd.Float64() - 1, 2*rnd.Float64() - 1}
		n := v.Norm()
		if n > 1e-3 && n <= 1 {
			return v.Scale(maxAngle * rnd.Float64() / n)
		}
	}
}

func randomPoint(rnd *rand.Rand) linalg.Vec3[float64] {
	return linalg.Vec3[float64]{10*rnd.Float64() - 5, 10*rnd.Float64() - 5, 10*rnd.Float64() - 5}
}

// rotationLaws runs the representation-independent contract checks for R.
func rotationLaws[R so3.Rotation[float64, R]](t *testing.T) {
	var zero R
	rnd := rand.New(rand.NewPCG(1, 2))

	t.Run("identity", func(t *testing.T) {
		id := zero.Identity()
		require.True(t, id.Matrix().ApproxEqual(linalg.Identity3[float64](), 0))
		require.True(t, zero.Exp(linalg.Vec3[float64]{}).Matrix().ApproxEqual(id.Matrix(), tol))
		require.Equal(t, linalg.Vec3[float64]{}, id.Log())
	})

	t.Run("quarter turn about z", func(t *testing.T) {
		r := zero.Exp(linalg.Vec3[float64]{0, 0, math.Pi / 2})
		got := r.Apply(linalg.Vec3[float64]{1, 0, 0})
		require.True(t, got.ApproxEqual(linalg.Vec3[float64]{0, 1, 0}, tol), "got %v", got)
	})

	t.Run("exp log round trip", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			w := randomAxisAngle(rnd, math.Pi-0.01)
			got := zero.Exp(w).Log()
			require.True(t, got.ApproxEqual(w, 1e-8), "w=%v got=%v", w, got)
		}
	})

	t.Run("composition acts right to left", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			a, b := zero.Random(rnd), zero.Random(rnd)
			p := randomPoint(rnd)
			require.True(t, a.Mul(b).Apply(p).ApproxEqual(a.Apply(b.Apply(p)), tol))
			require.True(t, a.Mul(b).Matrix().ApproxEqual(a.Matrix().Mul(b.Matrix()), tol))
		}
	})

	t.Run("inverse", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			r := zero.Random(rnd)
			p := randomPoint(rnd)
			require.True(t, r.Mul(r.Inverse()).Matrix().ApproxEqual(linalg.Identity3[float64](), tol))
			require.True(t, r.ApplyInverse(r.Apply(p)).ApproxEqual(p, tol))
			require.True(t, r.Inverse().Apply(p).ApproxEqual(r.ApplyInverse(p), tol))
		}
	})

	t.Run("random is orthonormal and reproducible", func(t *testing.T) {
		a := zero.Random(rand.New(rand.NewPCG(9, 9)))
		b := zero.Random(rand.New(rand.NewPCG(9, 9)))
		require.Equal(t, a.Matrix(), b.Matrix())
		require.True(t, so3.IsOrthonormal(a.Matrix(), tol))
		require.True(t, so3.IsOrthonormal(zero.Random(nil).Matrix(), tol))
	})

	t.Run("matrix round trip", func(t *testing.T) {
		r := zero.Random(rnd)
		require.True(t, zero.FromMatrix(r.Matrix()).Matrix().ApproxEqual(r.Matrix(), tol))
	})

	t.Run("near pi", func(t *testing.T) {
		axis := linalg.Vec3[float64]{1, 2, 3}
		axis = axis.Scale(1 / axis.Norm())
		w := axis.Scale(math.Pi - 1e-6)
		got := zero.Exp(w).Log()
		require.True(t, got.ApproxEqual(w, 1e-6), "w=%v got=%v", w, got)
	})

	t.Run("exactly pi", func(t *testing.T) {
		got := zero.Exp(linalg.Vec3[float64]{0, 0, math.Pi}).Log()
		require.InDelta(t, 0, got[0], 1e-7)
		require.InDelta(t, 0, got[1], 1e-7)
		require.InDelta(t, math.Pi, math.Abs(got[2]), 1e-7)
	})
}

func TestMatrix_RotationLaws(t *testing.T) {
	rotationLaws[so3.Matrix[float64]](t)
}

func TestQuat_RotationLaws(t *testing.T) {
	rotationLaws[so3.Quat](t)
}

func TestSkewVee(t *testing.T) {
	w := linalg.Vec3[float64]{0.3, -1.2, 2.5}
	v := linalg.Vec3[float64]{1, 2, 3}

	require.Equal(t, w, so3.Vee(so3.Skew(w)))
	require.True(t, so3.Skew(w).MulVec(v).ApproxEqual(w.Cross(v), 1e-12))
	require.Equal(t, so3.Skew(w), so3.Skew(w).Transpose().Scale(-1))
}

func TestMatrixAndQuat_Agree(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 100; i++ {
		w := randomAxisAngle(rnd, math.Pi)
		m := so3.Matrix[float64]{}.Exp(w)
		q := so3.Quat{}.Exp(w)
		require.True(t, m.Matrix().ApproxEqual(q.Matrix(), tol), "w=%v", w)

		p := randomPoint(rnd)
		require.True(t, m.Apply(p).ApproxEqual(q.Apply(p), 1e-8))
	}
}

func TestQuat_FromMatrixNormalises(t *testing.T) {
	r := so3.Quat{}.Exp(linalg.Vec3[float64]{0.4, 0.1, -0.7})
	// A uniformly scaled rotation block is coerced back onto the unit sphere.
	q := so3.Quat{}.FromMatrix(r.Matrix().Scale(1.0001))
	require.True(t, so3.IsOrthonormal(q.Matrix(), 1e-6))
	require.True(t, q.Matrix().ApproxEqual(r.Matrix(), 1e-3))
}

func TestQuat_LogPicksShortArc(t *testing.T) {
	q := so3.Quat{}.Exp(linalg.Vec3[float64]{0, 0, 1})
	neg := so3.Quat{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}

	require.True(t, neg.Log().ApproxEqual(linalg.Vec3[float64]{0, 0, 1}, tol))
}

func TestMatrix_FromMatrixKeepsInput(t *testing.T) {
	m := linalg.Mat3[float64]{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	require.Equal(t, m, so3.Matrix[float64]{}.FromMatrix(m).Matrix())
	require.False(t, so3.IsOrthonormal(m, tol))
}

func TestIsOrthonormal_RejectsReflection(t *testing.T) {
	m := linalg.Mat3[float64]{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}
	require.False(t, so3.IsOrthonormal(m, tol))
}

func TestMatrix_Float32(t *testing.T) {
	w := linalg.Vec3[float32]{0.2, -0.5, 0.9}
	r := so3.Matrix[float32]{}.Exp(w)

	require.True(t, so3.IsOrthonormal(r.Matrix(), 1e-5))
	require.True(t, r.Log().ApproxEqual(w, 1e-4))
}

func TestMatrix_Complex(t *testing.T) {
	w := linalg.Vec3[complex128]{0.2, -0.5, 0.9}
	r := so3.Matrix[complex128]{}.Exp(w)
	p := linalg.Vec3[complex128]{1, 2, 3}

	require.True(t, r.Log().ApproxEqual(w, 1e-8))
	require.True(t, r.ApplyInverse(r.Apply(p)).ApproxEqual(p, 1e-12))
	require.True(t, so3.IsOrthonormal(r.Matrix(), 1e-12))
}

func TestMatrix_SmallAngleSeries(t *testing.T) {
	w := linalg.Vec3[float64]{1e-6, -2e-6, 3e-6}
	r := so3.Matrix[float64]{}.Exp(w)

	require.True(t, so3.IsOrthonormal(r.Matrix(), 1e-12))
	require.True(t, r.Log().ApproxEqual(w, 1e-12))
}

func TestQuat_MatrixMatchesR3(t *testing.T) {
	var zero so3.Quat
	rnd := rand.New(rand.NewPCG(11, 12))

	for i := 0; i < 100; i++ {
		q := zero.Random(rnd)
		want := r3.Rotation(q).Mat()
		got := q.Matrix()
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				require.InDelta(t, want.At(r, c), got[r][c], 1e-12)
			}
		}
	}
}

func TestQuat_MatrixTracksNorm(t *testing.T) {
	rnd := rand.New(rand.NewPCG(13, 14))

	// A real-only, non-unit q must not masquerade as the identity.
	q := so3.Quat{Real: 2}
	require.True(t, q.Matrix().ApproxEqual(linalg.Identity3[float64]().Scale(4), 0))
	require.False(t, so3.IsOrthonormal(q.Matrix(), tol))

	for i := 0; i < 20; i++ {
		q = so3.Quat{Real: 2*rnd.Float64() - 1, Imag: 2*rnd.Float64() - 1, Jmag: 2*rnd.Float64() - 1, Kmag: 2*rnd.Float64() - 1}
		p := randomPoint(rnd)
		require.True(t, q.Matrix().MulVec(p).ApproxEqual(q.Apply(p), tol))
		require.True(t, q.Matrix().Transpose().MulVec(p).ApproxEqual(q.ApplyInverse(p), tol))
	}
}

func TestUniform(t *testing.T) {
	a := rand.New(rand.NewPCG(5, 6))
	b := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 10; i++ {
		require.Equal(t, b.Float64(), so3.Uniform(a))
	}

	for i := 0; i < 100; i++ {
		u := so3.Uniform(nil)
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}
