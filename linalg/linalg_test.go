package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvlie/linalg"
)

func TestFromFloat_AllScalars(t *testing.T) {
	require.Equal(t, float32(1.5), linalg.FromFloat[float32](1.5))
	require.Equal(t, 1.5, linalg.FromFloat[float64](1.5))
	require.Equal(t, complex64(complex(1.5, 0)), linalg.FromFloat[complex64](1.5))
	require.Equal(t, complex(1.5, 0), linalg.FromFloat[complex128](1.5))
}

func TestRealImagAbs(t *testing.T) {
	z := complex(3.0, -4.0)
	require.Equal(t, 3.0, linalg.Real(z))
	require.Equal(t, -4.0, linalg.Imag(z))
	require.InDelta(t, 5.0, linalg.Abs(z), 1e-12)

	require.Equal(t, 0.0, linalg.Imag(2.0))
	require.Equal(t, 2.0, linalg.Abs(float32(-2)))
}

func TestTranscendentals(t *testing.T) {
	require.InDelta(t, math.E, linalg.Exp(1.0), 1e-12)
	require.InDelta(t, 1.0, linalg.Log(math.E), 1e-12)
	require.True(t, math.IsNaN(linalg.Log(-1.0)))
	require.True(t, math.IsInf(linalg.Log(0.0), -1))
	require.InDelta(t, 3.0, float64(linalg.Sqrt(float32(9))), 1e-6)

	// e^{iπ} = -1
	z := linalg.Exp(complex(0, math.Pi))
	require.True(t, linalg.EqualWithin(z, complex(-1, 0), 1e-12))
}

func TestAcos_ClampsRealRoundOff(t *testing.T) {
	require.Equal(t, 0.0, linalg.Acos(1+1e-12))
	require.InDelta(t, math.Pi, linalg.Acos(-1-1e-12), 1e-15)
	require.InDelta(t, math.Pi/2, linalg.Acos(0.0), 1e-15)
}

func TestIsFinite(t *testing.T) {
	require.True(t, linalg.IsFinite(1.0))
	require.False(t, linalg.IsFinite(math.NaN()))
	require.False(t, linalg.IsFinite(float32(math.Inf(1))))
	require.False(t, linalg.IsFinite(complex(1, math.Inf(-1))))
	require.True(t, linalg.IsFinite(complex64(complex(1, 2))))
}

func TestVec3_Ops(t *testing.T) {
	x := linalg.Vec3[float64]{1, 0, 0}
	y := linalg.Vec3[float64]{0, 1, 0}

	require.Equal(t, linalg.Vec3[float64]{0, 0, 1}, x.Cross(y))
	require.Equal(t, 0.0, x.Dot(y))
	require.Equal(t, linalg.Vec3[float64]{1, 1, 0}, x.Add(y))
	require.Equal(t, linalg.Vec3[float64]{1, -1, 0}, x.Sub(y))
	require.Equal(t, linalg.Vec3[float64]{3, 0, 0}, x.Scale(3))
	require.InDelta(t, 5.0, linalg.Vec3[float64]{3, 4, 0}.Norm(), 1e-12)
	require.Equal(t, "vec3(1, 0, 0)", x.String())
}

func TestVec4_HeadTail(t *testing.T) {
	v := linalg.Vec4Of(linalg.Vec3[float64]{1, 2, 3}, 4)
	require.Equal(t, linalg.Vec4[float64]{1, 2, 3, 4}, v)
	require.Equal(t, linalg.Vec3[float64]{1, 2, 3}, v.Head())
	require.Equal(t, 4.0, v.Tail())
	require.True(t, v.ApproxEqual(linalg.Vec4[float64]{1, 2, 3, 4 + 1e-12}, 1e-9))
	require.False(t, v.ApproxEqual(linalg.Vec4[float64]{1, 2, 3, 5}, 1e-9))
}

func TestMat3_Ops(t *testing.T) {
	m := linalg.Mat3[float64]{
		{1, 2, 3},
		{0, 1, 4},
		{5, 6, 0},
	}
	id := linalg.Identity3[float64]()

	require.Equal(t, m, m.Mul(id))
	require.Equal(t, m, id.Mul(m))
	require.Equal(t, linalg.Mat3[float64]{{1, 0, 5}, {2, 1, 6}, {3, 4, 0}}, m.Transpose())
	require.Equal(t, 2.0, m.Trace())
	require.InDelta(t, 1.0, m.Det(), 1e-12)
	require.Equal(t, linalg.Vec3[float64]{14, 14, 17}, m.MulVec(linalg.Vec3[float64]{1, 2, 3}))
	require.Equal(t, m, m.Scale(2).Sub(m))
	require.Equal(t, m.Scale(2), m.Add(m))
}

func TestMat4_Block3(t *testing.T) {
	b := linalg.Mat3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	m := linalg.Identity4[float64]().WithBlock3(b)

	require.Equal(t, b, m.Block3())
	require.Equal(t, 1.0, m[3][3])
	require.Equal(t, 0.0, m[0][3])
	require.True(t, m.ApproxEqual(m, 0))
}

func TestGonum_R3RoundTrip(t *testing.T) {
	v := linalg.Vec3[float64]{1, -2, 3}
	require.Equal(t, r3.Vec{X: 1, Y: -2, Z: 3}, linalg.ToR3(v))
	require.Equal(t, v, linalg.FromR3(linalg.ToR3(v)))
}

func TestGonum_DenseRoundTrip(t *testing.T) {
	m := linalg.Identity4[float64]()
	m[0][1] = 7
	m[3][3] = 2

	d := linalg.Dense4(m)
	r, c := d.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.Equal(t, 7.0, d.At(0, 1))

	back, err := linalg.Mat4FromDense(d)
	require.NoError(t, err)
	require.Equal(t, m, back)

	b := m.Block3()
	back3, err := linalg.Mat3FromDense(linalg.Dense3(b))
	require.NoError(t, err)
	require.Equal(t, b, back3)
}

func TestGonum_DenseErrors(t *testing.T) {
	_, err := linalg.Mat4FromDense(mat.NewDense(3, 4, nil))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.Mat3FromDense(mat.NewDense(4, 4, nil))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.Mat4FromDense(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}
