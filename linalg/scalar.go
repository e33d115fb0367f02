// SPDX-License-Identifier: MIT

// Package linalg: numeric scalar capability set.
//
// Go has no arithmetic type classes, so the transcendental functions required
// by the exponential and logarithm maps are dispatched here on the concrete
// instantiation: real types go through math, complex types through math/cmplx.
// The type set is closed (no ~ terms) so the dispatch is exhaustive.
package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Scalar is the set of numeric types the containers and groups are generic over.
//
// The complex instantiations are algebraically valid: every operation used by
// the groups (field arithmetic, exp, log, sqrt, sin, cos, acos) is defined on
// the complex field, even though "rotation" and "positive scale" lose their
// geometric meaning there.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// FromFloat lifts a real value into S. For complex S the imaginary part is zero.
func FromFloat[S Scalar](x float64) S {
	var out S
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(x)
	case *float64:
		*p = x
	case *complex64:
		*p = complex(float32(x), 0)
	case *complex128:
		*p = complex(x, 0)
	}

	return out
}

// Real returns the real part of x as float64.
func Real[S Scalar](x S) float64 {
	switch v := any(x).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case complex64:
		return float64(real(v))
	case complex128:
		return real(v)
	}
	panic(panicUnsupportedScalar)
}

// Imag returns the imaginary part of x as float64 (always 0 for real types).
func Imag[S Scalar](x S) float64 {
	switch v := any(x).(type) {
	case complex64:
		return float64(imag(v))
	case complex128:
		return imag(v)
	}

	return 0
}

// Abs returns the modulus of x.
func Abs[S Scalar](x S) float64 {
	switch v := any(x).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}
	panic(panicUnsupportedScalar)
}

// IsFinite reports whether both parts of x are neither NaN nor ±Inf.
func IsFinite[S Scalar](x S) bool {
	re, im := Real(x), Imag(x)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// EqualWithin reports whether a and b agree within tol, part by part,
// using an absolute-or-relative comparison.
func EqualWithin[S Scalar](a, b S, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(Real(a), Real(b), tol, tol) &&
		scalar.EqualWithinAbsOrRel(Imag(a), Imag(b), tol, tol)
}

// Exp returns e**x.
func Exp[S Scalar](x S) S { return unary(x, math.Exp, cmplx.Exp) }

// Log returns the natural logarithm of x. Non-positive real input yields
// NaN or -Inf, exactly as math.Log does.
func Log[S Scalar](x S) S { return unary(x, math.Log, cmplx.Log) }

// Sqrt returns the square root of x (principal branch for complex x).
func Sqrt[S Scalar](x S) S { return unary(x, math.Sqrt, cmplx.Sqrt) }

// Sin returns the sine of x.
func Sin[S Scalar](x S) S { return unary(x, math.Sin, cmplx.Sin) }

// Cos returns the cosine of x.
func Cos[S Scalar](x S) S { return unary(x, math.Cos, cmplx.Cos) }

// Acos returns the arccosine of x. Real arguments are clamped into [-1, 1]
// first so round-off on a trace never produces NaN.
func Acos[S Scalar](x S) S { return unary(x, acosClamped, cmplx.Acos) }

func acosClamped(x float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, x)))
}

const panicUnsupportedScalar = "linalg: unsupported scalar type"

// unary evaluates fr or fc depending on whether S is real or complex,
// computing single-precision types in double precision.
func unary[S Scalar](x S, fr func(float64) float64, fc func(complex128) complex128) S {
	var out S
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(fr(float64(any(x).(float32))))
	case *float64:
		*p = fr(any(x).(float64))
	case *complex64:
		*p = complex64(fc(complex128(any(x).(complex64))))
	case *complex128:
		*p = fc(any(x).(complex128))
	}

	return out
}
