// SPDX-License-Identifier: MIT

// Package sot3: functional configuration for the validation and comparison
// routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// The group operations (Mul, Exp, Log, ...) take no options: they are
// unchecked hot-path computations. Options only affect Validate, IsValid,
// ApproxEqual, FromMatrixChecked and FromDense.
package sot3

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance of orthonormality, block-structure and
	// approximate-equality checks. Suitable for float64 / complex128 data;
	// single-precision instantiations typically need WithEpsilon(1e-5).
	DefaultEpsilon = 1e-9

	// DefaultStrictComplex requires complex scales to have an imaginary part
	// that is exactly zero when true; when false it must be within eps.
	DefaultStrictComplex = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "sot3: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	strictComplex bool    // DefaultStrictComplex
}

// WithEpsilon sets the numeric tolerance eps used by checks and comparisons.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStrictComplex requires the imaginary part of a complex scale to be
// exactly zero. It has no effect on real instantiations.
func WithStrictComplex() Option {
	return func(o *Options) { o.strictComplex = true }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:           DefaultEpsilon,
		strictComplex: DefaultStrictComplex,
	}
}

// gatherOptions applies opts in order over the defaults; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
