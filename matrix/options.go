// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix/vector construction and
// the iterative kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The numeric policy chosen at construction travels with the instance:
//     results of Plus/Transpose/... are allocated through the same factory and
//     therefore inherit it.
//   - Tolerant comparisons take their ULP width explicitly
//     (IsApproxEqualULPs); DefaultULPs is the width used by IsApproxEqual.
package matrix

import (
	"math"

	"github.com/katalvlaran/xalmath/elementary"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultULPs is the tolerance window, in units in the last place, used by
	// IsApproxEqual.
	DefaultULPs = elementary.DefaultULPs

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on every ingestion path (SetMatrix, SetSubMatrix, token strings).
	// Off by default: beam calculations legitimately carry ±Inf (e.g. an
	// unbounded Twiss beta) through intermediate matrices.
	DefaultValidateNaNInf = false

	// DefaultEigenTolerance is the off-diagonal magnitude below which the Jacobi
	// iteration of EigenSym is considered converged.
	DefaultEigenTolerance = 1e-12

	// DefaultEigenMaxIter bounds the number of Jacobi rotations in EigenSym.
	DefaultEigenMaxIter = 500
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEigenTolInvalid  = "matrix: WithEigenTolerance: tol must be finite and > 0"
	panicEigenIterInvalid = "matrix: WithEigenMaxIter: maxIter must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	eigenTol       float64 // DefaultEigenTolerance
	eigenMaxIter   int     // DefaultEigenMaxIter
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Set, SetMatrix, SetSubMatrix and token parsing reject NaN/±Inf with ErrNaNInf.
//   - Results derived from the instance (Plus, Transpose, ...) keep the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithEigenTolerance sets the convergence threshold of the Jacobi iteration.
// Panics if tol is not finite and strictly positive.
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithEigenMaxIter bounds the number of Jacobi rotations. Panics if maxIter <= 0.
func WithEigenMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicEigenIterInvalid)
	}

	return func(o *Options) { o.eigenMaxIter = maxIter }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		eigenTol:       DefaultEigenTolerance,
		eigenMaxIter:   DefaultEigenMaxIter,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
