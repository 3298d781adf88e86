// SPDX-License-Identifier: MIT

// Package matrix: numeric policy and functional configuration.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - EigenOption / eigenOptions (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherEigenOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultAtol is the absolute tolerance used by AllClose-style comparisons
	// when the caller does not supply one.
	DefaultAtol = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and ingestion.
	DefaultValidateNaNInf = true
)

// Jacobi eigen solver.
const (
	// DefaultEigenTol is the absolute off-diagonal threshold at which the
	// Jacobi sweep stops. Scaled by the Frobenius norm of the input.
	DefaultEigenTol = 1e-15

	// DefaultEigenMaxIter bounds the number of Jacobi rotations.
	DefaultEigenMaxIter = 500
)

// pivotNegligible: |apq|·pivotNegligible below the diagonal ulp ⇒ treat apq as zero.
const pivotNegligible = 100.0

// EigenOption configures EigenSym4.
type EigenOption func(*eigenOptions)

// eigenOptions is the resolved configuration of EigenSym4.
type eigenOptions struct {
	tol     float64 // relative off-diagonal threshold
	maxIter int     // rotation budget
}

// WithEigenTolerance sets the relative off-diagonal stop threshold.
// Panics if tol is negative, NaN or Inf.
func WithEigenTolerance(tol float64) EigenOption {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("matrix: WithEigenTolerance requires a finite tol >= 0")
	}
	return func(o *eigenOptions) { o.tol = tol }
}

// WithEigenMaxIter sets the Jacobi rotation budget. Panics if n <= 0.
func WithEigenMaxIter(n int) EigenOption {
	if n <= 0 {
		panic("matrix: WithEigenMaxIter requires n > 0")
	}
	return func(o *eigenOptions) { o.maxIter = n }
}

// gatherEigenOptions resolves opts over the defaults. Nil options are skipped.
func gatherEigenOptions(opts ...EigenOption) eigenOptions {
	o := eigenOptions{tol: DefaultEigenTol, maxIter: DefaultEigenMaxIter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
