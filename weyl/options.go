// SPDX-License-Identifier: MIT

// Package weyl: numeric policy and functional configuration.
// This file defines:
//   - documented defaults (single source of truth),
//   - Option / options for New, CircuitOption / circuitOptions for Circuit,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gather helpers that resolve options over the defaults.
package weyl

import (
	"math"

	"github.com/katalvlaran/twoq/euler"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFidelity is the fidelity floor New applies unless WithFidelity or
	// WithoutFidelity overrides it.
	DefaultFidelity = 1.0 - 1.0e-9

	// DefaultAtol is the angle below which Circuit drops a rotation when
	// simplification is on.
	DefaultAtol = 1e-12

	// DefaultSimplify is the simplification switch of Circuit.
	DefaultSimplify = false
)

// diagonalization and fidelity comparison tolerances.
const (
	diagonalizeAtol = 1e-13
	fidelitySlack   = 1e-13
	maxDiagTrials   = 100
)

// first trial mixture of Re(M2) and Im(M2).
const (
	firstTrialRe = 1.2602066112249388
	firstTrialIm = 0.22317849046722027
)

// Option configures New.
type Option func(*options)

type options struct {
	fidelity       float64
	hasFidelity    bool
	specialization Specialization
	forced         bool
}

// WithFidelity sets the fidelity floor used both to select a specialization
// and to reject one. Panics unless 0 <= f <= 1.
func WithFidelity(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic("weyl: WithFidelity requires 0 <= f <= 1")
	}
	return func(o *options) { o.fidelity, o.hasFidelity = f, true }
}

// WithoutFidelity removes the fidelity floor: no specialization is selected
// automatically and none is rejected.
func WithoutFidelity() Option {
	return func(o *options) { o.fidelity, o.hasFidelity = 0, false }
}

// WithSpecialization forces s instead of searching for the closest one.
// Panics if s is not a defined Specialization.
func WithSpecialization(s Specialization) Option {
	if s >= numSpecializations {
		panic("weyl: WithSpecialization: unknown specialization")
	}
	return func(o *options) { o.specialization, o.forced = s, true }
}

func gatherOptions(opts ...Option) options {
	o := options{fidelity: DefaultFidelity, hasFidelity: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// CircuitOption configures (*Decomposition).Circuit.
type CircuitOption func(*circuitOptions)

type circuitOptions struct {
	basis    euler.Basis
	hasBasis bool
	simplify bool
	atol     float64
}

// WithEulerBasis selects the one-qubit basis of the K factors.
// The default is the specialization's own basis. Panics on an invalid basis.
func WithEulerBasis(b euler.Basis) CircuitOption {
	if !b.Valid() {
		panic("weyl: WithEulerBasis: unknown basis")
	}
	return func(o *circuitOptions) { o.basis, o.hasBasis = b, true }
}

// WithSimplify drops rotations below the tolerance, including zero Weyl angles.
func WithSimplify(on bool) CircuitOption {
	return func(o *circuitOptions) { o.simplify = on }
}

// WithAtol sets the simplification tolerance. Panics if atol is negative, NaN or Inf.
func WithAtol(atol float64) CircuitOption {
	if atol < 0 || math.IsNaN(atol) || math.IsInf(atol, 0) {
		panic("weyl: WithAtol requires a finite atol >= 0")
	}
	return func(o *circuitOptions) { o.atol = atol }
}

func gatherCircuitOptions(opts ...CircuitOption) circuitOptions {
	o := circuitOptions{simplify: DefaultSimplify, atol: DefaultAtol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
