// SPDX-License-Identifier: MIT

// Package synth: defaults and functional options.
// Option configures a Decomposer at construction; SynthOption configures a
// single Synthesize or NumBasisGates call.
package synth

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/twoq/euler"
)

const (
	// DefaultBasisFidelity assumes a perfect entangling gate.
	DefaultBasisFidelity = 1.0

	// DefaultEulerBasis is the one-qubit basis of emitted corrections.
	DefaultEulerBasis = euler.U

	// DefaultApproximate lets Synthesize trade exactness for fewer basis gates.
	DefaultApproximate = true

	// superControlledAtol bounds |a - π/4| and |c| of a super-controlled basis gate.
	superControlledAtol = 1e-9

	// pulseAtol is the angle tolerance of the pulse-efficient rewrites.
	pulseAtol = 1e-10

	// pulseVerifyAtol bounds the entrywise error of an accepted 3-CX rewrite.
	pulseVerifyAtol = 1e-9
)

// PulseMode selects whether Synthesize uses the pulse-efficient CX rewrite.
type PulseMode uint8

const (
	// PulseAuto uses the rewrite when it applies and falls back silently.
	PulseAuto PulseMode = iota
	// PulseRequired fails with ErrUnsupportedPulseOptimization when the rewrite cannot apply.
	PulseRequired
	// PulseDisabled never uses the rewrite.
	PulseDisabled
)

var pulseModeNames = [...]string{PulseAuto: "auto", PulseRequired: "required", PulseDisabled: "off"}

func (m PulseMode) String() string {
	if int(m) < len(pulseModeNames) {
		return pulseModeNames[m]
	}
	return fmt.Sprintf("PulseMode(%d)", uint8(m))
}

// ParsePulseMode accepts "auto", "required" and "off" (case-insensitive).
func ParsePulseMode(s string) (PulseMode, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	for i, name := range pulseModeNames {
		if name == low {
			return PulseMode(i), nil
		}
	}
	return PulseAuto, fmt.Errorf("synth: unknown pulse mode %q", s)
}

// Option configures New and NewFromMatrix.
type Option func(*options)

type options struct {
	basisFidelity float64
	eulerBasis    euler.Basis
	pulse         PulseMode
}

// WithBasisFidelity sets the fidelity of one basis-gate application.
// Panics unless 0 <= f <= 1.
func WithBasisFidelity(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic("synth: WithBasisFidelity requires 0 <= f <= 1")
	}
	return func(o *options) { o.basisFidelity = f }
}

// WithEulerBasis selects the one-qubit output basis. Panics on an invalid basis.
func WithEulerBasis(b euler.Basis) Option {
	if !b.Valid() {
		panic("synth: WithEulerBasis: unknown basis")
	}
	return func(o *options) { o.eulerBasis = b }
}

// WithPulseOptimize selects the pulse-efficient rewrite mode.
func WithPulseOptimize(m PulseMode) Option {
	if m > PulseDisabled {
		panic("synth: WithPulseOptimize: unknown mode")
	}
	return func(o *options) { o.pulse = m }
}

func gatherOptions(opts ...Option) options {
	o := options{basisFidelity: DefaultBasisFidelity, eulerBasis: DefaultEulerBasis, pulse: PulseAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// SynthOption configures one Synthesize or NumBasisGates call.
type SynthOption func(*synthOptions)

type synthOptions struct {
	approximate   bool
	basisFidelity float64
	hasFidelity   bool
	numBasisUses  int
	forcedUses    bool
}

// WithApproximate toggles approximation. Without it the basis fidelity is
// taken as 1, so only exactness decides the number of basis gates.
func WithApproximate(on bool) SynthOption {
	return func(o *synthOptions) { o.approximate = on }
}

// WithBasisFidelityOverride replaces the decomposer's basis fidelity for one call.
// Panics unless 0 <= f <= 1.
func WithBasisFidelityOverride(f float64) SynthOption {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic("synth: WithBasisFidelityOverride requires 0 <= f <= 1")
	}
	return func(o *synthOptions) { o.basisFidelity, o.hasFidelity = f, true }
}

// WithNumBasisUses forces the number of basis-gate applications.
// Panics unless 0 <= n <= 3.
func WithNumBasisUses(n int) SynthOption {
	if n < 0 || n > 3 {
		panic("synth: WithNumBasisUses requires 0 <= n <= 3")
	}
	return func(o *synthOptions) { o.numBasisUses, o.forcedUses = n, true }
}

func gatherSynthOptions(opts ...SynthOption) synthOptions {
	o := synthOptions{approximate: DefaultApproximate}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
