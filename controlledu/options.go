// SPDX-License-Identifier: MIT

package controlledu

import (
	"math"

	"github.com/katalvlaran/twoq/euler"
)

const (
	// DefaultEulerBasis is the one-qubit basis of emitted corrections.
	DefaultEulerBasis = euler.ZXZ

	// DefaultAtol is the magnitude below which a Weyl coordinate needs no
	// gate application.
	DefaultAtol = 1e-12

	// scaleAtol bounds the disagreement between probe angles.
	scaleAtol = 1e-12
)

// probeAngles are the family parameters New evaluates to derive the scale.
var probeAngles = [3]float64{0.2, 0.3, math.Pi / 2}

// Option configures New.
type Option func(*options)

type options struct {
	basis euler.Basis
}

// WithEulerBasis selects the one-qubit output basis. Panics on an invalid basis.
func WithEulerBasis(b euler.Basis) Option {
	if !b.Valid() {
		panic("controlledu: WithEulerBasis: unknown basis")
	}
	return func(o *options) { o.basis = b }
}

func gatherOptions(opts ...Option) options {
	o := options{basis: DefaultEulerBasis}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// SynthOption configures one Synthesize call.
type SynthOption func(*synthOptions)

type synthOptions struct {
	atol float64
}

// WithAtol sets the coordinate threshold of Synthesize. Panics unless atol
// is finite and non-negative.
func WithAtol(atol float64) SynthOption {
	if math.IsNaN(atol) || math.IsInf(atol, 0) || atol < 0 {
		panic("controlledu: WithAtol requires a finite atol >= 0")
	}
	return func(o *synthOptions) { o.atol = atol }
}

func gatherSynthOptions(opts ...SynthOption) synthOptions {
	o := synthOptions{atol: DefaultAtol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
