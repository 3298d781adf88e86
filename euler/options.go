// SPDX-License-Identifier: MIT

package euler

import "math"

const (
	// DefaultAtol is the tolerance below which a wrapped rotation angle counts as zero.
	DefaultAtol = 1e-12

	// DefaultSimplify enables dropping of zero rotations.
	DefaultSimplify = true
)

// Option configures Decompose.
type Option func(*options)

type options struct {
	qubit    int
	simplify bool
	atol     float64
}

// WithQubit places the emitted gates on qubit q (default 0). Panics if q < 0.
func WithQubit(q int) Option {
	if q < 0 {
		panic("euler: WithQubit requires q >= 0")
	}
	return func(o *options) { o.qubit = q }
}

// WithSimplify toggles removal of zero-angle rotations.
func WithSimplify(on bool) Option {
	return func(o *options) { o.simplify = on }
}

// WithAtol sets the zero-angle tolerance. Panics if atol is negative, NaN or Inf.
func WithAtol(atol float64) Option {
	if atol < 0 || math.IsNaN(atol) || math.IsInf(atol, 0) {
		panic("euler: WithAtol requires a finite atol >= 0")
	}
	return func(o *options) { o.atol = atol }
}

func gatherOptions(opts ...Option) options {
	o := options{simplify: DefaultSimplify, atol: DefaultAtol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
