// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

// Synthesize returns a circuit over the basis gate and one-qubit gates of
// the Euler basis that equals u (global phase included) when the chosen
// number of basis gates suffices, and approximates it otherwise.
//
// Implementation:
//   - Stage 1: Canonicalize u with the default fidelity floor.
//   - Stage 2: Choose n ∈ {0..3}: forced, or the first maximizer of
//     Fbar(trace_n)·f^n.
//   - Stage 3: Build the 2n+2 one-qubit corrections.
//   - Stage 4: Unless PulseDisabled, try the pulse-efficient CX rewrite.
//   - Stage 5: Otherwise Euler-decompose each correction and interleave the
//     corrections with n basis gates on qubits [0, 1].
//
// The 2- and 3-use circuits are exact only for super-controlled basis gates.
//
// Errors:
//   - weyl canonicalization errors.
//   - ErrUnsupportedPulseOptimization in PulseRequired mode.
func (d *Decomposer) Synthesize(u matrix.Mat4, opts ...SynthOption) (*circuit.Sequence, error) {
	so := gatherSynthOptions(opts...)

	// Stage 1
	target, err := weyl.New(u)
	if err != nil {
		return nil, synthErrorf(opSynthesize, err)
	}

	// Stage 2
	n := so.numBasisUses
	if !so.forcedUses {
		n = bestCount(d.TracesFor(target), d.effectiveFidelity(so))
	}

	// Stage 3
	dec := d.decomposition(n, target)

	// Stage 4
	if d.pulse != PulseDisabled {
		res := d.pulseOptimal(n, dec, target)
		switch res.outcome {
		case pulseApplied:
			return res.seq, nil
		case pulseFailed:
			return nil, synthErrorf(opSynthesize, res.err)
		}
	}

	// Stage 5
	seq, err := d.generic(n, dec, target)
	if err != nil {
		return nil, synthErrorf(opSynthesize, err)
	}
	return seq, nil
}

// generic interleaves Euler sequences of the corrections with n basis gates.
func (d *Decomposer) generic(n int, dec []matrix.Mat2, target *weyl.Decomposition) (*circuit.Sequence, error) {
	phase := target.GlobalPhase() - float64(n)*d.basis.GlobalPhase()
	if n == 2 {
		phase += math.Pi
	}
	seq := circuit.New(phase)
	for i := 0; i <= n; i++ {
		if err := d.appendOneQubit(seq, dec[2*i], 0); err != nil {
			return nil, err
		}
		if err := d.appendOneQubit(seq, dec[2*i+1], 1); err != nil {
			return nil, err
		}
		if i < n {
			seq.Append(d.gate, d.params, 0, 1)
		}
	}
	return seq, nil
}

// appendOneQubit appends the Euler sequence of u on qubit q, phase included.
func (d *Decomposer) appendOneQubit(seq *circuit.Sequence, u matrix.Mat2, q int) error {
	part, err := euler.Decompose(u, d.eulerBasis, euler.WithQubit(q))
	if err != nil {
		return err
	}
	seq.Extend(part)
	return nil
}

// pulseOptimal tries the CX + {RZ, SX, X} rewrite. Unmet preconditions are
// pulseNotApplicable in PulseAuto mode and pulseFailed with
// ErrUnsupportedPulseOptimization in PulseRequired mode. Counts 0 and 1 have
// no rewrite and always use the generic circuit.
func (d *Decomposer) pulseOptimal(n int, dec []matrix.Mat2, target *weyl.Decomposition) pulseResult {
	required := d.pulse == PulseRequired
	if n == 0 || n == 1 {
		return pulseSkip()
	}
	if d.eulerBasis != euler.ZSX && d.eulerBasis != euler.ZSXX {
		if required {
			return pulseError(fmt.Errorf("only ZSX and ZSXX bases are supported (%s used): %w",
				d.eulerBasis, ErrUnsupportedPulseOptimization))
		}
		return pulseSkip()
	}
	if g, ok := d.gate.(gates.StandardGate); !ok || g != gates.CX {
		if required {
			return pulseError(fmt.Errorf("only the CX entangling gate is supported (%s used): %w",
				d.gate.Name(), ErrUnsupportedPulseOptimization))
		}
		return pulseSkip()
	}

	var res pulseResult
	if n == 2 {
		res = d.sxVZ2CX(dec, target)
	} else {
		res = d.sxVZ3CX(dec, target)
	}
	if required && res.outcome == pulseNotApplicable {
		return pulseError(fmt.Errorf("failed to compute requested pulse optimal decomposition: %w",
			ErrUnsupportedPulseOptimization))
	}
	return res
}
