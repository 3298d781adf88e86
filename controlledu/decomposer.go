// SPDX-License-Identifier: MIT
// Package controlledu - synthesis over a user gate family.
//
// Purpose:
//   - Express Ud(a, b, c) = exp(i(a·XX + b·YY + c·ZZ)) with at most three
//     applications of a one-parameter gate G(θ) that is locally equivalent to
//     RXX(θ/scale). Each coordinate gets one application; the YY and ZZ terms
//     are reached by changing frame with S and H on both qubits.
//
// Notes:
//   - The chamber allows c < 0, while canonicalizing G(θ) always reports a
//     non-negative angle. A positive ZZ angle is therefore built as the
//     inverse of the circuit for its negation.

package controlledu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

// Decomposer synthesizes two-qubit unitaries over a gate family. It is
// immutable after New and safe for concurrent use.
type Decomposer struct {
	gate  gates.Operation
	basis euler.Basis
	scale float64

	// frame changes in the output basis
	s, sdg, h *circuit.Sequence
}

// New derives the scale of gate against RXX and prepares the frame changes.
//
// Implementation:
//   - For each probe θ ∈ {0.2, 0.3, π/2}: canonicalize G(θ), RXX(θ) forced to
//     ControlledEquiv without a fidelity floor, and G(θ) forced to
//     ControlledEquiv; scale = a(RXX) / a(G forced).
//   - Reject the family when 2·a(G) differs from θ/scale, or when the probes
//     disagree on the scale, by more than 1e-12.
//
// Errors:
//   - ErrGateEquivalence for a family that is not two-qubit, does not take
//     exactly one parameter, is not controlled-equivalent or scales
//     inconsistently. Canonicalization errors of the probes are wrapped too.
func New(gate gates.Operation, opts ...Option) (*Decomposer, error) {
	o := gatherOptions(opts...)
	if gate.NumQubits() != 2 || gate.NumParams() != 1 {
		return nil, curErrorf(opNew, fmt.Errorf("%w: %s must be a two-qubit gate with exactly 1 angle parameter",
			ErrGateEquivalence, gate.Name()))
	}

	var scales [len(probeAngles)]float64
	for i, theta := range probeAngles {
		scale, err := probeScale(gate, theta)
		if err != nil {
			return nil, curErrorf(opNew, err)
		}
		scales[i] = scale
	}
	for _, s := range scales[1:] {
		if math.Abs(s-scales[0]) > scaleAtol {
			return nil, curErrorf(opNew, fmt.Errorf("%w: inconsistent scaling parameters %v", ErrGateEquivalence, scales))
		}
	}

	d := &Decomposer{gate: gate, basis: o.basis, scale: scales[0]}
	var err error
	if d.s, err = euler.Decompose(gates.SMatrix(), o.basis); err != nil {
		return nil, curErrorf(opNew, err)
	}
	if d.sdg, err = euler.Decompose(gates.SdgMatrix(), o.basis); err != nil {
		return nil, curErrorf(opNew, err)
	}
	if d.h, err = euler.Decompose(gates.HMatrix(), o.basis); err != nil {
		return nil, curErrorf(opNew, err)
	}
	return d, nil
}

// probeScale returns the scale of gate at theta.
func probeScale(gate gates.Operation, theta float64) (float64, error) {
	u, err := gates.Matrix4(gate, []float64{theta})
	if err != nil {
		return 0, err
	}
	decomp, err := weyl.New(u)
	if err != nil {
		return 0, fmt.Errorf("%w: probe %g: %w", ErrGateEquivalence, theta, err)
	}
	rxx, err := weyl.New(gates.RXXMatrix(theta), weyl.WithoutFidelity(), weyl.WithSpecialization(weyl.ControlledEquiv))
	if err != nil {
		return 0, err
	}
	equiv, err := weyl.New(u, weyl.WithSpecialization(weyl.ControlledEquiv))
	if err != nil {
		return 0, fmt.Errorf("%w: probe %g: %w", ErrGateEquivalence, theta, err)
	}

	scale := rxx.A() / equiv.A()
	if math.Abs(2*decomp.A()-theta/scale) > scaleAtol {
		return 0, fmt.Errorf("%w: probe %g: %s is not equivalent to an RXX", ErrGateEquivalence, theta, gate.Name())
	}
	return scale, nil
}

// Gate returns the gate family.
func (d *Decomposer) Gate() gates.Operation { return d.gate }

// EulerBasis returns the one-qubit output basis.
func (d *Decomposer) EulerBasis() euler.Basis { return d.basis }

// Scale returns s with G(s·θ) locally equivalent to RXX(θ).
func (d *Decomposer) Scale() float64 { return d.scale }

// NumBasisGates returns how many Weyl coordinates of u exceed atol in
// magnitude.
func (d *Decomposer) NumBasisGates(u matrix.Mat4, atol float64) (int, error) {
	target, err := weyl.New(u)
	if err != nil {
		return 0, curErrorf(opNumBasisGates, err)
	}
	n := 0
	for _, x := range [3]float64{target.A(), target.B(), target.C()} {
		if math.Abs(x) > atol {
			n++
		}
	}
	return n, nil
}

// Synthesize returns a circuit over the gate family and the Euler basis that
// equals u, global phase included.
//
// Implementation:
//   - Stage 1: Canonicalize u; emit K2R on qubit 0 and K2L on qubit 1.
//   - Stage 2: XX term: one application realizing Ud(a, 0, 0).
//   - Stage 3: YY term when |b| > atol: the XX circuit for b between S† and S
//     on both qubits.
//   - Stage 4: ZZ term when |c| > atol: the XX circuit between H on both
//     qubits; for c > 0 the inverse of the circuit for -c.
//   - Stage 5: emit K1R and K1L.
//
// The a term is always emitted, so the gate appears at least once.
func (d *Decomposer) Synthesize(u matrix.Mat4, opts ...SynthOption) (*circuit.Sequence, error) {
	so := gatherSynthOptions(opts...)

	// Stage 1
	target, err := weyl.New(u)
	if err != nil {
		return nil, curErrorf(opSynthesize, err)
	}
	seq := circuit.New(target.GlobalPhase())
	if err = d.appendOneQubit(seq, target.K2R(), 0); err != nil {
		return nil, curErrorf(opSynthesize, err)
	}
	if err = d.appendOneQubit(seq, target.K2L(), 1); err != nil {
		return nil, curErrorf(opSynthesize, err)
	}

	// Stages 2-4
	if err = d.appendInteraction(seq, target, so.atol); err != nil {
		return nil, curErrorf(opSynthesize, err)
	}

	// Stage 5
	if err = d.appendOneQubit(seq, target.K1R(), 0); err != nil {
		return nil, curErrorf(opSynthesize, err)
	}
	if err = d.appendOneQubit(seq, target.K1L(), 1); err != nil {
		return nil, curErrorf(opSynthesize, err)
	}
	return seq, nil
}

// appendInteraction appends Ud(a, b, c) of target.
func (d *Decomposer) appendInteraction(seq *circuit.Sequence, target *weyl.Decomposition, atol float64) error {
	xx, err := d.toRXX(-2 * target.A())
	if err != nil {
		return err
	}
	seq.Extend(xx)

	if math.Abs(target.B()) > atol {
		yy, err := d.toRXX(-2 * target.B())
		if err != nil {
			return err
		}
		appendBoth(seq, d.sdg)
		seq.Extend(yy)
		appendBoth(seq, d.s)
	}

	if math.Abs(target.C()) > atol {
		gamma := -2 * target.C()
		var zz *circuit.Sequence
		if gamma <= 0 {
			zz, err = d.toRXX(gamma)
		} else {
			var pos *circuit.Sequence
			if pos, err = d.toRXX(-gamma); err == nil {
				zz, err = pos.Inverse()
			}
		}
		if err != nil {
			return err
		}
		appendBoth(seq, d.h)
		seq.Extend(zz)
		appendBoth(seq, d.h)
	}
	return nil
}

// toRXX returns a circuit equal to RXX(angle) = Ud(-angle/2, 0, 0): one
// application of G(scale·angle) between the inverses of its own local factors.
func (d *Decomposer) toRXX(angle float64) (*circuit.Sequence, error) {
	param := []float64{d.scale * angle}
	u, err := gates.Matrix4(d.gate, param)
	if err != nil {
		return nil, err
	}
	dec, err := weyl.New(u)
	if err != nil {
		return nil, err
	}

	seq := circuit.New(-dec.GlobalPhase())
	if err = d.appendInverse(seq, dec.K2R(), 0); err != nil {
		return nil, err
	}
	if err = d.appendInverse(seq, dec.K2L(), 1); err != nil {
		return nil, err
	}
	seq.Append(d.gate, param, 0, 1)
	if err = d.appendInverse(seq, dec.K1R(), 0); err != nil {
		return nil, err
	}
	if err = d.appendInverse(seq, dec.K1L(), 1); err != nil {
		return nil, err
	}
	return seq, nil
}

func (d *Decomposer) appendOneQubit(seq *circuit.Sequence, u matrix.Mat2, q int) error {
	part, err := euler.Decompose(u, d.basis, euler.WithQubit(q))
	if err != nil {
		return err
	}
	seq.Extend(part)
	return nil
}

// appendInverse appends the Euler sequence of u† on qubit q.
func (d *Decomposer) appendInverse(seq *circuit.Sequence, u matrix.Mat2, q int) error {
	part, err := euler.Decompose(u, d.basis, euler.WithQubit(q))
	if err != nil {
		return err
	}
	inv, err := part.Inverse()
	if err != nil {
		return err
	}
	seq.Extend(inv)
	return nil
}

// appendBoth appends the one-qubit sequence part on qubits 0 and 1, gate by
// gate, adding its phase twice.
func appendBoth(seq *circuit.Sequence, part *circuit.Sequence) {
	for _, in := range part.Instructions {
		seq.Append(in.Op, in.Params, 0)
		seq.Append(in.Op, in.Params, 1)
	}
	seq.GlobalPhase += 2 * part.GlobalPhase
}
