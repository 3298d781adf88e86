// SPDX-License-Identifier: MIT
// Package synth - pulse-efficient CX circuits.
//
// Purpose:
//   - Rewrite the 2- and 3-CX circuits for hardware whose native set is CX,
//     SX and virtual RZ. Corrections on the CX control are expanded as ZXZ and
//     on the target as XZX, so that Z rotations commute through the control
//     and X rotations through the target. The middle corrections then reduce
//     to single RZ/SX gates and only the outer blocks need an Euler sequence.
//
// Notes:
//   - In the 3-CX circuit, Hadamards on both qubits reverse the CX direction
//     and turn the variable RX of the target into a virtual RZ.
//   - In PulseAuto mode, middle rotations that are not SX are emitted as
//     generic Euler sequences; in PulseRequired mode the rewrite gives up.

package synth

import (
	"math"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

// eulerTriple holds (λ, θ, φ) of U = e^{iγ}·K(φ)·A(θ)·K(λ): the rotation
// applied first comes first.
type eulerTriple [3]float64

// splitCorrections expands the even (qubit 0) corrections in ZXZ and the odd
// (qubit 1) corrections in XZX, returning the summed Euler phases.
func splitCorrections(dec []matrix.Mat2) (q0, q1 []eulerTriple, phase float64, err error) {
	var theta, phi, lambda, gamma float64
	for i, u := range dec {
		basis := euler.ZXZ
		if i%2 == 1 {
			basis = euler.XZX
		}
		if theta, phi, lambda, gamma, err = euler.AnglesFromUnitary(u, basis); err != nil {
			return nil, nil, 0, err
		}
		phase += gamma
		if i%2 == 0 {
			q0 = append(q0, eulerTriple{lambda, theta, phi})
		} else {
			q1 = append(q1, eulerTriple{lambda, theta, phi})
		}
	}
	return q0, q1, phase, nil
}

// pulseOutcome classifies one attempt at the pulse-efficient rewrite.
type pulseOutcome uint8

const (
	// pulseApplied carries the rewritten circuit.
	pulseApplied pulseOutcome = iota
	// pulseNotApplicable sends Synthesize to the generic circuit.
	pulseNotApplicable
	// pulseFailed carries an error that Synthesize returns as is.
	pulseFailed
)

type pulseResult struct {
	outcome pulseOutcome
	seq     *circuit.Sequence
	err     error
}

func pulseWith(seq *circuit.Sequence) pulseResult {
	return pulseResult{outcome: pulseApplied, seq: seq}
}

func pulseSkip() pulseResult { return pulseResult{outcome: pulseNotApplicable} }

func pulseError(err error) pulseResult { return pulseResult{outcome: pulseFailed, err: err} }

// sxVZ2CX realizes the 2-CX circuit; it always applies.
func (d *Decomposer) sxVZ2CX(dec []matrix.Mat2, target *weyl.Decomposition) pulseResult {
	q0, q1, eulerPhase, err := splitCorrections(dec)
	if err != nil {
		return pulseError(err)
	}
	seq := circuit.New(target.GlobalPhase() - 2*d.basis.GlobalPhase() + eulerPhase)

	m0 := gates.RZMatrix(q0[0][2] + q0[1][0] + pi2).Mul(gates.RXMatrix(q0[0][1])).Mul(gates.RZMatrix(q0[0][0]))
	if err = d.appendOneQubit(seq, m0, 0); err != nil {
		return pulseError(err)
	}
	m1 := gates.RXMatrix(q1[0][2] + q1[1][0]).Mul(gates.RZMatrix(q1[0][1])).Mul(gates.RXMatrix(q1[0][0]))
	if err = d.appendOneQubit(seq, m1, 1); err != nil {
		return pulseError(err)
	}

	seq.Append(gates.CX, nil, 0, 1)
	seq.Append(gates.SX, nil, 0)
	seq.Append(gates.RZ, []float64{q0[1][1] - math.Pi}, 0)
	seq.Append(gates.SX, nil, 0)
	seq.Append(gates.RZ, []float64{q1[1][1]}, 1)
	seq.GlobalPhase += pi2
	seq.Append(gates.CX, nil, 0, 1)

	m0 = gates.RZMatrix(q0[2][2]).Mul(gates.RXMatrix(q0[2][1])).Mul(gates.RZMatrix(q0[1][2] + q0[2][0] + pi2))
	if err = d.appendOneQubit(seq, m0, 0); err != nil {
		return pulseError(err)
	}
	m1 = gates.RXMatrix(q1[2][2]).Mul(gates.RZMatrix(q1[2][1])).Mul(gates.RXMatrix(q1[1][2] + q1[2][0]))
	if err = d.appendOneQubit(seq, m1, 1); err != nil {
		return pulseError(err)
	}
	return pulseWith(seq)
}

// sxVZ3CX realizes the 3-CX circuit.
//
// Implementation:
//   - Conjugate every CX(0→1) by H⊗H, which turns it into CX(1→0). Between
//     the CX gates qubit 0 then carries RZ(θ) followed by RX(x12), where x12
//     joins the outer Z angles of two neighbouring corrections, and qubit 1
//     carries RX(θ) followed by RZ.
//   - x12 = 0 emits nothing and x12 = π/2 emits SX.
//   - A nonzero multiple of π is RX(x12) = ∓i·X or ±I. The X commutes back
//     through the CX target and RZ(θ) (negating θ) and leaves the Hadamard as
//     Z, which joins the first qubit-0 block as RZ(-x12). Only odd multiples
//     add π to the phase.
//   - Any other x12, or a qubit-1 middle angle other than π/2, needs a generic
//     RX: emitted in PulseAuto mode, not applicable in PulseRequired mode.
//   - The assembled circuit is checked against the target; a mismatch is
//     reported as not applicable.
func (d *Decomposer) sxVZ3CX(dec []matrix.Mat2, target *weyl.Decomposition) pulseResult {
	auto := d.pulse != PulseRequired
	q0, q1, eulerPhase, err := splitCorrections(dec)
	if err != nil {
		return pulseError(err)
	}
	seq := circuit.New(target.GlobalPhase() - 3*d.basis.GlobalPhase() + eulerPhase)
	near := func(x, y float64) bool { return math.Abs(x-y) <= pulseAtol }

	x12 := q0[1][2] + q0[2][0]
	x12NonZero := !near(x12, 0)
	fold := x12NonZero && near(math.Sin(x12), 0)
	odd := fold && near(math.Cos(x12), -1)

	h := gates.HMatrix()
	z0 := q0[0][2] + q0[1][0]
	if fold {
		z0 -= x12
	}
	m0 := h.Mul(gates.RZMatrix(z0)).Mul(gates.RXMatrix(q0[0][1])).Mul(gates.RZMatrix(q0[0][0]))
	if err = d.appendOneQubit(seq, m0, 0); err != nil {
		return pulseError(err)
	}
	m1 := h.Mul(gates.RXMatrix(q1[0][2] + q1[1][0])).Mul(gates.RZMatrix(q1[0][1])).Mul(gates.RXMatrix(q1[0][0]))
	if err = d.appendOneQubit(seq, m1, 1); err != nil {
		return pulseError(err)
	}

	seq.Append(gates.CX, nil, 1, 0)
	if odd {
		seq.Append(gates.RZ, []float64{-q0[1][1]}, 0)
		seq.GlobalPhase += math.Pi
	} else {
		seq.Append(gates.RZ, []float64{q0[1][1]}, 0)
	}
	if x12NonZero && !fold {
		if res, ok := d.sxOrRX(seq, x12, 0, auto); !ok {
			return res
		}
	}
	if res, ok := d.sxOrRX(seq, q1[1][1], 1, auto); !ok {
		return res
	}
	seq.Append(gates.RZ, []float64{q1[1][2] + q1[2][0]}, 1)
	seq.Append(gates.CX, nil, 1, 0)
	seq.Append(gates.RZ, []float64{q0[2][1]}, 0)
	if res, ok := d.sxOrRX(seq, q1[2][1], 1, auto); !ok {
		return res
	}
	seq.Append(gates.CX, nil, 1, 0)

	m0 = gates.RZMatrix(q0[3][2]).Mul(gates.RXMatrix(q0[3][1])).Mul(gates.RZMatrix(q0[2][2] + q0[3][0])).Mul(h)
	if err = d.appendOneQubit(seq, m0, 0); err != nil {
		return pulseError(err)
	}
	m1 = gates.RXMatrix(q1[3][2]).Mul(gates.RZMatrix(q1[3][1])).Mul(gates.RXMatrix(q1[2][2] + q1[3][0])).Mul(h)
	if err = d.appendOneQubit(seq, m1, 1); err != nil {
		return pulseError(err)
	}

	out, err := seq.Unitary()
	if err != nil {
		return pulseError(err)
	}
	if !out.AllClose(target.Reconstruct(), pulseVerifyAtol) {
		return pulseSkip()
	}
	return pulseWith(seq)
}

// sxOrRX emits SX for θ ≈ π/2 and otherwise, in auto mode, the Euler
// sequence of RX(θ). When it reports false the returned result ends the
// rewrite.
func (d *Decomposer) sxOrRX(seq *circuit.Sequence, theta float64, q int, auto bool) (pulseResult, bool) {
	if math.Abs(theta-pi2) <= pulseAtol {
		seq.Append(gates.SX, nil, q)
		seq.GlobalPhase -= pi4
		return pulseResult{}, true
	}
	if !auto {
		return pulseSkip(), false
	}
	if err := d.appendOneQubit(seq, gates.RXMatrix(theta), q); err != nil {
		return pulseError(err), false
	}
	return pulseResult{}, true
}
