// SPDX-License-Identifier: MIT

package weyl

import (
	"math"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

// Circuit returns a gate sequence equal to the decomposed unitary, global
// phase included: K2R on qubit 0 and K2L on qubit 1 as Euler sequences, the
// interaction, then K1R and K1L.
//
// The interaction is SWAP for SWAPEquiv, SWAP followed by RZZ for
// MirrorControlledEquiv, and RXX(-2a)·RYY(-2b)·RZZ(-2c) otherwise; with
// WithSimplify(true) the rotations whose angle is below the tolerance are dropped.
func (d *Decomposition) Circuit(opts ...CircuitOption) (*circuit.Sequence, error) {
	o := gatherCircuitOptions(opts...)
	basis := d.eulerBasis
	if o.hasBasis {
		basis = o.basis
	}
	onQubit := func(q int) []euler.Option {
		return []euler.Option{euler.WithQubit(q), euler.WithSimplify(o.simplify), euler.WithAtol(o.atol)}
	}

	seq := circuit.New(d.globalPhase)
	for _, k := range []struct {
		u     matrix.Mat2
		qubit int
	}{{d.k2r, 0}, {d.k2l, 1}} {
		part, err := euler.Decompose(k.u, basis, onQubit(k.qubit)...)
		if err != nil {
			return nil, weylErrorf(opCircuit, err)
		}
		seq.Extend(part)
	}

	switch d.specialization {
	case SWAPEquiv:
		seq.Append(gates.Swap, nil, 0, 1)
		seq.GlobalPhase += pi4
	case MirrorControlledEquiv:
		seq.Append(gates.Swap, nil, 0, 1)
		seq.Append(gates.RZZ, []float64{(pi4 - d.c) * 2}, 0, 1)
		seq.GlobalPhase += pi4
	default:
		if !o.simplify || math.Abs(d.a) > o.atol {
			seq.Append(gates.RXX, []float64{-2 * d.a}, 0, 1)
		}
		if !o.simplify || math.Abs(d.b) > o.atol {
			seq.Append(gates.RYY, []float64{-2 * d.b}, 0, 1)
		}
		if !o.simplify || math.Abs(d.c) > o.atol {
			seq.Append(gates.RZZ, []float64{-2 * d.c}, 0, 1)
		}
	}

	for _, k := range []struct {
		u     matrix.Mat2
		qubit int
	}{{d.k1r, 0}, {d.k1l, 1}} {
		part, err := euler.Decompose(k.u, basis, onQubit(k.qubit)...)
		if err != nil {
			return nil, weylErrorf(opCircuit, err)
		}
		seq.Extend(part)
	}

	return seq, nil
}
