// SPDX-License-Identifier: MIT

// Package circuit - gate sequences.
//
// Purpose:
//   - Hold the output of every synthesis routine: an ordered list of
//     (operation, parameters, qubits) plus one global phase.
//   - Provide exact evaluation back to a matrix, so callers (and tests) can
//     check a synthesized sequence against its target with the phase included.
//
// Determinism:
//   - Instructions keep insertion order; evaluation multiplies left-to-right in time.

package circuit

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

// Instruction is one operation applied to an ordered list of qubits.
type Instruction struct {
	Op     gates.Operation
	Params []float64
	Qubits []int
}

// Name returns the operation name.
func (in Instruction) Name() string { return in.Op.Name() }

// Sequence is an ordered gate list with a global phase:
// the represented unitary is e^{i·GlobalPhase}·G_n···G_1.
type Sequence struct {
	Instructions []Instruction
	GlobalPhase  float64
}

// New returns an empty sequence with the given global phase.
func New(globalPhase float64) *Sequence {
	return &Sequence{GlobalPhase: globalPhase}
}

// Append adds op with params on qubits. Params are copied.
func (s *Sequence) Append(op gates.Operation, params []float64, qubits ...int) {
	var p []float64
	if len(params) > 0 {
		p = append([]float64(nil), params...)
	}
	s.Instructions = append(s.Instructions, Instruction{Op: op, Params: p, Qubits: append([]int(nil), qubits...)})
}

// Extend appends every instruction of other and adds its global phase.
func (s *Sequence) Extend(other *Sequence) {
	for _, in := range other.Instructions {
		s.Append(in.Op, in.Params, in.Qubits...)
	}
	s.GlobalPhase += other.GlobalPhase
}

// Len returns the number of instructions.
func (s *Sequence) Len() int { return len(s.Instructions) }

// OnQubit returns a copy of a one-qubit sequence with every instruction moved to qubit q.
func (s *Sequence) OnQubit(q int) *Sequence {
	out := New(s.GlobalPhase)
	for _, in := range s.Instructions {
		out.Append(in.Op, in.Params, q)
	}
	return out
}

// CountOps returns the number of instructions per operation name.
func (s *Sequence) CountOps() map[string]int {
	out := make(map[string]int)
	for _, in := range s.Instructions {
		out[in.Op.Name()]++
	}
	return out
}

// Inverse returns the adjoint sequence: reversed order, each operation
// replaced by its inverse, phase negated.
func (s *Sequence) Inverse() (*Sequence, error) {
	out := New(-s.GlobalPhase)
	var (
		i   int
		in  Instruction
		op  gates.Operation
		p   []float64
		err error
	)
	for i = len(s.Instructions) - 1; i >= 0; i-- {
		in = s.Instructions[i]
		if op, p, err = in.Op.Inverse(in.Params); err != nil {
			return nil, fmt.Errorf("circuit: inverse of instruction %d: %w", i, err)
		}
		out.Append(op, p, in.Qubits...)
	}
	return out, nil
}

// Unitary1Q evaluates a sequence of one-qubit instructions as a 2×2 matrix,
// ignoring qubit labels.
func (s *Sequence) Unitary1Q() (matrix.Mat2, error) {
	u := matrix.Identity2()
	for i, in := range s.Instructions {
		if in.Op.NumQubits() != 1 || len(in.Qubits) != 1 {
			return u, fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), ErrArity)
		}
		g, err := gates.Matrix2(in.Op, in.Params)
		if err != nil {
			return u, fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), err)
		}
		u = g.Mul(u)
	}
	return u.Scale(cmplx.Exp(complex(0, s.GlobalPhase))), nil
}

// Unitary evaluates the sequence on two qubits (little-endian) as a 4×4 matrix.
//
// One-qubit gates on qubit 0 become I⊗G, on qubit 1 G⊗I; two-qubit gates on
// [0,1] are used as-is and on [1,0] with the qubits exchanged.
//
// Errors:
//   - ErrQubitIndex for qubits outside {0,1} or repeated qubits.
//   - ErrArity when the qubit list does not match the operation.
func (s *Sequence) Unitary() (matrix.Mat4, error) {
	u := matrix.Identity4()
	var g matrix.Mat4
	for i, in := range s.Instructions {
		if len(in.Qubits) != in.Op.NumQubits() {
			return u, fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), ErrArity)
		}
		for _, q := range in.Qubits {
			if q < 0 || q > 1 {
				return u, fmt.Errorf("instruction %d (%s) qubit %d: %w", i, in.Op.Name(), q, ErrQubitIndex)
			}
		}
		switch in.Op.NumQubits() {
		case 1:
			m, err := gates.Matrix2(in.Op, in.Params)
			if err != nil {
				return u, fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), err)
			}
			if in.Qubits[0] == 0 {
				g = matrix.Kron(matrix.Identity2(), m)
			} else {
				g = matrix.Kron(m, matrix.Identity2())
			}
		case 2:
			if in.Qubits[0] == in.Qubits[1] {
				return u, fmt.Errorf("instruction %d (%s): repeated qubit: %w", i, in.Op.Name(), ErrQubitIndex)
			}
			m, err := gates.Matrix4(in.Op, in.Params)
			if err != nil {
				return u, fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), err)
			}
			g = m
			if in.Qubits[0] == 1 {
				g = m.SwapQubits()
			}
		default:
			return u, fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), ErrArity)
		}
		u = g.Mul(u)
	}
	return u.Scale(cmplx.Exp(complex(0, s.GlobalPhase))), nil
}
