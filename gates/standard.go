// SPDX-License-Identifier: MIT

// Package gates - the standard gate set.
//
// StandardGate is a flat enumeration; every per-gate property (name, arity,
// parameter count, matrix, inverse) is resolved by one exhaustive switch or
// table lookup, never by dynamic dispatch on per-gate types.

package gates

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twoq/matrix"
)

// StandardGate identifies a gate of the standard set.
type StandardGate uint8

// Standard gates. Names follow the OpenQASM / qelib1 identifiers.
const (
	I StandardGate = iota
	H
	X
	Y
	Z
	S
	Sdg
	T
	Tdg
	SX
	SXdg
	RX
	RY
	RZ
	Phase
	U1
	U2
	U3
	U
	R
	CX
	CY
	CZ
	Swap
	ISwap
	RXX
	RYY
	RZZ
	RZX
	CPhase
	CRX
	CRY
	CRZ
	numStandardGates
)

// gateInfo is the static description of one StandardGate.
type gateInfo struct {
	name    string
	qubits  int
	params  int
	selfInv bool // gate is its own inverse
}

var gateTable = [numStandardGates]gateInfo{
	I:      {"id", 1, 0, true},
	H:      {"h", 1, 0, true},
	X:      {"x", 1, 0, true},
	Y:      {"y", 1, 0, true},
	Z:      {"z", 1, 0, true},
	S:      {"s", 1, 0, false},
	Sdg:    {"sdg", 1, 0, false},
	T:      {"t", 1, 0, false},
	Tdg:    {"tdg", 1, 0, false},
	SX:     {"sx", 1, 0, false},
	SXdg:   {"sxdg", 1, 0, false},
	RX:     {"rx", 1, 1, false},
	RY:     {"ry", 1, 1, false},
	RZ:     {"rz", 1, 1, false},
	Phase:  {"p", 1, 1, false},
	U1:     {"u1", 1, 1, false},
	U2:     {"u2", 1, 2, false},
	U3:     {"u3", 1, 3, false},
	U:      {"u", 1, 3, false},
	R:      {"r", 1, 2, false},
	CX:     {"cx", 2, 0, true},
	CY:     {"cy", 2, 0, true},
	CZ:     {"cz", 2, 0, true},
	Swap:   {"swap", 2, 0, true},
	ISwap:  {"iswap", 2, 0, false},
	RXX:    {"rxx", 2, 1, false},
	RYY:    {"ryy", 2, 1, false},
	RZZ:    {"rzz", 2, 1, false},
	RZX:    {"rzx", 2, 1, false},
	CPhase: {"cp", 2, 1, false},
	CRX:    {"crx", 2, 1, false},
	CRY:    {"cry", 2, 1, false},
	CRZ:    {"crz", 2, 1, false},
}

var _ Operation = StandardGate(0)

// Name returns the lowercase OpenQASM identifier.
func (g StandardGate) Name() string {
	if g >= numStandardGates {
		return fmt.Sprintf("gate(%d)", uint8(g))
	}
	return gateTable[g].name
}

// String implements fmt.Stringer.
func (g StandardGate) String() string { return g.Name() }

// NumQubits returns the gate arity.
func (g StandardGate) NumQubits() int { return gateTable[g].qubits }

// NumParams returns the number of real parameters.
func (g StandardGate) NumParams() int { return gateTable[g].params }

// Matrix returns the gate matrix as a Dense (2×2 or 4×4).
func (g StandardGate) Matrix(params []float64) (*matrix.Dense, error) {
	if g >= numStandardGates {
		return nil, fmt.Errorf("%s: %w", g.Name(), ErrUnknownGate)
	}
	if len(params) != gateTable[g].params {
		return nil, paramCountError(g.Name(), len(params), gateTable[g].params)
	}
	if gateTable[g].qubits == 1 {
		return matrix.FromMat2(g.mat2(params)), nil
	}
	return matrix.FromMat4(g.mat4(params)), nil
}

// mat2 evaluates a one-qubit gate; params are pre-validated.
func (g StandardGate) mat2(p []float64) matrix.Mat2 {
	switch g {
	case I:
		return idMat
	case H:
		return hMat
	case X:
		return xMat
	case Y:
		return yMat
	case Z:
		return zMat
	case S:
		return sMat
	case Sdg:
		return sdgMat
	case T:
		return tMat
	case Tdg:
		return tdgMat
	case SX:
		return sxMat
	case SXdg:
		return sxdgMat
	case RX:
		return RXMatrix(p[0])
	case RY:
		return RYMatrix(p[0])
	case RZ:
		return RZMatrix(p[0])
	case Phase, U1:
		return PhaseMatrix(p[0])
	case U2:
		return U3Matrix(math.Pi/2, p[0], p[1])
	case U3, U:
		return U3Matrix(p[0], p[1], p[2])
	case R:
		return RMatrix(p[0], p[1])
	}
	panic(fmt.Sprintf("gates: %s is not a one-qubit gate", g.Name()))
}

// mat4 evaluates a two-qubit gate; params are pre-validated.
func (g StandardGate) mat4(p []float64) matrix.Mat4 {
	switch g {
	case CX:
		return cxMat
	case CY:
		return cyMat
	case CZ:
		return czMat
	case Swap:
		return swapMat
	case ISwap:
		return iswapMat
	case RXX:
		return RXXMatrix(p[0])
	case RYY:
		return RYYMatrix(p[0])
	case RZZ:
		return RZZMatrix(p[0])
	case RZX:
		return RZXMatrix(p[0])
	case CPhase:
		return CPhaseMatrix(p[0])
	case CRX:
		return ControlledMatrix(RXMatrix(p[0]))
	case CRY:
		return ControlledMatrix(RYMatrix(p[0]))
	case CRZ:
		return ControlledMatrix(RZMatrix(p[0]))
	}
	panic(fmt.Sprintf("gates: %s is not a two-qubit gate", g.Name()))
}

// Inverse returns the gate and parameters implementing the adjoint.
//
// Errors:
//   - ErrParamCount on a parameter-count mismatch.
//   - ErrNoInverse for ISwap (its adjoint is not in the set).
func (g StandardGate) Inverse(params []float64) (Operation, []float64, error) {
	if g >= numStandardGates {
		return nil, nil, fmt.Errorf("%s: %w", g.Name(), ErrUnknownGate)
	}
	if len(params) != gateTable[g].params {
		return nil, nil, paramCountError(g.Name(), len(params), gateTable[g].params)
	}
	if gateTable[g].selfInv {
		return g, nil, nil
	}
	switch g {
	case S:
		return Sdg, nil, nil
	case Sdg:
		return S, nil, nil
	case T:
		return Tdg, nil, nil
	case Tdg:
		return T, nil, nil
	case SX:
		return SXdg, nil, nil
	case SXdg:
		return SX, nil, nil
	case RX, RY, RZ, Phase, U1, RXX, RYY, RZZ, RZX, CPhase, CRX, CRY, CRZ:
		return g, []float64{-params[0]}, nil
	case U2:
		return U3, []float64{-math.Pi / 2, -params[1], -params[0]}, nil
	case U3, U:
		return g, []float64{-params[0], -params[2], -params[1]}, nil
	case R:
		return R, []float64{-params[0], params[1]}, nil
	}
	return nil, nil, fmt.Errorf("%s: %w", g.Name(), ErrNoInverse)
}

// ByName resolves a lowercase identifier (as produced by Name) to a StandardGate.
func ByName(name string) (StandardGate, error) {
	for g := StandardGate(0); g < numStandardGates; g++ {
		if gateTable[g].name == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownGate)
}
