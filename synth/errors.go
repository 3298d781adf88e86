// SPDX-License-Identifier: MIT
// Package synth: sentinel errors.
//
// Every sentinel is prefixed with "synth: " and wrapped with an operation tag
// by synthErrorf; callers match with errors.Is.

package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPulseOptimization indicates that PulseRequired was set but
	// the pulse-efficient CX + {RZ, SX, X} rewrite cannot serve the request.
	ErrUnsupportedPulseOptimization = errors.New("synth: unsupported pulse optimization")

	// ErrNotTwoQubit indicates a basis gate that does not act on two qubits.
	ErrNotTwoQubit = errors.New("synth: basis gate must act on two qubits")
)

const (
	opNew                   = "New"
	opSynthesize            = "Synthesize"
	opNumBasisGates         = "NumBasisGates"
	opDecomposeUpToDiagonal = "DecomposeUpToDiagonal"
)

func synthErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
