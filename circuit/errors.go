// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrQubitIndex is returned when an instruction references a qubit outside
	// the register being evaluated, or repeats a qubit.
	ErrQubitIndex = errors.New("circuit: invalid qubit index")

	// ErrArity is returned when an instruction's qubit count does not match its
	// operation, or when a two-qubit operation appears in a one-qubit evaluation.
	ErrArity = errors.New("circuit: operation arity mismatch")
)
