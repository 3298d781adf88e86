// SPDX-License-Identifier: MIT
// Package weyl: sentinel errors.
//
// Every message is prefixed with "weyl: ". Sentinels are wrapped once with an
// operation tag via weylErrorf and matched with errors.Is; FidelityError
// carries the numbers of a rejected specialization and unwraps to
// ErrFidelityBelowRequest.

package weyl

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateEigenproblem indicates that no trial mixture of Re(M2) and
	// Im(M2) produced an eigenbasis that diagonalizes M2 within 1e-13.
	ErrDegenerateEigenproblem = errors.New("weyl: failed to diagonalize M2")

	// ErrProductDecomposition indicates that a 4×4 matrix is not a tensor
	// product of two one-qubit unitaries.
	ErrProductDecomposition = errors.New("weyl: unable to decompose product gate")

	// ErrFidelityBelowRequest indicates that the chosen specialization cannot
	// meet the requested fidelity.
	ErrFidelityBelowRequest = errors.New("weyl: calculated fidelity is worse than requested")

	// ErrNotFinite indicates a NaN or Inf entry in the input matrix.
	ErrNotFinite = errors.New("weyl: matrix has non-finite entries")
)

// FidelityError reports a specialization whose approximation fidelity is
// below the requested floor.
type FidelityError struct {
	Specialization Specialization
	Calculated     float64
	Requested      float64
}

func (e FidelityError) Error() string {
	return fmt.Sprintf("weyl: specialization %s: calculated fidelity %g is worse than requested fidelity %g",
		e.Specialization, e.Calculated, e.Requested)
}

// Unwrap exposes ErrFidelityBelowRequest to errors.Is.
func (e FidelityError) Unwrap() error { return ErrFidelityBelowRequest }

// operation tags used with weylErrorf.
const (
	opNew              = "New"
	opDecomposeProduct = "DecomposeProduct"
	opCircuit          = "Circuit"
)

// weylErrorf wraps err with an operation tag, preserving it for errors.Is.
func weylErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
