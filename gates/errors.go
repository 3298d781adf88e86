// SPDX-License-Identifier: MIT

package gates

import (
	"errors"
	"fmt"
)

var (
	// ErrParamCount is returned when an operation receives the wrong number of parameters.
	ErrParamCount = errors.New("gates: wrong number of parameters")

	// ErrNoInverse is returned by Inverse for operations without an inverse in the gate set.
	ErrNoInverse = errors.New("gates: operation has no inverse in the standard set")

	// ErrUnknownGate is returned by ByName for unrecognized identifiers.
	ErrUnknownGate = errors.New("gates: unknown gate")

	// ErrBadParam is returned when a parameter expression cannot be parsed.
	ErrBadParam = errors.New("gates: invalid parameter expression")
)

// paramCountError reports a parameter-count mismatch for the named operation.
func paramCountError(name string, got, want int) error {
	return fmt.Errorf("%s: got %d params, want %d: %w", name, got, want, ErrParamCount)
}
