// SPDX-License-Identifier: MIT

package controlledu

import (
	"errors"
	"fmt"
)

// ErrGateEquivalence indicates a gate family that is not locally equivalent
// to RXX(scale·θ) for a single scale.
var ErrGateEquivalence = errors.New("controlledu: gate is not equivalent to a scaled RXX")

const (
	opNew           = "New"
	opSynthesize    = "Synthesize"
	opNumBasisGates = "NumBasisGates"
)

func curErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
