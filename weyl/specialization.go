// SPDX-License-Identifier: MIT

package weyl

import (
	"fmt"

	"github.com/katalvlaran/twoq/euler"
)

// Specialization classifies a canonical decomposition by the symmetry of its
// Weyl coordinates. Every non-General value fixes some of the K2 degrees of
// freedom so that the decomposition is unique.
type Specialization uint8

const (
	// General: no symmetry, all six local parameters bound.
	General Specialization = iota
	// IdEquiv: Ud(0,0,0), locally the identity.
	IdEquiv
	// SWAPEquiv: Ud(π/4,π/4,±π/4), locally SWAP.
	SWAPEquiv
	// PartialSWAPEquiv: Ud(α,α,α), a power of SWAP.
	PartialSWAPEquiv
	// PartialSWAPFlipEquiv: Ud(α,α,-α).
	PartialSWAPFlipEquiv
	// ControlledEquiv: Ud(α,0,0), locally a controlled rotation.
	ControlledEquiv
	// MirrorControlledEquiv: Ud(π/4,π/4,α), SWAP times a controlled rotation.
	MirrorControlledEquiv
	// FSimaabEquiv: Ud(α,α,β) with α ≥ |β|.
	FSimaabEquiv
	// FSimabbEquiv: Ud(α,β,β) with α ≥ β ≥ 0.
	FSimabbEquiv
	// FSimabmbEquiv: Ud(α,β,-β) with α ≥ β ≥ 0.
	FSimabmbEquiv
	numSpecializations
)

var specializationNames = [numSpecializations]string{
	General:               "General",
	IdEquiv:               "IdEquiv",
	SWAPEquiv:             "SWAPEquiv",
	PartialSWAPEquiv:      "PartialSWAPEquiv",
	PartialSWAPFlipEquiv:  "PartialSWAPFlipEquiv",
	ControlledEquiv:       "ControlledEquiv",
	MirrorControlledEquiv: "MirrorControlledEquiv",
	FSimaabEquiv:          "fSimaabEquiv",
	FSimabbEquiv:          "fSimabbEquiv",
	FSimabmbEquiv:         "fSimabmbEquiv",
}

func (s Specialization) String() string {
	if s >= numSpecializations {
		return fmt.Sprintf("Specialization(%d)", uint8(s))
	}
	return specializationNames[s]
}

// defaultEulerBasis is the one-qubit basis whose structure matches the K2
// factors fixed by s.
func (s Specialization) defaultEulerBasis() euler.Basis {
	switch s {
	case ControlledEquiv, FSimabbEquiv, FSimabmbEquiv:
		return euler.XYX
	default:
		return euler.ZYZ
	}
}
