// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"
	"strings"
)

// Basis selects the gate set of a one-qubit decomposition.
type Basis uint8

// Supported bases.
const (
	U3 Basis = iota
	U321
	U
	PSX
	U1X
	RR
	ZYZ
	ZXZ
	XYX
	XZX
	ZSX
	ZSXX
	numBases
)

var basisNames = [numBases]string{
	U3:   "U3",
	U321: "U321",
	U:    "U",
	PSX:  "PSX",
	U1X:  "U1X",
	RR:   "RR",
	ZYZ:  "ZYZ",
	ZXZ:  "ZXZ",
	XYX:  "XYX",
	XZX:  "XZX",
	ZSX:  "ZSX",
	ZSXX: "ZSXX",
}

// String returns the upper-case basis name.
func (b Basis) String() string {
	if b >= numBases {
		return fmt.Sprintf("Basis(%d)", uint8(b))
	}
	return basisNames[b]
}

// Valid reports whether b is one of the supported bases.
func (b Basis) Valid() bool { return b < numBases }

// ParseBasis resolves a basis name, case-insensitively.
func ParseBasis(name string) (Basis, error) {
	up := strings.ToUpper(strings.TrimSpace(name))
	for b := Basis(0); b < numBases; b++ {
		if basisNames[b] == up {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownBasis)
}

// Bases returns every supported basis in declaration order.
func Bases() []Basis {
	out := make([]Basis, 0, numBases)
	for b := Basis(0); b < numBases; b++ {
		out = append(out, b)
	}
	return out
}
