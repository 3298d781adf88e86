// Package controlledu synthesizes two-qubit unitaries over a single
// parameterized entangling gate that is locally equivalent to a scaled RXX,
// such as RZZ, RZX, CPhase or a hardware-native family supplied as a
// gates.Family.
//
// Any target needs at most three applications of the gate, one per nonzero
// Weyl coordinate, with one-qubit corrections in a chosen Euler basis.
package controlledu
