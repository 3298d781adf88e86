// Package circuit holds synthesized gate sequences.
//
// A Sequence is an ordered list of Instructions (operation, parameters,
// qubits) plus a global phase. It can be evaluated back to a 2×2 or 4×4
// unitary (little-endian), inverted gate by gate, and exported as
// OpenQASM 2.0 text.
package circuit
