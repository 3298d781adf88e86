// Package synth decomposes two-qubit unitaries into one-qubit gates and a
// fixed entangling basis gate.
//
// A Decomposer is built once per basis gate (CX, CZ, iSWAP, an RZX pulse, a
// caller-defined Family, ...). It canonicalizes the gate with the weyl
// package and precomputes the one-qubit corrections of the standard
// 0-, 1-, 2- and 3-use circuits. For each target, Synthesize picks the number
// of basis gates that maximizes the expected fidelity
//
//	Fbar(trace_n) · basisFidelity^n
//
// and emits the corresponding circuit with corrections in the chosen Euler
// basis. The 2- and 3-use circuits are exact for super-controlled basis gates
// (Weyl coordinates a = π/4, c = 0), which includes CX, CZ and iSWAP.
//
// For the CX + {RZ, SX, X} hardware set (Euler basis ZSX or ZSXX) a
// pulse-efficient rewrite replaces the middle corrections with single SX/RZ
// gates; see PulseMode.
//
// DecomposeUpToDiagonal is the building block for multi-qubit synthesis: it
// returns a 2-CX circuit equal to the target up to a diagonal.
package synth
