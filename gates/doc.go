// Package gates defines the operations that synthesized sequences are made of.
//
// It provides:
//
//   - Operation: the interface every sequence element satisfies (name, arity,
//     parameter count, matrix, inverse).
//   - StandardGate: the standard one- and two-qubit gate set (h, sx, rz, u3,
//     cx, rxx, rzz, ...) with closed-form matrices and inverses.
//   - Family: adapter turning a caller-supplied θ ↦ 4×4 unitary function into
//     an Operation (used by the Controlled-U synthesizer).
//   - ParseParam / FormatParam / ParseCall: pi-aware parameter expressions,
//     e.g. "rzz(pi/3)".
//
// Two-qubit matrices are little-endian over the qubit arguments.
package gates
