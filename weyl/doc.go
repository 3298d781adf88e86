// Package weyl computes the canonical (KAK, Weyl chamber) decomposition of
// two-qubit unitaries.
//
// Every U in U(4) factors as
//
//	U = e^{iφ} · (K1L ⊗ K1R) · Ud(a, b, c) · (K2L ⊗ K2R)
//
// where Ud(a, b, c) = exp(i(a·XX + b·YY + c·ZZ)) and K1L, K1R, K2L, K2R are
// one-qubit unitaries (L on qubit 1, R on qubit 0). The coordinates are
// folded into the chamber π/4 ≥ a ≥ b ≥ |c| ≥ 0 and do not change under
// one-qubit operations, so they classify two-qubit gates up to local
// equivalence.
//
// New also recognizes the symmetric points of the chamber (identity, SWAP,
// partial SWAPs, controlled rotations, fSim families). When the input is
// within the requested fidelity of such a point, the coordinates snap to it
// and the one-qubit factors absorb the freedom the symmetry leaves, which
// makes the result unique and lets synthesizers emit fewer gates.
//
// Helpers cover the surrounding calculus: Ud, TraceToFidelity,
// ClosestPartialSwap, LocalInvariants, LocallyEquivalent and DecomposeProduct.
package weyl
