// Package euler decomposes one-qubit unitaries into Euler-angle gate sequences.
//
// Twelve target bases are supported:
//
//   - rotation triples ZYZ, ZXZ, XYX and XZX: e^{iγ}·K(φ)·A(θ)·K(λ);
//   - U3, U and U321 (u1/u2/u3 by θ): one generic rotation;
//   - ZSX, ZSXX, PSX and U1X: Z-rotations interleaved with at most two √X;
//   - RR: the two-parameter R gate only.
//
// Every emitted sequence carries the global phase that makes it equal to the
// input matrix exactly, not only up to phase. With simplification enabled
// (the default), rotations whose wrapped angle is within the tolerance of zero
// are dropped and the √X count is reduced for θ ≈ 0 and θ ≈ π/2.
package euler
