// Package matrix provides the complex linear algebra used by the two-qubit
// decomposition packages.
//
// The matrix package provides:
//
//   - Mat2 and Mat4: fixed-size complex value types with multiplication,
//     adjoint, transpose, determinant, trace, Kronecker product and
//     tolerance-based comparison.
//   - Real4 and EigenSym4: a deterministic Jacobi eigen solver for real
//     symmetric 4×4 matrices.
//   - Dense: a validated, dynamically shaped complex matrix used at the API
//     boundary (user input, gate matrices of any arity), with ReadDense and
//     ParseComplex for text ingestion.
//   - RandomUnitary2 / RandomUnitary4: Haar-random unitaries for tests and
//     benchmarks.
//
// Two-qubit matrices use little-endian qubit order: index = 2·q1 + q0, and
// Kron(a, b) applies a to qubit 1 and b to qubit 0.
package matrix
