// Package twoq decomposes and synthesizes two-qubit quantum gates, from the
// canonical Weyl-chamber coordinates of a 4×4 unitary down to executable
// gate sequences over a chosen entangling gate.
//
// What is in the module?
//
//   - Canonicalization: KAK / Weyl decomposition with specialization to the
//     symmetric points of the chamber (identity, SWAP, controlled, fSim, …).
//   - Basis-gate synthesis: optimal 0–3 uses of a super-controlled gate such
//     as CX, CZ or iSWAP, with fidelity-aware approximation.
//   - Pulse-efficient CX circuits over {RZ, SX, X}.
//   - Controlled-U synthesis over RXX-equivalent families (RZZ, RZX, CPhase, …).
//   - One-qubit Euler decompositions in twelve bases, with exact global phase.
//
// Everything is organized under these packages:
//
//	matrix/      — fixed-size complex algebra, Jacobi eigen solver, validated Dense
//	gates/       — standard gate set, parameter expressions, user gate families
//	circuit/     — gate sequences: evaluation, inversion, OpenQASM 2 output
//	euler/       — one-qubit Euler angles and decompositions
//	weyl/        — two-qubit canonical decomposition and local invariants
//	synth/       — basis-gate synthesizer and up-to-diagonal decomposition
//	controlledu/ — synthesizer over a one-parameter RXX-equivalent gate
//	cmd/twoq     — command-line front end
//
// Quick example:
//
//	d, _ := synth.New(gates.CX, nil, synth.WithEulerBasis(euler.ZSX))
//	seq, _ := d.Synthesize(gates.SwapMatrix())
//	qasm, _ := seq.QASM()
//
// All library calls are synchronous pure functions; decomposers are
// immutable after construction and safe for concurrent use.
//
//	go install github.com/katalvlaran/twoq/cmd/twoq@latest
package twoq
