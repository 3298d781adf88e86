// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

// Decompose returns a gate sequence over basis that equals u exactly,
// global phase included. Gates are placed on qubit 0 unless WithQubit is given.
//
// Implementation:
//   - Stage 1: extract (θ, φ, λ, γ) in the ZYZ frame of the basis.
//   - Stage 2: emit the basis circuit; every rotation angle is wrapped into
//     [-π, π] and the (-1)^k sign of a wrapped Pauli rotation goes to the phase.
//   - Stage 3 (simplify): drop rotations within atol of zero, collapse
//     θ ≈ 0 to one rotation, and use a single √X for θ ≈ π/2.
//
// Errors:
//   - ErrUnknownBasis, ErrNotFinite.
//
// Complexity:
//   - O(1); at most five gates.
func Decompose(u matrix.Mat2, basis Basis, opts ...Option) (*circuit.Sequence, error) {
	if !finite(u) {
		return nil, ErrNotFinite
	}
	o := gatherOptions(opts...)
	e := &emitter{seq: circuit.New(0), opt: o}

	switch basis {
	case ZYZ:
		theta, phi, lambda, phase := paramsZYZ(u)
		e.kak(gates.RZ, gates.RY, theta, phi, lambda, phase)
	case ZXZ:
		theta, phi, lambda, phase := paramsZXZ(u)
		e.kak(gates.RZ, gates.RX, theta, phi, lambda, phase)
	case XYX:
		theta, phi, lambda, phase := paramsXYX(u)
		e.kak(gates.RX, gates.RY, theta, phi, lambda, phase)
	case XZX:
		theta, phi, lambda, phase := paramsXZX(u)
		e.kak(gates.RX, gates.RZ, theta, phi, lambda, phase)
	case U3, U, U321:
		theta, phi, lambda, phase := paramsZYZ(u)
		e.generic(basis, theta, phi, lambda, phase)
	case ZSX, ZSXX, PSX, U1X:
		theta, phi, lambda, phase := paramsZYZ(u)
		e.psx(basis, theta, phi, lambda, phase)
	case RR:
		theta, phi, lambda, phase := paramsZYZ(u)
		e.rr(theta, phi, lambda, phase)
	default:
		return nil, fmt.Errorf("%s: %w", basis, ErrUnknownBasis)
	}

	return e.seq, nil
}

// emitter accumulates gates and phase on one qubit.
type emitter struct {
	seq *circuit.Sequence
	opt options
}

func (e *emitter) zero(a float64) bool {
	return e.opt.simplify && math.Abs(a) < e.opt.atol
}

// rot emits a Pauli rotation g(a) with a wrapped into [-π, π].
func (e *emitter) rot(g gates.StandardGate, a float64) {
	w, k := wrapAngle(a)
	e.seq.GlobalPhase += math.Pi * float64(k)
	if e.zero(w) {
		return
	}
	e.seq.Append(g, []float64{w}, e.opt.qubit)
}

// kak emits K(λ)·A(θ)·K(φ) in time order.
func (e *emitter) kak(k, a gates.StandardGate, theta, phi, lambda, phase float64) {
	e.seq.GlobalPhase += phase
	if e.zero(theta) {
		e.rot(k, phi+lambda)
		return
	}
	e.rot(k, lambda)
	e.rot(a, theta)
	e.rot(k, phi)
}

// generic emits one u3/u gate (u1/u2/u3 for U321).
func (e *emitter) generic(basis Basis, theta, phi, lambda, phase float64) {
	e.seq.GlobalPhase += phase - (phi+lambda)/2
	sum, _ := wrapAngle(phi + lambda)
	phi, _ = wrapAngle(phi)
	lambda, _ = wrapAngle(lambda)
	q := e.opt.qubit
	switch {
	case basis == U321 && e.zero(theta):
		if !e.zero(sum) {
			e.seq.Append(gates.U1, []float64{sum}, q)
		}
	case basis == U321 && e.zero(theta-math.Pi/2):
		e.seq.Append(gates.U2, []float64{phi, lambda}, q)
	case e.zero(theta) && e.zero(sum):
	case basis == U:
		e.seq.Append(gates.U, []float64{theta, phi, lambda}, q)
	default:
		e.seq.Append(gates.U3, []float64{theta, phi, lambda}, q)
	}
}

// psx emits the √X-based circuits:
//
//	θ ≈ 0:    RZ(φ+λ)
//	θ ≈ π/2:  RZ(λ-π/2)·SX·RZ(φ+π/2)           phase γ - π/4
//	general:  RZ(λ)·SX·RZ(θ-π)·SX·RZ(φ+π)      phase γ - π/2
//
// then converts RZ to P or U1 (phase -α/2) and SX to RX(π/2) (phase +π/4)
// as the basis requires.
func (e *emitter) psx(basis Basis, theta, phi, lambda, phase float64) {
	e.seq.GlobalPhase += phase
	switch {
	case e.zero(theta):
		e.z(basis, phi+lambda)
	case e.zero(theta - math.Pi/2):
		e.seq.GlobalPhase -= math.Pi / 4
		e.z(basis, lambda-math.Pi/2)
		e.sx(basis)
		e.z(basis, phi+math.Pi/2)
	default:
		e.seq.GlobalPhase -= math.Pi / 2
		e.z(basis, lambda)
		mid, k := wrapAngle(theta - math.Pi)
		if basis == ZSXX && e.zero(mid) {
			// SX·SX = X
			e.seq.GlobalPhase += math.Pi * float64(k)
			e.seq.Append(gates.X, nil, e.opt.qubit)
		} else {
			e.sx(basis)
			e.z(basis, theta-math.Pi)
			e.sx(basis)
		}
		e.z(basis, phi+math.Pi)
	}
}

// z emits a Z rotation in the basis' native form.
func (e *emitter) z(basis Basis, a float64) {
	w, k := wrapAngle(a)
	e.seq.GlobalPhase += math.Pi * float64(k)
	if e.zero(w) {
		return
	}
	switch basis {
	case PSX:
		e.seq.GlobalPhase -= w / 2
		e.seq.Append(gates.Phase, []float64{w}, e.opt.qubit)
	case U1X:
		e.seq.GlobalPhase -= w / 2
		e.seq.Append(gates.U1, []float64{w}, e.opt.qubit)
	default:
		e.seq.Append(gates.RZ, []float64{w}, e.opt.qubit)
	}
}

// sx emits √X in the basis' native form.
func (e *emitter) sx(basis Basis) {
	if basis == U1X {
		e.seq.GlobalPhase += math.Pi / 4
		e.seq.Append(gates.RX, []float64{math.Pi / 2}, e.opt.qubit)
		return
	}
	e.seq.Append(gates.SX, nil, e.opt.qubit)
}

// rr emits R(π,0)·R(π,(φ+λ)/2)·R(θ,π/2+φ) in time order with phase γ+π.
// R(π,α)·R(π,0) = -Rz(2α), so the first pair cancels to -(-1)^k·I when
// φ+λ wraps to zero.
func (e *emitter) rr(theta, phi, lambda, phase float64) {
	e.seq.GlobalPhase += phase + math.Pi
	q := e.opt.qubit
	sum, k := wrapAngle(phi + lambda)
	if e.zero(sum) {
		e.seq.GlobalPhase += math.Pi * float64(k+1)
	} else {
		half, _ := wrapAngle((phi + lambda) / 2)
		e.seq.Append(gates.R, []float64{math.Pi, 0}, q)
		e.seq.Append(gates.R, []float64{math.Pi, half}, q)
	}
	if !e.zero(theta) {
		axis, _ := wrapAngle(math.Pi/2 + phi)
		e.seq.Append(gates.R, []float64{theta, axis}, q)
	}
}
