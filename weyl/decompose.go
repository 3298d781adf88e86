// SPDX-License-Identifier: MIT

// Package weyl - canonical (KAK) decomposition.
//
// Purpose:
//   - Write any two-qubit unitary as U = e^{iφ}·(K1L⊗K1R)·Ud(a,b,c)·(K2L⊗K2R)
//     with (a, b, c) folded into the Weyl chamber π/4 ≥ a ≥ b ≥ |c|.
//   - Recognize the symmetric points of the chamber (Specialization) and fix
//     the redundant one-qubit freedom there, so the result is unique.
//
// Determinism:
//   - The diagonalization retries draw from a generator seeded with a constant,
//     fresh per call; identical input ⇒ identical output.

package weyl

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

const (
	pi2  = math.Pi / 2
	pi4  = math.Pi / 4
	pi32 = 3 * math.Pi / 2
	tau  = 2 * math.Pi
)

// Decomposition is the canonical form of a two-qubit unitary. It is
// immutable; every accessor returns a copy.
type Decomposition struct {
	a, b, c     float64
	globalPhase float64
	k1l, k1r    matrix.Mat2
	k2l, k2r    matrix.Mat2

	specialization Specialization
	calculated     float64
	requested      float64
	hasRequested   bool
	unitary        matrix.Mat4
	eulerBasis     euler.Basis
}

// A returns the first Weyl coordinate.
func (d *Decomposition) A() float64 { return d.a }

// B returns the second Weyl coordinate.
func (d *Decomposition) B() float64 { return d.b }

// C returns the third Weyl coordinate.
func (d *Decomposition) C() float64 { return d.c }

// GlobalPhase returns φ in U = e^{iφ}·(K1L⊗K1R)·Ud·(K2L⊗K2R).
func (d *Decomposition) GlobalPhase() float64 { return d.globalPhase }

// K1L returns the outgoing correction on qubit 1.
func (d *Decomposition) K1L() matrix.Mat2 { return d.k1l }

// K1R returns the outgoing correction on qubit 0.
func (d *Decomposition) K1R() matrix.Mat2 { return d.k1r }

// K2L returns the incoming correction on qubit 1.
func (d *Decomposition) K2L() matrix.Mat2 { return d.k2l }

// K2R returns the incoming correction on qubit 0.
func (d *Decomposition) K2R() matrix.Mat2 { return d.k2r }

// Specialization returns the symmetry class the decomposition was fitted to.
func (d *Decomposition) Specialization() Specialization { return d.specialization }

// CalculatedFidelity returns the fidelity of the specialized decomposition
// with respect to the unspecialized one (1 for General).
func (d *Decomposition) CalculatedFidelity() float64 { return d.calculated }

// RequestedFidelity returns the fidelity floor, if one was set.
func (d *Decomposition) RequestedFidelity() (float64, bool) { return d.requested, d.hasRequested }

// Unitary returns the input matrix.
func (d *Decomposition) Unitary() matrix.Mat4 { return d.unitary }

// DefaultEulerBasis returns the one-qubit basis Circuit uses by default.
func (d *Decomposition) DefaultEulerBasis() euler.Basis { return d.eulerBasis }

// New computes the canonical decomposition of u.
//
// Implementation:
//   - Stage 1: Normalize u to SU(4) by det(u)^(-1/4); the removed phase seeds φ.
//   - Stage 2: Up = B⁻¹·u·B, M2 = Upᵀ·Up. Diagonalize M2 with a real
//     orthogonal P by diagonalizing random real mixtures of Re(M2), Im(M2)
//     until P·diag(D)·Pᵀ reproduces M2 (first mixture fixed, up to 100 tries).
//   - Stage 3: Interaction angles from arg(D); order them by distance to the
//     nearest multiple of π/2; fix det(P) = +1.
//   - Stage 4: K1 = B·Up·P·e^{iD'}·B⁻¹, K2 = B·Pᵀ·B⁻¹, each split into L⊗R.
//   - Stage 5: Fold the angles into the Weyl chamber with ±i·Pauli corrections.
//   - Stage 6: Pick (or apply the forced) Specialization, rewrite the factors,
//     check the fidelity floor and absorb the residual trace phase.
//
// Inputs:
//   - u: a 4×4 unitary, little-endian.
//   - opts: WithFidelity, WithoutFidelity, WithSpecialization.
//
// Errors:
//   - ErrNotFinite for NaN/Inf entries or a singular matrix.
//   - ErrDegenerateEigenproblem if no trial diagonalizes M2.
//   - ErrProductDecomposition if a K factor fails to split (non-unitary input).
//   - FidelityError (errors.Is ErrFidelityBelowRequest) if the specialization
//     misses the fidelity floor.
//
// Complexity:
//   - O(1): a bounded number of 4×4 products and Jacobi solves.
func New(u matrix.Mat4, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)

	// Stage 1: SU(4) normalization.
	detU := u.Det()
	if !finite4(u) || detU == 0 {
		return nil, weylErrorf(opNew, ErrNotFinite)
	}
	detPow := cmplx.Pow(detU, -0.25)
	globalPhase := cmplx.Phase(detU) / 4

	// Stage 2: simultaneous diagonalization of Re(M2) and Im(M2).
	up := transformFromMagic(u.Scale(detPow))
	m2 := up.Transpose().Mul(up)
	p, dvals, err := diagonalize(m2)
	if err != nil {
		return nil, err
	}

	// Stage 3: angles and their ordering.
	var dph [4]float64
	for i := 0; i < 3; i++ {
		dph[i] = -cmplx.Phase(dvals[i]) / 2
	}
	dph[3] = -(dph[0] + dph[1] + dph[2])
	var cs, cstemp [3]float64
	for i := 0; i < 3; i++ {
		cs[i] = modPositive((dph[i]+dph[3])/2, tau)
		x := math.Mod(cs[i], pi2)
		cstemp[i] = math.Min(x, pi2-x)
	}
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(x, y int) bool { return cstemp[order[x]] < cstemp[order[y]] })
	order = []int{order[1], order[2], order[0]}
	cs = [3]float64{cs[order[0]], cs[order[1]], cs[order[2]]}
	dph = [4]float64{dph[order[0]], dph[order[1]], dph[order[2]], dph[3]}
	var pOrd matrix.Real4
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			pOrd[i][j] = p[i][order[j]]
		}
		pOrd[i][3] = p[i][3]
	}
	if pOrd.Det() < 0 {
		for i := 0; i < 4; i++ {
			pOrd[i][3] = -pOrd[i][3]
		}
	}

	// Stage 4: local factors.
	pc := pOrd.Complex()
	var phases [4]complex128
	for i := range phases {
		phases[i] = cis(dph[i])
	}
	k1l, k1r, phL, err := DecomposeProduct(transformIntoMagic(up.Mul(pc).Mul(matrix.Diag4(phases))))
	if err != nil {
		return nil, weylErrorf(opNew, err)
	}
	k2l, k2r, phR, err := DecomposeProduct(transformIntoMagic(pc.Transpose()))
	if err != nil {
		return nil, weylErrorf(opNew, err)
	}
	globalPhase += phL + phR

	// Stage 5: Weyl chamber.
	if cs[0] > pi2 {
		cs[0] -= pi32
		k1l, k1r = k1l.Mul(ipy), k1r.Mul(ipy)
		globalPhase += pi2
	}
	if cs[1] > pi2 {
		cs[1] -= pi32
		k1l, k1r = k1l.Mul(ipx), k1r.Mul(ipx)
		globalPhase += pi2
	}
	conjs := 0
	if cs[0] > pi4 {
		cs[0] = pi2 - cs[0]
		k1l, k2r = k1l.Mul(ipy), ipy.Mul(k2r)
		conjs++
		globalPhase -= pi2
	}
	if cs[1] > pi4 {
		cs[1] = pi2 - cs[1]
		k1l, k2r = k1l.Mul(ipx), ipx.Mul(k2r)
		conjs++
		globalPhase += pi2
		if conjs == 1 {
			globalPhase -= math.Pi
		}
	}
	if cs[2] > pi2 {
		cs[2] -= pi32
		k1l, k1r = k1l.Mul(ipz), k1r.Mul(ipz)
		globalPhase += pi2
		if conjs == 1 {
			globalPhase -= math.Pi
		}
	}
	if conjs == 1 {
		cs[2] = pi2 - cs[2]
		k1l, k2r = k1l.Mul(ipz), ipz.Mul(k2r)
		globalPhase += pi2
	}
	if cs[2] > pi4 {
		cs[2] -= pi2
		k1l, k1r = k1l.Mul(ipz), k1r.Mul(ipz)
		globalPhase -= pi2
	}
	a, b, c := cs[1], cs[0], cs[2]

	// Stage 6: specialization.
	gen := &Decomposition{
		a:            a,
		b:            b,
		c:            c,
		globalPhase:  globalPhase,
		k1l:          k1l,
		k1r:          k1r,
		k2l:          k2l,
		k2r:          k2r,
		requested:    o.fidelity,
		hasRequested: o.hasFidelity,
		unitary:      u,
	}
	spec := o.specialization
	if !o.forced {
		spec = gen.closestSpecialization()
	}
	out, flipped, err := gen.specialize(spec)
	if err != nil {
		return nil, weylErrorf(opNew, err)
	}

	var tr complex128
	if flipped {
		tr = canonicalTrace(pi2-a-out.a, b-out.b, -c-out.c)
	} else {
		tr = canonicalTrace(a-out.a, b-out.b, c-out.c)
	}
	out.calculated = TraceToFidelity(tr)
	if o.hasFidelity && out.calculated+fidelitySlack < o.fidelity {
		return nil, weylErrorf(opNew, FidelityError{
			Specialization: spec,
			Calculated:     out.calculated,
			Requested:      o.fidelity,
		})
	}
	out.globalPhase += cmplx.Phase(tr)

	return out, nil
}

// Coordinates returns the Weyl coordinates (a, b, c) of u without any
// specialization.
func Coordinates(u matrix.Mat4) ([3]float64, error) {
	d, err := New(u, WithoutFidelity())
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{d.a, d.b, d.c}, nil
}

// diagonalize finds a real orthogonal P and D with P·diag(D)·Pᵀ ≈ m2.
func diagonalize(m2 matrix.Mat4) (matrix.Real4, [4]complex128, error) {
	re, im := m2.Real(), m2.Imag()
	var (
		rng    *normalStream
		ra, rb float64
		p      matrix.Real4
		pc     matrix.Mat4
		d      [4]complex128
		err    error
	)
	for trial := 0; trial < maxDiagTrials; trial++ {
		if trial == 0 {
			ra, rb = firstTrialRe, firstTrialIm
		} else {
			if rng == nil {
				rng = retryStream()
			}
			ra = rng.Norm()
			rb = rng.Norm()
		}
		if _, p, err = matrix.EigenSym4(re.Combine(ra, im, rb)); err != nil {
			continue
		}
		pc = p.Complex()
		dm := pc.Transpose().Mul(m2).Mul(pc)
		for k := 0; k < 4; k++ {
			d[k] = dm[k][k]
		}
		if pc.Mul(matrix.Diag4(d)).Mul(pc.Transpose()).AllClose(m2, diagonalizeAtol) {
			return p, d, nil
		}
	}
	return p, d, weylErrorf(opNew, fmt.Errorf("%d trials: %w", maxDiagTrials, ErrDegenerateEigenproblem))
}

// closestSpecialization returns the first specialization, in priority order,
// whose canonical point is within the fidelity floor.
func (d *Decomposition) closestSpecialization() Specialization {
	a, b, c := d.a, d.b, d.c
	isClose := func(ap, bp, cp float64) bool {
		return d.hasRequested && TraceToFidelity(canonicalTrace(a-ap, b-bp, c-cp)) >= d.requested
	}
	cabc := ClosestPartialSwap(a, b, c)
	cabmc := ClosestPartialSwap(a, b, -c)
	switch {
	case isClose(0, 0, 0):
		return IdEquiv
	case isClose(pi4, pi4, pi4) || isClose(pi4, pi4, -pi4):
		return SWAPEquiv
	case isClose(cabc, cabc, cabc):
		return PartialSWAPEquiv
	case isClose(cabmc, cabmc, -cabmc):
		return PartialSWAPFlipEquiv
	case isClose(a, 0, 0):
		return ControlledEquiv
	case isClose(pi4, pi4, c):
		return MirrorControlledEquiv
	case isClose((a+b)/2, (a+b)/2, c):
		return FSimaabEquiv
	case isClose(a, (b+c)/2, (b+c)/2):
		return FSimabbEquiv
	case isClose(a, (b-c)/2, (c-b)/2):
		return FSimabmbEquiv
	default:
		return General
	}
}

// specialize returns a copy of the general decomposition d rewritten for
// spec. flipped reports the SWAP branch that maps c to -c.
func (d *Decomposition) specialize(spec Specialization) (*Decomposition, bool, error) {
	out := *d
	out.specialization = spec
	out.eulerBasis = spec.defaultEulerBasis()
	a, b, c := d.a, d.b, d.c
	id := matrix.Identity2()
	flipped := false

	switch spec {
	case IdEquiv:
		out.a, out.b, out.c = 0, 0, 0
		out.k1l, out.k1r = d.k1l.Mul(d.k2l), d.k1r.Mul(d.k2r)
		out.k2l, out.k2r = id, id

	case SWAPEquiv:
		out.a, out.b, out.c = pi4, pi4, pi4
		if c > 0 {
			out.k1l, out.k1r = d.k1l.Mul(d.k2r), d.k1r.Mul(d.k2l)
		} else {
			flipped = true
			out.globalPhase += pi2
			out.k1l = d.k1l.Mul(ipz).Mul(d.k2r)
			out.k1r = d.k1r.Mul(ipz).Mul(d.k2l)
		}
		out.k2l, out.k2r = id, id

	case PartialSWAPEquiv:
		x := ClosestPartialSwap(a, b, c)
		out.a, out.b, out.c = x, x, x
		out.k1l, out.k1r = d.k1l.Mul(d.k2l), d.k1r.Mul(d.k2l)
		out.k2r = d.k2l.Dagger().Mul(d.k2r)
		out.k2l = id

	case PartialSWAPFlipEquiv:
		x := ClosestPartialSwap(a, b, -c)
		out.a, out.b, out.c = x, x, -x
		out.k1l = d.k1l.Mul(d.k2l)
		out.k1r = d.k1r.Mul(ipz).Mul(d.k2l).Mul(ipz)
		out.k2r = ipz.Mul(d.k2l.Dagger()).Mul(ipz).Mul(d.k2r)
		out.k2l = id

	case ControlledEquiv:
		tl, fl, ll, gl, err := euler.AnglesFromUnitary(d.k2l, euler.XYX)
		if err != nil {
			return nil, false, err
		}
		tr, fr, lr, gr, err := euler.AnglesFromUnitary(d.k2r, euler.XYX)
		if err != nil {
			return nil, false, err
		}
		out.b, out.c = 0, 0
		out.globalPhase += gl + gr
		out.k1l = d.k1l.Mul(gates.RXMatrix(fl))
		out.k1r = d.k1r.Mul(gates.RXMatrix(fr))
		out.k2l = gates.RYMatrix(tl).Mul(gates.RXMatrix(ll))
		out.k2r = gates.RYMatrix(tr).Mul(gates.RXMatrix(lr))

	case MirrorControlledEquiv:
		tl, fl, ll, gl, err := euler.AnglesFromUnitary(d.k2l, euler.ZYZ)
		if err != nil {
			return nil, false, err
		}
		tr, fr, lr, gr, err := euler.AnglesFromUnitary(d.k2r, euler.ZYZ)
		if err != nil {
			return nil, false, err
		}
		out.a, out.b = pi4, pi4
		out.globalPhase += gl + gr
		// SWAP moves each K2 phi rotation to the other qubit.
		out.k1l = d.k1l.Mul(gates.RZMatrix(fr))
		out.k1r = d.k1r.Mul(gates.RZMatrix(fl))
		out.k2l = gates.RYMatrix(tl).Mul(gates.RZMatrix(ll))
		out.k2r = gates.RYMatrix(tr).Mul(gates.RZMatrix(lr))

	case FSimaabEquiv:
		tl, fl, ll, gl, err := euler.AnglesFromUnitary(d.k2l, euler.ZYZ)
		if err != nil {
			return nil, false, err
		}
		out.a, out.b = (a+b)/2, (a+b)/2
		out.globalPhase += gl
		out.k1l = d.k1l.Mul(gates.RZMatrix(fl))
		out.k1r = d.k1r.Mul(gates.RZMatrix(fl))
		out.k2l = gates.RYMatrix(tl).Mul(gates.RZMatrix(ll))
		out.k2r = gates.RZMatrix(-fl).Mul(d.k2r)

	case FSimabbEquiv:
		tl, fl, ll, gl, err := euler.AnglesFromUnitary(d.k2l, euler.XYX)
		if err != nil {
			return nil, false, err
		}
		out.b, out.c = (b+c)/2, (b+c)/2
		out.globalPhase += gl
		out.k1l = d.k1l.Mul(gates.RXMatrix(fl))
		out.k1r = d.k1r.Mul(gates.RXMatrix(fl))
		out.k2l = gates.RYMatrix(tl).Mul(gates.RXMatrix(ll))
		out.k2r = gates.RXMatrix(-fl).Mul(d.k2r)

	case FSimabmbEquiv:
		tl, fl, ll, gl, err := euler.AnglesFromUnitary(d.k2l, euler.XYX)
		if err != nil {
			return nil, false, err
		}
		out.b = (b - c) / 2
		out.c = -out.b
		out.globalPhase += gl
		out.k1l = d.k1l.Mul(gates.RXMatrix(fl))
		out.k1r = d.k1r.Mul(ipz).Mul(gates.RXMatrix(fl)).Mul(ipz)
		out.k2l = gates.RYMatrix(tl).Mul(gates.RXMatrix(ll))
		out.k2r = ipz.Mul(gates.RXMatrix(-fl)).Mul(ipz).Mul(d.k2r)

	case General:
	default:
		return nil, false, fmt.Errorf("weyl: unknown specialization %s", spec)
	}
	return &out, flipped, nil
}

// Reconstruct returns e^{iφ}·(K1L⊗K1R)·Ud(a,b,c)·(K2L⊗K2R).
func (d *Decomposition) Reconstruct() matrix.Mat4 {
	return matrix.Kron(d.k1l, d.k1r).
		Mul(Ud(d.a, d.b, d.c)).
		Mul(matrix.Kron(d.k2l, d.k2r)).
		Scale(cis(d.globalPhase))
}

// String summarizes the decomposition on one line.
func (d *Decomposition) String() string {
	return fmt.Sprintf("weyl.Decomposition{%s a=%.12g b=%.12g c=%.12g phase=%.12g fidelity=%.12g}",
		d.specialization, d.a, d.b, d.c, d.globalPhase, d.calculated)
}

// modPositive returns x mod m in [0, m].
func modPositive(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func finite4(u matrix.Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v := u[i][j]
			if math.IsNaN(real(v)) || math.IsNaN(imag(v)) || math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
				return false
			}
		}
	}
	return true
}
