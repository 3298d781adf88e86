// SPDX-License-Identifier: MIT

// Package synth - basis-gate decomposer construction.
//
// Purpose:
//   - Canonicalize the entangling gate once and precompute the one-qubit
//     corrections that turn 2 or 3 of its applications into an arbitrary
//     Ud(a, b, c) for any super-controlled gate (a = π/4, c = 0).
//
// Concurrency:
//   - A Decomposer is immutable after New; methods are safe for concurrent use.

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

const (
	pi2 = math.Pi / 2
	pi4 = math.Pi / 4
)

// Decomposer synthesizes two-qubit unitaries with a fixed entangling gate.
type Decomposer struct {
	gate   gates.Operation
	params []float64

	basisFidelity   float64
	eulerBasis      euler.Basis
	pulse           PulseMode
	basis           *weyl.Decomposition
	superControlled bool

	// corrections of the 3-use circuit
	u0l, u0r, u1l, u1ra, u1rb, u2la, u2lb, u2ra, u2rb, u3l, u3r matrix.Mat2
	// corrections of the 2-use circuit
	q0l, q0r, q1la, q1lb, q1ra, q1rb, q2l, q2r matrix.Mat2
}

// New builds a Decomposer for gate evaluated at params.
//
// Errors:
//   - ErrNotTwoQubit if gate does not act on two qubits.
//   - gate evaluation errors (e.g. gates.ErrParamCount).
//   - canonicalization errors of the gate matrix (weyl.New).
func New(gate gates.Operation, params []float64, opts ...Option) (*Decomposer, error) {
	if gate.NumQubits() != 2 {
		return nil, synthErrorf(opNew, fmt.Errorf("%s: %w", gate.Name(), ErrNotTwoQubit))
	}
	u, err := gates.Matrix4(gate, params)
	if err != nil {
		return nil, synthErrorf(opNew, err)
	}
	return NewFromMatrix(gate, params, u, opts...)
}

// NewFromMatrix is New with the gate matrix supplied by the caller.
func NewFromMatrix(gate gates.Operation, params []float64, u matrix.Mat4, opts ...Option) (*Decomposer, error) {
	if gate.NumQubits() != 2 {
		return nil, synthErrorf(opNew, fmt.Errorf("%s: %w", gate.Name(), ErrNotTwoQubit))
	}
	o := gatherOptions(opts...)
	basis, err := weyl.New(u)
	if err != nil {
		return nil, synthErrorf(opNew, err)
	}
	d := &Decomposer{
		gate:          gate,
		params:        append([]float64(nil), params...),
		basisFidelity: o.basisFidelity,
		eulerBasis:    o.eulerBasis,
		pulse:         o.pulse,
		basis:         basis,
		superControlled: math.Abs(basis.A()-pi4) <= superControlledAtol &&
			math.Abs(basis.C()) <= superControlledAtol,
	}
	d.precompute()
	return d, nil
}

// precompute builds the fixed corrections. Each Ui = Ki1·Ubasis·Ki2 is
// equivalent to the basis gate; the K matrices depend only on basis.B().
func (d *Decomposer) precompute() {
	b := d.basis.B()
	r2 := complex(1/math.Sqrt2, 0)
	e := func(x float64) complex128 { return complex(math.Cos(x), math.Sin(x)) }

	t := complex(0.5, -0.5)
	k11l := matrix.Mat2{
		{t * (-1i * e(-b)), t * e(-b)},
		{t * (-1i * e(b)), t * -e(b)},
	}
	k11r := matrix.Mat2{
		{r2 * (1i * e(-b)), r2 * -e(-b)},
		{r2 * e(b), r2 * (-1i * e(b))},
	}
	k32lK21l := matrix.Mat2{
		{r2 * complex(1, math.Cos(2*b)), r2 * complex(0, math.Sin(2*b))},
		{r2 * complex(0, math.Sin(2*b)), r2 * complex(1, -math.Cos(2*b))},
	}
	t = complex(0.5, 0.5)
	k21r := matrix.Mat2{
		{t * (-1i * e(-2*b)), t * e(-2*b)},
		{t * (1i * e(2*b)), t * e(2*b)},
	}
	k22l := matrix.Mat2{{r2, -r2}, {r2, r2}}
	k22r := matrix.Mat2{{0, 1}, {-1, 0}}
	k31l := matrix.Mat2{
		{r2 * e(-b), r2 * e(-b)},
		{r2 * -e(b), r2 * e(b)},
	}
	k31r := matrix.Mat2{
		{1i * e(b), 0},
		{0, -1i * e(-b)},
	}
	k32r := matrix.Mat2{
		{t * e(b), t * -e(-b)},
		{t * (-1i * e(b)), t * (-1i * e(-b))},
	}

	k1ld, k1rd := d.basis.K1L().Dagger(), d.basis.K1R().Dagger()
	k2ld, k2rd := d.basis.K2L().Dagger(), d.basis.K2R().Dagger()

	d.u0l = k31l.Mul(k1ld)
	d.u0r = k31r.Mul(k1rd)
	d.u1l = k2ld.Mul(k32lK21l).Mul(k1ld)
	d.u1ra = k2rd.Mul(k32r)
	d.u1rb = k21r.Mul(k1rd)
	d.u2la = k2ld.Mul(k22l)
	d.u2lb = k11l.Mul(k1ld)
	d.u2ra = k2rd.Mul(k22r)
	d.u2rb = k11r.Mul(k1rd)
	d.u3l = k2ld.Mul(k12l)
	d.u3r = k2rd.Mul(k12r)

	d.q0l = k12l.Dagger().Mul(k1ld)
	d.q0r = k12r.Dagger().Mul(ipz).Mul(k1rd)
	d.q1la = k2ld.Mul(k11l.Dagger())
	d.q1lb = k11l.Mul(k1ld)
	d.q1ra = k2rd.Mul(ipz).Mul(k11r.Dagger())
	d.q1rb = k11r.Mul(k1rd)
	d.q2l = k2ld.Mul(k12l)
	d.q2r = k2rd.Mul(k12r)
}

var (
	k12r = matrix.Mat2{
		{complex(0, 1/math.Sqrt2), complex(1/math.Sqrt2, 0)},
		{complex(-1/math.Sqrt2, 0), complex(0, -1/math.Sqrt2)},
	}
	k12l = matrix.Mat2{
		{0.5 + 0.5i, 0.5 + 0.5i},
		{-0.5 + 0.5i, 0.5 - 0.5i},
	}
	ipz = matrix.Mat2{{1i, 0}, {0, -1i}}
)

// Gate returns the entangling operation.
func (d *Decomposer) Gate() gates.Operation { return d.gate }

// GateParams returns a copy of the entangling gate's parameters.
func (d *Decomposer) GateParams() []float64 { return append([]float64(nil), d.params...) }

// BasisDecomposition returns the canonical decomposition of the entangling gate.
func (d *Decomposer) BasisDecomposition() *weyl.Decomposition { return d.basis }

// IsSuperControlled reports whether the gate is locally equivalent to
// Ud(π/4, b, 0), the condition for exact 2- and 3-use synthesis.
func (d *Decomposer) IsSuperControlled() bool { return d.superControlled }

// BasisFidelity returns the configured fidelity of one basis-gate application.
func (d *Decomposer) BasisFidelity() float64 { return d.basisFidelity }

// EulerBasis returns the one-qubit output basis.
func (d *Decomposer) EulerBasis() euler.Basis { return d.eulerBasis }

// PulseMode returns the pulse-efficient rewrite mode.
func (d *Decomposer) PulseMode() PulseMode { return d.pulse }

// TracesFor returns Tr(Ur†·Ud(a,b,c)) of the best circuit with 0, 1, 2 and 3
// basis-gate applications, in closed form.
func (d *Decomposer) TracesFor(target *weyl.Decomposition) [4]complex128 {
	return traces(target.A(), target.B(), target.C(), d.basis.B())
}

func traces(a, b, c, basisB float64) [4]complex128 {
	return [4]complex128{
		4 * complex(math.Cos(a)*math.Cos(b)*math.Cos(c), math.Sin(a)*math.Sin(b)*math.Sin(c)),
		4 * complex(math.Cos(pi4-a)*math.Cos(basisB-b)*math.Cos(c), math.Sin(pi4-a)*math.Sin(basisB-b)*math.Sin(c)),
		complex(4*math.Cos(c), 0),
		4,
	}
}

// bestCount returns the first index maximizing Fbar(trace_i)·f^i.
func bestCount(tr [4]complex128, f float64) int {
	best, bestVal := 0, math.Inf(-1)
	for i, t := range tr {
		if v := weyl.TraceToFidelity(t) * math.Pow(f, float64(i)); v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

// NumBasisGates returns the number of basis-gate applications Synthesize
// would choose for u, from its unspecialized Weyl coordinates.
func (d *Decomposer) NumBasisGates(u matrix.Mat4, opts ...SynthOption) (int, error) {
	so := gatherSynthOptions(opts...)
	if so.forcedUses {
		return so.numBasisUses, nil
	}
	abc, err := weyl.Coordinates(u)
	if err != nil {
		return 0, synthErrorf(opNumBasisGates, err)
	}
	return bestCount(traces(abc[0], abc[1], abc[2], d.basis.B()), d.effectiveFidelity(so)), nil
}

func (d *Decomposer) effectiveFidelity(so synthOptions) float64 {
	switch {
	case !so.approximate:
		return 1
	case so.hasFidelity:
		return so.basisFidelity
	default:
		return d.basisFidelity
	}
}

// Decomp0 returns the corrections [r, l] of the 0-use approximation
// (K1R·K2R, K1L·K2L).
func Decomp0(target *weyl.Decomposition) []matrix.Mat2 {
	return []matrix.Mat2{
		target.K1R().Mul(target.K2R()),
		target.K1L().Mul(target.K2L()),
	}
}

// Decomp1 returns the corrections [r, l, r, l] around one basis gate.
// Exact only when the target is locally equivalent to the basis gate.
func (d *Decomposer) Decomp1(target *weyl.Decomposition) []matrix.Mat2 {
	return []matrix.Mat2{
		d.basis.K2R().Dagger().Mul(target.K2R()),
		d.basis.K2L().Dagger().Mul(target.K2L()),
		target.K1R().Mul(d.basis.K1R().Dagger()),
		target.K1L().Mul(d.basis.K1L().Dagger()),
	}
}

// Decomp2Supercontrolled returns the six corrections of the 2-use circuit,
// which realizes Ud(a, b, 0) exactly for a super-controlled basis gate.
func (d *Decomposer) Decomp2Supercontrolled(target *weyl.Decomposition) []matrix.Mat2 {
	return []matrix.Mat2{
		d.q2r.Mul(target.K2R()),
		d.q2l.Mul(target.K2L()),
		d.q1ra.Mul(gates.RZMatrix(2 * target.B())).Mul(d.q1rb),
		d.q1la.Mul(gates.RZMatrix(-2 * target.A())).Mul(d.q1lb),
		target.K1R().Mul(d.q0r),
		target.K1L().Mul(d.q0l),
	}
}

// Decomp3Supercontrolled returns the eight corrections of the 3-use circuit,
// exact for every target when the basis gate is super-controlled.
func (d *Decomposer) Decomp3Supercontrolled(target *weyl.Decomposition) []matrix.Mat2 {
	return []matrix.Mat2{
		d.u3r.Mul(target.K2R()),
		d.u3l.Mul(target.K2L()),
		d.u2ra.Mul(gates.RZMatrix(2 * target.B())).Mul(d.u2rb),
		d.u2la.Mul(gates.RZMatrix(-2 * target.A())).Mul(d.u2lb),
		d.u1ra.Mul(gates.RZMatrix(-2 * target.C())).Mul(d.u1rb),
		d.u1l,
		target.K1R().Mul(d.u0r),
		target.K1L().Mul(d.u0l),
	}
}

func (d *Decomposer) decomposition(n int, target *weyl.Decomposition) []matrix.Mat2 {
	switch n {
	case 0:
		return Decomp0(target)
	case 1:
		return d.Decomp1(target)
	case 2:
		return d.Decomp2Supercontrolled(target)
	default:
		return d.Decomp3Supercontrolled(target)
	}
}
