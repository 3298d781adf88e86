// SPDX-License-Identifier: MIT
// Package weyl - magic (Bell) basis and closed-form helpers.
//
// Two magic bases are used:
//   - the non-normalized B (and its inverse B⁻¹ = B†/2) for the canonical
//     decomposition, where scale factors cancel in B⁻¹·U·B;
//   - the unitary M = B/√2 for the Makhlin local invariants, where the
//     determinant of the transformed matrix must keep unit magnitude.

package weyl

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/twoq/matrix"
)

var (
	magicB = matrix.Mat4{
		{1, 1i, 0, 0},
		{0, 0, 1i, 1},
		{0, 0, 1i, -1},
		{1, -1i, 0, 0},
	}
	magicBInv = matrix.Mat4{
		{0.5, 0, 0, 0.5},
		{-0.5i, 0, 0, 0.5i},
		{0, -0.5i, -0.5i, 0},
		{0, 0.5, -0.5, 0},
	}

	magicM = matrix.Mat4{
		{complex(math.Sqrt2/2, 0), 0, 0, complex(0, math.Sqrt2/2)},
		{0, complex(0, math.Sqrt2/2), complex(math.Sqrt2/2, 0), 0},
		{0, complex(0, math.Sqrt2/2), complex(-math.Sqrt2/2, 0), 0},
		{complex(math.Sqrt2/2, 0), 0, 0, complex(0, -math.Sqrt2/2)},
	}
)

// ±i·Pauli corrections used by the chamber reduction.
var (
	ipx = matrix.Mat2{{0, 1i}, {1i, 0}}
	ipy = matrix.Mat2{{0, 1}, {-1, 0}}
	ipz = matrix.Mat2{{1i, 0}, {0, -1i}}
)

// transformFromMagic returns B⁻¹·u·B.
func transformFromMagic(u matrix.Mat4) matrix.Mat4 { return magicBInv.Mul(u).Mul(magicB) }

// transformIntoMagic returns B·u·B⁻¹.
func transformIntoMagic(u matrix.Mat4) matrix.Mat4 { return magicB.Mul(u).Mul(magicBInv) }

// Ud returns the canonical interaction exp(i(a·XX + b·YY + c·ZZ)).
func Ud(a, b, c float64) matrix.Mat4 {
	ec, emc := cis(c), cis(-c)
	amb, apb := a-b, a+b
	d0 := ec * complex(math.Cos(amb), 0)
	o0 := 1i * ec * complex(math.Sin(amb), 0)
	d1 := emc * complex(math.Cos(apb), 0)
	o1 := 1i * emc * complex(math.Sin(apb), 0)
	return matrix.Mat4{
		{d0, 0, 0, o0},
		{0, d1, o1, 0},
		{0, o1, d1, 0},
		{o0, 0, 0, d0},
	}
}

// TraceToFidelity converts the trace of U†·V for two-qubit unitaries into the
// average gate fidelity (4 + |tr|²)/20.
func TraceToFidelity(tr complex128) float64 {
	m := cmplx.Abs(tr)
	return (4 + m*m) / 20
}

// canonicalTrace is Tr(Ud(a,b,c)†·Ud(a',b',c')) expressed in the angle
// differences da, db, dc.
func canonicalTrace(da, db, dc float64) complex128 {
	return 4 * complex(
		math.Cos(da)*math.Cos(db)*math.Cos(dc),
		math.Sin(da)*math.Sin(db)*math.Sin(dc),
	)
}

// ClosestPartialSwap returns the α for which Ud(α,α,α) is closest (to
// fourth order in the deviation from the mean) to Ud(a,b,c).
func ClosestPartialSwap(a, b, c float64) float64 {
	m := (a + b + c) / 3
	am, bm, cm := a-m, b-m, c-m
	ab, bc, ca := a-b, b-c, c-a
	return m + am*bm*cm*(6+ab*ab+bc*bc+ca*ca)/18
}

// LocalInvariants returns the Makhlin invariants (Re g1, Im g1, g2) of u.
// Two unitaries are equal up to one-qubit operations exactly when their
// invariants agree.
//
// Implementation:
//   - Stage 1: Ub = M†·u·M in the unitary magic basis, det(Ub).
//   - Stage 2: m = Ubᵀ·Ub; g1 = tr(m)²/(16·det), g2 = (tr(m)² − tr(m²))/(4·det).
//
// Complexity:
//   - O(1): four 4×4 products and one LU determinant.
func LocalInvariants(u matrix.Mat4) [3]float64 {
	ub := magicM.Dagger().Mul(u).Mul(magicM)
	det := ub.Det()
	m := ub.Transpose().Mul(ub)
	tr := m.Trace()
	tr2 := tr * tr
	g1 := tr2 / (16 * det)
	g2 := (tr2 - m.Mul(m).Trace()) / (4 * det)
	// +0 folds negative zeros.
	return [3]float64{real(g1) + 0, imag(g1) + 0, real(g2) + 0}
}

// InvariantsFromCoordinates returns the local invariants of Ud(a, b, c)
// without building the matrix.
func InvariantsFromCoordinates(a, b, c float64) [3]float64 {
	coords := [3]float64{a, b, c}
	cos2, sin2, sin4, cos4 := 1.0, 1.0, 1.0, 1.0
	var x float64
	for _, w := range coords {
		x = math.Cos(2 * w)
		cos2 *= x * x
		x = math.Sin(2 * w)
		sin2 *= x * x
		sin4 *= math.Sin(4 * w)
		cos4 *= math.Cos(4 * w)
	}
	return [3]float64{
		cos2 - sin2 + 0,
		sin4/4 + 0,
		4*cos2 - 4*sin2 - cos4 + 0,
	}
}

// LocallyEquivalent reports whether u and v differ only by one-qubit
// operations (and global phase), comparing invariants within atol.
func LocallyEquivalent(u, v matrix.Mat4, atol float64) bool {
	gu, gv := LocalInvariants(u), LocalInvariants(v)
	for i := range gu {
		if math.Abs(gu[i]-gv[i]) > atol {
			return false
		}
	}
	return true
}

func cis(theta float64) complex128 { return cmplx.Exp(complex(0, theta)) }
