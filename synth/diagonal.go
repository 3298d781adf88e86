// SPDX-License-Identifier: MIT

package synth

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

// DecomposeUpToDiagonal returns a diagonal unitary D and a CX circuit C with
// u = D·C. Absorbing D into later diagonal gates saves one CX: C always uses
// at most two.
//
// Implementation:
//   - Stage 1: su = u / conj(det(u)^(-1/4)).
//   - Stage 2: Pick a diagonal Δ for which Δ·su has a real-trace magic-basis
//     square, i.e. Weyl coordinate c = 0.
//   - Stage 3: Synthesize Δ·su with a CX/U decomposer; D = Δ†.
func DecomposeUpToDiagonal(u matrix.Mat4) (matrix.Mat4, *circuit.Sequence, error) {
	// Stage 1
	pf := cmplx.Conj(cmplx.Pow(u.Det(), -0.25))
	su := u.Scale(1 / pf)

	// Stage 2
	delta := realTraceTransform(su)

	// Stage 3
	dec, err := New(gates.CX, nil, WithEulerBasis(euler.U))
	if err != nil {
		return matrix.Mat4{}, nil, synthErrorf(opDecomposeUpToDiagonal, err)
	}
	seq, err := dec.Synthesize(delta.Mul(su))
	if err != nil {
		return matrix.Mat4{}, nil, synthErrorf(opDecomposeUpToDiagonal, err)
	}
	seq.GlobalPhase += cmplx.Phase(pf)

	return delta.Conj(), seq, nil
}

// realTraceTransform returns diag(e^{-iθ}, e^{-iφ}, e^{-iψ}, e^{i(θ+φ+ψ)})
// with θ = φ = 0 and ψ chosen to make the transformed trace real.
func realTraceTransform(m matrix.Mat4) matrix.Mat4 {
	a1 := -m[1][3]*m[2][0] + m[1][2]*m[2][1] + m[1][1]*m[2][2] - m[1][0]*m[2][3]
	a2 := m[0][3]*m[3][0] - m[0][2]*m[3][1] - m[0][1]*m[3][2] + m[0][0]*m[3][3]
	var theta, phi float64
	psi := math.Atan2(imag(a1)+imag(a2), real(a1)-real(a2)) - phi
	e := func(x float64) complex128 { return cmplx.Exp(complex(0, -x)) }
	return matrix.Diag4([4]complex128{e(theta), e(phi), e(psi), e(-(theta + phi + psi))})
}
