// SPDX-License-Identifier: MIT

// Package gates - closed-form matrices of the standard gates.
//
// Conventions:
//   - Rotations are exp(-iθ/2·P) for the Pauli (or Pauli product) P.
//   - Two-qubit matrices are little-endian: the first qubit argument is the
//     least significant index bit (control of CX is qubit 0 when applied on [0,1]).
//   - Fixed gates are returned by value (Mat2/Mat4 are arrays), so callers
//     can never mutate a shared constant.

package gates

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/twoq/matrix"
)

// fracSqrt2 is 1/√2.
const fracSqrt2 = 1.0 / math.Sqrt2

var (
	idMat   = matrix.Mat2{{1, 0}, {0, 1}}
	hMat    = matrix.Mat2{{fracSqrt2, fracSqrt2}, {fracSqrt2, -fracSqrt2}}
	xMat    = matrix.Mat2{{0, 1}, {1, 0}}
	yMat    = matrix.Mat2{{0, -1i}, {1i, 0}}
	zMat    = matrix.Mat2{{1, 0}, {0, -1}}
	sMat    = matrix.Mat2{{1, 0}, {0, 1i}}
	sdgMat  = matrix.Mat2{{1, 0}, {0, -1i}}
	tMat    = matrix.Mat2{{1, 0}, {0, complex(fracSqrt2, fracSqrt2)}}
	tdgMat  = matrix.Mat2{{1, 0}, {0, complex(fracSqrt2, -fracSqrt2)}}
	sxMat   = matrix.Mat2{{0.5 + 0.5i, 0.5 - 0.5i}, {0.5 - 0.5i, 0.5 + 0.5i}}
	sxdgMat = matrix.Mat2{{0.5 - 0.5i, 0.5 + 0.5i}, {0.5 + 0.5i, 0.5 - 0.5i}}

	cxMat = matrix.Mat4{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}
	cyMat = matrix.Mat4{
		{1, 0, 0, 0},
		{0, 0, 0, -1i},
		{0, 0, 1, 0},
		{0, 1i, 0, 0},
	}
	czMat = matrix.Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}
	swapMat = matrix.Mat4{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
	iswapMat = matrix.Mat4{
		{1, 0, 0, 0},
		{0, 0, 1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, 1},
	}
)

// Identity returns the one-qubit identity.
func Identity() matrix.Mat2 { return idMat }

// HMatrix returns the Hadamard matrix.
func HMatrix() matrix.Mat2 { return hMat }

// XMatrix returns Pauli X.
func XMatrix() matrix.Mat2 { return xMat }

// YMatrix returns Pauli Y.
func YMatrix() matrix.Mat2 { return yMat }

// ZMatrix returns Pauli Z.
func ZMatrix() matrix.Mat2 { return zMat }

// SMatrix returns diag(1, i).
func SMatrix() matrix.Mat2 { return sMat }

// SdgMatrix returns diag(1, -i).
func SdgMatrix() matrix.Mat2 { return sdgMat }

// SXMatrix returns √X.
func SXMatrix() matrix.Mat2 { return sxMat }

// CXMatrix returns CNOT with control on qubit 0 and target on qubit 1.
func CXMatrix() matrix.Mat4 { return cxMat }

// CZMatrix returns the controlled-Z matrix.
func CZMatrix() matrix.Mat4 { return czMat }

// SwapMatrix returns the SWAP matrix.
func SwapMatrix() matrix.Mat4 { return swapMat }

// RXMatrix returns exp(-iθX/2).
func RXMatrix(theta float64) matrix.Mat2 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return matrix.Mat2{{complex(c, 0), complex(0, -s)}, {complex(0, -s), complex(c, 0)}}
}

// RYMatrix returns exp(-iθY/2).
func RYMatrix(theta float64) matrix.Mat2 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return matrix.Mat2{{complex(c, 0), complex(-s, 0)}, {complex(s, 0), complex(c, 0)}}
}

// RZMatrix returns exp(-iθZ/2).
func RZMatrix(theta float64) matrix.Mat2 {
	return matrix.Mat2{{cis(-theta / 2), 0}, {0, cis(theta / 2)}}
}

// PhaseMatrix returns diag(1, e^{iλ}); also the U1 matrix.
func PhaseMatrix(lambda float64) matrix.Mat2 {
	return matrix.Mat2{{1, 0}, {0, cis(lambda)}}
}

// U3Matrix returns the generic single-qubit rotation U3(θ, φ, λ).
func U3Matrix(theta, phi, lambda float64) matrix.Mat2 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return matrix.Mat2{
		{complex(c, 0), -cis(lambda) * complex(s, 0)},
		{cis(phi) * complex(s, 0), cis(phi+lambda) * complex(c, 0)},
	}
}

// RMatrix returns exp(-iθ/2·(cos φ·X + sin φ·Y)).
func RMatrix(theta, phi float64) matrix.Mat2 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return matrix.Mat2{
		{complex(c, 0), complex(0, -s) * cis(-phi)},
		{complex(0, -s) * cis(phi), complex(c, 0)},
	}
}

// RXXMatrix returns exp(-iθ/2·X⊗X).
func RXXMatrix(theta float64) matrix.Mat4 {
	c, s := complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))
	return matrix.Mat4{
		{c, 0, 0, s},
		{0, c, s, 0},
		{0, s, c, 0},
		{s, 0, 0, c},
	}
}

// RYYMatrix returns exp(-iθ/2·Y⊗Y).
func RYYMatrix(theta float64) matrix.Mat4 {
	c, s := complex(math.Cos(theta/2), 0), complex(0, math.Sin(theta/2))
	return matrix.Mat4{
		{c, 0, 0, s},
		{0, c, -s, 0},
		{0, -s, c, 0},
		{s, 0, 0, c},
	}
}

// RZZMatrix returns exp(-iθ/2·Z⊗Z).
func RZZMatrix(theta float64) matrix.Mat4 {
	m, p := cis(-theta/2), cis(theta/2)
	return matrix.Diag4([4]complex128{m, p, p, m})
}

// RZXMatrix returns exp(-iθ/2·X⊗Z): Z on qubit 0, X on qubit 1.
func RZXMatrix(theta float64) matrix.Mat4 {
	c, s := complex(math.Cos(theta/2), 0), complex(0, math.Sin(theta/2))
	return matrix.Mat4{
		{c, 0, -s, 0},
		{0, c, 0, s},
		{-s, 0, c, 0},
		{0, s, 0, c},
	}
}

// CPhaseMatrix returns diag(1, 1, 1, e^{iλ}).
func CPhaseMatrix(lambda float64) matrix.Mat4 {
	return matrix.Diag4([4]complex128{1, 1, 1, cis(lambda)})
}

// ControlledMatrix lifts a one-qubit u into the controlled gate with control
// on qubit 0 and target on qubit 1.
func ControlledMatrix(u matrix.Mat2) matrix.Mat4 {
	out := matrix.Identity4()
	out[1][1], out[1][3] = u[0][0], u[0][1]
	out[3][1], out[3][3] = u[1][0], u[1][1]
	return out
}

// cis returns e^{iθ}.
func cis(theta float64) complex128 { return cmplx.Exp(complex(0, theta)) }
