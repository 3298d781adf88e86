// SPDX-License-Identifier: MIT

// Package matrix - fixed-size complex matrices for one- and two-qubit algebra.
//
// Purpose:
//   - Mat2 ([2][2]complex128) and Mat4 ([4][4]complex128) are value types:
//     assignment copies, so package-level gate constants cannot be mutated
//     through a caller's copy.
//   - All operations are pure (receiver unchanged, result returned) and
//     allocation-free.
//   - Two-qubit index convention is little-endian: in Kron(a, b), b acts on
//     qubit 0 (least significant index bit) and a acts on qubit 1.
//
// Complexity quicksheet:
//   - Mat2 ops: O(1). Mat4 Mul: 64 complex multiply-adds. Det: O(n³) LU with partial pivoting.

package matrix

import (
	"math"
	"math/cmplx"
)

// Mat2 is a 2×2 complex matrix in row-major order.
type Mat2 [2][2]complex128

// Mat4 is a 4×4 complex matrix in row-major order.
type Mat4 [4][4]complex128

// Real4 is a 4×4 real matrix (eigenvector bases, real/imag parts of a Mat4).
type Real4 [4][4]float64

// Identity2 returns the 2×2 identity.
func Identity2() Mat2 { return Mat2{{1, 0}, {0, 1}} }

// Identity4 returns the 4×4 identity.
func Identity4() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		out[i][i] = 1
	}
	return out
}

// ---------- Mat2 ----------

// Mul returns a·b.
func (a Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

// Dagger returns the conjugate transpose.
func (a Mat2) Dagger() Mat2 {
	return Mat2{
		{cmplx.Conj(a[0][0]), cmplx.Conj(a[1][0])},
		{cmplx.Conj(a[0][1]), cmplx.Conj(a[1][1])},
	}
}

// Transpose returns aᵀ.
func (a Mat2) Transpose() Mat2 {
	return Mat2{{a[0][0], a[1][0]}, {a[0][1], a[1][1]}}
}

// Scale returns s·a.
func (a Mat2) Scale(s complex128) Mat2 {
	return Mat2{{s * a[0][0], s * a[0][1]}, {s * a[1][0], s * a[1][1]}}
}

// Det returns the determinant.
func (a Mat2) Det() complex128 { return a[0][0]*a[1][1] - a[0][1]*a[1][0] }

// Trace returns the sum of the diagonal.
func (a Mat2) Trace() complex128 { return a[0][0] + a[1][1] }

// AllClose reports whether every entry of a and b agrees within atol, real
// and imaginary parts compared separately.
func (a Mat2) AllClose(b Mat2, atol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !closeComplex(a[i][j], b[i][j], atol) {
				return false
			}
		}
	}
	return true
}

// IsUnitary reports whether a·a† ≈ I within atol.
func (a Mat2) IsUnitary(atol float64) bool {
	return a.Mul(a.Dagger()).AllClose(Identity2(), atol)
}

// ---------- Mat4 ----------

// Mul returns a·b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	var i, j, k int
	var acc complex128
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			acc = 0
			for k = 0; k < 4; k++ {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (a Mat4) Dagger() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = cmplx.Conj(a[j][i])
		}
	}
	return out
}

// Transpose returns aᵀ (no conjugation).
func (a Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}

// Conj returns the element-wise complex conjugate.
func (a Mat4) Conj() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = cmplx.Conj(a[i][j])
		}
	}
	return out
}

// Scale returns s·a.
func (a Mat4) Scale(s complex128) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = s * a[i][j]
		}
	}
	return out
}

// Trace returns the sum of the diagonal.
func (a Mat4) Trace() complex128 { return a[0][0] + a[1][1] + a[2][2] + a[3][3] }

// Real returns the element-wise real part.
func (a Mat4) Real() Real4 {
	var out Real4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = real(a[i][j])
		}
	}
	return out
}

// Imag returns the element-wise imaginary part.
func (a Mat4) Imag() Real4 {
	var out Real4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = imag(a[i][j])
		}
	}
	return out
}

// Block returns the 2×2 submatrix at rows {r0, r0+1} and columns {c0, c0+1}.
func (a Mat4) Block(r0, c0 int) Mat2 {
	return Mat2{
		{a[r0][c0], a[r0][c0+1]},
		{a[r0+1][c0], a[r0+1][c0+1]},
	}
}

// Strided returns the 2×2 submatrix at rows {r0, r0+2} and columns {c0, c0+2}.
// Strided(0, 0) is the qubit-1 factor of a matrix of the form L⊗I.
func (a Mat4) Strided(r0, c0 int) Mat2 {
	return Mat2{
		{a[r0][c0], a[r0][c0+2]},
		{a[r0+2][c0], a[r0+2][c0+2]},
	}
}

// SwapQubits returns SWAP·a·SWAP, i.e. a with the roles of qubit 0 and qubit 1 exchanged.
func (a Mat4) SwapQubits() Mat4 {
	perm := [4]int{0, 2, 1, 3}
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[perm[i]][perm[j]]
		}
	}
	return out
}

// AllClose reports whether every entry of a and b agrees within atol, real
// and imaginary parts compared separately.
func (a Mat4) AllClose(b Mat4, atol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !closeComplex(a[i][j], b[i][j], atol) {
				return false
			}
		}
	}
	return true
}

// IsUnitary reports whether a·a† ≈ I within atol.
func (a Mat4) IsUnitary(atol float64) bool {
	return a.Mul(a.Dagger()).AllClose(Identity4(), atol)
}

// Det returns the determinant via LU factorization with partial pivoting.
// Exact zero pivots yield 0.
func (a Mat4) Det() complex128 {
	w := a
	det := complex(1, 0)
	var i, k, p, col int
	var best, mag float64
	var f complex128
	for col = 0; col < 4; col++ {
		// pivot: largest modulus in column col at or below the diagonal
		p, best = col, cmplx.Abs(w[col][col])
		for i = col + 1; i < 4; i++ {
			if mag = cmplx.Abs(w[i][col]); mag > best {
				p, best = i, mag
			}
		}
		if best == 0 {
			return 0
		}
		if p != col {
			w[p], w[col] = w[col], w[p]
			det = -det
		}
		det *= w[col][col]
		for i = col + 1; i < 4; i++ {
			f = w[i][col] / w[col][col]
			for k = col; k < 4; k++ {
				w[i][k] -= f * w[col][k]
			}
		}
	}
	return det
}

// Kron returns the Kronecker product a⊗b (a on qubit 1, b on qubit 0).
func Kron(a, b Mat2) Mat4 {
	var out Mat4
	var i, j, k, l int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			for k = 0; k < 2; k++ {
				for l = 0; l < 2; l++ {
					out[2*i+k][2*j+l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return out
}

// Diag4 returns the diagonal matrix with entries d.
func Diag4(d [4]complex128) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		out[i][i] = d[i]
	}
	return out
}

// ---------- Real4 ----------

// Mul returns a·b.
func (a Real4) Mul(b Real4) Real4 {
	var out Real4
	var i, j, k int
	var acc float64
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			acc = 0
			for k = 0; k < 4; k++ {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}
	return out
}

// Transpose returns aᵀ.
func (a Real4) Transpose() Real4 {
	var out Real4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}

// Complex lifts a to a Mat4 with zero imaginary parts.
func (a Real4) Complex() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = complex(a[i][j], 0)
		}
	}
	return out
}

// Det returns the determinant of a.
func (a Real4) Det() float64 {
	return real(a.Complex().Det())
}

// Combine returns s·a + t·b.
func (a Real4) Combine(s float64, b Real4, t float64) Real4 {
	var out Real4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = s*a[i][j] + t*b[i][j]
		}
	}
	return out
}

// closeComplex compares real and imaginary parts separately against atol.
func closeComplex(x, y complex128, atol float64) bool {
	return math.Abs(real(x)-real(y)) <= atol && math.Abs(imag(x)-imag(y)) <= atol
}
