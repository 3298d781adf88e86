// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/matrix"
)

func TestMat2_PauliAlgebra(t *testing.T) {
	// XY = iZ
	require.True(t, pauliX.Mul(pauliY).AllClose(pauliZ.Scale(1i), testAtol))
	require.Equal(t, complex128(-1), pauliZ.Det())
	require.Equal(t, complex128(0), pauliX.Trace())
	require.Equal(t, pauliY, pauliY.Dagger())
	require.Equal(t, pauliY.Scale(-1), pauliY.Transpose())
}

func TestMat4_KronMatchesLittleEndianLayout(t *testing.T) {
	// X on qubit 0 flips the least significant bit: |00> -> |01>.
	xq0 := matrix.Kron(matrix.Identity2(), pauliX)
	require.Equal(t, complex128(1), xq0[1][0])
	// X on qubit 1 flips the most significant bit: |00> -> |10>.
	xq1 := matrix.Kron(pauliX, matrix.Identity2())
	require.Equal(t, complex128(1), xq1[2][0])
	require.Equal(t, xq1, xq0.SwapQubits())
}

func TestMat4_KronFactorsRecoveredByStridedBlock(t *testing.T) {
	rng := seeded(11)
	l := matrix.RandomUnitary2(rng)
	k := matrix.Kron(l, matrix.Identity2())
	require.True(t, k.Strided(0, 0).AllClose(l, testAtol))
	r := matrix.RandomUnitary2(rng)
	require.True(t, matrix.Kron(matrix.Identity2(), r).Block(0, 0).AllClose(r, testAtol))
}

func TestMat4_Det(t *testing.T) {
	rng := seeded(5)
	a, b := matrix.RandomUnitary2(rng), matrix.RandomUnitary2(rng)
	// det(A⊗B) = det(A)²·det(B)² for 2×2 factors.
	want := a.Det() * a.Det() * b.Det() * b.Det()
	got := matrix.Kron(a, b).Det()
	require.InDelta(t, real(want), real(got), 1e-12)
	require.InDelta(t, imag(want), imag(got), 1e-12)

	// SWAP needs pivoting: its (1,1) entry is zero.
	swap := matrix.Mat4{{1, 0, 0, 0}, {0, 0, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 1}}
	require.Equal(t, complex128(-1), swap.Det())

	var zero matrix.Mat4
	require.Equal(t, complex128(0), zero.Det())
}

func TestMat4_RandomUnitaryIsUnitary(t *testing.T) {
	rng := seeded(7)
	for i := 0; i < 20; i++ {
		u := matrix.RandomUnitary4(rng)
		require.True(t, u.IsUnitary(1e-12))
		require.InDelta(t, 1.0, cmplx.Abs(u.Det()), 1e-12)
		require.True(t, matrix.RandomUnitary2(rng).IsUnitary(1e-12))
	}
}

func TestMat4_TransposeConjDagger(t *testing.T) {
	u := matrix.RandomUnitary4(seeded(9))
	require.Equal(t, u.Dagger(), u.Transpose().Conj())
	re, im := u.Real(), u.Imag()
	require.InDelta(t, real(u[2][3]), re[2][3], 0)
	require.InDelta(t, imag(u[2][3]), im[2][3], 0)
}

func TestReal4_DetAndCombine(t *testing.T) {
	var rot matrix.Real4
	c, s := math.Cos(0.3), math.Sin(0.3)
	rot[0] = [4]float64{c, -s, 0, 0}
	rot[1] = [4]float64{s, c, 0, 0}
	rot[2][2], rot[3][3] = 1, -1
	require.InDelta(t, -1.0, rot.Det(), 1e-15)
	id := rot.Mul(rot.Transpose())
	for i := 0; i < 4; i++ {
		require.InDelta(t, 1.0, id[i][i], 1e-15)
	}
	sum := rot.Combine(2, rot, -1)
	require.Equal(t, rot, sum)
}
