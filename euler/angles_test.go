// SPDX-License-Identifier: MIT
package euler_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

func TestAnglesFromUnitary_Conventions(t *testing.T) {
	rz, ry, rx := gates.RZMatrix, gates.RYMatrix, gates.RXMatrix
	kak := map[euler.Basis]func(th, phi, lam float64) matrix.Mat2{
		euler.ZYZ: func(th, phi, lam float64) matrix.Mat2 { return rz(phi).Mul(ry(th)).Mul(rz(lam)) },
		euler.ZXZ: func(th, phi, lam float64) matrix.Mat2 { return rz(phi).Mul(rx(th)).Mul(rz(lam)) },
		euler.XYX: func(th, phi, lam float64) matrix.Mat2 { return rx(phi).Mul(ry(th)).Mul(rx(lam)) },
		euler.XZX: func(th, phi, lam float64) matrix.Mat2 { return rx(phi).Mul(rz(th)).Mul(rx(lam)) },
		euler.U3:  gates.U3Matrix,
		euler.U:   gates.U3Matrix,
		euler.ZSX: func(th, phi, lam float64) matrix.Mat2 {
			hp := rx(math.Pi / 2)
			return gates.PhaseMatrix(phi + math.Pi).Mul(hp).Mul(gates.PhaseMatrix(th + math.Pi)).Mul(hp).Mul(gates.PhaseMatrix(lam))
		},
	}
	rng := seeded(5)
	for i := 0; i < 50; i++ {
		u := matrix.RandomUnitary2(rng)
		for b, build := range kak {
			th, phi, lam, phase, err := euler.AnglesFromUnitary(u, b)
			require.NoError(t, err)
			require.GreaterOrEqual(t, th, 0.0)
			require.LessOrEqual(t, th, math.Pi)
			got := build(th, phi, lam).Scale(cmplx.Exp(complex(0, phase)))
			require.Truef(t, got.AllClose(u, 1e-10), "basis %s", b)
		}
	}
}

func TestAnglesFromUnitary_Errors(t *testing.T) {
	_, _, _, _, err := euler.AnglesFromUnitary(matrix.Identity2(), euler.Basis(99))
	require.ErrorIs(t, err, euler.ErrUnknownBasis)
}

func TestParseBasis(t *testing.T) {
	for _, b := range euler.Bases() {
		got, err := euler.ParseBasis(b.String())
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
	got, err := euler.ParseBasis(" zsxx ")
	require.NoError(t, err)
	require.Equal(t, euler.ZSXX, got)

	_, err = euler.ParseBasis("ZZZ")
	require.ErrorIs(t, err, euler.ErrUnknownBasis)
	require.False(t, euler.Basis(42).Valid())
	require.Equal(t, "Basis(42)", euler.Basis(42).String())
}
