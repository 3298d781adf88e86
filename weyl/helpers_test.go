// SPDX-License-Identifier: MIT
package weyl_test

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

const reconstructAtol = 1e-9

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// dress multiplies u by random one-qubit layers on both sides and a phase;
// the result is locally equivalent to u.
func dress(rng *rand.Rand, u matrix.Mat4) matrix.Mat4 {
	left := matrix.Kron(matrix.RandomUnitary2(rng), matrix.RandomUnitary2(rng))
	right := matrix.Kron(matrix.RandomUnitary2(rng), matrix.RandomUnitary2(rng))
	return left.Mul(u).Mul(right).Scale(cmplx.Exp(0.37i))
}

func requireReconstructs(t *testing.T, u matrix.Mat4, d *weyl.Decomposition) {
	t.Helper()
	got := d.Reconstruct()
	require.Truef(t, got.AllClose(u, reconstructAtol), "%s\ngot  %v\nwant %v", d, got, u)
}

func mustBasis(t *testing.T, name string) euler.Basis {
	t.Helper()
	b, err := euler.ParseBasis(name)
	require.NoError(t, err)
	return b
}
