// SPDX-License-Identifier: MIT
package euler_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/matrix"
)

const reconstructAtol = 1e-10

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// requireReproduces checks that seq equals u including the global phase.
func requireReproduces(t *testing.T, u matrix.Mat2, seq *circuit.Sequence) {
	t.Helper()
	got, err := seq.Unitary1Q()
	require.NoError(t, err)
	require.Truef(t, got.AllClose(u, reconstructAtol), "got %v want %v", got, u)
}

func opNames(seq *circuit.Sequence) []string {
	out := make([]string, 0, seq.Len())
	for _, in := range seq.Instructions {
		out = append(out, in.Name())
	}
	return out
}
