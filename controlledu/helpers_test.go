// SPDX-License-Identifier: MIT
package controlledu_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/controlledu"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

const reproduceAtol = 1e-9

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func mustDecomposer(t testing.TB, gate gates.Operation, opts ...controlledu.Option) *controlledu.Decomposer {
	t.Helper()
	d, err := controlledu.New(gate, opts...)
	require.NoError(t, err)
	return d
}

func requireReproduces(t *testing.T, u matrix.Mat4, seq *circuit.Sequence) {
	t.Helper()
	got, err := seq.Unitary()
	require.NoError(t, err)
	require.Truef(t, got.AllClose(u, reproduceAtol), "got  %v\nwant %v", got, u)
}
