// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded generators, Pauli matrices).
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/matrix"
)

// testAtol is the comparison tolerance for exact algebra on unit-scale entries.
const testAtol = 1e-12

var (
	pauliX = matrix.Mat2{{0, 1}, {1, 0}}
	pauliY = matrix.Mat2{{0, -1i}, {1i, 0}}
	pauliZ = matrix.Mat2{{1, 0}, {0, -1}}
)

// seeded returns a deterministic generator for the given seed.
func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	return d
}
