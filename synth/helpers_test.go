// SPDX-License-Identifier: MIT
package synth_test

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/synth"
)

const reproduceAtol = 1e-9

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func dress(rng *rand.Rand, u matrix.Mat4) matrix.Mat4 {
	left := matrix.Kron(matrix.RandomUnitary2(rng), matrix.RandomUnitary2(rng))
	right := matrix.Kron(matrix.RandomUnitary2(rng), matrix.RandomUnitary2(rng))
	return left.Mul(u).Mul(right).Scale(cmplx.Exp(complex(0, 6*rng.Float64())))
}

func requireReproduces(t *testing.T, u matrix.Mat4, seq *circuit.Sequence) {
	t.Helper()
	got, err := seq.Unitary()
	require.NoError(t, err)
	require.Truef(t, got.AllClose(u, reproduceAtol), "got  %v\nwant %v", got, u)
}

func mustDecomposer(t testing.TB, gate gates.Operation, params []float64, opts ...synth.Option) *synth.Decomposer {
	t.Helper()
	d, err := synth.New(gate, params, opts...)
	require.NoError(t, err)
	return d
}

// countOn returns how many instructions named name act on exactly qubits.
func countOn(seq *circuit.Sequence, name string, qubits ...int) int {
	n := 0
	for _, in := range seq.Instructions {
		if in.Name() != name || len(in.Qubits) != len(qubits) {
			continue
		}
		same := true
		for i := range qubits {
			same = same && in.Qubits[i] == qubits[i]
		}
		if same {
			n++
		}
	}
	return n
}
