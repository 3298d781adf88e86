// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the fixed-size kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/twoq/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Mat4
	sinkC  complex128
	sinkV  [4]float64
)

func BenchmarkMat4Mul(b *testing.B) {
	rng := seeded(1)
	x, y := matrix.RandomUnitary4(rng), matrix.RandomUnitary4(rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Mul(y)
	}
}

func BenchmarkMat4Det(b *testing.B) {
	x := matrix.RandomUnitary4(seeded(2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkC = x.Det()
	}
}

func BenchmarkEigenSym4(b *testing.B) {
	x := matrix.RandomUnitary4(seeded(3))
	m2 := x.Transpose().Mul(x)
	a := m2.Real().Combine(1.2602066112249388, m2.Imag(), 0.22317849046722027)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _, err := matrix.EigenSym4(a)
		if err != nil {
			b.Fatal(err)
		}
		sinkV = v
	}
}
