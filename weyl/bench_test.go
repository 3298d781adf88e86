// SPDX-License-Identifier: MIT
package weyl_test

import (
	"testing"

	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

func BenchmarkNew(b *testing.B) {
	u := matrix.RandomUnitary4(seeded(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := weyl.New(u); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCircuit(b *testing.B) {
	d, err := weyl.New(matrix.RandomUnitary4(seeded(1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := d.Circuit(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLocalInvariants(b *testing.B) {
	u := matrix.RandomUnitary4(seeded(2))
	for i := 0; i < b.N; i++ {
		_ = weyl.LocalInvariants(u)
	}
}
