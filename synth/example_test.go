// SPDX-License-Identifier: MIT
package synth_test

import (
	"fmt"

	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/synth"
	"github.com/katalvlaran/twoq/weyl"
)

// ExampleDecomposer_Synthesize rewrites a CZ over a CX basis.
func ExampleDecomposer_Synthesize() {
	d, err := synth.New(gates.CX, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	seq, err := d.Synthesize(gates.CZMatrix())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cx", seq.CountOps()["cx"])
	// Output:
	// cx 1
}

// ExampleDecomposer_NumBasisGates shows how a lossy basis gate trades
// exactness for fewer applications.
func ExampleDecomposer_NumBasisGates() {
	d, _ := synth.New(gates.CX, nil, synth.WithEulerBasis(euler.ZSX))
	u := weyl.Ud(0.05, 0, 0)
	exact, _ := d.NumBasisGates(u)
	lossy, _ := d.NumBasisGates(u, synth.WithBasisFidelityOverride(0.9))
	fmt.Println(exact, lossy)
	// Output:
	// 2 0
}
