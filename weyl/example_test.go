// SPDX-License-Identifier: MIT
package weyl_test

import (
	"fmt"

	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/weyl"
)

// ExampleNew classifies CX: a controlled rotation with a = π/4.
func ExampleNew() {
	d, err := weyl.New(gates.CXMatrix())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Specialization())
	fmt.Printf("a=%.4f b=%.4f c=%.4f\n", d.A(), d.B(), d.C())
	// Output:
	// ControlledEquiv
	// a=0.7854 b=0.0000 c=0.0000
}

// ExampleCoordinates reads the interaction angles back from Ud.
func ExampleCoordinates() {
	abc, err := weyl.Coordinates(weyl.Ud(0.5, 0.3, 0.1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %.4f %.4f\n", abc[0], abc[1], abc[2])
	// Output:
	// 0.5000 0.3000 0.1000
}

// ExampleDecomposition_Circuit prints the gate counts of the SWAP circuit.
func ExampleDecomposition_Circuit() {
	d, err := weyl.New(gates.SwapMatrix())
	if err != nil {
		fmt.Println(err)
		return
	}
	seq, err := d.Circuit(weyl.WithSimplify(true))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(seq.CountOps()["swap"], "swap")
	// Output:
	// 1 swap
}
