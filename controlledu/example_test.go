// SPDX-License-Identifier: MIT
package controlledu_test

import (
	"fmt"

	"github.com/katalvlaran/twoq/controlledu"
	"github.com/katalvlaran/twoq/gates"
)

// ExampleDecomposer_Synthesize expresses a CX with one controlled phase.
func ExampleDecomposer_Synthesize() {
	d, err := controlledu.New(gates.CPhase)
	if err != nil {
		fmt.Println(err)
		return
	}
	seq, err := d.Synthesize(gates.CXMatrix())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("scale %.1f, cp %d\n", d.Scale(), seq.CountOps()["cp"])
	// Output:
	// scale 2.0, cp 1
}
