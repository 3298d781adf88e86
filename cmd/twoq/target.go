// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

// unitaryAtol bounds |u·u† - I| for matrix files, whose entries are usually
// printed with limited precision.
const unitaryAtol = 1e-6

// loadTarget reads arg as a 4×4 matrix file when such a file exists, and as
// a two-qubit gate call such as "rzz(pi/3)" otherwise.
func loadTarget(arg string) (matrix.Mat4, error) {
	if st, err := os.Stat(arg); err == nil && st.Mode().IsRegular() {
		f, err := os.Open(arg)
		if err != nil {
			return matrix.Mat4{}, err
		}
		defer f.Close()
		d, err := matrix.ReadDense(f)
		if err != nil {
			return matrix.Mat4{}, fmt.Errorf("%s: %w", arg, err)
		}
		if err = matrix.ValidateUnitary(d, unitaryAtol); err != nil {
			return matrix.Mat4{}, fmt.Errorf("%s: %w", arg, err)
		}
		return d.ToMat4()
	}

	g, params, err := parseTwoQubitCall(arg)
	if err != nil {
		return matrix.Mat4{}, err
	}
	return gates.Matrix4(g, params)
}

// parseTwoQubitCall parses a standard gate call and requires it to act on
// two qubits.
func parseTwoQubitCall(s string) (gates.StandardGate, []float64, error) {
	g, params, err := gates.ParseCall(s)
	if err != nil {
		return 0, nil, err
	}
	if g.NumQubits() != 2 {
		return 0, nil, fmt.Errorf("%s acts on %d qubits, want 2", g.Name(), g.NumQubits())
	}
	return g, params, nil
}
