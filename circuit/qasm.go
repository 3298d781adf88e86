// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/twoq/gates"
)

const (
	qasmVersion = "OPENQASM 2.0;"
	qasmInclude = `include "qelib1.inc";`
)

// QASM renders the sequence as OpenQASM 2.0 text over a register sized to the
// highest referenced qubit. Parameters use pi notation where exact
// (gates.FormatParam). The global phase is emitted as a comment, since
// OpenQASM 2 has no phase statement.
func (s *Sequence) QASM() (string, error) {
	width := 1
	for i, in := range s.Instructions {
		if len(in.Qubits) != in.Op.NumQubits() {
			return "", fmt.Errorf("instruction %d (%s): %w", i, in.Op.Name(), ErrArity)
		}
		for _, q := range in.Qubits {
			if q < 0 {
				return "", fmt.Errorf("instruction %d (%s) qubit %d: %w", i, in.Op.Name(), q, ErrQubitIndex)
			}
			if q+1 > width {
				width = q + 1
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(qasmVersion + "\n")
	sb.WriteString(qasmInclude + "\n")
	fmt.Fprintf(&sb, "// global phase: %s\n", gates.FormatParam(s.GlobalPhase))
	fmt.Fprintf(&sb, "qreg q[%d];\n", width)
	for _, in := range s.Instructions {
		sb.WriteString(in.Op.Name())
		if len(in.Params) > 0 {
			ps := make([]string, len(in.Params))
			for k, p := range in.Params {
				ps[k] = gates.FormatParam(p)
			}
			sb.WriteString("(" + strings.Join(ps, ",") + ")")
		}
		qs := make([]string, len(in.Qubits))
		for k, q := range in.Qubits {
			qs[k] = fmt.Sprintf("q[%d]", q)
		}
		sb.WriteString(" " + strings.Join(qs, ",") + ";\n")
	}

	return sb.String(), nil
}
