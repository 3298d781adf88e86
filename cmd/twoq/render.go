// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/twoq/gates"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	weylStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

func render(w io.Writer, format string, rep *report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatQASM:
		if rep.seq == nil {
			return fmt.Errorf("no circuit to render (-weyl set)")
		}
		text, err := rep.seq.QASM()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	default:
		_, err := io.WriteString(w, renderText(rep))
		return err
	}
}

func renderText(rep *report) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("twoq · "+rep.Target) + "\n")

	ws := rep.Weyl
	sb.WriteString(weylStyle.Render(fmt.Sprintf(
		"%s\na=%.6f  b=%.6f  c=%.6f\nphase=%s  fidelity=%.12f",
		ws.Specialization, ws.A, ws.B, ws.C, gates.FormatParam(ws.GlobalPhase), ws.Fidelity)) + "\n")
	if rep.seq == nil {
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s %s, %d basis gate(s), euler %s, phase %s\n",
		dimStyle.Render("synthesized over"), rep.Synthesizer, rep.NumBasisGates, rep.EulerBasis,
		gates.FormatParam(rep.GlobalPhase))
	sb.WriteString(gateTable(rep.Gates))
	return sb.String()
}

// gateTable lays the gates out in aligned columns; widths are measured in
// terminal cells.
func gateTable(entries []gateEntry) string {
	rows := [][]string{{"#", "gate", "params", "qubits"}}
	for i, e := range entries {
		params := ""
		if len(e.Params) > 0 {
			params = gates.FormatParamList(e.Params)
		}
		rows = append(rows, []string{fmt.Sprint(i), e.Name, params, fmt.Sprint(e.Qubits)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = runewidth.FillRight(cell, widths[j])
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if i == 0 {
			line = headerStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
