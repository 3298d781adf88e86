// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/twoq/circuit"
	"github.com/katalvlaran/twoq/controlledu"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/synth"
	"github.com/katalvlaran/twoq/weyl"
)

type weylSummary struct {
	Specialization string  `json:"specialization"`
	A              float64 `json:"a"`
	B              float64 `json:"b"`
	C              float64 `json:"c"`
	GlobalPhase    float64 `json:"global_phase"`
	Fidelity       float64 `json:"fidelity"`
}

type gateEntry struct {
	Name   string    `json:"name"`
	Params []float64 `json:"params,omitempty"`
	Qubits []int     `json:"qubits"`
}

// report is the result of one CLI run. Circuit fields are empty in -weyl mode.
type report struct {
	ID            string      `json:"id"`
	Target        string      `json:"target"`
	Synthesizer   string      `json:"synthesizer,omitempty"`
	EulerBasis    string      `json:"euler_basis"`
	Weyl          weylSummary `json:"weyl"`
	NumBasisGates int         `json:"num_basis_gates"`
	GlobalPhase   float64     `json:"global_phase"`
	Gates         []gateEntry `json:"gates,omitempty"`

	seq *circuit.Sequence
}

// buildReport canonicalizes u and, unless cfg.Weyl is set, synthesizes it
// with the basis-gate or controlled-U synthesizer.
func buildReport(cfg config, label string, u matrix.Mat4) (*report, error) {
	w, err := weyl.New(u)
	if err != nil {
		return nil, err
	}
	rep := &report{
		ID:         uuid.New().String(),
		Target:     label,
		EulerBasis: cfg.Euler.String(),
		Weyl: weylSummary{
			Specialization: w.Specialization().String(),
			A:              w.A(),
			B:              w.B(),
			C:              w.C(),
			GlobalPhase:    w.GlobalPhase(),
			Fidelity:       w.CalculatedFidelity(),
		},
	}
	if cfg.Weyl {
		return rep, nil
	}

	if cfg.Family != "" {
		err = synthesizeControlled(cfg, u, rep)
	} else {
		err = synthesizeBasis(cfg, u, rep)
	}
	if err != nil {
		return nil, err
	}
	rep.GlobalPhase = rep.seq.GlobalPhase
	for _, in := range rep.seq.Instructions {
		rep.Gates = append(rep.Gates, gateEntry{Name: in.Name(), Params: in.Params, Qubits: in.Qubits})
	}
	return rep, nil
}

func synthesizeBasis(cfg config, u matrix.Mat4, rep *report) error {
	g, params, err := parseTwoQubitCall(cfg.BasisGate)
	if err != nil {
		return fmt.Errorf("basis gate: %w", err)
	}
	d, err := synth.New(g, params,
		synth.WithBasisFidelity(cfg.Fidelity),
		synth.WithEulerBasis(cfg.Euler),
		synth.WithPulseOptimize(cfg.Pulse))
	if err != nil {
		return err
	}
	rep.Synthesizer = g.Name()
	if len(params) > 0 {
		rep.Synthesizer += gates.FormatParamList(params)
	}
	if rep.NumBasisGates, err = d.NumBasisGates(u, synth.WithApproximate(cfg.Approximate)); err != nil {
		return err
	}
	rep.seq, err = d.Synthesize(u, synth.WithApproximate(cfg.Approximate))
	return err
}

func synthesizeControlled(cfg config, u matrix.Mat4, rep *report) error {
	g, err := gates.ByName(cfg.Family)
	if err != nil {
		return fmt.Errorf("family: %w", err)
	}
	d, err := controlledu.New(g, controlledu.WithEulerBasis(cfg.Euler))
	if err != nil {
		return err
	}
	rep.Synthesizer = fmt.Sprintf("%s(θ) scale=%.4g", g.Name(), d.Scale())
	if rep.NumBasisGates, err = d.NumBasisGates(u, controlledu.DefaultAtol); err != nil {
		return err
	}
	rep.seq, err = d.Synthesize(u)
	return err
}
