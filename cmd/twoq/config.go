// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/synth"
)

// Environment keys read after .env is loaded. Flags override them.
const (
	envBasisGate = "TWOQ_BASIS_GATE"
	envEuler     = "TWOQ_EULER_BASIS"
	envFidelity  = "TWOQ_FIDELITY"
	envPulse     = "TWOQ_PULSE"
	envFormat    = "TWOQ_FORMAT"
	envFamily    = "TWOQ_FAMILY"
)

const (
	formatText = "text"
	formatQASM = "qasm"
	formatJSON = "json"
)

type config struct {
	BasisGate   string
	Family      string
	Euler       euler.Basis
	Fidelity    float64
	Pulse       synth.PulseMode
	Format      string
	Weyl        bool
	Approximate bool
}

// parseConfig resolves defaults, then the environment, then flags, and
// returns the remaining positional arguments.
func parseConfig(args []string, getenv func(string) string, out io.Writer) (config, []string, error) {
	def := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	fs := flag.NewFlagSet("twoq", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: twoq [flags] <gate|matrix-file>")
		fs.PrintDefaults()
	}
	basis := fs.String("basis-gate", def(envBasisGate, "cx"), "entangling basis gate, e.g. cx, cz, iswap, rzx(pi/2)")
	family := fs.String("family", def(envFamily, ""), "synthesize over a parameterized RXX-equivalent family instead, e.g. rzz, cp")
	eulerName := fs.String("euler", def(envEuler, synth.DefaultEulerBasis.String()), "one-qubit basis: "+basisList())
	fidelity := fs.String("fidelity", def(envFidelity, "1"), "basis gate fidelity in [0, 1]")
	pulse := fs.String("pulse", def(envPulse, synth.PulseAuto.String()), "pulse-efficient CX rewrite: auto, required, off")
	format := fs.String("format", def(envFormat, formatText), "output format: text, qasm, json")
	weylOnly := fs.Bool("weyl", false, "print only the Weyl decomposition")
	exact := fs.Bool("exact", false, "never trade exactness for fewer basis gates")
	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}

	cfg := config{
		BasisGate:   strings.TrimSpace(*basis),
		Family:      strings.TrimSpace(*family),
		Weyl:        *weylOnly,
		Approximate: !*exact,
	}
	var err error
	if cfg.Euler, err = euler.ParseBasis(*eulerName); err != nil {
		return config{}, nil, err
	}
	if cfg.Fidelity, err = strconv.ParseFloat(strings.TrimSpace(*fidelity), 64); err != nil {
		return config{}, nil, fmt.Errorf("fidelity %q: %w", *fidelity, err)
	}
	if !(cfg.Fidelity >= 0 && cfg.Fidelity <= 1) {
		return config{}, nil, fmt.Errorf("fidelity %g outside [0, 1]", cfg.Fidelity)
	}
	if cfg.Pulse, err = synth.ParsePulseMode(*pulse); err != nil {
		return config{}, nil, err
	}
	switch cfg.Format = strings.ToLower(strings.TrimSpace(*format)); cfg.Format {
	case formatText, formatQASM, formatJSON:
	default:
		return config{}, nil, fmt.Errorf("unknown format %q", *format)
	}
	return cfg, fs.Args(), nil
}

func basisList() string {
	names := make([]string, 0, len(euler.Bases()))
	for _, b := range euler.Bases() {
		names = append(names, b.String())
	}
	return strings.Join(names, ", ")
}
