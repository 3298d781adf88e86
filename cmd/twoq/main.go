// SPDX-License-Identifier: MIT

// Command twoq canonicalizes a two-qubit unitary and synthesizes it over an
// entangling basis gate.
//
// Usage:
//
//	twoq [flags] <gate|matrix-file>
//
// The target is either a standard gate call such as "rzz(pi/3)" or a file of
// four rows of complex entries ("0.7071", "1-2j", ...). Defaults come from the
// TWOQ_* environment variables, optionally set in a .env file.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load(".env")

	cfg, args, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("[TWOQ] %v", err)
	}
	if len(args) != 1 {
		log.Fatalf("[TWOQ] expected one target, got %d (see -h)", len(args))
	}

	u, err := loadTarget(args[0])
	if err != nil {
		log.Fatalf("[TWOQ] target: %v", err)
	}
	rep, err := buildReport(cfg, args[0], u)
	if err != nil {
		log.Fatalf("[TWOQ] %v", err)
	}
	if err = render(os.Stdout, cfg.Format, rep); err != nil {
		log.Fatalf("[TWOQ] render: %v", err)
	}
}
