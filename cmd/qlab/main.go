// SPDX-License-Identifier: MIT

// Command qlab is a terminal explorer for the quantlab kernel: superposition,
// gates, measurement and entanglement pages driven from the keyboard.
//
// Usage:
//
//	qlab [-page superposition|gates|measurement|entanglement] [-seed N] [-shots N] [-log file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/quantlab/internal/explorer"
)

func main() {
	pageArg := flag.String("page", "superposition", "start page: superposition, gates, measurement or entanglement")
	seed := flag.Int64("seed", 0, "measurement RNG seed (0 = fixed default)")
	shots := flag.Int("shots", explorer.DefaultShots, "shots per measurement run")
	logPath := flag.String("log", "", "debug log file (empty disables logging)")
	flag.Parse()

	var w io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "qlab: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "qlab",
		Level:           log.DebugLevel,
	})

	page, err := explorer.ParsePage(*pageArg)
	if err != nil {
		logger.Error("bad flag", "page", *pageArg, "err", err)
		fmt.Fprintf(os.Stderr, "qlab: %v\n", err)
		os.Exit(2)
	}
	if *shots < 0 {
		fmt.Fprintf(os.Stderr, "qlab: -shots must be non-negative, got %d\n", *shots)
		os.Exit(2)
	}

	logger.Info("start", "page", page, "seed", *seed, "shots", *shots)
	model := explorer.New(explorer.Config{Page: page, Seed: *seed, Shots: *shots, Logger: logger})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program", "err", err)
		fmt.Fprintf(os.Stderr, "qlab: %v\n", err)
		os.Exit(1)
	}
}
