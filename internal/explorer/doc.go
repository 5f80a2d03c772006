// SPDX-License-Identifier: MIT

// Package explorer is the interactive terminal front end of cmd/qlab.
//
// It plays the role of the browser pages: keyboard controls stand in for
// sliders and selects, every key press recomputes the read-outs through the
// quantlab kernel, and View renders them with lipgloss. Four pages are
// available: superposition, gates, measurement and entanglement.
//
// The model is a plain bubbletea value; tests drive it through Update with
// synthetic key messages and inspect View without a terminal.
package explorer
