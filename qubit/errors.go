// SPDX-License-Identifier: MIT
// Package qubit: sentinel error set.
// Functions return these sentinels (optionally wrapped with %w); callers
// match them with errors.Is. Numeric degeneracies are never errors: a zero
// vector normalises to the ground state.

package qubit

import "errors"

var (
	// ErrNilSource is returned when a measurement is requested without a
	// random source.
	ErrNilSource = errors.New("qubit: nil random source")

	// ErrBadProbability signals a NaN, negative or greater-than-one
	// (beyond NormTolerance) outcome probability.
	ErrBadProbability = errors.New("qubit: invalid probability")

	// ErrBadShots is returned by Simulate for a negative shot count.
	ErrBadShots = errors.New("qubit: shot count must be non-negative")

	// ErrUnknownBasis indicates a Basis value outside Z, X and Y.
	ErrUnknownBasis = errors.New("qubit: unknown measurement basis")
)
