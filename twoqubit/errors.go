// SPDX-License-Identifier: MIT

package twoqubit

import "errors"

var (
	// ErrUnknownBellState is returned by Bell for a kind outside Φ±, Ψ±.
	ErrUnknownBellState = errors.New("twoqubit: unknown Bell state")

	// ErrNilSource is returned when Collapse is called without a random source.
	ErrNilSource = errors.New("twoqubit: nil random source")
)
