// SPDX-License-Identifier: MIT
// Package qubit - random sources for measurement collapse.
//
// Goals:
//   - Determinism: same seed ⇒ identical measurement sequences.
//   - Injection: collapse never reads a global generator; the caller owns
//     the source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a source across
//     goroutines.

package qubit

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// RandomSource yields samples in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// SequenceSource replays a fixed list of samples, cycling back to the start
// when exhausted. An empty sequence always yields 0.
type SequenceSource struct {
	samples []float64
	next    int
}

// NewSequenceSource copies samples into a new replaying source.
func NewSequenceSource(samples ...float64) *SequenceSource {
	cp := make([]float64, len(samples))
	copy(cp, samples)

	return &SequenceSource{samples: cp}
}

// Float64 returns the next sample.
func (q *SequenceSource) Float64() float64 {
	if len(q.samples) == 0 {
		return 0
	}
	v := q.samples[q.next]
	q.next = (q.next + 1) % len(q.samples)

	return v
}
