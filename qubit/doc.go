// SPDX-License-Identifier: MIT

// Package qubit models a single two-level quantum state and the read-outs the
// teaching pages derive from it.
//
// 🚀 What is a State?
//
//	A State is an amplitude pair (α, β) for the basis states |0⟩ and |1⟩.
//	It is a plain value: constructors never normalise implicitly and every
//	transformation returns a new State.
//
// ✨ What you get:
//   - Normalize / NormalizeState with a ground-state fallback for zero vectors
//   - FromPolar, FromSlider and FromBloch for the slider-driven forms
//   - Born-rule probabilities, Bloch angles and the Bloch vector
//   - measurement in the Z, X and Y bases, eigenstate classification
//   - Collapse and Simulate driven by an injected RandomSource
//
// ⚙️ Numeric policy:
//
//	NormTolerance and EigenTolerance (both 1e-2) are the display-level
//	contract for "is normalised" and "is an eigenstate". ZeroNormEpsilon
//	(1e-12) guards divisions by a vanishing norm.
//
// Randomness:
//
//	Nothing in this package reads a global random generator. Callers pass a
//	RandomSource; NewSource returns a deterministic *rand.Rand and
//	SequenceSource replays fixed samples for tests.
//
// See example_test.go for usage patterns.
package qubit
