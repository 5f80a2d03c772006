// SPDX-License-Identifier: MIT

// Package twoqubit covers the two-qubit toy systems of the entanglement
// demos.
//
// 🚀 What is a State?
//
//	A State holds the four amplitudes c00, c01, c10, c11 of the basis states
//	|00⟩, |01⟩, |10⟩, |11⟩ (left digit: qubit A, right digit: qubit B).
//
// ✨ What you get:
//   - Tensor, the separable product of two single-qubit states
//   - Bell, the four maximally entangled literals
//   - MeasurementProbabilities and the same-basis Correlation coefficient
//   - MeasureInBases for any pair of Z/X/Y bases
//   - Concurrence and IsSeparable (rank-1 test on the amplitude matrix)
//   - ApplyLocal for independent gates on each qubit, and Collapse
//
// ⚙️ Conventions:
//
//	Outcomes are indexed 0..3 in the order 00, 01, 10, 11. A zero vector
//	normalises to |00⟩, mirroring the single-qubit fallback.
package twoqubit
