// SPDX-License-Identifier: MIT

// Package matrix offers the 2×2 complex operators acted on by single-qubit
// states: gates, observables and their algebra.
//
// The matrix package provides:
//
//   - Matrix, a row-major [2][2]cplx.Scalar value type with O(1) products,
//     sums, conjugate transpose (Dagger), trace and determinant.
//   - Structural predicates computed from the entries, never declared:
//     IsUnitary (M†M = I), IsHermitian (M = M†), IsNormal (MM† = M†M).
//   - Commutator / AntiCommutator for the non-commuting-observables demos.
//   - Eigen, a closed-form eigen decomposition for normal 2×2 matrices that
//     returns orthonormal eigenvectors with a canonical global phase.
//   - Validators and sentinel errors for untrusted input (FromRows).
//
// Numeric policy:
//
//	Every comparison is tolerance based. DefaultEpsilon (1e-9) is the
//	pure-math tolerance; callers pass a looser one for display-level checks.
//
// See example_test.go for usage patterns.
package matrix
