// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions MUST return these sentinels (optionally wrapped with %w)
// and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions; panics are reserved for invalid Option
// parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators wrap these sentinels with their own
// tag (see validatorErrorf); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> NaN/Inf -> structural violations (unitary/hermitian/normal).

var (
	// ErrBadShape is returned when row-slice input is not exactly 2×2.
	ErrBadShape = errors.New("matrix: invalid shape, want 2x2")

	// ErrOutOfRange indicates that a row or column index is outside [0, 1].
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotUnitary signals that M†M deviates from the identity beyond eps.
	ErrNotUnitary = errors.New("matrix: matrix is not unitary within eps")

	// ErrNotHermitian signals that M deviates from M† beyond eps.
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within eps")

	// ErrNotNormal signals that MM† and M†M differ beyond eps, so no
	// orthonormal eigenbasis exists.
	ErrNotNormal = errors.New("matrix: matrix is not normal within eps")

	// ErrSingular is returned by Inverse when |det| ≤ eps.
	ErrSingular = errors.New("matrix: singular matrix")
)
