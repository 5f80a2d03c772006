// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks.
//  - Keep kernels minimal by delegating finiteness/unitarity/hermiticity
//    checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the
//    wrapped error on failure.
//
// Note:
//  - Each validator first normalises its tolerance: NaN/Inf tolerance is a
//    numeric policy violation (ErrNaNInf), a negative one is flipped.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normalizeTol returns |tol| or ErrNaNInf for a non-finite tolerance.
func normalizeTol(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, ErrNaNInf
	}

	return math.Abs(tol), nil
}

// ValidateFinite ensures every entry of m is finite.
//
// Returns: nil or wrapped ErrNaNInf.
// Complexity: O(1).
func ValidateFinite(m Matrix) error {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !m[i][j].IsFinite() {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateVector ensures both components of v are finite.
func ValidateVector(v Vector) error {
	if !v[0].IsFinite() || !v[1].IsFinite() {
		return validatorErrorf("ValidateVector", ErrNaNInf)
	}

	return nil
}

// ValidateUnitary checks M†M = I within tol.
//
// Errors: ErrNaNInf (entries or tol), ErrNotUnitary.
// AI-Hints: use before accepting a user-supplied gate.
func ValidateUnitary(m Matrix, tol float64) error {
	tol, err := normalizeTol(tol)
	if err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if err = ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if !m.IsUnitary(tol) {
		return validatorErrorf("ValidateUnitary", ErrNotUnitary)
	}

	return nil
}

// ValidateHermitian checks M = M† within tol.
//
// Errors: ErrNaNInf (entries or tol), ErrNotHermitian.
// AI-Hints: use before treating a matrix as an observable (real spectrum).
func ValidateHermitian(m Matrix, tol float64) error {
	tol, err := normalizeTol(tol)
	if err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	if err = ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	if !m.IsHermitian(tol) {
		return validatorErrorf("ValidateHermitian", ErrNotHermitian)
	}

	return nil
}

// ValidateNormal checks MM† = M†M within tol, the precondition for an
// orthonormal eigenbasis.
//
// Errors: ErrNaNInf (entries or tol), ErrNotNormal.
func ValidateNormal(m Matrix, tol float64) error {
	tol, err := normalizeTol(tol)
	if err != nil {
		return validatorErrorf("ValidateNormal", err)
	}
	if err = ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateNormal", err)
	}
	if !m.IsNormal(tol) {
		return validatorErrorf("ValidateNormal", ErrNotNormal)
	}

	return nil
}
