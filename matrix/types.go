// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the value types; operations live in methods.go,
// eigen.go and validators.go, errors and options in their dedicated files.
package matrix

import "github.com/katalvlaran/quantlab/cplx"

// Matrix is a 2×2 complex matrix in row-major order: m[row][col].
// It is a plain array, so assignment copies and == compares entries exactly
// (use ApproxEqual for tolerance-based comparison).
type Matrix [2][2]cplx.Scalar

// Vector is a column vector of two complex amplitudes: (v[0], v[1])ᵀ.
type Vector [2]cplx.Scalar

// Eigensystem holds the eigen decomposition of a normal 2×2 matrix.
//
// Invariants (within the eps used to compute it):
//   - M·Vectors[k] = Values[k]·Vectors[k] for k ∈ {0, 1};
//   - Vectors are unit length and mutually orthogonal;
//   - the first non-zero component of each vector is real and positive
//     (canonical global phase).
type Eigensystem struct {
	Values  [2]cplx.Scalar // eigenvalues
	Vectors [2]Vector      // matching unit eigenvectors
}

// Identity is the 2×2 identity matrix.
var Identity = Matrix{
	{cplx.One, cplx.Zero},
	{cplx.Zero, cplx.One},
}
