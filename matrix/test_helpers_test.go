// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (Pauli matrices, Hadamard, phase
//     gates) without importing higher-level packages.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
)

const eps = matrix.DefaultEpsilon

var (
	pauliX = matrix.Real(0, 1, 1, 0)
	pauliY = matrix.New(cplx.Zero, cplx.New(0, -1), cplx.New(0, 1), cplx.Zero)
	pauliZ = matrix.Real(1, 0, 0, -1)
	hadam  = matrix.Real(1/math.Sqrt2, 1/math.Sqrt2, 1/math.Sqrt2, -1/math.Sqrt2)
	sGate  = matrix.New(cplx.One, cplx.Zero, cplx.Zero, cplx.I)
	tGate  = matrix.New(cplx.One, cplx.Zero, cplx.Zero, cplx.FromPolar(1, math.Pi/4))
)

// assertMatrixClose FAILS the test when a and b differ beyond tol.
func assertMatrixClose(t *testing.T, want, got matrix.Matrix, tol float64, msg string) {
	t.Helper()
	if !matrix.ApproxEqual(want, got, tol) {
		t.Fatalf("%s: want %v, got %v", msg, want, got)
	}
}

// assertEigenpair checks M·v = λ·v within tol.
func assertEigenpair(t *testing.T, m matrix.Matrix, l cplx.Scalar, v matrix.Vector, tol float64) {
	t.Helper()
	mv := m.MulVec(v)
	for k := 0; k < 2; k++ {
		if !cplx.ApproxEqual(mv[k], v[k].Mul(l), tol) {
			t.Fatalf("M·v != λ·v at %d: M·v=%v, λ·v=%v", k, mv[k], v[k].Mul(l))
		}
	}
}
