// SPDX-License-Identifier: MIT

// Package cplx provides the minimal complex scalar used by every quantlab
// package: amplitudes, matrix entries and inner products.
//
// 🚀 What is a Scalar?
//
//	A Scalar is an immutable (Re, Im) pair of float64 values. It carries
//	just enough arithmetic for single- and two-qubit toy systems:
//	  • Add, Sub, Mul, Scale, Conj, Neg
//	  • Abs (magnitude), Abs2 (squared magnitude), Phase
//	  • FromPolar for the magnitude/phase form the demos read from sliders
//
// ✨ Key properties:
//   - value semantics: every operation returns a new Scalar
//   - total functions over finite floats; Phase(0,0) is 0 (atan2 convention)
//   - tolerance helpers (ApproxEqual, IsZero) instead of exact equality
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quantlab/cplx"
//
//	a := cplx.FromPolar(1/math.Sqrt2, math.Pi/2) // (0 + 0.707i)
//	p := a.Abs2()                               // 0.5
//
// Interoperability:
//
//	Scalar converts losslessly to and from the built-in complex128 via
//	Complex128 and FromComplex when math/cmplx routines are convenient.
package cplx
