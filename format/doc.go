// SPDX-License-Identifier: MIT

// Package format renders amplitudes, states and operators as the short,
// reproducible strings the demo read-outs show.
//
// 🚀 Rounding rule
//
//	Fixed rounds half away from zero on the exact binary value of the
//	float, the same rule as standard fixed-point formatting in the browser.
//	The result is bit-for-bit reproducible: no locale, no platform
//	dependency.
//
// ✨ Renderers:
//   - Complex(magnitude, phase): "0.707" or "(0.000+0.707i)"
//   - StateEquation: "|ψ⟩ = 0.707|0⟩ + (0.000+0.707i)|1⟩"
//   - KetEquation, BraEquation and Bra with |0⟩/|1⟩, |+⟩/|−⟩ or |R⟩/|L⟩ labels
//   - Scalar and Matrix for operator entries ("0.500 + 0.500i")
//   - Amplitude, Percent and Expansion for state read-outs
//
// ⚙️ Options:
//
//	WithDecimals (default 3) and WithTolerance (default 0.01, the
//	"imaginary part is negligible" threshold of Complex).
package format
