// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strings"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
	"github.com/katalvlaran/quantlab/qubit"
	"github.com/katalvlaran/quantlab/twoqubit"
)

// Complex renders magnitude·e^(i·phase).
//
// When |phase| is below the tolerance (default 0.01) the magnitude itself is
// printed: Complex(1, 0) == "1.000". When only |imag| is below it, the real
// part is printed. Otherwise the form is "(real+imagi)" or "(real-imagi)":
// Complex(0.707, π/2) == "(0.000+0.707i)".
func Complex(magnitude, phase float64, opts ...Option) string {
	o := gatherOptions(opts...)
	if math.Abs(phase) < o.tolerance {
		return Fixed(magnitude, o.decimals)
	}

	re := magnitude * math.Cos(phase)
	im := magnitude * math.Sin(phase)
	if math.Abs(im) < o.tolerance {
		return Fixed(re, o.decimals)
	}
	sign := ""
	if im >= 0 {
		sign = "+"
	}

	return "(" + Fixed(re, o.decimals) + sign + Fixed(im, o.decimals) + "i)"
}

// StateEquation composes "|ψ⟩ = {Complex(alpha)}|0⟩ + {Complex(beta)}|1⟩".
func StateEquation(alpha, alphaPhase, beta, betaPhase float64, opts ...Option) string {
	return KetEquation(alpha, alphaPhase, beta, betaPhase, ComputationalLabels, opts...)
}

// KetEquation is StateEquation with the basis kets named by l, e.g.
// "|ψ⟩ = 0.707|+⟩ + 0.707|−⟩".
func KetEquation(alpha, alphaPhase, beta, betaPhase float64, l Labels, opts ...Option) string {
	return "|ψ⟩ = " + Complex(alpha, alphaPhase, opts...) + l.Zero + " + " +
		Complex(beta, betaPhase, opts...) + l.One
}

// BraEquation renders the dual ⟨ψ|: every phase is negated and the labels
// become bras, e.g. "⟨ψ| = 0.707⟨0| + (0.000-0.707i)⟨1|".
func BraEquation(alpha, alphaPhase, beta, betaPhase float64, l Labels, opts ...Option) string {
	b := l.Bra()

	return "⟨ψ| = " + Complex(alpha, -alphaPhase, opts...) + b.Zero + " + " +
		Complex(beta, -betaPhase, opts...) + b.One
}

// State is StateEquation for a qubit.State, reading each amplitude in polar
// form.
func State(s qubit.State, opts ...Option) string {
	am, ap := s.Alpha.Polar()
	bm, bp := s.Beta.Polar()

	return StateEquation(am, ap, bm, bp, opts...)
}

// Bra is BraEquation for a qubit.State in the computational basis.
func Bra(s qubit.State, opts ...Option) string {
	am, ap := s.Alpha.Polar()
	bm, bp := s.Beta.Polar()

	return BraEquation(am, ap, bm, bp, ComputationalLabels, opts...)
}

// Scalar renders an operator entry: "a", "bi" or "a + bi" / "a - bi".
// A part counts as zero when it rounds to zero at the chosen decimals.
func Scalar(s cplx.Scalar, opts ...Option) string {
	o := gatherOptions(opts...)
	reZero, imZero := roundsToZero(s.Re, o.decimals), roundsToZero(s.Im, o.decimals)

	switch {
	case imZero:
		return Fixed(zeroIf(s.Re, reZero), o.decimals)
	case reZero:
		return Fixed(s.Im, o.decimals) + "i"
	case s.Im < 0:
		return Fixed(s.Re, o.decimals) + " - " + Fixed(-s.Im, o.decimals) + "i"
	default:
		return Fixed(s.Re, o.decimals) + " + " + Fixed(s.Im, o.decimals) + "i"
	}
}

// Matrix renders every entry of m with Scalar.
func Matrix(m matrix.Matrix, opts ...Option) [2][2]string {
	var out [2][2]string
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = Scalar(m[i][j], opts...)
		}
	}

	return out
}

// Amplitude renders the slider form "|α||0⟩ + |β|e^(iφ)|1⟩" with φ the
// relative phase at two decimals: "0.707|0⟩ + 0.707e^(i1.57)|1⟩".
func Amplitude(s qubit.State, opts ...Option) string {
	o := gatherOptions(opts...)

	return Fixed(s.Alpha.Abs(), o.decimals) + "|0⟩ + " +
		Fixed(s.Beta.Abs(), o.decimals) + "e^(i" + Fixed(s.BlochAngles().Phi, 2) + ")|1⟩"
}

// Expansion renders the non-zero terms of a two-qubit state, e.g.
// "0.707|00⟩ - 0.707|11⟩". Complex coefficients are parenthesised; a state
// whose amplitudes all round to zero renders as "0".
func Expansion(s twoqubit.State, opts ...Option) string {
	o := gatherOptions(opts...)

	var b strings.Builder
	for k, c := range s.Amplitudes() {
		reZero, imZero := roundsToZero(c.Re, o.decimals), roundsToZero(c.Im, o.decimals)
		if reZero && imZero {
			continue
		}

		sep, coef := " + ", Scalar(c, opts...)
		switch {
		case !reZero && !imZero:
			coef = "(" + coef + ")"
		case imZero && c.Re < 0 && b.Len() > 0:
			sep, coef = " - ", Scalar(c.Neg(), opts...)
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(coef + "|" + twoqubit.Outcomes[k] + "⟩")
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// roundsToZero reports whether |x| renders as all zeros at the given
// decimals, i.e. |x| < 0.5·10^−d.
func roundsToZero(x float64, decimals int) bool {
	return math.Abs(x) < 0.5*math.Pow10(-decimals)
}

func zeroIf(x float64, zero bool) float64 {
	if zero {
		return 0
	}

	return x
}
