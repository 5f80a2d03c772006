// SPDX-License-Identifier: MIT

package qubit

import (
	"math"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
)

// Normalize builds the real-amplitude state (a|0⟩ + b|1⟩)/sqrt(a²+b²) from
// two slider magnitudes.
//
// Implementation:
//   - Stage 1: n = hypot(a, b).
//   - Stage 2: n ≤ ZeroNormEpsilon falls back to the ground state |0⟩.
//   - Stage 3: divide both components by n.
//
// Complexity: O(1).
func Normalize(alphaMag, betaMag float64) State {
	n := math.Hypot(alphaMag, betaMag)
	if n <= ZeroNormEpsilon {
		return Zero
	}

	return State{Alpha: cplx.Real(alphaMag / n), Beta: cplx.Real(betaMag / n)}
}

// NormalizeState rescales complex amplitudes to unit norm, with the same
// ground-state fallback as Normalize. Relative phase is preserved.
func NormalizeState(s State) State {
	n := math.Sqrt(s.Norm2())
	if n <= ZeroNormEpsilon {
		return Zero
	}

	return State{Alpha: s.Alpha.Scale(1 / n), Beta: s.Beta.Scale(1 / n)}
}

// FromPolar builds a state from magnitude/phase pairs. The result is not
// normalised.
func FromPolar(alphaMag, alphaPhase, betaMag, betaPhase float64) State {
	return State{
		Alpha: cplx.FromPolar(alphaMag, alphaPhase),
		Beta:  cplx.FromPolar(betaMag, betaPhase),
	}
}

// FromSlider is the single-slider form: α is clamped to [0, 1],
// β = sqrt(1 − α²)·e^(iφ). The result is normalised by construction.
func FromSlider(alpha, phase float64) State {
	a := math.Min(1, math.Max(0, alpha))
	return State{
		Alpha: cplx.Real(a),
		Beta:  cplx.FromPolar(math.Sqrt(1-a*a), phase),
	}
}

// FromBloch returns cos(θ/2)|0⟩ + e^(iφ)·sin(θ/2)|1⟩.
func FromBloch(theta, phi float64) State {
	return State{
		Alpha: cplx.Real(math.Cos(theta / 2)),
		Beta:  cplx.FromPolar(math.Sin(theta/2), phi),
	}
}

// FromVector converts a column vector (v0, v1)ᵀ into a State.
func FromVector(v matrix.Vector) State {
	return State{Alpha: v[0], Beta: v[1]}
}

// Vector returns the amplitudes as a column vector.
func (s State) Vector() matrix.Vector {
	return matrix.Vector{s.Alpha, s.Beta}
}

// Norm2 returns |α|² + |β|².
func (s State) Norm2() float64 {
	return s.Alpha.Abs2() + s.Beta.Abs2()
}

// Probabilities returns the Born-rule probabilities p0 = |α|², p1 = |β|².
// They sum to 1 within NormTolerance for a normalised state.
func (s State) Probabilities() (p0, p1 float64) {
	return s.Alpha.Abs2(), s.Beta.Abs2()
}

// IsNormalized reports whether |Norm2 − 1| ≤ tol. A negative tol is taken
// by magnitude.
func (s State) IsNormalized(tol float64) bool {
	return math.Abs(s.Norm2()-1) <= math.Abs(tol)
}

// BlochAngles derives θ = 2·acos(min(1, |α|)) and φ = phase(β) − phase(α).
// φ is left unwrapped, so it lies in (−2π, 2π); see Wrapped.
//
// The state is expected to be normalised; |α| is clamped to 1 to absorb
// rounding drift.
func (s State) BlochAngles() BlochAngles {
	return BlochAngles{
		Theta: 2 * math.Acos(math.Min(1, s.Alpha.Abs())),
		Phi:   s.Beta.Phase() - s.Alpha.Phase(),
	}
}

// Wrapped returns the same angles with Phi reduced into [0, 2π).
func (b BlochAngles) Wrapped() BlochAngles {
	phi := math.Mod(b.Phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi >= 2*math.Pi {
		phi = 0
	}

	return BlochAngles{Theta: b.Theta, Phi: phi}
}

// Vector returns the Cartesian point on the unit sphere.
func (b BlochAngles) Vector() BlochVector {
	st, ct := math.Sincos(b.Theta)
	sp, cp := math.Sincos(b.Phi)

	return BlochVector{X: st * cp, Y: st * sp, Z: ct}
}

// Inner returns ⟨a|b⟩ = conj(α_a)·α_b + conj(β_a)·β_b.
func Inner(a, b State) cplx.Scalar {
	return a.Alpha.Conj().Mul(b.Alpha).Add(a.Beta.Conj().Mul(b.Beta))
}

// Overlap returns |⟨a|b⟩|², the probability of finding b in a.
func Overlap(a, b State) float64 {
	return Inner(a, b).Abs2()
}

// Expectation returns Re⟨ψ|A|ψ⟩. For a Hermitian A the imaginary part
// vanishes and the result is the mean measured eigenvalue.
func Expectation(s State, op matrix.Matrix) float64 {
	return Inner(s, FromVector(op.MulVec(s.Vector()))).Re
}
