// SPDX-License-Identifier: MIT

package twoqubit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/qubit"
)

// Tensor returns q1 ⊗ q2: c_ij = amp_i(q1)·amp_j(q2). The product of two
// normalised states is normalised.
func Tensor(q1, q2 qubit.State) State {
	return State{
		C00: q1.Alpha.Mul(q2.Alpha),
		C01: q1.Alpha.Mul(q2.Beta),
		C10: q1.Beta.Mul(q2.Alpha),
		C11: q1.Beta.Mul(q2.Beta),
	}
}

// Bell returns the requested maximally entangled literal: amplitude ±1/√2
// on two of the four basis states.
func Bell(kind BellKind) (State, error) {
	r := cplx.Real(1 / math.Sqrt2)
	switch kind {
	case PhiPlus:
		return State{C00: r, C11: r}, nil
	case PhiMinus:
		return State{C00: r, C11: r.Neg()}, nil
	case PsiPlus:
		return State{C01: r, C10: r}, nil
	case PsiMinus:
		return State{C01: r, C10: r.Neg()}, nil
	}

	return State{}, fmt.Errorf("Bell %d: %w", int(kind), ErrUnknownBellState)
}

// Label returns the short symbol, e.g. "Φ⁺".
func (k BellKind) Label() string {
	switch k {
	case PhiPlus:
		return "Φ⁺"
	case PhiMinus:
		return "Φ⁻"
	case PsiPlus:
		return "Ψ⁺"
	case PsiMinus:
		return "Ψ⁻"
	default:
		return fmt.Sprintf("BellKind(%d)", int(k))
	}
}

// String renders the defining equation, e.g. "|Φ⁺⟩ = (|00⟩ + |11⟩)/√2".
func (k BellKind) String() string {
	switch k {
	case PhiPlus:
		return "|Φ⁺⟩ = (|00⟩ + |11⟩)/√2"
	case PhiMinus:
		return "|Φ⁻⟩ = (|00⟩ − |11⟩)/√2"
	case PsiPlus:
		return "|Ψ⁺⟩ = (|01⟩ + |10⟩)/√2"
	case PsiMinus:
		return "|Ψ⁻⟩ = (|01⟩ − |10⟩)/√2"
	default:
		return k.Label()
	}
}

// FromAmplitudes builds a State from amplitudes in outcome order.
func FromAmplitudes(a [4]cplx.Scalar) State {
	return State{C00: a[0], C01: a[1], C10: a[2], C11: a[3]}
}

// Amplitudes returns the amplitudes in outcome order 00, 01, 10, 11.
func (s State) Amplitudes() [4]cplx.Scalar {
	return [4]cplx.Scalar{s.C00, s.C01, s.C10, s.C11}
}

// Norm2 returns Σ|c_ij|².
func (s State) Norm2() float64 {
	return s.C00.Abs2() + s.C01.Abs2() + s.C10.Abs2() + s.C11.Abs2()
}

// Normalize rescales s to unit norm; a norm ≤ qubit.ZeroNormEpsilon falls
// back to Ground.
func Normalize(s State) State {
	n := math.Sqrt(s.Norm2())
	if n <= qubit.ZeroNormEpsilon {
		return Ground
	}
	k := 1 / n

	return State{C00: s.C00.Scale(k), C01: s.C01.Scale(k), C10: s.C10.Scale(k), C11: s.C11.Scale(k)}
}

// Inner returns ⟨a|b⟩.
func Inner(a, b State) cplx.Scalar {
	av, bv := a.Amplitudes(), b.Amplitudes()
	var sum cplx.Scalar
	for i := range av {
		sum = sum.Add(av[i].Conj().Mul(bv[i]))
	}

	return sum
}

// MeasurementProbabilities returns |c_ij|² for each outcome.
func MeasurementProbabilities(s State) Probabilities {
	return Probabilities{
		P00: s.C00.Abs2(),
		P01: s.C01.Abs2(),
		P10: s.C10.Abs2(),
		P11: s.C11.Abs2(),
	}
}

// Correlation returns P00 + P11 − P01 − P10 ∈ [−1, 1]: +1 when both qubits
// always agree, −1 when they always disagree, 0 when independent and fair.
func Correlation(p Probabilities) float64 {
	return p.P00 + p.P11 - p.P01 - p.P10
}

// Array returns the probabilities in outcome order.
func (p Probabilities) Array() [4]float64 {
	return [4]float64{p.P00, p.P01, p.P10, p.P11}
}

// Marginals returns the probability of reading 0 on qubit A and on qubit B.
func (p Probabilities) Marginals() (a0, b0 float64) {
	return p.P00 + p.P01, p.P00 + p.P10
}
