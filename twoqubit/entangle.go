// SPDX-License-Identifier: MIT

package twoqubit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
	"github.com/katalvlaran/quantlab/qubit"
)

// Concurrence returns 2|c00·c11 − c01·c10|: 0 for product states, 1 for
// Bell states. The state is expected to be normalised.
func Concurrence(s State) float64 {
	return 2 * s.C00.Mul(s.C11).Sub(s.C01.Mul(s.C10)).Abs()
}

// IsSeparable reports whether the 2×2 amplitude matrix [[c00 c01] [c10 c11]]
// has rank 1 within tol, i.e. s = q1 ⊗ q2 for some single-qubit states.
func IsSeparable(s State, tol float64) bool {
	return Concurrence(s) <= math.Abs(tol)
}

// ApplyLocal returns (A ⊗ B)|ψ⟩: A acts on qubit A, B on qubit B.
//
//	out_ij = Σ_kl A_ik · B_jl · c_kl
//
// Complexity: 16 complex multiply-adds.
func ApplyLocal(s State, a, b matrix.Matrix) State {
	in := [2][2]cplx.Scalar{{s.C00, s.C01}, {s.C10, s.C11}}
	var out [2][2]cplx.Scalar
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					out[i][j] = out[i][j].Add(a[i][k].Mul(b[j][l]).Mul(in[k][l]))
				}
			}
		}
	}

	return State{C00: out[0][0], C01: out[0][1], C10: out[1][0], C11: out[1][1]}
}

// MeasureInBases returns the joint outcome probabilities when qubit A is
// measured in basis ba and qubit B in bb:
//
//	P_ij = |⟨e_i^A ⊗ e_j^B | ψ⟩|²
//
// Outcome 0 is the +1 eigenstate of each basis, so Correlation of the result
// is the expectation of the product observable.
//
// Errors: qubit.ErrUnknownBasis (wrapped).
func MeasureInBases(s State, ba, bb qubit.Basis) (Probabilities, error) {
	ea, err := ba.Eigenstates()
	if err != nil {
		return Probabilities{}, fmt.Errorf("MeasureInBases A=%s: %w", ba, err)
	}
	eb, err := bb.Eigenstates()
	if err != nil {
		return Probabilities{}, fmt.Errorf("MeasureInBases B=%s: %w", bb, err)
	}

	var p [4]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p[2*i+j] = Inner(Tensor(ea[i], eb[j]), s).Abs2()
		}
	}

	return Probabilities{P00: p[0], P01: p[1], P10: p[2], P11: p[3]}, nil
}

// Collapse draws one sample from rng and picks an outcome by cumulative
// probability over 00, 01, 10, 11. The sample is scaled by the total
// probability so a slightly unnormalised state still lands on an outcome.
// It returns the outcome index and the matching basis state; a zero state
// collapses to Ground.
func Collapse(s State, rng qubit.RandomSource) (int, State, error) {
	if rng == nil {
		return 0, s, ErrNilSource
	}

	p := MeasurementProbabilities(s).Array()
	total := p[0] + p[1] + p[2] + p[3]
	if total <= qubit.ZeroNormEpsilon {
		return 0, Ground, nil
	}

	u := rng.Float64() * total
	var acc float64
	last := 0
	for k, pk := range p {
		if pk == 0 {
			continue
		}
		last = k
		acc += pk
		if u < acc {
			return k, ket(k), nil
		}
	}

	return last, ket(last), nil
}

// ket returns the computational basis state for outcome index k.
func ket(k int) State {
	var a [4]cplx.Scalar
	a[k] = cplx.One

	return FromAmplitudes(a)
}
