// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/quantlab/matrix"
)

// String renders the basis letter.
func (b Basis) String() string {
	switch b {
	case BasisZ:
		return "Z"
	case BasisX:
		return "X"
	case BasisY:
		return "Y"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// ParseBasis accepts "z", "x" or "y" in any case.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "z":
		return BasisZ, nil
	case "x":
		return BasisX, nil
	case "y":
		return BasisY, nil
	}

	return 0, fmt.Errorf("ParseBasis %q: %w", s, ErrUnknownBasis)
}

// Eigenstates returns the two basis states: outcome 0 is the +1 eigenstate
// of the basis observable, outcome 1 the −1 eigenstate.
func (b Basis) Eigenstates() ([2]State, error) {
	switch b {
	case BasisZ:
		return [2]State{Zero, One}, nil
	case BasisX:
		return [2]State{Plus, Minus}, nil
	case BasisY:
		return [2]State{PlusI, MinusI}, nil
	}

	return [2]State{}, ErrUnknownBasis
}

// Observable returns the Pauli matrix whose eigenbasis is b.
func (b Basis) Observable() (matrix.Matrix, error) {
	switch b {
	case BasisZ:
		return observableZ, nil
	case BasisX:
		return observableX, nil
	case BasisY:
		return observableY, nil
	}

	return matrix.Matrix{}, ErrUnknownBasis
}

// BasisProbabilities returns |⟨e0|ψ⟩|² and |⟨e1|ψ⟩|² for the eigenstates of b.
// For BasisZ this equals Probabilities.
func BasisProbabilities(s State, b Basis) (p0, p1 float64, err error) {
	eig, err := b.Eigenstates()
	if err != nil {
		return 0, 0, err
	}

	return Overlap(eig[0], s), Overlap(eig[1], s), nil
}

// EigenDecompose measures s against the eigenbasis of op.
// Implementation:
//   - Stage 1: closed-form eigen decomposition of op (must be normal).
//   - Stage 2: each eigenvector becomes a State; its Probability is the
//     overlap with the normalised s.
//
// Errors: matrix.ErrNaNInf, matrix.ErrNotNormal (wrapped).
func EigenDecompose(s State, op matrix.Matrix) ([2]Eigenstate, error) {
	es, err := op.Eigen()
	if err != nil {
		return [2]Eigenstate{}, fmt.Errorf("EigenDecompose: %w", err)
	}

	n := NormalizeState(s)
	var out [2]Eigenstate
	for k := 0; k < 2; k++ {
		e := FromVector(es.Vectors[k])
		out[k] = Eigenstate{Value: es.Values[k], State: e, Probability: Overlap(e, n)}
	}

	return out, nil
}

// IsEigenstateOf reports whether measuring op on s is deterministic: one
// eigen-outcome has probability ≥ 1 − tol. A scalar operator c·I has every
// state as an eigenstate. A non-normal or non-finite op yields false.
func IsEigenstateOf(s State, op matrix.Matrix, tol float64) bool {
	tol = math.Abs(tol)
	if op[0][1].IsZero(matrix.DefaultEpsilon) && op[1][0].IsZero(matrix.DefaultEpsilon) &&
		op[0][0].Sub(op[1][1]).IsZero(matrix.DefaultEpsilon) {
		return true
	}

	d, err := EigenDecompose(s, op)
	if err != nil {
		return false
	}

	return d[0].Probability >= 1-tol || d[1].Probability >= 1-tol
}

// Collapse draws one sample from rng and partitions [0, 1) by cumulative
// probability: outcome 0 when sample < p0, otherwise outcome 1. It returns
// the outcome and the matching computational basis state; on error s is
// returned unchanged.
//
// Errors: ErrNilSource, ErrBadProbability (NaN, negative, or above
// 1 + NormTolerance).
func Collapse(s State, p0, p1 float64, rng RandomSource) (int, State, error) {
	if rng == nil {
		return 0, s, ErrNilSource
	}
	if !validProbability(p0) || !validProbability(p1) {
		return 0, s, fmt.Errorf("Collapse p0=%v p1=%v: %w", p0, p1, ErrBadProbability)
	}

	if rng.Float64() < p0 {
		return 0, Zero, nil
	}

	return 1, One, nil
}

// MeasureInBasis collapses s onto one of the eigenstates of b.
func MeasureInBasis(s State, b Basis, rng RandomSource) (int, State, error) {
	eig, err := b.Eigenstates()
	if err != nil {
		return 0, s, err
	}
	p0, p1 := Overlap(eig[0], s), Overlap(eig[1], s)

	k, _, err := Collapse(s, p0, p1, rng)
	if err != nil {
		return 0, s, fmt.Errorf("MeasureInBasis %s: %w", b, err)
	}

	return k, eig[k], nil
}

// Simulate measures a freshly prepared s in basis b shots times.
//
// Errors: ErrBadShots, ErrNilSource, ErrUnknownBasis, ErrBadProbability.
// Complexity: O(shots) time and space (History).
func Simulate(s State, b Basis, shots int, rng RandomSource) (Run, error) {
	if shots < 0 {
		return Run{}, fmt.Errorf("Simulate shots=%d: %w", shots, ErrBadShots)
	}
	if rng == nil {
		return Run{}, ErrNilSource
	}
	if _, err := b.Eigenstates(); err != nil {
		return Run{}, fmt.Errorf("Simulate %s: %w", b, err)
	}

	run := Run{Shots: shots, History: make([]int, 0, shots)}
	for i := 0; i < shots; i++ {
		k, _, err := MeasureInBasis(s, b, rng)
		if err != nil {
			return Run{}, err
		}
		run.Counts[k]++
		run.History = append(run.History, k)
	}

	return run, nil
}

// Frequency returns Counts[outcome]/Shots, or 0 for an empty run or an
// outcome other than 0 and 1.
func (r Run) Frequency(outcome int) float64 {
	if r.Shots == 0 || outcome < 0 || outcome > 1 {
		return 0
	}

	return float64(r.Counts[outcome]) / float64(r.Shots)
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1+NormTolerance
}
