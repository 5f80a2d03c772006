// SPDX-License-Identifier: MIT

package gate

import (
	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
	"github.com/katalvlaran/quantlab/qubit"
)

// Apply returns M|ψ⟩.
//
// Implementation:
//   - Stage 1: complex mat-vec product out = M·(α, β)ᵀ.
//   - Stage 2: each output amplitude is rebuilt from its magnitude and
//     phase (the form the pages display and feed back into sliders).
//
// For a unitary M the total probability is preserved.
// Complexity: O(1).
func Apply(m matrix.Matrix, s qubit.State) qubit.State {
	out := m.MulVec(s.Vector())

	return qubit.State{
		Alpha: cplx.FromPolar(out[0].Polar()),
		Beta:  cplx.FromPolar(out[1].Polar()),
	}
}

// Apply runs the gate on s.
func (g Gate) Apply(s qubit.State) qubit.State {
	return Apply(g.Matrix, s)
}

// Sequence applies gates left to right: Sequence(s, A, B) = B·A·|s⟩.
func Sequence(s qubit.State, gates ...Gate) qubit.State {
	for _, g := range gates {
		s = g.Apply(s)
	}

	return s
}

// IsUnitary reports whether M†M = I within tol. The flag is computed from the
// entries, so it also holds for matrices outside the catalogue.
func IsUnitary(m matrix.Matrix, tol float64) bool {
	return matrix.ValidateUnitary(m, tol) == nil
}

// IsHermitian reports whether M = M† within tol.
func IsHermitian(m matrix.Matrix, tol float64) bool {
	return matrix.ValidateHermitian(m, tol) == nil
}
