// SPDX-License-Identifier: MIT

package twoqubit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
	"github.com/katalvlaran/quantlab/qubit"
	"github.com/katalvlaran/quantlab/twoqubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hadamard = matrix.Real(1/math.Sqrt2, 1/math.Sqrt2, 1/math.Sqrt2, -1/math.Sqrt2)
	pauliX   = matrix.Real(0, 1, 1, 0)
)

// TestMeasureInBases_Correlations tabulates same-basis and mixed-basis
// correlations for each Bell state.
func TestMeasureInBases_Correlations(t *testing.T) {
	tests := []struct {
		kind   twoqubit.BellKind
		ba, bb qubit.Basis
		corr   float64
	}{
		{twoqubit.PhiPlus, qubit.BasisZ, qubit.BasisZ, 1},
		{twoqubit.PhiPlus, qubit.BasisX, qubit.BasisX, 1},
		{twoqubit.PhiPlus, qubit.BasisY, qubit.BasisY, -1},
		{twoqubit.PhiMinus, qubit.BasisX, qubit.BasisX, -1},
		{twoqubit.PsiPlus, qubit.BasisX, qubit.BasisX, 1},
		{twoqubit.PsiMinus, qubit.BasisX, qubit.BasisX, -1},
		{twoqubit.PsiMinus, qubit.BasisZ, qubit.BasisZ, -1},
		{twoqubit.PhiPlus, qubit.BasisZ, qubit.BasisX, 0},
		{twoqubit.PhiMinus, qubit.BasisX, qubit.BasisZ, 0},
		{twoqubit.PsiPlus, qubit.BasisZ, qubit.BasisY, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Label()+"/"+tt.ba.String()+tt.bb.String(), func(t *testing.T) {
			s, err := twoqubit.Bell(tt.kind)
			require.NoError(t, err)
			p, err := twoqubit.MeasureInBases(s, tt.ba, tt.bb)
			require.NoError(t, err)
			arr := p.Array()
			assert.InDelta(t, 1, arr[0]+arr[1]+arr[2]+arr[3], eps)
			assert.InDelta(t, tt.corr, twoqubit.Correlation(p), eps)
		})
	}
}

func TestMeasureInBases_MixedIsUniform(t *testing.T) {
	s, _ := twoqubit.Bell(twoqubit.PhiPlus)
	p, err := twoqubit.MeasureInBases(s, qubit.BasisZ, qubit.BasisX)
	require.NoError(t, err)
	for _, v := range p.Array() {
		assert.InDelta(t, 0.25, v, eps)
	}

	_, err = twoqubit.MeasureInBases(s, qubit.Basis(5), qubit.BasisZ)
	assert.ErrorIs(t, err, qubit.ErrUnknownBasis)
	_, err = twoqubit.MeasureInBases(s, qubit.BasisZ, qubit.Basis(5))
	assert.ErrorIs(t, err, qubit.ErrUnknownBasis)
}

// TestApplyLocal_MatchesBasisChange: measuring in XX equals applying H⊗H and
// measuring in ZZ.
func TestApplyLocal_MatchesBasisChange(t *testing.T) {
	for _, k := range twoqubit.BellKinds {
		s, _ := twoqubit.Bell(k)
		direct, err := twoqubit.MeasureInBases(s, qubit.BasisX, qubit.BasisX)
		require.NoError(t, err)
		rotated := twoqubit.MeasurementProbabilities(twoqubit.ApplyLocal(s, hadamard, hadamard))
		want, got := direct.Array(), rotated.Array()
		assert.InDeltaSlice(t, want[:], got[:], eps, k.Label())
	}
}

func TestApplyLocal_Actions(t *testing.T) {
	plus := twoqubit.ApplyLocal(twoqubit.Ground, hadamard, hadamard)
	for _, a := range plus.Amplitudes() {
		assert.InDelta(t, 0.5, a.Re, eps, "H⊗H|00⟩ = |++⟩")
	}

	phi, _ := twoqubit.Bell(twoqubit.PhiPlus)
	psi, _ := twoqubit.Bell(twoqubit.PsiPlus)
	flipped := twoqubit.ApplyLocal(phi, pauliX, matrix.Identity)
	assert.InDelta(t, 1, twoqubit.Inner(psi, flipped).Abs2(), eps, "(X⊗I)|Φ⁺⟩ = |Ψ⁺⟩")

	assert.Equal(t, phi, twoqubit.ApplyLocal(phi, matrix.Identity, matrix.Identity))
}

func TestCollapse(t *testing.T) {
	phi, _ := twoqubit.Bell(twoqubit.PhiPlus)
	src := qubit.NewSequenceSource(0.2, 0.7)

	k, post, err := twoqubit.Collapse(phi, src)
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, twoqubit.Ground, post)

	k, post, err = twoqubit.Collapse(phi, src)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, "11", twoqubit.Outcomes[k])
	assert.Equal(t, cplx.One, post.C11)

	// A sample at the very top still lands on the last non-zero outcome.
	k, _, err = twoqubit.Collapse(phi, qubit.NewSequenceSource(0.9999999999999999))
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	k, post, err = twoqubit.Collapse(twoqubit.State{}, src)
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, twoqubit.Ground, post)

	_, _, err = twoqubit.Collapse(phi, nil)
	assert.ErrorIs(t, err, twoqubit.ErrNilSource)
}

// TestCollapse_NeverPicksImpossible draws many samples from Ψ⁻ and checks
// that 00 and 11 never occur.
func TestCollapse_NeverPicksImpossible(t *testing.T) {
	psi, _ := twoqubit.Bell(twoqubit.PsiMinus)
	src := qubit.NewSource(99)
	var counts [4]int
	for i := 0; i < 1000; i++ {
		k, _, err := twoqubit.Collapse(psi, src)
		require.NoError(t, err)
		counts[k]++
	}
	assert.Zero(t, counts[0])
	assert.Zero(t, counts[3])
	assert.InDelta(t, 500, counts[1], 80)
}
