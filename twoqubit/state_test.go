// SPDX-License-Identifier: MIT

package twoqubit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/qubit"
	"github.com/katalvlaran/quantlab/twoqubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestTensor_GroundState(t *testing.T) {
	s := twoqubit.Tensor(qubit.Normalize(1, 0), qubit.Normalize(1, 0))
	assert.Equal(t, cplx.One, s.C00)
	assert.Equal(t, cplx.Zero, s.C01)
	assert.Equal(t, cplx.Zero, s.C10)
	assert.Equal(t, cplx.Zero, s.C11)
	assert.Equal(t, twoqubit.Ground, s)
}

// TestTensor_StaysNormalised checks that products of random normalised
// states are normalised and separable.
func TestTensor_StaysNormalised(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a := qubit.FromBloch(rng.Float64()*math.Pi, rng.Float64()*2*math.Pi)
		b := qubit.FromSlider(rng.Float64(), rng.Float64()*2*math.Pi)
		s := twoqubit.Tensor(a, b)
		assert.InDelta(t, 1, s.Norm2(), 1e-9)
		assert.True(t, twoqubit.IsSeparable(s, 1e-9))
		assert.InDelta(t, 0, twoqubit.Concurrence(s), 1e-9)
	}
}

func TestBell_PhiPlusProbabilities(t *testing.T) {
	s, err := twoqubit.Bell(twoqubit.PhiPlus)
	require.NoError(t, err)
	p := twoqubit.MeasurementProbabilities(s)
	assert.InDelta(t, 0.5, p.P00, eps)
	assert.InDelta(t, 0, p.P01, eps)
	assert.InDelta(t, 0, p.P10, eps)
	assert.InDelta(t, 0.5, p.P11, eps)
	assert.InDelta(t, 1, twoqubit.Correlation(p), eps)

	a0, b0 := p.Marginals()
	assert.InDelta(t, 0.5, a0, eps, "each qubit alone is a fair coin")
	assert.InDelta(t, 0.5, b0, eps)
}

func TestBell_AllKinds(t *testing.T) {
	corr := map[twoqubit.BellKind]float64{
		twoqubit.PhiPlus:  1,
		twoqubit.PhiMinus: 1,
		twoqubit.PsiPlus:  -1,
		twoqubit.PsiMinus: -1,
	}
	for _, k := range twoqubit.BellKinds {
		s, err := twoqubit.Bell(k)
		require.NoError(t, err)
		assert.InDelta(t, 1, s.Norm2(), eps, k.Label())
		assert.InDelta(t, 1, twoqubit.Concurrence(s), eps, k.Label())
		assert.False(t, twoqubit.IsSeparable(s, 1e-6), k.Label())
		assert.InDelta(t, corr[k], twoqubit.Correlation(twoqubit.MeasurementProbabilities(s)), eps, k.Label())
	}

	_, err := twoqubit.Bell(twoqubit.BellKind(4))
	assert.ErrorIs(t, err, twoqubit.ErrUnknownBellState)
}

func TestBellKind_Strings(t *testing.T) {
	assert.Equal(t, "|Φ⁺⟩ = (|00⟩ + |11⟩)/√2", twoqubit.PhiPlus.String())
	assert.Equal(t, "|Ψ⁻⟩ = (|01⟩ − |10⟩)/√2", twoqubit.PsiMinus.String())
	assert.Equal(t, "Φ⁻", twoqubit.PhiMinus.Label())
	assert.Equal(t, "BellKind(9)", twoqubit.BellKind(9).String())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, twoqubit.Ground, twoqubit.Normalize(twoqubit.State{}))

	s := twoqubit.Normalize(twoqubit.State{C00: cplx.Real(3), C11: cplx.New(0, 4)})
	assert.InDelta(t, 1, s.Norm2(), eps)
	assert.InDelta(t, 0.8, s.C11.Im, eps)

	a := s.Amplitudes()
	assert.Equal(t, s, twoqubit.FromAmplitudes(a))
}

func TestInner(t *testing.T) {
	phi, _ := twoqubit.Bell(twoqubit.PhiPlus)
	psi, _ := twoqubit.Bell(twoqubit.PsiPlus)
	assert.InDelta(t, 0, twoqubit.Inner(phi, psi).Abs(), eps)
	assert.InDelta(t, 1, twoqubit.Inner(phi, phi).Re, eps)
}
