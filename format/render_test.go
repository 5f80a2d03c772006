// SPDX-License-Identifier: MIT

package format_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/format"
	"github.com/katalvlaran/quantlab/matrix"
	"github.com/katalvlaran/quantlab/qubit"
	"github.com/katalvlaran/quantlab/twoqubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplex(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		phase     float64
		opts      []format.Option
		want      string
	}{
		{"unit real", 1, 0, nil, "1.000"},
		{"0.707 real", 0.707, 0, nil, "0.707"},
		{"0.707 imaginary", 0.707, math.Pi / 2, nil, "(0.000+0.707i)"},
		{"negative imaginary", 0.707, -math.Pi / 2, nil, "(0.000-0.707i)"},
		{"π collapses to real", 1, math.Pi, nil, "-1.000"},
		{"π/4", 1, math.Pi / 4, nil, "(0.707+0.707i)"},
		{"tiny phase", 1, 0.005, nil, "1.000"},
		{"small phase prints magnitude", 0.7075, 0.005, nil, "0.708"},
		{"small negative phase prints magnitude", 0.7075, -0.009, nil, "0.708"},
		{"tiny imaginary", 0.005, 1, nil, "0.003"},
		{"zero tolerance", 1, 0.005, []format.Option{format.WithTolerance(0)}, "(1.000+0.005i)"},
		{"one decimal", 0.707, 0, []format.Option{format.WithDecimals(1)}, "0.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Complex(tt.magnitude, tt.phase, tt.opts...))
		})
	}
}

func TestStateEquation(t *testing.T) {
	r := 1 / math.Sqrt2
	assert.Equal(t, "|ψ⟩ = 0.707|0⟩ + (0.000+0.707i)|1⟩", format.StateEquation(r, 0, r, math.Pi/2))
	assert.Equal(t, "|ψ⟩ = 0.707|0⟩ + (0.000+0.707i)|1⟩", format.State(qubit.PlusI))
	assert.Equal(t, "|ψ⟩ = 1.000|0⟩ + 0.000|1⟩", format.State(qubit.Zero))
	assert.Equal(t, "|ψ⟩ = 0.707|0⟩ + -0.707|1⟩", format.State(qubit.Minus))
}

func TestBraAndLabels(t *testing.T) {
	r := 1 / math.Sqrt2
	assert.Equal(t, "⟨ψ| = 0.707⟨0| + (0.000-0.707i)⟨1|", format.Bra(qubit.PlusI))
	assert.Equal(t, "⟨ψ| = 1.000⟨0| + 0.000⟨1|", format.Bra(qubit.Zero))
	assert.Equal(t, "⟨ψ| = 0.707⟨0| + (0.500-0.500i)⟨1|",
		format.BraEquation(r, 0, r, math.Pi/4, format.ComputationalLabels))

	assert.Equal(t, "|ψ⟩ = 0.707|+⟩ + 0.707|−⟩",
		format.KetEquation(r, 0, r, 0, format.BasisLabels(qubit.BasisX)))
	assert.Equal(t, "|ψ⟩ = 0.707|R⟩ + (0.000+0.707i)|L⟩",
		format.KetEquation(r, 0, r, math.Pi/2, format.BasisLabels(qubit.BasisY)))
	assert.Equal(t, "⟨ψ| = 0.707⟨R| + (0.000-0.707i)⟨L|",
		format.BraEquation(r, 0, r, math.Pi/2, format.CircularLabels))

	assert.Equal(t, format.ComputationalLabels, format.BasisLabels(qubit.BasisZ))
	assert.Equal(t, format.ComputationalLabels, format.BasisLabels(qubit.Basis(7)))
	assert.Equal(t, format.Labels{Zero: "⟨+|", One: "⟨−|"}, format.HadamardLabels.Bra())
}

func TestScalarAndMatrix(t *testing.T) {
	assert.Equal(t, "0.500", format.Scalar(cplx.Real(0.5)))
	assert.Equal(t, "-1.000i", format.Scalar(cplx.New(0, -1)))
	assert.Equal(t, "0.500 + 0.500i", format.Scalar(cplx.New(0.5, 0.5)))
	assert.Equal(t, "0.500 - 0.500i", format.Scalar(cplx.New(0.5, -0.5)))
	assert.Equal(t, "1.000i", format.Scalar(cplx.New(-0.0001, 1)))
	assert.Equal(t, "0.000", format.Scalar(cplx.New(-0.0001, 0)))

	pauliY := matrix.New(cplx.Zero, cplx.New(0, -1), cplx.I, cplx.Zero)
	assert.Equal(t, [2][2]string{{"0.000", "-1.000i"}, {"1.000i", "0.000"}}, format.Matrix(pauliY))

	tGate := matrix.New(cplx.One, cplx.Zero, cplx.Zero, cplx.FromPolar(1, math.Pi/4))
	assert.Equal(t, "0.707 + 0.707i", format.Matrix(tGate)[1][1])
}

func TestAmplitude(t *testing.T) {
	assert.Equal(t, "0.707|0⟩ + 0.707e^(i1.57)|1⟩", format.Amplitude(qubit.PlusI))
	assert.Equal(t, "1.000|0⟩ + 0.000e^(i0.00)|1⟩", format.Amplitude(qubit.Zero))
}

func TestExpansion(t *testing.T) {
	phiMinus, err := twoqubit.Bell(twoqubit.PhiMinus)
	require.NoError(t, err)
	assert.Equal(t, "0.707|00⟩ - 0.707|11⟩", format.Expansion(phiMinus))

	psiPlus, _ := twoqubit.Bell(twoqubit.PsiPlus)
	assert.Equal(t, "0.707|01⟩ + 0.707|10⟩", format.Expansion(psiPlus))

	prod := twoqubit.Tensor(qubit.Plus, qubit.PlusI)
	assert.Equal(t, "0.500|00⟩ + 0.500i|01⟩ + 0.500|10⟩ + 0.500i|11⟩", format.Expansion(prod))

	assert.Equal(t, "(0.600 + 0.800i)|00⟩", format.Expansion(twoqubit.State{C00: cplx.New(0.6, 0.8)}))
	assert.Equal(t, "-1.000|00⟩", format.Expansion(twoqubit.State{C00: cplx.Real(-1)}))
	assert.Equal(t, "0", format.Expansion(twoqubit.State{}))
}

func TestOptions(t *testing.T) {
	o := format.NewOptions()
	assert.Equal(t, format.DefaultDecimals, o.Decimals())
	assert.Equal(t, format.DefaultTolerance, o.Tolerance())

	o = format.NewOptions(format.WithDecimals(5), nil, format.WithTolerance(0.1))
	assert.Equal(t, 5, o.Decimals())
	assert.Equal(t, 0.1, o.Tolerance())

	assert.PanicsWithValue(t, "format: WithDecimals: decimals must be in [0, 17]", func() { format.WithDecimals(-1) })
	assert.PanicsWithValue(t, "format: WithDecimals: decimals must be in [0, 17]", func() { format.WithDecimals(18) })
	assert.PanicsWithValue(t, "format: WithTolerance: tol must be finite, non-negative", func() { format.WithTolerance(math.NaN()) })
	assert.PanicsWithValue(t, "format: WithTolerance: tol must be finite, non-negative", func() { format.WithTolerance(-1) })
}
