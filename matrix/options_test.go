// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	if o.Epsilon() != matrix.DefaultEpsilon {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Epsilon(), matrix.DefaultEpsilon)
	}
	if o.ValidateNaNInf() != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf(), matrix.DefaultValidateNaNInf)
	}
}

// 2) TestNewOptions_LastWriterWins ensures later options override earlier ones
// and nil options are ignored.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithEpsilon(1e-3), nil, matrix.WithEpsilon(0))
	assert.Equal(t, 0.0, o.Epsilon())
}

// 3) TestWithEpsilon_PanicsOnInvalid pins the stable panic message.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	const msg = "matrix: WithEpsilon: eps must be finite, non-negative"
	for _, bad := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.PanicsWithValue(t, msg, func() { matrix.WithEpsilon(bad) }, "eps=%v", bad)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
