// SPDX-License-Identifier: MIT

package format_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantlab/format"
	"github.com/stretchr/testify/assert"
)

// TestFixed_RoundHalfAwayFromZero pins exact-tie behaviour and the cases
// where the binary value sits just below a decimal tie.
func TestFixed_RoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		decimals int
		want     string
	}{
		{"one", 1, 3, "1.000"},
		{"0.707", 0.707, 3, "0.707"},
		{"exact tie up", 2.5, 0, "3"},
		{"exact tie half", 0.5, 0, "1"},
		{"negative tie away", -2.5, 0, "-3"},
		{"binary tie 0.125", 0.125, 2, "0.13"},
		{"negative binary tie", -0.125, 2, "-0.13"},
		{"below tie 1.005", 1.005, 2, "1.00"},
		{"above tie 0.0005", 0.0005, 3, "0.001"},
		{"small", 0.001, 3, "0.001"},
		{"padding", 0.01, 4, "0.0100"},
		{"large", 1234.5678, 2, "1234.57"},
		{"negative keeps sign", -0.0001, 3, "-0.000"},
		{"negative zero unsigned", math.Copysign(0, -1), 3, "0.000"},
		{"negative decimals as zero", 2.5, -1, "3"},
		{"NaN", math.NaN(), 3, "NaN"},
		{"+Inf", math.Inf(1), 3, "+Inf"},
		{"-Inf", math.Inf(-1), 3, "-Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Fixed(tt.x, tt.decimals))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "50.0%", format.Percent(0.5))
	assert.Equal(t, "33.3%", format.Percent(1.0/3))
	assert.Equal(t, "100.0%", format.Percent(1))
	assert.Equal(t, "0.0%", format.Percent(0))
}
