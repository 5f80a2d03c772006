// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Fixed renders x with exactly decimals fractional digits, rounding half
// away from zero on the exact binary value of x.
//
// Implementation:
//   - Stage 1: NaN and ±Inf use strconv spelling ("NaN", "+Inf", "-Inf").
//   - Stage 2: |x|·10^d is taken as an exact rational and rounded with
//     floor(v + 1/2), so only true binary ties round up.
//   - Stage 3: the integer is split at the decimal point and the sign of a
//     negative x is kept even when the digits are all zero; −0 prints
//     unsigned.
//
// A negative decimals is treated as 0.
// Complexity: O(d + exponent) big-integer digits.
func Fixed(x float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	v := new(big.Rat).SetFloat64(math.Abs(x))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	v.Mul(v, new(big.Rat).SetInt(scale))
	v.Add(v, big.NewRat(1, 2))
	n := new(big.Int).Quo(v.Num(), v.Denom())

	digits := n.String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		cut := len(digits) - decimals
		digits = digits[:cut] + "." + digits[cut:]
	}
	if x < 0 {
		digits = "-" + digits
	}

	return digits
}

// Percent renders a probability as a percentage with one decimal: 0.5 → "50.0%".
func Percent(p float64) string {
	return Fixed(p*100, 1) + "%"
}
