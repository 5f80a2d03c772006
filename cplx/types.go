// SPDX-License-Identifier: MIT

package cplx

// Epsilon is the tolerance for pure-math round trips (polar ↔ rectangular,
// unitary products). Display-level checks use the looser tolerances owned by
// the packages that need them.
const Epsilon = 1e-9

// Scalar is a complex number stored as real and imaginary parts.
// The zero value is 0+0i.
type Scalar struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// Frequently used constants.
var (
	Zero = Scalar{}
	One  = Scalar{Re: 1}
	I    = Scalar{Im: 1}
)
