// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"
	"math"
)

// New returns re + im·i.
func New(re, im float64) Scalar {
	return Scalar{Re: re, Im: im}
}

// Real returns the purely real scalar x + 0i.
func Real(x float64) Scalar {
	return Scalar{Re: x}
}

// FromPolar builds a scalar from magnitude and phase (radians):
// magnitude·(cos φ + i·sin φ). A negative magnitude is accepted and simply
// flips the direction, as the slider-driven callers never produce one.
//
// Complexity: O(1).
func FromPolar(magnitude, phase float64) Scalar {
	sin, cos := math.Sincos(phase)
	return Scalar{Re: magnitude * cos, Im: magnitude * sin}
}

// FromComplex converts a built-in complex128.
func FromComplex(z complex128) Scalar {
	return Scalar{Re: real(z), Im: imag(z)}
}

// Complex128 converts s to the built-in complex128.
func (s Scalar) Complex128() complex128 {
	return complex(s.Re, s.Im)
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{Re: s.Re + t.Re, Im: s.Im + t.Im}
}

// Sub returns s − t.
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{Re: s.Re - t.Re, Im: s.Im - t.Im}
}

// Mul returns the complex product s·t.
//
//	(a+bi)(c+di) = (ac − bd) + (ad + bc)i
func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{
		Re: s.Re*t.Re - s.Im*t.Im,
		Im: s.Re*t.Im + s.Im*t.Re,
	}
}

// Scale multiplies both parts by the real factor k.
func (s Scalar) Scale(k float64) Scalar {
	return Scalar{Re: s.Re * k, Im: s.Im * k}
}

// Conj returns the complex conjugate Re − Im·i.
func (s Scalar) Conj() Scalar {
	return Scalar{Re: s.Re, Im: -s.Im}
}

// Neg returns −s.
func (s Scalar) Neg() Scalar {
	return Scalar{Re: -s.Re, Im: -s.Im}
}

// Abs returns the magnitude sqrt(Re² + Im²), computed with math.Hypot to
// avoid intermediate overflow.
func (s Scalar) Abs() float64 {
	return math.Hypot(s.Re, s.Im)
}

// Abs2 returns the squared magnitude Re² + Im². This is the Born-rule
// probability when s is an amplitude.
func (s Scalar) Abs2() float64 {
	return s.Re*s.Re + s.Im*s.Im
}

// Phase returns atan2(Im, Re) in (−π, π]. The phase of 0 is 0.
func (s Scalar) Phase() float64 {
	return math.Atan2(s.Im, s.Re)
}

// Polar returns (Abs, Phase).
func (s Scalar) Polar() (magnitude, phase float64) {
	return s.Abs(), s.Phase()
}

// IsFinite reports whether both parts are neither NaN nor ±Inf.
func (s Scalar) IsFinite() bool {
	return !math.IsNaN(s.Re) && !math.IsInf(s.Re, 0) &&
		!math.IsNaN(s.Im) && !math.IsInf(s.Im, 0)
}

// IsZero reports whether both parts are within eps of zero.
func (s Scalar) IsZero(eps float64) bool {
	return math.Abs(s.Re) <= eps && math.Abs(s.Im) <= eps
}

// ApproxEqual reports whether a and b agree part-wise within eps.
func ApproxEqual(a, b Scalar, eps float64) bool {
	return math.Abs(a.Re-b.Re) <= eps && math.Abs(a.Im-b.Im) <= eps
}

// String renders s as "(re+imi)" with full precision, for debugging and
// test failure messages. Display formatting lives in package format.
func (s Scalar) String() string {
	return fmt.Sprintf("(%g%+gi)", s.Re, s.Im)
}
