// SPDX-License-Identifier: MIT

package format

import "math"

const (
	// DefaultDecimals is the number of fractional digits of every renderer.
	DefaultDecimals = 3

	// DefaultTolerance is the |phase| / |imag| bound below which Complex
	// prints only the real part.
	DefaultTolerance = 0.01

	// maxDecimals bounds WithDecimals; float64 carries ~17 significant digits.
	maxDecimals = 17
)

const (
	panicDecimalsInvalid  = "format: WithDecimals: decimals must be in [0, 17]"
	panicToleranceInvalid = "format: WithTolerance: tol must be finite, non-negative"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective rendering configuration.
type Options struct {
	decimals  int
	tolerance float64
}

// Decimals returns the effective number of fractional digits.
func (o Options) Decimals() int { return o.decimals }

// Tolerance returns the effective negligible-part threshold.
func (o Options) Tolerance() float64 { return o.tolerance }

// WithDecimals sets the number of fractional digits.
// Panics when d is outside [0, 17].
func WithDecimals(d int) Option {
	if d < 0 || d > maxDecimals {
		panic(panicDecimalsInvalid)
	}

	return func(o *Options) { o.decimals = d }
}

// WithTolerance sets the threshold used by Complex.
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{decimals: DefaultDecimals, tolerance: DefaultTolerance}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
