// SPDX-License-Identifier: MIT

package qubit

import (
	"math"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
)

const (
	// NormTolerance bounds |α|²+|β|² − 1 for a state to count as normalised.
	NormTolerance = 1e-2

	// EigenTolerance is the default tolerance of IsEigenstateOf: a state is
	// an eigenstate when one outcome has probability ≥ 1 − EigenTolerance.
	EigenTolerance = 0.01

	// ZeroNormEpsilon is the norm at or below which normalisation falls back
	// to the ground state.
	ZeroNormEpsilon = 1e-12
)

// State is a single-qubit state α|0⟩ + β|1⟩.
type State struct {
	Alpha cplx.Scalar // amplitude of |0⟩
	Beta  cplx.Scalar // amplitude of |1⟩
}

// BlochAngles locates a state on the Bloch sphere.
// Theta ∈ [0, π] is the polar angle; Phi is the relative phase
// phase(β) − phase(α), left in (−2π, 2π). Callers that need φ ∈ [0, 2π)
// call Wrapped.
type BlochAngles struct {
	Theta float64
	Phi   float64
}

// BlochVector is the Cartesian point (sinθ cosφ, sinθ sinφ, cosθ).
type BlochVector struct {
	X, Y, Z float64
}

// Eigenstate pairs an eigenvalue of an observable with its eigenstate and the
// probability of observing it from a given state.
type Eigenstate struct {
	Value       cplx.Scalar
	State       State
	Probability float64
}

// Run is the log of a repeated-shot measurement: per-outcome counts and the
// outcome sequence in shot order.
type Run struct {
	Shots   int
	Counts  [2]int
	History []int
}

// Basis selects a single-qubit measurement basis.
type Basis int

const (
	// BasisZ is the computational basis {|0⟩, |1⟩}.
	BasisZ Basis = iota
	// BasisX is the Hadamard basis {|+⟩, |−⟩}.
	BasisX
	// BasisY is the circular basis {|+i⟩, |−i⟩}.
	BasisY
)

var invSqrt2 = 1 / math.Sqrt2

// Named states.
var (
	Zero   = State{Alpha: cplx.One, Beta: cplx.Zero}
	One    = State{Alpha: cplx.Zero, Beta: cplx.One}
	Plus   = State{Alpha: cplx.Real(invSqrt2), Beta: cplx.Real(invSqrt2)}
	Minus  = State{Alpha: cplx.Real(invSqrt2), Beta: cplx.Real(-invSqrt2)}
	PlusI  = State{Alpha: cplx.Real(invSqrt2), Beta: cplx.New(0, invSqrt2)}
	MinusI = State{Alpha: cplx.Real(invSqrt2), Beta: cplx.New(0, -invSqrt2)}
)

// Pauli observables measured by the three bases.
var (
	observableZ = matrix.Real(1, 0, 0, -1)
	observableX = matrix.Real(0, 1, 1, 0)
	observableY = matrix.New(cplx.Zero, cplx.New(0, -1), cplx.I, cplx.Zero)
)
