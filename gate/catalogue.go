// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantlab/cplx"
	"github.com/katalvlaran/quantlab/matrix"
)

// Gate is a named single-qubit operator.
type Gate struct {
	Key         string
	Name        string
	Description string
	Matrix      matrix.Matrix
}

// Catalogue keys in display order.
const (
	KeyHadamard = "hadamard"
	KeyPauliX   = "pauli-x"
	KeyPauliY   = "pauli-y"
	KeyPauliZ   = "pauli-z"
	KeyPhase    = "phase"
	KeyT        = "t-gate"
)

// Identity leaves every state unchanged.
var Identity = Gate{Key: "identity", Name: "I", Description: "Identity", Matrix: matrix.Identity}

var invSqrt2 = 1 / math.Sqrt2

var catalogue = []Gate{
	{
		Key: KeyHadamard, Name: "H",
		Description: "Hadamard: maps |0⟩ to |+⟩ and |1⟩ to |−⟩",
		Matrix:      matrix.Real(invSqrt2, invSqrt2, invSqrt2, -invSqrt2),
	},
	{
		Key: KeyPauliX, Name: "X",
		Description: "Pauli-X: bit flip, |0⟩ ↔ |1⟩",
		Matrix:      matrix.Real(0, 1, 1, 0),
	},
	{
		Key: KeyPauliY, Name: "Y",
		Description: "Pauli-Y: bit and phase flip",
		Matrix:      matrix.New(cplx.Zero, cplx.New(0, -1), cplx.I, cplx.Zero),
	},
	{
		Key: KeyPauliZ, Name: "Z",
		Description: "Pauli-Z: phase flip, |1⟩ → −|1⟩",
		Matrix:      matrix.Real(1, 0, 0, -1),
	},
	{
		Key: KeyPhase, Name: "S",
		Description: "Phase (S): adds a π/2 phase to |1⟩",
		Matrix:      PhaseShift(math.Pi / 2),
	},
	{
		Key: KeyT, Name: "T",
		Description: "T: adds a π/4 phase to |1⟩",
		Matrix:      PhaseShift(math.Pi / 4),
	},
}

// PhaseShift returns diag(1, e^(iφ)). S is PhaseShift(π/2), T is PhaseShift(π/4).
func PhaseShift(phi float64) matrix.Matrix {
	return matrix.New(cplx.One, cplx.Zero, cplx.Zero, cplx.FromPolar(1, phi))
}

// Catalogue returns a copy of the named gates in display order.
func Catalogue() []Gate {
	out := make([]Gate, len(catalogue))
	copy(out, catalogue)

	return out
}

// Keys returns the catalogue keys in display order.
func Keys() []string {
	keys := make([]string, len(catalogue))
	for i, g := range catalogue {
		keys[i] = g.Key
	}

	return keys
}

// Lookup returns the gate registered under key.
func Lookup(key string) (Gate, error) {
	for _, g := range catalogue {
		if g.Key == key {
			return g, nil
		}
	}

	return Gate{}, fmt.Errorf("Lookup %q: %w", key, ErrUnknownGate)
}
