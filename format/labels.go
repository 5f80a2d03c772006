// SPDX-License-Identifier: MIT

package format

import (
	"strings"

	"github.com/katalvlaran/quantlab/qubit"
)

// Labels names the two kets a state equation is written in.
type Labels struct {
	Zero string
	One  string
}

// Display bases of the state-vector read-out.
var (
	ComputationalLabels = Labels{Zero: "|0⟩", One: "|1⟩"}
	HadamardLabels      = Labels{Zero: "|+⟩", One: "|−⟩"}
	CircularLabels      = Labels{Zero: "|R⟩", One: "|L⟩"}
)

// BasisLabels maps a measurement basis to its kets: Z to |0⟩/|1⟩, X to
// |+⟩/|−⟩, Y to |R⟩/|L⟩. An unknown basis falls back to the computational
// labels.
func BasisLabels(b qubit.Basis) Labels {
	switch b {
	case qubit.BasisX:
		return HadamardLabels
	case qubit.BasisY:
		return CircularLabels
	default:
		return ComputationalLabels
	}
}

// Bra turns each ket label "|k⟩" into the bra "⟨k|".
func (l Labels) Bra() Labels {
	return Labels{Zero: braLabel(l.Zero), One: braLabel(l.One)}
}

func braLabel(ket string) string {
	return strings.Replace(strings.Replace(ket, "|", "⟨", 1), "⟩", "|", 1)
}
