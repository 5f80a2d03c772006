// SPDX-License-Identifier: MIT

package twoqubit

import "github.com/katalvlaran/quantlab/cplx"

// State is c00|00⟩ + c01|01⟩ + c10|10⟩ + c11|11⟩.
type State struct {
	C00, C01, C10, C11 cplx.Scalar
}

// Probabilities holds the four joint outcome probabilities.
type Probabilities struct {
	P00, P01, P10, P11 float64
}

// BellKind names one of the four Bell states.
type BellKind int

// Bell states, in the order the entanglement page lists them.
const (
	PhiPlus BellKind = iota
	PhiMinus
	PsiPlus
	PsiMinus
)

// BellKinds lists the Bell states in display order.
var BellKinds = [4]BellKind{PhiPlus, PhiMinus, PsiPlus, PsiMinus}

// Outcomes labels the outcome indices used by Collapse and Amplitudes.
var Outcomes = [4]string{"00", "01", "10", "11"}

// Ground is |00⟩.
var Ground = State{C00: cplx.One}
