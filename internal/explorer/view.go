// SPDX-License-Identifier: MIT

package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/quantlab/format"
	"github.com/katalvlaran/quantlab/gate"
	"github.com/katalvlaran/quantlab/matrix"
	"github.com/katalvlaran/quantlab/qubit"
	"github.com/katalvlaran/quantlab/twoqubit"
)

const barWidth = 20

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs() + "\n")

	var body string
	switch m.page {
	case PageGates:
		body = m.viewGates()
	case PageMeasurement:
		body = m.viewMeasurement()
	case PageEntanglement:
		body = m.viewEntanglement()
	default:
		body = m.viewSuperposition()
	}
	b.WriteString(panelStyle.Render(body))
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n" + helpStyle.Render(m.help()))

	return frameStyle.Render(b.String())
}

func (m Model) tabs() string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(p.String()))
		if p == m.page {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) viewSuperposition() string {
	s := m.State()
	p0, p1 := s.Probabilities()
	angles := s.BlochAngles()
	vec := angles.Vector()

	var b strings.Builder
	b.WriteString(equationStyle.Render(format.State(s)) + "\n")
	b.WriteString(row("bra", format.Bra(s)))
	b.WriteString(row("slider form", format.Amplitude(s)))
	b.WriteString(row("P(|0⟩)", bar(p0)+" "+format.Percent(p0)))
	b.WriteString(row("P(|1⟩)", bar(p1)+" "+format.Percent(p1)))
	b.WriteString(row("θ", format.Fixed(angles.Theta, 3)))
	b.WriteString(row("φ", format.Fixed(angles.Phi, 3)+"  (wrapped "+format.Fixed(angles.Wrapped().Phi, 3)+")"))
	b.WriteString(row("Bloch vector", fmt.Sprintf("(%s, %s, %s)",
		format.Fixed(vec.X, 3), format.Fixed(vec.Y, 3), format.Fixed(vec.Z, 3))))

	b.WriteString("\n")
	for _, basis := range []qubit.Basis{qubit.BasisZ, qubit.BasisX, qubit.BasisY} {
		obs, _ := basis.Observable()
		verdict := "probabilistic"
		if qubit.IsEigenstateOf(s, obs, qubit.EigenTolerance) {
			verdict = "deterministic (eigenstate)"
		}
		b.WriteString(row("measure "+basis.String(), fmt.Sprintf("⟨σ⟩=%s  %s",
			format.Fixed(qubit.Expectation(s, obs), 3), verdict)))
	}

	return b.String()
}

func (m Model) viewGates() string {
	g := m.gates[m.gate]
	in := m.State()
	out := g.Apply(in)
	in0, in1 := in.Probabilities()
	out0, out1 := out.Probabilities()
	cells := format.Matrix(g.Matrix)

	var b strings.Builder
	b.WriteString(equationStyle.Render(fmt.Sprintf("%s (%s)", g.Name, g.Key)) + "\n")
	b.WriteString(valueStyle.Render(g.Description) + "\n\n")
	b.WriteString(fmt.Sprintf("  ⎡ %-16s %-16s ⎤\n", cells[0][0], cells[0][1]))
	b.WriteString(fmt.Sprintf("  ⎣ %-16s %-16s ⎦\n\n", cells[1][0], cells[1][1]))
	b.WriteString(row("unitary", fmt.Sprint(gate.IsUnitary(g.Matrix, matrix.DefaultEpsilon))))
	b.WriteString(row("hermitian", fmt.Sprint(gate.IsHermitian(g.Matrix, matrix.DefaultEpsilon))))
	b.WriteString("\n")
	b.WriteString(row("|ψ_in⟩", format.Amplitude(in)))
	b.WriteString(row("", "P(|0⟩) = "+format.Percent(in0)+", P(|1⟩) = "+format.Percent(in1)))
	b.WriteString(row("|ψ_out⟩", format.Amplitude(out)))
	b.WriteString(row("", "P(|0⟩) = "+format.Percent(out0)+", P(|1⟩) = "+format.Percent(out1)))

	return b.String()
}

func (m Model) viewMeasurement() string {
	s := m.State()
	p0, p1, err := qubit.BasisProbabilities(s, m.basis)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	eig, _ := m.basis.Eigenstates()
	c0m, c0p := qubit.Inner(eig[0], s).Polar()
	c1m, c1p := qubit.Inner(eig[1], s).Polar()

	var b strings.Builder
	b.WriteString(equationStyle.Render(format.State(s)) + "\n")
	b.WriteString(row("basis", m.basis.String()))
	b.WriteString(row("expanded", format.KetEquation(c0m, c0p, c1m, c1p, format.BasisLabels(m.basis))))
	b.WriteString(row("outcome 0", format.State(eig[0])+"  "+format.Percent(p0)))
	b.WriteString(row("outcome 1", format.State(eig[1])+"  "+format.Percent(p1)))
	b.WriteString(row("shots/run", fmt.Sprint(m.shots)))

	if len(m.runs) == 0 {
		b.WriteString("\n" + valueStyle.Render("press m to measure"))
		return b.String()
	}

	last := m.runs[len(m.runs)-1]
	b.WriteString("\n")
	b.WriteString(row("outcome 0", fmt.Sprintf("%d times (%s)", last.Run.Counts[0], format.Percent(last.Run.Frequency(0)))))
	b.WriteString(row("outcome 1", fmt.Sprintf("%d times (%s)", last.Run.Counts[1], format.Percent(last.Run.Frequency(1)))))
	if series := runningFrequency(last.Run.History); len(series) > 1 {
		chart := asciigraph.Plot(series, asciigraph.Height(6), asciigraph.Width(40),
			asciigraph.LowerBound(0), asciigraph.UpperBound(1), asciigraph.Caption("running P(0)"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	b.WriteString("\nRUNS\n")
	for i := len(m.runs) - 1; i >= 0; i-- {
		r := m.runs[i]
		b.WriteString(fmt.Sprintf("  %s  %s  %4d/%-4d  P(0)=%s\n", r.ID[:8], r.Basis,
			r.Run.Counts[0], r.Run.Counts[1], format.Percent(r.Run.Frequency(0))))
	}

	return b.String()
}

func (m Model) viewEntanglement() string {
	kind := twoqubit.BellKinds[m.bell]
	s, err := twoqubit.Bell(kind)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	probs, err := twoqubit.MeasureInBases(s, m.basisA, m.basisB)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	a0, b0 := probs.Marginals()

	var b strings.Builder
	b.WriteString(equationStyle.Render(kind.String()) + "\n")
	b.WriteString(row("expansion", format.Expansion(s)))
	b.WriteString(row("bases", "A:"+m.basisA.String()+"  B:"+m.basisB.String()))
	for k, p := range probs.Array() {
		b.WriteString(row("P("+twoqubit.Outcomes[k]+")", bar(p)+" "+format.Percent(p)))
	}
	b.WriteString(row("correlation", format.Fixed(twoqubit.Correlation(probs), 3)))
	b.WriteString(row("marginals", "P_A(0) = "+format.Percent(a0)+", P_B(0) = "+format.Percent(b0)))
	b.WriteString(row("concurrence", format.Fixed(twoqubit.Concurrence(s), 3)))
	b.WriteString(row("separable", fmt.Sprint(twoqubit.IsSeparable(s, qubit.NormTolerance))))

	if len(m.pairLog) > 0 {
		labels := make([]string, len(m.pairLog))
		for i, k := range m.pairLog {
			labels[i] = twoqubit.Outcomes[k]
		}
		b.WriteString("\n" + row("pairs (ZZ)", strings.Join(labels, " ")))
	}

	return b.String()
}

func (m Model) help() string {
	common := "tab/1-4: page  q: quit"
	switch m.page {
	case PageGates:
		return "←/→: |α|  ↑/↓: phase  g: next gate  0: reset  " + common
	case PageMeasurement:
		return "←/→: |α|  ↑/↓: phase  b: basis  m: measure  c: clear  " + common
	case PageEntanglement:
		return "e: Bell state  a/s: basis A/B  m: collapse pair  c: clear  " + common
	default:
		return "←/→: |α|  ↑/↓: phase  0: reset  " + common
	}
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// bar draws p ∈ [0, 1] as a fixed-width gauge.
func bar(p float64) string {
	filled := int(p*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	} else if filled > barWidth {
		filled = barWidth
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled) + "]"
}

// runningFrequency returns the fraction of outcome 0 after each shot.
func runningFrequency(history []int) []float64 {
	out := make([]float64, len(history))
	zeros := 0
	for i, k := range history {
		if k == 0 {
			zeros++
		}
		out[i] = float64(zeros) / float64(i+1)
	}

	return out
}
