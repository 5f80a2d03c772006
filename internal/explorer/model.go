// SPDX-License-Identifier: MIT

package explorer

import (
	"io"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/quantlab/gate"
	"github.com/katalvlaran/quantlab/qubit"
	"github.com/katalvlaran/quantlab/twoqubit"
)

const (
	// DefaultShots is the shot count of one measurement run.
	DefaultShots = 100

	alphaStep  = 0.05
	phaseStep  = math.Pi / 12
	maxHistory = 8
)

// Config seeds a new Model.
type Config struct {
	Page   Page
	Seed   int64 // 0 selects the kernel's default seed
	Shots  int   // ≤ 0 selects DefaultShots
	Logger *log.Logger
}

// runRecord is one entry of the measurement history.
type runRecord struct {
	ID    string
	Basis qubit.Basis
	Run   qubit.Run
}

// Model is the bubbletea model of the explorer.
type Model struct {
	page   Page
	alpha  float64 // slider value of |α| in [0, 1]
	phase  float64 // relative phase of β
	gate   int     // index into gate.Catalogue()
	basis  qubit.Basis
	bell   int // index into twoqubit.BellKinds
	basisA qubit.Basis
	basisB qubit.Basis

	shots   int
	rng     qubit.RandomSource
	runs    []runRecord
	pairLog []int // Bell-pair collapse outcomes, newest last
	err     error

	gates  []gate.Gate
	logger *log.Logger
}

// New builds a Model from cfg. The initial state is |+⟩.
func New(cfg Config) Model {
	shots := cfg.Shots
	if shots <= 0 {
		shots = DefaultShots
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		page:   cfg.Page,
		alpha:  1 / math.Sqrt2,
		basis:  qubit.BasisZ,
		basisA: qubit.BasisZ,
		basisB: qubit.BasisZ,
		shots:  shots,
		rng:    qubit.NewSource(cfg.Seed),
		gates:  gate.Catalogue(),
		logger: logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses; every control change recomputes the page on
// the next View.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.logger.Info("quit", "page", m.page)
		return m, tea.Quit
	case "tab":
		m.setPage(m.page.next(1))
	case "shift+tab":
		m.setPage(m.page.next(-1))
	case "1", "2", "3", "4":
		m.setPage(pages[key.String()[0]-'1'])
	case "right", "l":
		m.alpha = math.Min(1, m.alpha+alphaStep)
	case "left", "h":
		m.alpha = math.Max(0, m.alpha-alphaStep)
	case "up", "k":
		m.phase += phaseStep
	case "down", "j":
		m.phase -= phaseStep
	case "0":
		m.alpha, m.phase = 1/math.Sqrt2, 0
	case "g":
		m.gate = (m.gate + 1) % len(m.gates)
	case "b":
		m.basis = nextBasis(m.basis)
	case "e":
		m.bell = (m.bell + 1) % len(twoqubit.BellKinds)
		m.pairLog = nil
	case "a":
		m.basisA = nextBasis(m.basisA)
	case "s":
		m.basisB = nextBasis(m.basisB)
	case "m", "enter":
		m.measure()
	case "c":
		m.runs, m.pairLog, m.err = nil, nil, nil
	}

	return m, nil
}

// State returns the current single-qubit state built from the controls.
func (m Model) State() qubit.State {
	return qubit.FromSlider(m.alpha, m.phase)
}

func (m *Model) setPage(p Page) {
	m.logger.Debug("page", "from", m.page, "to", p)
	m.page = p
}

// measure runs the page's measurement: a shot series on the measurement
// page, a single Bell-pair collapse on the entanglement page. Other pages
// ignore the key.
func (m *Model) measure() {
	switch m.page {
	case PageEntanglement:
		s, err := twoqubit.Bell(twoqubit.BellKinds[m.bell])
		if err != nil {
			m.err = err
			return
		}
		k, _, err := twoqubit.Collapse(s, m.rng)
		if err != nil {
			m.err = err
			return
		}
		m.pairLog = appendBounded(m.pairLog, k, maxHistory*4)
		m.logger.Debug("collapse", "bell", twoqubit.BellKinds[m.bell].Label(), "outcome", twoqubit.Outcomes[k])
	case PageMeasurement:
		run, err := qubit.Simulate(m.State(), m.basis, m.shots, m.rng)
		if err != nil {
			m.err = err
			m.logger.Error("simulate", "err", err)
			return
		}
		rec := runRecord{ID: uuid.NewString(), Basis: m.basis, Run: run}
		m.runs = append(m.runs, rec)
		if len(m.runs) > maxHistory {
			m.runs = m.runs[len(m.runs)-maxHistory:]
		}
		m.logger.Info("measure", "run", rec.ID, "basis", rec.Basis, "shots", run.Shots,
			"n0", run.Counts[0], "n1", run.Counts[1])
	}
}

func nextBasis(b qubit.Basis) qubit.Basis {
	return (b + 1) % 3
}

func appendBounded(xs []int, x, limit int) []int {
	xs = append(xs, x)
	if len(xs) > limit {
		xs = xs[len(xs)-limit:]
	}

	return xs
}
