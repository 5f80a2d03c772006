// Package quantlab is a small numeric kernel for single- and two-qubit
// teaching demos: amplitudes, gates, measurement and entanglement, computed
// in closed form and rendered as reproducible strings.
//
// 🚀 What is quantlab?
//
//	A set of pure, synchronous packages that every demo page can share
//	instead of re-deriving the same formulas:
//		• cplx:     the complex Scalar used for every amplitude
//		• matrix:   2×2 complex operators, structural checks, eigen decomposition
//		• qubit:    single-qubit State, Born rule, Bloch angles, measurement
//		• gate:     Apply plus the named catalogue (H, X, Y, Z, S, T)
//		• twoqubit: tensor products, Bell states, correlations, concurrence
//		• format:   fixed-point rendering of amplitudes and state equations
//
// ✨ Why a shared kernel?
//
//   - One tolerance policy: 1e-2 for "normalised" and "eigenstate",
//     1e-9 for pure-math checks
//   - Computed properties: unitary and Hermitian flags come from the
//     entries, never from a table
//   - Injected randomness: measurement takes a RandomSource, so every
//     collapse is reproducible in tests
//
// Under the hood, the packages depend leaves first:
//
//	cplx ← matrix ← qubit ← gate
//	               qubit ← twoqubit
//	      format uses all of the above
//
// The terminal explorer in cmd/qlab drives the kernel from the keyboard:
//
//	go run ./cmd/qlab -page measurement -seed 42
package quantlab
