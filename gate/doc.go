// SPDX-License-Identifier: MIT

// Package gate applies 2×2 operators to single-qubit states and holds the
// named gate catalogue the demo pages offer.
//
// The catalogue is configuration data: a fixed, ordered set of Gate values
// (Hadamard, Pauli X/Y/Z, Phase S, T). Structural properties are never stored
// with a gate; IsUnitary and IsHermitian compute them from the matrix.
//
// Apply is the core contract: for a unitary matrix the output keeps
// |α|² + |β|² within numeric tolerance of the input.
package gate
