// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quantlab/cplx"
)

// Eigen computes the eigenvalues and orthonormal eigenvectors of a normal
// 2×2 matrix in closed form.
//
// Implementation:
//   - Stage 1: validate finiteness and normality (MM† = M†M within eps).
//   - Stage 2: diagonal fast path: |m01|, |m10| ≤ eps keeps the
//     computational basis and the order (m00, m11).
//   - Stage 3: λ = tr/2 ± sqrt((tr/2)² − det) with the principal complex
//     square root, so Values[0] has the larger real part.
//   - Stage 4: each eigenvector is read off the better-conditioned row of
//     (M − λI), normalised and rotated to a canonical global phase.
//
// A normal matrix with a repeated eigenvalue is a multiple of the identity,
// so Stage 3 only runs with distinct eigenvalues and yields orthogonal
// vectors.
//
// Errors: ErrNaNInf, ErrNotNormal (wrapped with the "Eigen" tag).
// Complexity: O(1).
func (m Matrix) Eigen(opts ...Option) (Eigensystem, error) {
	o := gatherOptions(opts...)

	// Stage 1: Validate input
	if err := ValidateNormal(m, o.eps); err != nil {
		return Eigensystem{}, validatorErrorf("Eigen", err)
	}

	// Stage 2: Diagonal
	if m[0][1].IsZero(o.eps) && m[1][0].IsZero(o.eps) {
		return Eigensystem{
			Values:  [2]cplx.Scalar{m[0][0], m[1][1]},
			Vectors: [2]Vector{{cplx.One, cplx.Zero}, {cplx.Zero, cplx.One}},
		}, nil
	}

	// Stage 3: Characteristic roots
	half := m.Trace().Scale(0.5)
	disc := half.Mul(half).Sub(m.Det())
	root := cplx.FromComplex(cmplx.Sqrt(disc.Complex128()))
	l0 := half.Add(root)
	l1 := half.Sub(root)

	// Stage 4: Vectors
	return Eigensystem{
		Values:  [2]cplx.Scalar{l0, l1},
		Vectors: [2]Vector{eigenvector(m, l0, o.eps), eigenvector(m, l1, o.eps)},
	}, nil
}

// eigenvector returns the unit eigenvector of m for eigenvalue l.
// (b, λ−a) annihilates the first row of M − λI and (λ−d, c) the second;
// the row with the larger off-diagonal entry is used.
func eigenvector(m Matrix, l cplx.Scalar, eps float64) Vector {
	var v Vector
	if m[0][1].Abs() >= m[1][0].Abs() {
		v = Vector{m[0][1], l.Sub(m[0][0])}
	} else {
		v = Vector{l.Sub(m[1][1]), m[1][0]}
	}

	return canonicalPhase(normalize(v), eps)
}

// normalize scales v to unit length; the zero vector is returned unchanged.
func normalize(v Vector) Vector {
	n := math.Sqrt(v[0].Abs2() + v[1].Abs2())
	if n == 0 {
		return v
	}

	return Vector{v[0].Scale(1 / n), v[1].Scale(1 / n)}
}

// canonicalPhase multiplies v by a unit phase so that its first component
// with magnitude above eps becomes real and positive.
func canonicalPhase(v Vector, eps float64) Vector {
	for _, c := range v {
		if r := c.Abs(); r > eps {
			rot := c.Conj().Scale(1 / r)
			return Vector{v[0].Mul(rot), v[1].Mul(rot)}
		}
	}

	return v
}
