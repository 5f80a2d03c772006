// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantlab/cplx"
)

// New builds the matrix
//
//	⎡ a  b ⎤
//	⎣ c  d ⎦
func New(a, b, c, d cplx.Scalar) Matrix {
	return Matrix{{a, b}, {c, d}}
}

// Real builds a matrix with purely real entries, the form most gate tables
// are written in.
func Real(a, b, c, d float64) Matrix {
	return New(cplx.Real(a), cplx.Real(b), cplx.Real(c), cplx.Real(d))
}

// FromRows ingests untrusted row slices (e.g. a decoded gate table).
// Implementation:
//   - Stage 1: require exactly two rows of two entries (ErrBadShape).
//   - Stage 2: when NaN/Inf validation is enabled, reject non-finite entries.
//
// Errors: ErrBadShape, ErrNaNInf (wrapped with the "FromRows" tag).
// Complexity: O(1).
func FromRows(rows [][]cplx.Scalar, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)

	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return Matrix{}, validatorErrorf("FromRows", ErrBadShape)
	}

	m := New(rows[0][0], rows[0][1], rows[1][0], rows[1][1])
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return Matrix{}, validatorErrorf("FromRows", err)
		}
	}

	return m, nil
}

// At returns m[i][j], or ErrOutOfRange for indices outside [0, 1].
func (m Matrix) At(i, j int) (cplx.Scalar, error) {
	if i < 0 || i > 1 || j < 0 || j > 1 {
		return cplx.Zero, ErrOutOfRange
	}

	return m[i][j], nil
}

// Add returns m + n.
func (m Matrix) Add(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][j].Add(n[i][j])
		}
	}

	return out
}

// Sub returns m − n.
func (m Matrix) Sub(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][j].Sub(n[i][j])
		}
	}

	return out
}

// Scale multiplies every entry by the complex factor k.
func (m Matrix) Scale(k cplx.Scalar) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][j].Mul(k)
		}
	}

	return out
}

// Mul returns the matrix product m·n (apply n first, then m).
//
// Complexity: 8 complex multiplications.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0].Mul(n[0][j]).Add(m[i][1].Mul(n[1][j]))
		}
	}

	return out
}

// MulVec returns the matrix–vector product m·v:
//
//	out[0] = m00·v0 + m01·v1
//	out[1] = m10·v0 + m11·v1
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		m[0][0].Mul(v[0]).Add(m[0][1].Mul(v[1])),
		m[1][0].Mul(v[0]).Add(m[1][1].Mul(v[1])),
	}
}

// Dagger returns the conjugate transpose M†.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{m[0][0].Conj(), m[1][0].Conj()},
		{m[0][1].Conj(), m[1][1].Conj()},
	}
}

// Trace returns m00 + m11.
func (m Matrix) Trace() cplx.Scalar {
	return m[0][0].Add(m[1][1])
}

// Det returns m00·m11 − m01·m10.
func (m Matrix) Det() cplx.Scalar {
	return m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0]))
}

// Inverse returns M⁻¹ = adj(M)/det(M).
// Errors: ErrSingular when |det| ≤ DefaultEpsilon (or the WithEpsilon value).
func (m Matrix) Inverse(opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)

	det := m.Det()
	d2 := det.Abs2()
	if det.Abs() <= o.eps {
		return Matrix{}, ErrSingular
	}
	// 1/det = conj(det)/|det|²
	inv := det.Conj().Scale(1 / d2)
	adj := Matrix{
		{m[1][1], m[0][1].Neg()},
		{m[1][0].Neg(), m[0][0]},
	}

	return adj.Scale(inv), nil
}

// Commutator returns [A, B] = AB − BA.
func Commutator(a, b Matrix) Matrix {
	return a.Mul(b).Sub(b.Mul(a))
}

// AntiCommutator returns {A, B} = AB + BA.
func AntiCommutator(a, b Matrix) Matrix {
	return a.Mul(b).Add(b.Mul(a))
}

// Commutes reports whether [A, B] is the zero matrix within eps.
func Commutes(a, b Matrix, eps float64) bool {
	return Commutator(a, b).IsZero(eps)
}

// ApproxEqual reports whether every entry of a and b agrees within eps.
func ApproxEqual(a, b Matrix, eps float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !cplx.ApproxEqual(a[i][j], b[i][j], eps) {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every entry is within eps of zero.
func (m Matrix) IsZero(eps float64) bool {
	return ApproxEqual(m, Matrix{}, eps)
}

// IsUnitary reports whether M†M = I within eps (entrywise).
// Computed from the entries; nothing about a matrix is taken on trust.
func (m Matrix) IsUnitary(eps float64) bool {
	return ApproxEqual(m.Dagger().Mul(m), Identity, eps)
}

// IsHermitian reports whether M = M† within eps (entrywise).
func (m Matrix) IsHermitian(eps float64) bool {
	return ApproxEqual(m, m.Dagger(), eps)
}

// IsNormal reports whether MM† = M†M within eps. Unitary and Hermitian
// matrices are always normal.
func (m Matrix) IsNormal(eps float64) bool {
	return ApproxEqual(m.Mul(m.Dagger()), m.Dagger().Mul(m), eps)
}

// FrobeniusNorm returns sqrt(Σ|m_ij|²).
func (m Matrix) FrobeniusNorm() float64 {
	var s float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			s += m[i][j].Abs2()
		}
	}

	return math.Sqrt(s)
}

// String renders m as "[[a b] [c d]]" with full precision for debugging.
func (m Matrix) String() string {
	return fmt.Sprintf("[[%v %v] [%v %v]]", m[0][0], m[0][1], m[1][0], m[1][1])
}
