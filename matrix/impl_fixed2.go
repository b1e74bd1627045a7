// SPDX-License-Identifier: MIT

// Package matrix - Matrix2: closed-form 2×2 specialization.
//
// Storage: [m00 m10 m01 m11] column-major, i.e. NewMatrix2(a, b, c, d) holds
// column 0 = (a, b) and column 1 = (c, d).

package matrix

import (
	"math"

	"github.com/katalvlaran/lvalg/vector"
)

// Matrix2 is a 2×2 matrix. Its TransposeType is *Matrix2.
type Matrix2 struct {
	Square
}

var (
	_ Invertible[*Matrix2] = (*Matrix2)(nil)
	_ Transposer[*Matrix2] = (*Matrix2)(nil)
)

// NewMatrix2 returns the matrix with column-major elements (a, b, c, d).
func NewMatrix2(a, b, c, d float64) *Matrix2 {
	return &Matrix2{Square: newFixedSquare(dim2, []float64{a, b, c, d})}
}

// Matrix2FromElements copies a 4-element column-major buffer.
// Errors: ErrSizeMismatch.
func Matrix2FromElements(e []float64) (*Matrix2, error) {
	data, err := fixedElements(dim2, e)
	if err != nil {
		return nil, err
	}

	return &Matrix2{Square: newFixedSquare(dim2, data)}, nil
}

// Matrix2FromFloat32 widens a 4-element column-major 32-bit buffer.
func Matrix2FromFloat32(buf []float32) (*Matrix2, error) {
	data, err := fixedFloat32(dim2, buf)
	if err != nil {
		return nil, err
	}

	return &Matrix2{Square: newFixedSquare(dim2, data)}, nil
}

// Clone returns a deep copy.
func (m *Matrix2) Clone() *Matrix2 { return &Matrix2{Square: *m.Square.Clone()} }

// Copy overwrites m with src, which must be 2×2.
func (m *Matrix2) Copy(src Matrix) (*Matrix2, error) {
	if err := m.copyFrom(src); err != nil {
		return nil, err
	}

	return m, nil
}

// MultiplyScalar sets m = k·m.
func (m *Matrix2) MultiplyScalar(k float64) *Matrix2 {
	m.Dense.MultiplyScalar(k)

	return m
}

// MultiplyMatrices sets m = a × b.
//
// Behavior highlights:
//   - Closed form only when a and b are both *Matrix2; otherwise the
//     inherited generic algorithm runs (same result, slower).
//
// Errors (generic path only):
//   - ErrNilMatrix, ErrIncompatibleDimensions, ErrResultSizeMismatch.
func (m *Matrix2) MultiplyMatrices(a, b Matrix) (*Matrix2, error) {
	if a2, ok := a.(*Matrix2); ok && a2 != nil {
		if b2, ok := b.(*Matrix2); ok && b2 != nil {
			mul2(m.data, a2.data, b2.data)

			return m, nil
		}
	}
	if _, err := m.Square.MultiplyMatrices(a, b); err != nil {
		return nil, err
	}

	return m, nil
}

// Multiply sets m = m × o.
func (m *Matrix2) Multiply(o Matrix) (*Matrix2, error) { return m.MultiplyMatrices(m, o) }

// mul2 writes a×b into dst; dst may alias a or b.
func mul2(dst, a, b []float64) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	dst[0] = a0*b0 + a2*b1
	dst[1] = a1*b0 + a3*b1
	dst[2] = a0*b2 + a2*b3
	dst[3] = a1*b2 + a3*b3
}

// Determinant returns m00·m11 − m01·m10.
func (m *Matrix2) Determinant() float64 {
	return m.data[0]*m.data[3] - m.data[2]*m.data[1]
}

// Invert replaces m with m⁻¹.
// A determinant that rounds to zero is re-checked by elimination.
// Errors: ErrNotInvertible when elimination meets an exactly zero pivot; m is untouched.
func (m *Matrix2) Invert() (*Matrix2, error) {
	det := m.Determinant()
	if det == 0 {
		// a determinant that underflowed is not proof of singularity
		if err := m.Square.invertGeneric(); err != nil {
			return nil, err
		}

		return m, nil
	}
	a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
	inv := 1 / det
	m.data[0] = d * inv
	m.data[1] = -b * inv
	m.data[2] = -c * inv
	m.data[3] = a * inv

	return m, nil
}

// Transpose transposes m in place.
func (m *Matrix2) Transpose() *Matrix2 {
	m.data[1], m.data[2] = m.data[2], m.data[1]

	return m
}

// Transposed returns a new transposed *Matrix2.
func (m *Matrix2) Transposed() *Matrix2 { return m.Clone().Transpose() }

// MakeIdentity overwrites m with the identity.
func (m *Matrix2) MakeIdentity() *Matrix2 {
	m.set(1, 0, 0, 1)

	return m
}

// MakeScale overwrites m with diag(x, y).
func (m *Matrix2) MakeScale(x, y float64) *Matrix2 {
	m.set(x, 0, 0, y)

	return m
}

// MakeRotation overwrites m with a rotation by angle radians.
// A positive angle maps (1,0) to (cos θ, −sin θ) under TransformVector.
func (m *Matrix2) MakeRotation(angle float64) *Matrix2 {
	s, c := math.Sincos(angle)
	m.set(c, -s, s, c)

	return m
}

func (m *Matrix2) set(a, b, c, d float64) {
	m.data[0], m.data[1], m.data[2], m.data[3] = a, b, c, d
}

// TransformVector returns the new vector m·v; m and v are not modified.
func (m *Matrix2) TransformVector(v *vector.Vector2) *vector.Vector2 {
	x, y := v.X(), v.Y()

	return vector.NewVector2(
		m.data[0]*x+m.data[2]*y,
		m.data[1]*x+m.data[3]*y,
	)
}
