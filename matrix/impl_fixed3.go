// SPDX-License-Identifier: MIT

// Package matrix - Matrix3: closed-form 3×3 specialization.
//
// Purpose:
//   - 3D linear maps (scale, axis-angle rotation) and 2D homogeneous
//     transforms (MakeTranslation).
//   - Cofactor determinant and adjugate inverse without elimination.

package matrix

import (
	"github.com/katalvlaran/lvalg/vector"
)

// Matrix3 is a 3×3 matrix. Its TransposeType is *Matrix3.
type Matrix3 struct {
	Square
}

var (
	_ Invertible[*Matrix3] = (*Matrix3)(nil)
	_ Transposer[*Matrix3] = (*Matrix3)(nil)
)

// NewMatrix3 returns the matrix with the given nine column-major elements.
func NewMatrix3(a0, a1, a2, a3, a4, a5, a6, a7, a8 float64) *Matrix3 {
	return &Matrix3{Square: newFixedSquare(dim3, []float64{a0, a1, a2, a3, a4, a5, a6, a7, a8})}
}

// Matrix3FromElements copies a 9-element column-major buffer.
// Errors: ErrSizeMismatch.
func Matrix3FromElements(e []float64) (*Matrix3, error) {
	data, err := fixedElements(dim3, e)
	if err != nil {
		return nil, err
	}

	return &Matrix3{Square: newFixedSquare(dim3, data)}, nil
}

// Matrix3FromFloat32 widens a 9-element column-major 32-bit buffer.
func Matrix3FromFloat32(buf []float32) (*Matrix3, error) {
	data, err := fixedFloat32(dim3, buf)
	if err != nil {
		return nil, err
	}

	return &Matrix3{Square: newFixedSquare(dim3, data)}, nil
}

// Clone returns a deep copy.
func (m *Matrix3) Clone() *Matrix3 { return &Matrix3{Square: *m.Square.Clone()} }

// Copy overwrites m with src, which must be 3×3.
func (m *Matrix3) Copy(src Matrix) (*Matrix3, error) {
	if err := m.copyFrom(src); err != nil {
		return nil, err
	}

	return m, nil
}

// MultiplyScalar sets m = k·m.
func (m *Matrix3) MultiplyScalar(k float64) *Matrix3 {
	m.Dense.MultiplyScalar(k)

	return m
}

// MultiplyMatrices sets m = a × b, in closed form when both operands are
// *Matrix3 and through the inherited generic algorithm otherwise.
func (m *Matrix3) MultiplyMatrices(a, b Matrix) (*Matrix3, error) {
	if a3, ok := a.(*Matrix3); ok && a3 != nil {
		if b3, ok := b.(*Matrix3); ok && b3 != nil {
			mul3(m.data, a3.data, b3.data)

			return m, nil
		}
	}
	if _, err := m.Square.MultiplyMatrices(a, b); err != nil {
		return nil, err
	}

	return m, nil
}

// Multiply sets m = m × o.
func (m *Matrix3) Multiply(o Matrix) (*Matrix3, error) { return m.MultiplyMatrices(m, o) }

// mul3 writes a×b into dst via a stack scratch; dst may alias a or b.
func mul3(dst, a, b []float64) {
	var out [dim3 * dim3]float64
	for c := 0; c < dim3; c++ {
		b0, b1, b2 := b[c*dim3], b[c*dim3+1], b[c*dim3+2]
		for r := 0; r < dim3; r++ {
			out[c*dim3+r] = a[r]*b0 + a[dim3+r]*b1 + a[2*dim3+r]*b2
		}
	}
	copy(dst, out[:])
}

// Determinant returns det(m) by cofactor expansion along the first column.
func (m *Matrix3) Determinant() float64 {
	a := m.data

	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Invert replaces m with m⁻¹ via the adjugate.
// A determinant that rounds to zero is re-checked by elimination.
// Errors: ErrNotInvertible when elimination meets an exactly zero pivot; m is untouched.
func (m *Matrix3) Invert() (*Matrix3, error) {
	a := m.data
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 {
		// a determinant that underflowed is not proof of singularity
		if err := m.Square.invertGeneric(); err != nil {
			return nil, err
		}

		return m, nil
	}
	inv := 1 / det

	a[0] = b01 * inv
	a[1] = (-a22*a01 + a02*a21) * inv
	a[2] = (a12*a01 - a02*a11) * inv
	a[3] = b11 * inv
	a[4] = (a22*a00 - a02*a20) * inv
	a[5] = (-a12*a00 + a02*a10) * inv
	a[6] = b21 * inv
	a[7] = (-a21*a00 + a01*a20) * inv
	a[8] = (a11*a00 - a01*a10) * inv

	return m, nil
}

// Transpose transposes m in place.
func (m *Matrix3) Transpose() *Matrix3 {
	transposeSquareInPlace(dim3, m.data)

	return m
}

// Transposed returns a new transposed *Matrix3.
func (m *Matrix3) Transposed() *Matrix3 { return m.Clone().Transpose() }

// MakeIdentity overwrites m with the identity.
func (m *Matrix3) MakeIdentity() *Matrix3 {
	setIdentity(dim3, m.data)

	return m
}

// MakeScale overwrites m with diag(x, y, z).
func (m *Matrix3) MakeScale(x, y, z float64) *Matrix3 {
	setIdentity(dim3, m.data)
	m.data[0], m.data[4], m.data[8] = x, y, z

	return m
}

// MakeRotation overwrites m with a rotation of angle radians about axis
// (any non-zero length). About +Z, (1,0,0) maps to (cos θ, −sin θ, 0).
// A zero-length axis yields the identity.
func (m *Matrix3) MakeRotation(angle float64, axis *vector.Vector3) *Matrix3 {
	rows, ok := rotationRows(angle, axis)
	if !ok {
		return m.MakeIdentity()
	}
	for i := 0; i < dim3; i++ {
		copy(m.data[i*dim3:(i+1)*dim3], rows[i][:])
	}

	return m
}

// MakeTranslation overwrites m with the 2D homogeneous translation by
// (tx, ty): column 2 holds (tx, ty, 1).
func (m *Matrix3) MakeTranslation(tx, ty float64) *Matrix3 {
	setIdentity(dim3, m.data)
	m.data[6], m.data[7] = tx, ty

	return m
}

// TransformVector returns the new vector m·v; m and v are not modified.
func (m *Matrix3) TransformVector(v *vector.Vector3) *vector.Vector3 {
	a := m.data
	x, y, z := v.X(), v.Y(), v.Z()

	return vector.NewVector3(
		a[0]*x+a[3]*y+a[6]*z,
		a[1]*x+a[4]*y+a[7]*z,
		a[2]*x+a[5]*y+a[8]*z,
	)
}
