// SPDX-License-Identifier: MIT

// Package matrix - Matrix4: closed-form 4×4 specialization.
//
// Purpose:
//   - 3D homogeneous transforms: scale, axis-angle rotation, translation.
//   - 2×2 sub-determinant (b00..b11) determinant and inverse; the same
//     twelve products feed both, so Invert costs one pass.

package matrix

import (
	"github.com/katalvlaran/lvalg/vector"
)

// Matrix4 is a 4×4 matrix. Its TransposeType is *Matrix4.
type Matrix4 struct {
	Square
}

var (
	_ Invertible[*Matrix4] = (*Matrix4)(nil)
	_ Transposer[*Matrix4] = (*Matrix4)(nil)
)

// NewMatrix4 returns the matrix with the given sixteen column-major elements.
func NewMatrix4(
	a0, a1, a2, a3,
	a4, a5, a6, a7,
	a8, a9, a10, a11,
	a12, a13, a14, a15 float64,
) *Matrix4 {
	return &Matrix4{Square: newFixedSquare(dim4, []float64{
		a0, a1, a2, a3,
		a4, a5, a6, a7,
		a8, a9, a10, a11,
		a12, a13, a14, a15,
	})}
}

// Matrix4FromElements copies a 16-element column-major buffer.
// Errors: ErrSizeMismatch.
func Matrix4FromElements(e []float64) (*Matrix4, error) {
	data, err := fixedElements(dim4, e)
	if err != nil {
		return nil, err
	}

	return &Matrix4{Square: newFixedSquare(dim4, data)}, nil
}

// Matrix4FromFloat32 widens a 16-element column-major 32-bit buffer, e.g. a
// uniform read back from a GPU.
func Matrix4FromFloat32(buf []float32) (*Matrix4, error) {
	data, err := fixedFloat32(dim4, buf)
	if err != nil {
		return nil, err
	}

	return &Matrix4{Square: newFixedSquare(dim4, data)}, nil
}

// Clone returns a deep copy.
func (m *Matrix4) Clone() *Matrix4 { return &Matrix4{Square: *m.Square.Clone()} }

// Copy overwrites m with src, which must be 4×4.
func (m *Matrix4) Copy(src Matrix) (*Matrix4, error) {
	if err := m.copyFrom(src); err != nil {
		return nil, err
	}

	return m, nil
}

// MultiplyScalar sets m = k·m.
func (m *Matrix4) MultiplyScalar(k float64) *Matrix4 {
	m.Dense.MultiplyScalar(k)

	return m
}

// MultiplyMatrices sets m = a × b, in closed form when both operands are
// *Matrix4 and through the inherited generic algorithm otherwise.
func (m *Matrix4) MultiplyMatrices(a, b Matrix) (*Matrix4, error) {
	if a4, ok := a.(*Matrix4); ok && a4 != nil {
		if b4, ok := b.(*Matrix4); ok && b4 != nil {
			mul4(m.data, a4.data, b4.data)

			return m, nil
		}
	}
	if _, err := m.Square.MultiplyMatrices(a, b); err != nil {
		return nil, err
	}

	return m, nil
}

// Multiply sets m = m × o.
func (m *Matrix4) Multiply(o Matrix) (*Matrix4, error) { return m.MultiplyMatrices(m, o) }

// mul4 writes a×b into dst via a stack scratch; dst may alias a or b.
func mul4(dst, a, b []float64) {
	var out [dim4 * dim4]float64
	for c := 0; c < dim4; c++ {
		b0, b1, b2, b3 := b[c*dim4], b[c*dim4+1], b[c*dim4+2], b[c*dim4+3]
		for r := 0; r < dim4; r++ {
			out[c*dim4+r] = a[r]*b0 + a[dim4+r]*b1 + a[2*dim4+r]*b2 + a[3*dim4+r]*b3
		}
	}
	copy(dst, out[:])
}

// minors4 holds the twelve 2×2 sub-determinants of a 4×4 buffer.
type minors4 [12]float64

func newMinors4(a []float64) minors4 {
	return minors4{
		a[0]*a[5] - a[1]*a[4],
		a[0]*a[6] - a[2]*a[4],
		a[0]*a[7] - a[3]*a[4],
		a[1]*a[6] - a[2]*a[5],
		a[1]*a[7] - a[3]*a[5],
		a[2]*a[7] - a[3]*a[6],
		a[8]*a[13] - a[9]*a[12],
		a[8]*a[14] - a[10]*a[12],
		a[8]*a[15] - a[11]*a[12],
		a[9]*a[14] - a[10]*a[13],
		a[9]*a[15] - a[11]*a[13],
		a[10]*a[15] - a[11]*a[14],
	}
}

func (b *minors4) det() float64 {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Determinant returns det(m) (Laplace expansion over 2×2 minors).
func (m *Matrix4) Determinant() float64 {
	b := newMinors4(m.data)

	return b.det()
}

// Invert replaces m with m⁻¹.
// A determinant that rounds to zero is re-checked by elimination.
// Errors: ErrNotInvertible when elimination meets an exactly zero pivot; m is untouched.
func (m *Matrix4) Invert() (*Matrix4, error) {
	b := newMinors4(m.data)
	det := b.det()
	if det == 0 {
		// a determinant that underflowed is not proof of singularity
		if err := m.Square.invertGeneric(); err != nil {
			return nil, err
		}

		return m, nil
	}
	inv := 1 / det

	var a [dim4 * dim4]float64
	copy(a[:], m.data)
	o := m.data

	o[0] = (a[5]*b[11] - a[6]*b[10] + a[7]*b[9]) * inv
	o[1] = (a[2]*b[10] - a[1]*b[11] - a[3]*b[9]) * inv
	o[2] = (a[13]*b[5] - a[14]*b[4] + a[15]*b[3]) * inv
	o[3] = (a[10]*b[4] - a[9]*b[5] - a[11]*b[3]) * inv
	o[4] = (a[6]*b[8] - a[4]*b[11] - a[7]*b[7]) * inv
	o[5] = (a[0]*b[11] - a[2]*b[8] + a[3]*b[7]) * inv
	o[6] = (a[14]*b[2] - a[12]*b[5] - a[15]*b[1]) * inv
	o[7] = (a[8]*b[5] - a[10]*b[2] + a[11]*b[1]) * inv
	o[8] = (a[4]*b[10] - a[5]*b[8] + a[7]*b[6]) * inv
	o[9] = (a[1]*b[8] - a[0]*b[10] - a[3]*b[6]) * inv
	o[10] = (a[12]*b[4] - a[13]*b[2] + a[15]*b[0]) * inv
	o[11] = (a[9]*b[2] - a[8]*b[4] - a[11]*b[0]) * inv
	o[12] = (a[5]*b[7] - a[4]*b[9] - a[6]*b[6]) * inv
	o[13] = (a[0]*b[9] - a[1]*b[7] + a[2]*b[6]) * inv
	o[14] = (a[13]*b[1] - a[12]*b[3] - a[14]*b[0]) * inv
	o[15] = (a[8]*b[3] - a[9]*b[1] + a[10]*b[0]) * inv

	return m, nil
}

// Transpose transposes m in place.
func (m *Matrix4) Transpose() *Matrix4 {
	transposeSquareInPlace(dim4, m.data)

	return m
}

// Transposed returns a new transposed *Matrix4.
func (m *Matrix4) Transposed() *Matrix4 { return m.Clone().Transpose() }

// MakeIdentity overwrites m with the identity.
func (m *Matrix4) MakeIdentity() *Matrix4 {
	setIdentity(dim4, m.data)

	return m
}

// MakeScale overwrites m with diag(x, y, z, 1).
func (m *Matrix4) MakeScale(x, y, z float64) *Matrix4 {
	setIdentity(dim4, m.data)
	m.data[0], m.data[5], m.data[10] = x, y, z

	return m
}

// MakeRotation overwrites m with a homogeneous rotation of angle radians
// about axis; the rotation block follows Matrix3.MakeRotation.
// A zero-length axis yields the identity.
func (m *Matrix4) MakeRotation(angle float64, axis *vector.Vector3) *Matrix4 {
	setIdentity(dim4, m.data)
	rows, ok := rotationRows(angle, axis)
	if !ok {
		return m
	}
	for i := 0; i < dim3; i++ {
		copy(m.data[i*dim4:i*dim4+dim3], rows[i][:])
	}

	return m
}

// MakeTranslation overwrites m with the translation by (tx, ty, tz):
// column 3 holds (tx, ty, tz, 1).
func (m *Matrix4) MakeTranslation(tx, ty, tz float64) *Matrix4 {
	setIdentity(dim4, m.data)
	m.data[12], m.data[13], m.data[14] = tx, ty, tz

	return m
}

// TransformVector returns the new vector m·v; m and v are not modified.
func (m *Matrix4) TransformVector(v *vector.Vector4) *vector.Vector4 {
	a := m.data
	x, y, z, w := v.X(), v.Y(), v.Z(), v.W()

	return vector.NewVector4(
		a[0]*x+a[4]*y+a[8]*z+a[12]*w,
		a[1]*x+a[5]*y+a[9]*z+a[13]*w,
		a[2]*x+a[6]*y+a[10]*z+a[14]*w,
		a[3]*x+a[7]*y+a[11]*z+a[15]*w,
	)
}

// TransformPoint applies m to the point p (implicit w = 1) and divides by
// the resulting w. A zero w leaves the coordinates undivided.
func (m *Matrix4) TransformPoint(p *vector.Vector3) *vector.Vector3 {
	r := m.TransformVector(vector.NewVector4(p.X(), p.Y(), p.Z(), 1))
	w := r.W()
	if w == 0 || w == 1 {
		return vector.NewVector3(r.X(), r.Y(), r.Z())
	}

	return vector.NewVector3(r.X()/w, r.Y()/w, r.Z()/w)
}
