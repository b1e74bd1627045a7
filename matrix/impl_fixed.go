// SPDX-License-Identifier: MIT

// Package matrix - shared plumbing of the fixed-size specializations.
//
// Purpose:
//   - Build the embedded Square of Matrix2/3/4 from a validated buffer.
//   - Hold the rotation-axis helper shared by Matrix3 and Matrix4.
//
// Fast-path rule (all of impl_fixed2/3/4.go):
//   - A closed-form kernel runs only when BOTH operands are the receiver's own
//     concrete type (checked with a type assertion, nil pointers excluded).
//   - Anything else, including a *Square of the same size or a wrapper that
//     hides its concrete type, goes through the inherited Square path.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvalg/vector"
	"github.com/viterin/vek"
)

// Fixed dimensions of the specializations.
const (
	dim2 = 2
	dim3 = 3
	dim4 = 4
)

// newFixedSquare wraps an owned n×n buffer into a Square.
func newFixedSquare(n int, data []float64) Square {
	return Square{Dense: newDenseUnchecked(n, n, data)}
}

// fixedElements validates and copies an n×n column-major buffer.
// Errors: ErrSizeMismatch.
func fixedElements(n int, e []float64) ([]float64, error) {
	if err := ValidateElements(n, n, len(e)); err != nil {
		return nil, matrixErrorf(opFromElements, err)
	}
	data := make([]float64, len(e))
	copy(data, e)

	return data, nil
}

// fixedFloat32 validates and widens an n×n column-major 32-bit buffer.
func fixedFloat32(n int, buf []float32) ([]float64, error) {
	if err := ValidateElements(n, n, len(buf)); err != nil {
		return nil, matrixErrorf(opFromElements, err)
	}

	return vek.FromFloat32(buf), nil
}

// rotationRows returns the 3×3 axis-angle rotation for a unit-normalized axis,
// row by row, and false when the axis has zero length.
//
// Layout note:
//   - Callers store these rows as consecutive column-major columns, so the
//     stored matrix is the transpose of the textbook right-handed rotation.
//     About +Z this gives (1,0,0) -> (cos θ, -sin θ, 0), the same sign
//     convention as Matrix2.MakeRotation.
func rotationRows(angle float64, axis *vector.Vector3) ([3][3]float64, bool) {
	var rows [3][3]float64
	l := axis.Length()
	if l == 0 || math.IsNaN(l) {
		return rows, false
	}
	x, y, z := axis.X()/l, axis.Y()/l, axis.Z()/l
	s, c := math.Sincos(angle)
	t := 1 - c

	rows[0] = [3]float64{t*x*x + c, t*x*y - s*z, t*x*z + s*y}
	rows[1] = [3]float64{t*x*y + s*z, t*y*y + c, t*y*z - s*x}
	rows[2] = [3]float64{t*x*z - s*y, t*y*z + s*x, t*z*z + c}

	return rows, true
}
