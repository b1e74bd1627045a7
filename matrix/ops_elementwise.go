// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise sum and difference, mutating (Dense.Add/Subtract) and
//     static (Add/Subtract), plus the AllClose tolerance comparison.
//   - Operate on the flat column-major buffers directly; shapes are equal, so
//     index i means the same (col,row) in both operands.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops through vek's in-place kernels.
//   - Static forms allocate exactly one output Dense; O(r*c) time and space.

package matrix

import (
	"math"

	"github.com/viterin/vek"
)

// ewValidate checks both operands exist and share a shape.
func ewValidate(tag string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Add sets m = m + o element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is untouched on error.
func (m *Dense) Add(o Matrix) (*Dense, error) {
	if err := ewValidate(opAdd, m, o); err != nil {
		return nil, err
	}
	vek.Add_Inplace(m.data, o.Elements())

	return m, nil
}

// Subtract sets m = m - o element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is untouched on error.
func (m *Dense) Subtract(o Matrix) (*Dense, error) {
	if err := ewValidate(opSubtract, m, o); err != nil {
		return nil, err
	}
	vek.Sub_Inplace(m.data, o.Elements())

	return m, nil
}

// Add returns a new Dense holding a + b; neither operand is mutated.
// Time: O(r*c). Space: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ewValidate(opAdd, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.Elements()))
	copy(out, a.Elements())
	vek.Add_Inplace(out, b.Elements())
	d := newDenseUnchecked(a.Rows(), a.Cols(), out)

	return &d, nil
}

// Subtract returns a new Dense holding a - b; neither operand is mutated.
func Subtract(a, b Matrix) (*Dense, error) {
	if err := ewValidate(opSubtract, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.Elements()))
	copy(out, a.Elements())
	vek.Sub_Inplace(out, b.Elements())
	d := newDenseUnchecked(a.Rows(), a.Cols(), out)

	return &d, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - Any NaN element fails the comparison.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ewValidate(opAllClose, a, b); err != nil {
		return false, err
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ae, be := a.Elements(), b.Elements()
	var diff float64
	for i := range ae {
		diff = math.Abs(ae[i] - be[i])
		if !(diff <= atol+rtol*math.Abs(be[i])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
