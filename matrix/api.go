// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points that construct or re-type matrices.
//   - Avoid logic duplication: each facade delegates to a canonical constructor.
//
// Policy:
//   - Facades never change the numeric policy of the underlying kernels.
//   - Specialize is the bridge from externally shaped data (files, buffers)
//     into the fixed-size fast paths.

package matrix

import "fmt"

// Identity returns I_n as a *Dense (ones on the diagonal, zeros elsewhere).
// Errors: ErrBadShape.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	data := make([]float64, n*n)
	setIdentity(n, data)
	d := newDenseUnchecked(n, n, data)

	return &d, nil
}

// Specialize returns a copy of m as the most specific type for its shape:
// *Matrix2, *Matrix3 or *Matrix4 for 2×2, 3×3 and 4×4, *Square for other
// square sizes, and *Dense for non-square shapes. m is not retained.
//
// Errors:
//   - ErrNilMatrix.
func Specialize(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSpecialize, err)
	}
	rows, cols := m.Rows(), m.Cols()
	e := m.Elements()
	if rows != cols {
		return NewDense(rows, cols, e...)
	}

	var (
		out Matrix
		err error
	)
	switch rows {
	case dim2:
		out, err = Matrix2FromElements(e)
	case dim3:
		out, err = Matrix3FromElements(e)
	case dim4:
		out, err = Matrix4FromElements(e)
	default:
		out, err = NewSquare(rows, e...)
	}
	if err != nil {
		return nil, matrixErrorf(opSpecialize, fmt.Errorf("%s: %w", shapeString(rows, cols), err))
	}

	return out, nil
}
