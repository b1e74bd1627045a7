// SPDX-License-Identifier: MIT
// Package matrix provides the generic linear-algebra kernels and the static
// (non-mutating) half of the dual API.
//
// Purpose:
//   - Own the size-agnostic product kernel every type falls back to.
//   - Expose static Multiply/Transpose/Inverse/Determinant that never mutate
//     their arguments (copy-on-entry) and return the operand's TransposeType.
//
// Notes:
//   - The generic kernel reads operands through the Matrix interface (At), so
//     it is correct for any implementation, including test doubles that hide
//     their concrete type. Fixed-size fast paths live in impl_fixed*.go.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalg/matrix/ops"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// mulGeneric computes a × b into a fresh column-major buffer of shape
// a.Rows()×b.Cols(). Compatibility must already be validated.
//
// Implementation:
//   - Fixed c→r→k loop order: result[c][r] = Σ_k a[k][r] * b[c][k]
//     (column index first, matching At(col,row)).
//
// Behavior highlights:
//   - Operands are read-only; aliasing the destination with either operand is
//     safe because the result goes to a new buffer.
//   - NaN/±Inf propagate per IEEE-754; no zero-skipping (0·Inf must yield NaN).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func mulGeneric(a, b Matrix) ([]float64, error) {
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, rows*cols)

	var (
		c, r, k int
		av, bv  float64
		sum     float64
		err     error
	)
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(k, r); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", k, r, err)
				}
				if bv, err = b.At(c, k); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", c, k, err)
				}
				sum += av * bv
			}
			out[c*rows+r] = sum
		}
	}

	return out, nil
}

// Multiply returns a new Dense holding a × b; neither operand is mutated.
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleDimensions (message names both shapes).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	out, err := mulGeneric(a, b)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	d := newDenseUnchecked(a.Rows(), b.Cols(), out)

	return &d, nil
}

// Transpose returns a new value of m's TransposeType with
// result[i][j] = m[j][i]; m is not mutated.
//
//	t := matrix.Transpose(m4) // t is a *Matrix4
//	d := matrix.Transpose(rect) // d is a *Dense with swapped shape
func Transpose[M Transposer[M]](m M) M {
	return m.Transposed()
}

// Inverse returns a new inverted copy of m, of m's own type; m is not mutated.
// Errors: ErrNotInvertible (exactly zero determinant).
func Inverse[M Invertible[M]](m M) (M, error) {
	out := m.Clone()
	if _, err := out.Invert(); err != nil {
		var zero M
		return zero, err
	}

	return out, nil
}

// GetInverse is an alias of Inverse.
func GetInverse[M Invertible[M]](m M) (M, error) { return Inverse(m) }

// Determinant returns det(m) for any square Matrix.
// Types with their own Determinant method (closed-form or generic) are
// dispatched to it; any other square implementation goes through the
// elimination kernel on a copy of its elements.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if d, ok := m.(determinanter); ok {
		return d.Determinant(), nil
	}
	det, err := ops.Determinant(m.Rows(), m.Elements())
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}
