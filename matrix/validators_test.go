// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateShapeAndElements(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(1, 1))
	require.ErrorIs(t, matrix.ValidateShape(0, 1), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateShape(1, -3), matrix.ErrBadShape)

	require.NoError(t, matrix.ValidateElements(2, 3, 6))
	err := matrix.ValidateElements(2, 3, 5)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
	require.Contains(t, err.Error(), "2x3")
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 1, 1, 2, 3)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))

	err := matrix.ValidateMulCompatible(b, a)
	require.ErrorIs(t, err, matrix.ErrIncompatibleDimensions)
	require.Contains(t, err.Error(), "3x1 * 2x3")

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
}

func TestValidateIndexAndSquare(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.NoError(t, matrix.ValidateIndex(m, 2, 1))
	require.ErrorIs(t, matrix.ValidateIndex(m, 3, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(m, 0, 2), matrix.ErrOutOfRange)

	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(matrix.NewMatrix2(1, 0, 0, 1)))
}

func TestValidateResultAndVec(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.NoError(t, matrix.ValidateResultShape(m, 2, 3))
	require.ErrorIs(t, matrix.ValidateResultShape(m, 3, 2), matrix.ErrResultSizeMismatch)

	require.NoError(t, matrix.ValidateVecLen(m, 3))
	require.ErrorIs(t, matrix.ValidateVecLen(m, 2), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateSameShape(m, m.Transposed()), matrix.ErrDimensionMismatch)
}

// TestSentinelsAreDistinct guards against accidental aliasing of sentinels.
func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		matrix.ErrBadShape, matrix.ErrSizeMismatch, matrix.ErrIncompatibleDimensions,
		matrix.ErrResultSizeMismatch, matrix.ErrNotInvertible, matrix.ErrOutOfRange,
		matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrNilMatrix,
	}
	for i := range all {
		for j := range all {
			if i != j {
				require.False(t, errors.Is(all[i], all[j]), "%v vs %v", all[i], all[j])
			}
		}
	}
}
