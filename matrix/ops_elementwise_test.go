// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestElementwiseAddSubtract(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 10, 20, 30, 40)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, sum.ToArray())

	diff, err := matrix.Subtract(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27, 36}, diff.ToArray())
	require.Equal(t, []float64{1, 2, 3, 4}, a.ToArray())

	_, err = a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, a.ToArray())
	_, err = a.Subtract(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, a.ToArray())
}

func TestElementwiseShapeGuard(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	wide := MustDense(t, 1, 4, 1, 2, 3, 4)

	_, err := a.Add(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3, 4}, a.ToArray())

	_, err = matrix.Subtract(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := MustDense(t, 1, 3, 1, 100, -5)
	b := MustDense(t, 1, 3, 1+1e-10, 100.001, -5)

	ok, err := matrix.AllClose(a, b, 1e-4, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	nan := MustDense(t, 1, 3, math.NaN(), 100, -5)
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 3, 1, 1, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
