// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidShape ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseSizeMismatch ensures the element count must equal rows*cols.
func TestNewDenseSizeMismatch(t *testing.T) {
	_, err := matrix.NewDense(2, 2, 1, 2, 3)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
	require.Contains(t, err.Error(), "got 3 elements, want 4")

	_, err = matrix.NewSquare(3, 1, 2, 3, 4)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

// TestNewDenseCopiesInput verifies the constructor does not alias the caller's slice.
func TestNewDenseCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m := MustDense(t, 2, 2, src...)
	src[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestColumnMajorLayout pins element (col,row) at index col*rows + row.
func TestColumnMajorLayout(t *testing.T) {
	// 2 rows × 3 cols; columns are (1,2), (3,4), (5,6)
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.Equal(t, "[1, 3, 5]\n[2, 4, 6]\n", m.String())
}

// TestAtSetOutOfRange ensures At() and Set() reject invalid indices without clamping.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.ToArray())
}

// TestSetStoresNonFinite validates that NaN and ±Inf are stored as given.
func TestSetStoresNonFinite(t *testing.T) {
	m, err := matrix.Zeros(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, math.NaN()))
	require.NoError(t, m.Set(1, 0, math.Inf(-1)))

	v, _ := m.At(0, 1)
	require.True(t, math.IsNaN(v))
	v, _ = m.At(1, 0)
	require.True(t, math.IsInf(v, -1))
}

// TestColumnView checks that a column view reads and writes the base storage.
func TestColumnView(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())

	v, err := col.At(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	require.NoError(t, col.Set(1, 40))
	v, _ = m.At(1, 1)
	require.Equal(t, 40.0, v)

	_, err = col.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestElementsIsView versus ToArray copy semantics.
func TestElementsIsView(t *testing.T) {
	m := MustDense(t, 1, 2, 1, 2)

	arr := m.ToArray()
	arr[0] = 7
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	m.Elements()[0] = 7
	v, _ = m.At(0, 0)
	require.Equal(t, 7.0, v)
}

// TestFloat32RoundTrip checks the GPU buffer handoff in both directions.
func TestFloat32RoundTrip(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 0.5, -2, 4)

	buf := m.ToFloat32()
	require.Equal(t, []float32{1, 0.5, -2, 4}, buf)

	back, err := matrix.DenseFromFloat32(2, 2, buf)
	require.NoError(t, err)
	require.True(t, back.Equals(m))

	_, err = matrix.DenseFromFloat32(2, 2, buf[:3])
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

// TestCloneAndCopy verifies deep copy and same-shape overwrite.
func TestCloneAndCopy(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	dst, err := matrix.Zeros(2, 2)
	require.NoError(t, err)
	_, err = dst.Copy(m)
	require.NoError(t, err)
	require.True(t, dst.Equals(m))

	wrong, err := matrix.Zeros(3, 1)
	require.NoError(t, err)
	_, err = wrong.Copy(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = dst.Copy(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEqualsSemantics covers shape, NaN and tolerance behavior.
func TestEqualsSemantics(t *testing.T) {
	a := MustDense(t, 2, 1, 1, 2)
	require.False(t, a.Equals(MustDense(t, 1, 2, 1, 2)))
	require.False(t, a.Equals(nil))

	nan := MustDense(t, 1, 1, math.NaN())
	require.False(t, nan.Equals(nan))

	b := MustDense(t, 2, 1, 1+1e-12, 2)
	require.False(t, a.Equals(b))
	require.True(t, a.EqualsEpsilon(b, 1e-9))
	require.False(t, a.EqualsEpsilon(b, 0))
}

// TestDenseMultiplyScalar scales every element in place.
func TestDenseMultiplyScalar(t *testing.T) {
	m := MustDense(t, 1, 3, 1, -2, 3)
	require.Same(t, m, m.MultiplyScalar(2))
	require.Equal(t, []float64{2, -4, 6}, m.ToArray())
}

// TestDenseTransposed swaps the shape and never mutates the source.
func TestDenseTransposed(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transposed()

	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	for c := 0; c < 3; c++ {
		for r := 0; r < 2; r++ {
			want, _ := m.At(c, r)
			got, err := tr.At(r, c)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.ToArray())
}

// TestDenseMultiplyMatrices covers the rectangular product and its guards.
func TestDenseMultiplyMatrices(t *testing.T) {
	// a: 2×3, b: 3×2
	a := MustDense(t, 2, 3, 1, 4, 2, 5, 3, 6)
	b := MustDense(t, 3, 2, 7, 9, 11, 8, 10, 12)

	dst, err := matrix.Zeros(2, 2)
	require.NoError(t, err)
	out, err := dst.MultiplyMatrices(a, b)
	require.NoError(t, err)
	require.Same(t, dst, out)
	// rows of a: (1,2,3), (4,5,6); cols of b: (7,9,11), (8,10,12)
	require.Equal(t, []float64{58, 139, 64, 154}, dst.ToArray())

	t.Run("incompatible", func(t *testing.T) {
		before := dst.ToArray()
		_, err := dst.MultiplyMatrices(a, a)
		require.ErrorIs(t, err, matrix.ErrIncompatibleDimensions)
		require.Contains(t, err.Error(), "2x3 * 2x3")
		require.Equal(t, before, dst.ToArray())
	})

	t.Run("result shape", func(t *testing.T) {
		small, err := matrix.Zeros(3, 3)
		require.NoError(t, err)
		_, err = small.MultiplyMatrices(a, b)
		require.ErrorIs(t, err, matrix.ErrResultSizeMismatch)
		require.Equal(t, make([]float64, 9), small.ToArray())
	})

	t.Run("nil operand", func(t *testing.T) {
		_, err := dst.MultiplyMatrices(nil, b)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestDenseMultiplyAliased checks m = m × m through the scratch buffer.
func TestDenseMultiplyAliased(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 1, 0, 1)
	_, err := m.Multiply(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 0, 1}, m.ToArray())
}

// TestDenseTransformVector is m·v with the product's row/column convention.
func TestDenseTransformVector(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 4, 2, 5, 3, 6)
	v := mustVec(t, 1, 0, -1)

	out, err := m.TransformVector(v)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, out.ToArray())
	require.Equal(t, []float64{1, 0, -1}, v.ToArray())

	_, err = m.TransformVector(mustVec(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNaNPropagatesThroughProduct makes sure no zero-skipping hides a NaN or Inf.
func TestNaNPropagatesThroughProduct(t *testing.T) {
	a := MustDense(t, 2, 2, math.NaN(), 0, 0, 1)
	b := MustDense(t, 2, 2, 0, 0, 0, 1)
	out, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	v, _ := out.At(0, 0)
	require.True(t, math.IsNaN(v))

	inf := MustDense(t, 1, 1, math.Inf(1))
	zero := MustDense(t, 1, 1, 0)
	out, err = matrix.Multiply(inf, zero)
	require.NoError(t, err)
	v, _ = out.At(0, 0)
	require.True(t, math.IsNaN(v))
}
