// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat column-major buffer with the explicit index formula col*rows + row.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy column views (ColumnView), the m[col][row] access path.
//   - Own the generic product kernel used by every type as its fallback path.
//
// Complexity quicksheet:
//   - NewDense/Zeros: O(r*c); At/Set: O(1); Clone: O(r*c); Column: O(1);
//     MultiplyMatrices: O(r*n*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvalg/vector"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, col, row, err)
}

// Dense is a generic, possibly non-square, column-major matrix.
//   - r,c hold dimensions (rows, cols), immutable after construction.
//   - data is a flat buffer of length r*c; element (col, row) lives at col*r + row.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous column-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix             = (*Dense)(nil)
	_ Transposer[*Dense] = (*Dense)(nil)
	_ fmt.Stringer       = (*Dense)(nil)
)

// NewDense creates a rows×cols matrix holding a copy of elements (column-major).
//
// Implementation:
//   - Stage 1: validate rows>0, cols>0 and len(elements) == rows*cols.
//   - Stage 2: allocate fresh storage and copy.
//
// Errors:
//   - ErrBadShape     (rows or cols ≤ 0).
//   - ErrSizeMismatch (element count differs from rows*cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, elements ...float64) (*Dense, error) {
	if err := ValidateElements(rows, cols, len(elements)); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	data := make([]float64, len(elements))
	copy(data, elements)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Zeros creates a rows×cols zero matrix.
// Errors: ErrBadShape.
func Zeros(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// DenseFromFloat32 widens a 32-bit column-major buffer into a new Dense.
// Errors: ErrBadShape, ErrSizeMismatch.
func DenseFromFloat32(rows, cols int, buf []float32) (*Dense, error) {
	if err := ValidateElements(rows, cols, len(buf)); err != nil {
		return nil, matrixErrorf(opFromElements, err)
	}

	return &Dense{r: rows, c: cols, data: vek.FromFloat32(buf)}, nil
}

// newDenseUnchecked wraps a buffer the caller already owns and validated.
func newDenseUnchecked(rows, cols int, data []float64) Dense {
	return Dense{r: rows, c: cols, data: data}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (col,row) and returns the column-major offset.
func (m *Dense) indexOf(method string, col, row int) (int, error) {
	if err := ValidateIndex(m, col, row); err != nil {
		return 0, denseErrorf(method, col, row, err)
	}

	return col*m.r + row, nil
}

// At returns the element in column col, row row.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(col, row int) (float64, error) {
	idx, err := m.indexOf(opAt, col, row)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v to column col, row row. NaN and ±Inf are stored as given.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(col, row int, v float64) error {
	idx, err := m.indexOf(opSet, col, row)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Elements returns the column-major backing buffer itself (no copy).
// Writes through the slice are visible to m; its length must not change.
func (m *Dense) Elements() []float64 { return m.data }

// ToArray returns a column-major copy of the elements.
func (m *Dense) ToArray() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ToFloat32 narrows the elements into a fresh column-major 32-bit buffer,
// the layout GPU uniform/storage buffers expect.
func (m *Dense) ToFloat32() []float32 { return vek32.FromFloat64(m.data) }

// Column returns a no-copy view of column col: the m[col][row] access path.
// Errors: ErrOutOfRange.
func (m *Dense) Column(col int) (*ColumnView, error) {
	if col < 0 || col >= m.c {
		return nil, matrixErrorf(opColumn, fmt.Errorf("%w: col %d in %s", ErrOutOfRange, col, shapeString(m.r, m.c)))
	}

	return &ColumnView{base: m, off: col * m.r}, nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	d := newDenseUnchecked(m.r, m.c, m.ToArray())

	return &d
}

// Copy overwrites m's elements with src's; shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Copy(src Matrix) (*Dense, error) {
	if err := m.copyFrom(src); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Dense) copyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	copy(m.data, src.Elements())

	return nil
}

// MultiplyScalar sets every element to s·m[col,row].
func (m *Dense) MultiplyScalar(s float64) *Dense {
	vek.MulNumber_Inplace(m.data, s)

	return m
}

// Equals reports exact element-wise equality with o (same shape required).
// NaN never equals NaN.
func (m *Dense) Equals(o Matrix) bool {
	if o == nil || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	oe := o.Elements()
	for i := range m.data {
		if m.data[i] != oe[i] {
			return false
		}
	}

	return true
}

// EqualsEpsilon reports whether shapes match and |m[i] - o[i]| ≤ eps everywhere.
func (m *Dense) EqualsEpsilon(o Matrix, eps float64) bool {
	if o == nil || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	oe := o.Elements()
	for i := range m.data {
		if !(math.Abs(m.data[i]-oe[i]) <= eps) {
			return false
		}
	}

	return true
}

// Transposed returns a new cols×rows Dense with result[i][j] = m[j][i].
// Dense is its own TransposeType with the shape swapped.
func (m *Dense) Transposed() *Dense {
	d := newDenseUnchecked(m.c, m.r, transposeData(m.r, m.c, m.data))

	return &d
}

// transposeData returns the column-major transpose of a rows×cols buffer.
func transposeData(rows, cols int, src []float64) []float64 {
	out := make([]float64, len(src))
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			// (col j,row i) -> (col i,row j) in a cols-row matrix
			out[i*cols+j] = src[j*rows+i]
		}
	}

	return out
}

// MultiplyMatrices sets m = a × b through the generic algorithm.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) - a.Cols == b.Rows.
//   - Stage 2: ValidateResultShape(m, a.Rows, b.Cols) - no silent resize.
//   - Stage 3: accumulate into a scratch buffer, then commit into m.
//
// Behavior highlights:
//   - Check-then-commit: m is untouched on every error path.
//   - a or b may be m itself; the scratch buffer makes aliasing safe.
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleDimensions ("2x2 * 3x2"), ErrResultSizeMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) scratch.
func (m *Dense) MultiplyMatrices(a, b Matrix) (*Dense, error) {
	if err := m.multiplyGeneric(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyMatrices, err)
	}

	return m, nil
}

// Multiply sets m = m × o.
func (m *Dense) Multiply(o Matrix) (*Dense, error) {
	if err := m.multiplyGeneric(m, o); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return m, nil
}

// multiplyGeneric is the shared fallback: validate, compute, commit.
func (m *Dense) multiplyGeneric(a, b Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if err := ValidateResultShape(m, a.Rows(), b.Cols()); err != nil {
		return err
	}
	out, err := mulGeneric(a, b)
	if err != nil {
		return err
	}
	copy(m.data, out)

	return nil
}

// TransformVector returns the new vector m·v (length Rows()); neither m nor
// v is modified.
// Errors: ErrDimensionMismatch when v.Len() != Cols().
func (m *Dense) TransformVector(v *vector.Vector) (*vector.Vector, error) {
	if err := ValidateVecLen(m, v.Len()); err != nil {
		return nil, matrixErrorf(opTransformVector, err)
	}
	out, err := vector.Zeros(m.r)
	if err != nil {
		return nil, matrixErrorf(opTransformVector, err)
	}
	matVecInto(out.Elements(), m.r, m.c, m.data, v.Elements())

	return out, nil
}

// matVecInto computes dst = M·x for a column-major rows×cols buffer.
func matVecInto(dst []float64, rows, cols int, data, x []float64) {
	var i, j int
	for j = 0; j < cols; j++ {
		xj := x[j]
		base := j * rows
		for i = 0; i < rows; i++ {
			dst[i] += data[base+i] * xj
		}
	}
}

// String renders the matrix row by row, e.g. "[1, 3]\n[2, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[j*m.r+i])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ColumnView is a non-owning window over one column of a Dense.
// Reads and writes go straight to the base storage at offset off.
type ColumnView struct {
	base *Dense // underlying storage owner
	off  int    // offset of row 0 of this column in base.data
}

// Len returns the number of rows in the column.
func (v *ColumnView) Len() int { return v.base.r }

// At reads row row of the column or returns ErrOutOfRange.
func (v *ColumnView) At(row int) (float64, error) {
	if row < 0 || row >= v.base.r {
		return 0, fmt.Errorf("ColumnView.At(%d): %w", row, ErrOutOfRange)
	}

	return v.base.data[v.off+row], nil
}

// Set writes row row of the column or returns ErrOutOfRange.
func (v *ColumnView) Set(row int, val float64) error {
	if row < 0 || row >= v.base.r {
		return fmt.Errorf("ColumnView.Set(%d): %w", row, ErrOutOfRange)
	}
	v.base.data[v.off+row] = val

	return nil
}
