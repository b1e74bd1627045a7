// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped with an operation
// tag via matrixErrorf) and tests check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Context (shapes, indices) is appended with fmt.Errorf("%w: ...", ErrX) at
// the detection site; the operation tag is added by matrixErrorf.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/size -> operand compatibility -> result shape -> singularity.

var (
	// ErrBadShape is returned when a requested shape has rows<=0 or cols<=0.
	ErrBadShape = errors.New("matrix: dimensions must be > 0")

	// ErrSizeMismatch is returned when an element buffer does not hold
	// exactly rows*cols values.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrIncompatibleDimensions indicates a.Cols != b.Rows in a product.
	// The wrapped message names both shapes, e.g. "2x2 * 3x2".
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions")

	// ErrResultSizeMismatch indicates the receiver's fixed shape differs from
	// the shape of the product it was asked to hold.
	ErrResultSizeMismatch = errors.New("matrix: result size mismatch")

	// ErrNotInvertible is returned by Invert when the determinant is exactly zero.
	ErrNotInvertible = errors.New("matrix: not invertible")

	// ErrOutOfRange indicates a column or row index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// matrix column count, or same-shape operands that differ.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNew              = "New"
	opFromElements     = "FromElements"
	opAt               = "At"
	opSet              = "Set"
	opColumn           = "Column"
	opCopy             = "Copy"
	opMultiplyMatrices = "MultiplyMatrices"
	opMultiply         = "Multiply"
	opInvert           = "Invert"
	opDeterminant      = "Determinant"
	opTransformVector  = "TransformVector"
	opSpecialize       = "Specialize"
	opAdd              = "Add"
	opSubtract         = "Subtract"
	opAllClose         = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeString renders a shape as "<rows>x<cols>".
func shapeString(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
