// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/compatibility checks here.
//  - Return sentinels with shape context so call sites only add an op tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate only on the error path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures rows>0 and cols>0.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", fmt.Errorf("%w: %s", ErrBadShape, shapeString(rows, cols)))
	}

	return nil
}

// ValidateElements – Ensures a buffer holds exactly rows*cols values.
//
// Errors: ErrBadShape, ErrSizeMismatch (message names got/want).
func ValidateElements(rows, cols, n int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if n != rows*cols {
		return validatorErrorf("ValidateElements",
			fmt.Errorf("%w: got %d elements, want %d (%s)", ErrSizeMismatch, n, rows*cols, shapeString(rows, cols)))
	}

	return nil
}

// ValidateSquare – Ensures m is square. Assumes m is non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: %s", ErrNonSquare, shapeString(m.Rows(), m.Cols())))
	}

	return nil
}

// ValidateIndex – Ensures 0 ≤ col < cols and 0 ≤ row < rows.
func ValidateIndex(m Matrix, col, row int) error {
	if col < 0 || col >= m.Cols() || row < 0 || row >= m.Rows() {
		return fmt.Errorf("%w: (col %d, row %d) in %s", ErrOutOfRange, col, row, shapeString(m.Rows(), m.Cols()))
	}

	return nil
}

// ValidateMulCompatible – Ensures a, b non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrIncompatibleDimensions ("RxC * RxC").
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%w: %s * %s",
			ErrIncompatibleDimensions, shapeString(a.Rows(), a.Cols()), shapeString(b.Rows(), b.Cols())))
	}

	return nil
}

// ValidateResultShape – Ensures the receiver m already has shape rows×cols.
// A matrix never resizes itself to fit a product.
func ValidateResultShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf("ValidateResultShape", fmt.Errorf("%w: receiver %s, product %s",
			ErrResultSizeMismatch, shapeString(m.Rows(), m.Cols()), shapeString(rows, cols)))
	}

	return nil
}

// ValidateSameShape – Ensures a and b have equal dimensions. Assumes non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%w: %s vs %s",
			ErrDimensionMismatch, shapeString(a.Rows(), a.Cols()), shapeString(b.Rows(), b.Cols())))
	}

	return nil
}

// ValidateVecLen – Ensures a vector of length n matches m.Cols().
func ValidateVecLen(m Matrix, n int) error {
	if n != m.Cols() {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("%w: vector length %d, matrix %s",
			ErrDimensionMismatch, n, shapeString(m.Rows(), m.Cols())))
	}

	return nil
}
