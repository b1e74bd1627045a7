// SPDX-License-Identifier: MIT

// Package matrix - Square: generic n×n matrices.
//
// Purpose:
//   - Add determinant, inversion and in-place transpose to Dense for any n.
//   - Serve as the inherited fallback of Matrix2/Matrix3/Matrix4 and as the
//     generic square type whose operands never take a fixed-size fast path.
//
// Algorithms:
//   - Determinant: LU elimination with partial pivoting (ops.Determinant).
//   - Invert: Gauss-Jordan with partial pivoting (ops.Inverse). Only an
//     exactly zero pivot, i.e. an exactly zero determinant, is rejected.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalg/matrix/ops"
)

// Square is an n×n column-major matrix. Its TransposeType is *Square.
type Square struct {
	Dense
}

var (
	_ Invertible[*Square] = (*Square)(nil)
	_ Transposer[*Square] = (*Square)(nil)
)

// NewSquare creates an n×n matrix from n*n column-major elements.
// Errors: ErrBadShape, ErrSizeMismatch.
func NewSquare(n int, elements ...float64) (*Square, error) {
	if err := ValidateElements(n, n, len(elements)); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	data := make([]float64, len(elements))
	copy(data, elements)

	return &Square{Dense: newDenseUnchecked(n, n, data)}, nil
}

// IdentitySquare returns the n×n identity.
// Errors: ErrBadShape.
func IdentitySquare(n int) (*Square, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	s := &Square{Dense: newDenseUnchecked(n, n, make([]float64, n*n))}

	return s.MakeIdentity(), nil
}

// Size returns n.
func (s *Square) Size() int { return s.r }

// MakeIdentity overwrites s with the identity and returns s.
func (s *Square) MakeIdentity() *Square {
	setIdentity(s.r, s.data)

	return s
}

func setIdentity(n int, data []float64) {
	for i := range data {
		data[i] = 0
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
}

// Clone returns a deep copy.
func (s *Square) Clone() *Square { return &Square{Dense: *s.Dense.Clone()} }

// Copy overwrites s with src (same shape).
func (s *Square) Copy(src Matrix) (*Square, error) {
	if err := s.copyFrom(src); err != nil {
		return nil, err
	}

	return s, nil
}

// MultiplyScalar sets s = k·s.
func (s *Square) MultiplyScalar(k float64) *Square {
	s.Dense.MultiplyScalar(k)

	return s
}

// MultiplyMatrices sets s = a × b using the generic algorithm.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions, ErrResultSizeMismatch.
func (s *Square) MultiplyMatrices(a, b Matrix) (*Square, error) {
	if err := s.multiplyGeneric(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyMatrices, err)
	}

	return s, nil
}

// Multiply sets s = s × o.
func (s *Square) Multiply(o Matrix) (*Square, error) {
	if err := s.multiplyGeneric(s, o); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return s, nil
}

// Determinant returns det(s) by elimination with partial pivoting.
// NaN/±Inf elements propagate into the result.
// Complexity: O(n³).
func (s *Square) Determinant() float64 {
	// shape is guaranteed n×n, so ops cannot report ErrShape here
	det, _ := ops.Determinant(s.r, s.data)

	return det
}

// Invert replaces s with s⁻¹ and returns s.
//
// Implementation:
//   - Stage 1: Gauss-Jordan on a working copy (ops.Inverse).
//   - Stage 2: commit into s only on success.
//
// Errors:
//   - ErrNotInvertible when elimination meets an exactly zero pivot column.
//     s is untouched in that case.
//
// Complexity: O(n³) time, O(n²) scratch.
func (s *Square) Invert() (*Square, error) {
	if err := s.invertGeneric(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Square) invertGeneric() error {
	inv, err := ops.Inverse(s.r, s.data)
	if errors.Is(err, ops.ErrSingular) {
		return matrixErrorf(opInvert, fmt.Errorf("%w: %v", ErrNotInvertible, err))
	}
	if err != nil {
		return matrixErrorf(opInvert, err)
	}
	copy(s.data, inv)

	return nil
}

// Transpose transposes s in place and returns s.
func (s *Square) Transpose() *Square {
	transposeSquareInPlace(s.r, s.data)

	return s
}

// Transposed returns a new transposed *Square; s is not mutated.
func (s *Square) Transposed() *Square { return s.Clone().Transpose() }

func transposeSquareInPlace(n int, data []float64) {
	for c := 0; c < n; c++ {
		for r := c + 1; r < n; r++ {
			data[c*n+r], data[r*n+c] = data[r*n+c], data[c*n+r]
		}
	}
}
