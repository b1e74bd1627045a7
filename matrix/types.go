// SPDX-License-Identifier: MIT

// Package matrix: type-level contracts for the static (non-mutating) API.
//
// A TransposeType is not stored per instance: it is the result type of a
// value's Transposed method, resolved at compile time through the type
// parameters below. For every square type it is the type itself.

package matrix

// Transposer is implemented by every matrix type; Transposed returns a new
// value of the type's TransposeType.
type Transposer[T any] interface {
	Transposed() T
}

// Invertible is implemented by the square types (*Square, *Matrix2,
// *Matrix3, *Matrix4). Clone must deep-copy; Invert mutates in place.
type Invertible[M any] interface {
	Matrix
	Clone() M
	Invert() (M, error)
}

// determinanter is the optional fast interface Determinant dispatches on.
type determinanter interface {
	Determinant() float64
}
