// SPDX-License-Identifier: MIT

// Package matrix defines the core Matrix interface for linear algebra operations.
//
// What & Why:
//
//	The Matrix interface is the uniform view the generic algorithms need over
//	any rows×cols float64 container: its shape, bounds-checked (column, row)
//	access and the flat column-major buffer. Dense, Square and the fixed-size
//	Matrix2/Matrix3/Matrix4 all satisfy it, as can test doubles that hide a
//	concrete type to force the generic path.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Elements() returns the backing buffer in O(1).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each accessor enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element in column col, row row.
	// Returns ErrOutOfRange if col∉[0,Cols()) or row∉[0,Rows()).
	At(col, row int) (float64, error)

	// Set assigns v to column col, row row.
	// Returns ErrOutOfRange if indices are invalid.
	Set(col, row int, v float64) error

	// Elements returns the column-major backing buffer (len == Rows()*Cols()).
	Elements() []float64
}
