// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag) and tests match them via errors.Is. No operation panics on
// user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a vector would be constructed with N < 1.
	ErrBadLength = errors.New("vector: length must be > 0")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDivideByZero is returned by DivideScalar for an exact zero divisor.
	ErrDivideByZero = errors.New("vector: divide by zero")

	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// Operation tags used for error wrapping.
const (
	opNew          = "New"
	opFromElements = "FromElements"
	opAt           = "At"
	opSet          = "Set"
	opAdd          = "Add"
	opSubtract     = "Subtract"
	opDivideScalar = "DivideScalar"
	opDot          = "Dot"
	opCopy         = "Copy"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthMismatch reports both lengths alongside ErrDimensionMismatch.
func lengthMismatch(tag string, got, want int) error {
	return vectorErrorf(tag, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, got, want))
}
