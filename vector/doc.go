// SPDX-License-Identifier: MIT

// Package vector provides fixed-length float64 vectors for the lvalg kernel.
//
// What & Why:
//
//	A Vector owns a flat []float64 whose length N ≥ 1 is fixed at construction.
//	Vector2, Vector3 and Vector4 wrap the same storage and add named component
//	accessors (x/y/z/w, r/g/b/a, s/t/p/q). Every alias name reads and writes
//	the same backing slot, so a write through X is visible through R and S.
//
// Dual API:
//
//	Methods on the value mutate the receiver and return it for chaining:
//
//		v.Add(o).MultiplyScalar(2)
//
//	Package-level functions of the same name never mutate their arguments.
//	They clone the first operand on entry and return a new value of the same
//	concrete type:
//
//		w, err := vector.Add(a, b) // a and b untouched; w has a's type
//
// Numeric policy:
//
//	NaN and ±Inf propagate through arithmetic per IEEE-754. The only guarded
//	division is DivideScalar, which rejects an exact zero divisor with
//	ErrDivideByZero. Normalize on a zero-length vector is a no-op.
//
// Complexity:
//
//	All operations are O(N) time; constructors and Clone allocate O(N).
package vector
