// SPDX-License-Identifier: MIT

// Package vector - generic N-component storage & mutating instance API.
//
// Purpose:
//   - Own a flat []float64 of fixed length N ≥ 1 (never resized after construction).
//   - Expose bounds-checked At/Set plus flat buffer handoff (Elements/ToArray/ToFloat32).
//   - Implement the mutating half of the dual API; each method returns the receiver.
//
// Complexity quicksheet:
//   - New/Zeros/Clone: O(N) alloc; At/Set: O(1); arithmetic: O(N).

package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Vector is an ordered, fixed-length sequence of float64 components.
// The zero value is not usable; construct with New, Zeros or FromFloat32.
type Vector struct {
	data []float64 // backing storage, len fixed at construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New creates a vector holding a copy of components.
//
// Errors:
//   - ErrBadLength if no components are given.
//
// Complexity: Time O(N), Space O(N).
func New(components ...float64) (*Vector, error) {
	if len(components) == 0 {
		return nil, vectorErrorf(opNew, ErrBadLength)
	}
	data := make([]float64, len(components))
	copy(data, components)

	return &Vector{data: data}, nil
}

// Zeros creates an n-component zero vector.
//
// Errors:
//   - ErrBadLength if n < 1.
func Zeros(n int) (*Vector, error) {
	if n < 1 {
		return nil, vectorErrorf(opNew, ErrBadLength)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// FromFloat32 widens a 32-bit buffer (e.g. read back from a GPU buffer)
// into a new vector.
func FromFloat32(buf []float32) (*Vector, error) {
	if len(buf) == 0 {
		return nil, vectorErrorf(opNew, ErrBadLength)
	}

	return &Vector{data: vek.FromFloat32(buf)}, nil
}

// Len returns the fixed number of components N.
func (v *Vector) Len() int { return len(v.data) }

// At returns component i.
// Returns ErrOutOfRange if i is outside [0, N).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(opAt, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(v.data)))
	}

	return v.data[i], nil
}

// Set assigns component i.
// Returns ErrOutOfRange if i is outside [0, N).
func (v *Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(opSet, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(v.data)))
	}
	v.data[i] = value

	return nil
}

// Elements returns the backing buffer itself (no copy).
// Writes through the returned slice are visible to v; its length must not be changed.
func (v *Vector) Elements() []float64 { return v.data }

// ToArray returns a copy of the components.
func (v *Vector) ToArray() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// ToFloat32 narrows the components into a fresh 32-bit buffer for upload.
func (v *Vector) ToFloat32() []float32 { return vek32.FromFloat64(v.data) }

// Add sets v = v + o.
// Returns ErrDimensionMismatch when lengths differ; v is untouched in that case.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := addInto(v.data, o.data); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return v, nil
}

// Subtract sets v = v - o.
// Returns ErrDimensionMismatch when lengths differ; v is untouched in that case.
func (v *Vector) Subtract(o *Vector) (*Vector, error) {
	if err := subInto(v.data, o.data); err != nil {
		return nil, vectorErrorf(opSubtract, err)
	}

	return v, nil
}

// MultiplyScalar sets v = s·v.
func (v *Vector) MultiplyScalar(s float64) *Vector {
	vek.MulNumber_Inplace(v.data, s)

	return v
}

// DivideScalar sets v = v/s.
// Returns ErrDivideByZero when s == 0; v is untouched in that case.
func (v *Vector) DivideScalar(s float64) (*Vector, error) {
	if err := divInto(v.data, s); err != nil {
		return nil, vectorErrorf(opDivideScalar, err)
	}

	return v, nil
}

// Dot returns v·o.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if len(v.data) != len(o.data) {
		return 0, lengthMismatch(opDot, len(v.data), len(o.data))
	}

	return vek.Dot(v.data, o.data), nil
}

// Length returns the Euclidean norm |v|.
func (v *Vector) Length() float64 { return norm(v.data) }

// LengthSquared returns v·v.
func (v *Vector) LengthSquared() float64 { return vek.Dot(v.data, v.data) }

// Normalize scales v to unit length.
// A zero-length vector has no direction and is returned unchanged.
func (v *Vector) Normalize() *Vector {
	normalizeInPlace(v.data)

	return v
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{data: cloneData(v.data)}
}

// Copy overwrites v's components with src's.
// Returns ErrDimensionMismatch when lengths differ.
func (v *Vector) Copy(src *Vector) (*Vector, error) {
	if len(v.data) != len(src.data) {
		return nil, lengthMismatch(opCopy, len(v.data), len(src.data))
	}
	copy(v.data, src.data)

	return v, nil
}

// Equals reports exact component-wise equality. NaN never equals NaN.
// Vectors of different lengths are never equal.
func (v *Vector) Equals(o *Vector) bool { return equalData(v.data, o.data) }

// EqualsEpsilon reports whether |v[i] - o[i]| ≤ eps for every i.
func (v *Vector) EqualsEpsilon(o *Vector, eps float64) bool {
	return equalDataEpsilon(v.data, o.data, eps)
}

// String implements fmt.Stringer, e.g. "(1, 2, 3)".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, c := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteString(")")

	return sb.String()
}

// ---------- slice kernels shared by methods and static functions ----------

func cloneData(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

// addInto computes dst += src after the length check (check-then-commit).
func addInto(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(dst), len(src))
	}
	vek.Add_Inplace(dst, src)

	return nil
}

// subInto computes dst -= src after the length check.
func subInto(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(dst), len(src))
	}
	vek.Sub_Inplace(dst, src)

	return nil
}

// divInto computes dst /= s, rejecting an exact zero divisor before any write.
func divInto(dst []float64, s float64) error {
	if s == 0 {
		return ErrDivideByZero
	}
	vek.DivNumber_Inplace(dst, s)

	return nil
}

// norm returns |data| without intermediate overflow or underflow: the
// components are scaled by the largest magnitude before squaring.
func norm(data []float64) float64 {
	m := vek.Max(vek.Abs(data))
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return vek.Norm(data)
	}

	return m * vek.Norm(vek.DivNumber(data, m))
}

// normalizeInPlace scales data to unit length. Only an all-zero vector is
// left unchanged.
func normalizeInPlace(data []float64) {
	m := vek.Max(vek.Abs(data))
	if m == 0 {
		return
	}
	if math.IsInf(m, 0) || math.IsNaN(m) {
		vek.DivNumber_Inplace(data, vek.Norm(data))
		return
	}
	vek.DivNumber_Inplace(data, m)
	vek.DivNumber_Inplace(data, vek.Norm(data))
}

func equalData(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalDataEpsilon(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		// written as !(≤) so that NaN components compare unequal
		if !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}

	return true
}
