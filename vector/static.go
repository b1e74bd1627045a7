// SPDX-License-Identifier: MIT

// Package vector - non-mutating (static) half of the dual API.
//
// Every function here copies on entry: the first operand is cloned and the
// clone is mutated, so arguments are never written. Type parameters keep the
// result's concrete type equal to the operands' (Add of two *Vector3 yields a
// *Vector3), and force both operands of a binary function to share one type.

package vector

import "github.com/viterin/vek"

// Value is satisfied by *Vector, *Vector2, *Vector3 and *Vector4.
// Clone must return a deep copy of the same concrete type.
type Value[V any] interface {
	Elements() []float64
	Clone() V
}

// Add returns a + b as a new value of a's type.
func Add[V Value[V]](a, b V) (V, error) {
	out := a.Clone()
	if err := addInto(out.Elements(), b.Elements()); err != nil {
		var zero V
		return zero, vectorErrorf(opAdd, err)
	}

	return out, nil
}

// Subtract returns a - b as a new value.
func Subtract[V Value[V]](a, b V) (V, error) {
	out := a.Clone()
	if err := subInto(out.Elements(), b.Elements()); err != nil {
		var zero V
		return zero, vectorErrorf(opSubtract, err)
	}

	return out, nil
}

// MultiplyScalar returns s·v as a new value.
func MultiplyScalar[V Value[V]](v V, s float64) V {
	out := v.Clone()
	vek.MulNumber_Inplace(out.Elements(), s)

	return out
}

// DivideScalar returns v/s as a new value.
// Returns ErrDivideByZero when s == 0.
func DivideScalar[V Value[V]](v V, s float64) (V, error) {
	if s == 0 {
		var zero V
		return zero, vectorErrorf(opDivideScalar, ErrDivideByZero)
	}
	out := v.Clone()
	vek.DivNumber_Inplace(out.Elements(), s)

	return out, nil
}

// Dot returns a·b.
func Dot[V Value[V]](a, b V) (float64, error) {
	ae, be := a.Elements(), b.Elements()
	if len(ae) != len(be) {
		return 0, lengthMismatch(opDot, len(ae), len(be))
	}

	return vek.Dot(ae, be), nil
}

// Length returns |v|.
func Length[V Value[V]](v V) float64 { return norm(v.Elements()) }

// LengthSquared returns v·v.
func LengthSquared[V Value[V]](v V) float64 {
	e := v.Elements()

	return vek.Dot(e, e)
}

// Normalize returns v scaled to unit length; a zero vector comes back as a
// zero vector.
func Normalize[V Value[V]](v V) V {
	out := v.Clone()
	normalizeInPlace(out.Elements())

	return out
}

// Clone returns a deep copy of v.
func Clone[V Value[V]](v V) V { return v.Clone() }

// Copy returns a deep copy of src; the static counterpart of the in-place
// Copy method, which would otherwise have to mutate a destination argument.
func Copy[V Value[V]](src V) V { return src.Clone() }

// Equals reports exact component-wise equality.
func Equals[V Value[V]](a, b V) bool { return equalData(a.Elements(), b.Elements()) }

// EqualsEpsilon reports whether |a[i] - b[i]| ≤ eps for every component.
func EqualsEpsilon[V Value[V]](a, b V, eps float64) bool {
	return equalDataEpsilon(a.Elements(), b.Elements(), eps)
}

// Cross returns the 2D cross product a.x*b.y − a.y*b.x, the signed area of
// the parallelogram spanned by a and b. The result is a scalar, so there is
// no mutating form.
func Cross(a, b *Vector2) float64 {
	return a.data[idxX]*b.data[idxY] - a.data[idxY]*b.data[idxX]
}

// Cross3 returns a × b as a new Vector3.
func Cross3(a, b *Vector3) *Vector3 { return a.Clone().Cross(b) }
