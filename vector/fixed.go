// SPDX-License-Identifier: MIT

// Package vector - fixed-size Vector2/Vector3/Vector4.
//
// Purpose:
//   - Pin N to 2, 3 or 4 so binary operations cannot mismatch (no error returns).
//   - Expose named accessors over a single storage slice:
//     index 0 = x|r|s, 1 = y|g|t, 2 = z|b|p, 3 = w|a|q.
//   - Shadow the embedded Vector methods so chaining keeps the concrete type.

package vector

// The zero values of Vector2, Vector3 and Vector4 are not usable; construct
// them with NewVectorN or VectorNFromElements.

// Component indices shared by all alias names.
const (
	idxX = 0
	idxY = 1
	idxZ = 2
	idxW = 3
)

// Vector2 is a 2-component vector (x,y / r,g / s,t).
type Vector2 struct{ Vector }

// Vector3 is a 3-component vector (x,y,z / r,g,b / s,t,p).
type Vector3 struct{ Vector }

// Vector4 is a 4-component vector (x,y,z,w / r,g,b,a / s,t,p,q).
// It intentionally has no cross product.
type Vector4 struct{ Vector }

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float64) *Vector2 {
	return &Vector2{Vector{data: []float64{x, y}}}
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{Vector{data: []float64{x, y, z}}}
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float64) *Vector4 {
	return &Vector4{Vector{data: []float64{x, y, z, w}}}
}

// fixedData copies e after checking it holds exactly n components.
func fixedData(e []float64, n int) ([]float64, error) {
	if len(e) != n {
		return nil, lengthMismatch(opFromElements, len(e), n)
	}

	return cloneData(e), nil
}

// Vector2FromElements builds a Vector2 from a 2-element buffer.
func Vector2FromElements(e []float64) (*Vector2, error) {
	data, err := fixedData(e, 2)
	if err != nil {
		return nil, err
	}

	return &Vector2{Vector{data: data}}, nil
}

// Vector3FromElements builds a Vector3 from a 3-element buffer.
func Vector3FromElements(e []float64) (*Vector3, error) {
	data, err := fixedData(e, 3)
	if err != nil {
		return nil, err
	}

	return &Vector3{Vector{data: data}}, nil
}

// Vector4FromElements builds a Vector4 from a 4-element buffer.
func Vector4FromElements(e []float64) (*Vector4, error) {
	data, err := fixedData(e, 4)
	if err != nil {
		return nil, err
	}

	return &Vector4{Vector{data: data}}, nil
}

// ---------- Vector2 ----------

func (v *Vector2) X() float64     { return v.data[idxX] }
func (v *Vector2) Y() float64     { return v.data[idxY] }
func (v *Vector2) R() float64     { return v.data[idxX] }
func (v *Vector2) G() float64     { return v.data[idxY] }
func (v *Vector2) S() float64     { return v.data[idxX] }
func (v *Vector2) T() float64     { return v.data[idxY] }
func (v *Vector2) SetX(x float64) { v.data[idxX] = x }
func (v *Vector2) SetY(y float64) { v.data[idxY] = y }
func (v *Vector2) SetR(r float64) { v.data[idxX] = r }
func (v *Vector2) SetG(g float64) { v.data[idxY] = g }
func (v *Vector2) SetS(s float64) { v.data[idxX] = s }
func (v *Vector2) SetT(t float64) { v.data[idxY] = t }

// Add sets v = v + o.
func (v *Vector2) Add(o *Vector2) *Vector2 {
	v.data[idxX] += o.data[idxX]
	v.data[idxY] += o.data[idxY]

	return v
}

// Subtract sets v = v - o.
func (v *Vector2) Subtract(o *Vector2) *Vector2 {
	v.data[idxX] -= o.data[idxX]
	v.data[idxY] -= o.data[idxY]

	return v
}

// MultiplyScalar sets v = s·v.
func (v *Vector2) MultiplyScalar(s float64) *Vector2 { v.Vector.MultiplyScalar(s); return v }

// DivideScalar sets v = v/s; ErrDivideByZero when s == 0.
func (v *Vector2) DivideScalar(s float64) (*Vector2, error) {
	if _, err := v.Vector.DivideScalar(s); err != nil {
		return nil, err
	}

	return v, nil
}

// Normalize scales v to unit length; the zero vector is left unchanged.
func (v *Vector2) Normalize() *Vector2 { normalizeInPlace(v.data); return v }

// Dot returns v·o.
func (v *Vector2) Dot(o *Vector2) float64 {
	return v.data[idxX]*o.data[idxX] + v.data[idxY]*o.data[idxY]
}

// Clone returns a deep copy of v.
func (v *Vector2) Clone() *Vector2 { return &Vector2{Vector{data: cloneData(v.data)}} }

// Copy overwrites v with src.
func (v *Vector2) Copy(src *Vector2) *Vector2 { copy(v.data, src.data); return v }

// Equals reports exact equality.
func (v *Vector2) Equals(o *Vector2) bool { return equalData(v.data, o.data) }

// EqualsEpsilon reports component-wise |a-b| ≤ eps.
func (v *Vector2) EqualsEpsilon(o *Vector2, eps float64) bool {
	return equalDataEpsilon(v.data, o.data, eps)
}

// ---------- Vector3 ----------

func (v *Vector3) X() float64     { return v.data[idxX] }
func (v *Vector3) Y() float64     { return v.data[idxY] }
func (v *Vector3) Z() float64     { return v.data[idxZ] }
func (v *Vector3) R() float64     { return v.data[idxX] }
func (v *Vector3) G() float64     { return v.data[idxY] }
func (v *Vector3) B() float64     { return v.data[idxZ] }
func (v *Vector3) S() float64     { return v.data[idxX] }
func (v *Vector3) T() float64     { return v.data[idxY] }
func (v *Vector3) P() float64     { return v.data[idxZ] }
func (v *Vector3) SetX(x float64) { v.data[idxX] = x }
func (v *Vector3) SetY(y float64) { v.data[idxY] = y }
func (v *Vector3) SetZ(z float64) { v.data[idxZ] = z }
func (v *Vector3) SetR(r float64) { v.data[idxX] = r }
func (v *Vector3) SetG(g float64) { v.data[idxY] = g }
func (v *Vector3) SetB(b float64) { v.data[idxZ] = b }
func (v *Vector3) SetS(s float64) { v.data[idxX] = s }
func (v *Vector3) SetT(t float64) { v.data[idxY] = t }
func (v *Vector3) SetP(p float64) { v.data[idxZ] = p }

// Add sets v = v + o.
func (v *Vector3) Add(o *Vector3) *Vector3 {
	v.data[idxX] += o.data[idxX]
	v.data[idxY] += o.data[idxY]
	v.data[idxZ] += o.data[idxZ]

	return v
}

// Subtract sets v = v - o.
func (v *Vector3) Subtract(o *Vector3) *Vector3 {
	v.data[idxX] -= o.data[idxX]
	v.data[idxY] -= o.data[idxY]
	v.data[idxZ] -= o.data[idxZ]

	return v
}

// MultiplyScalar sets v = s·v.
func (v *Vector3) MultiplyScalar(s float64) *Vector3 { v.Vector.MultiplyScalar(s); return v }

// DivideScalar sets v = v/s; ErrDivideByZero when s == 0.
func (v *Vector3) DivideScalar(s float64) (*Vector3, error) {
	if _, err := v.Vector.DivideScalar(s); err != nil {
		return nil, err
	}

	return v, nil
}

// Normalize scales v to unit length; the zero vector is left unchanged.
func (v *Vector3) Normalize() *Vector3 { normalizeInPlace(v.data); return v }

// Dot returns v·o.
func (v *Vector3) Dot(o *Vector3) float64 {
	return v.data[idxX]*o.data[idxX] + v.data[idxY]*o.data[idxY] + v.data[idxZ]*o.data[idxZ]
}

// Cross sets v = v × o.
func (v *Vector3) Cross(o *Vector3) *Vector3 {
	ax, ay, az := v.data[idxX], v.data[idxY], v.data[idxZ]
	bx, by, bz := o.data[idxX], o.data[idxY], o.data[idxZ]
	v.data[idxX] = ay*bz - az*by
	v.data[idxY] = az*bx - ax*bz
	v.data[idxZ] = ax*by - ay*bx

	return v
}

// Clone returns a deep copy of v.
func (v *Vector3) Clone() *Vector3 { return &Vector3{Vector{data: cloneData(v.data)}} }

// Copy overwrites v with src.
func (v *Vector3) Copy(src *Vector3) *Vector3 { copy(v.data, src.data); return v }

// Equals reports exact equality.
func (v *Vector3) Equals(o *Vector3) bool { return equalData(v.data, o.data) }

// EqualsEpsilon reports component-wise |a-b| ≤ eps.
func (v *Vector3) EqualsEpsilon(o *Vector3, eps float64) bool {
	return equalDataEpsilon(v.data, o.data, eps)
}

// ---------- Vector4 ----------

func (v *Vector4) X() float64     { return v.data[idxX] }
func (v *Vector4) Y() float64     { return v.data[idxY] }
func (v *Vector4) Z() float64     { return v.data[idxZ] }
func (v *Vector4) W() float64     { return v.data[idxW] }
func (v *Vector4) R() float64     { return v.data[idxX] }
func (v *Vector4) G() float64     { return v.data[idxY] }
func (v *Vector4) B() float64     { return v.data[idxZ] }
func (v *Vector4) A() float64     { return v.data[idxW] }
func (v *Vector4) S() float64     { return v.data[idxX] }
func (v *Vector4) T() float64     { return v.data[idxY] }
func (v *Vector4) P() float64     { return v.data[idxZ] }
func (v *Vector4) Q() float64     { return v.data[idxW] }
func (v *Vector4) SetX(x float64) { v.data[idxX] = x }
func (v *Vector4) SetY(y float64) { v.data[idxY] = y }
func (v *Vector4) SetZ(z float64) { v.data[idxZ] = z }
func (v *Vector4) SetW(w float64) { v.data[idxW] = w }
func (v *Vector4) SetR(r float64) { v.data[idxX] = r }
func (v *Vector4) SetG(g float64) { v.data[idxY] = g }
func (v *Vector4) SetB(b float64) { v.data[idxZ] = b }
func (v *Vector4) SetA(a float64) { v.data[idxW] = a }
func (v *Vector4) SetS(s float64) { v.data[idxX] = s }
func (v *Vector4) SetT(t float64) { v.data[idxY] = t }
func (v *Vector4) SetP(p float64) { v.data[idxZ] = p }
func (v *Vector4) SetQ(q float64) { v.data[idxW] = q }

// Add sets v = v + o.
func (v *Vector4) Add(o *Vector4) *Vector4 {
	v.data[idxX] += o.data[idxX]
	v.data[idxY] += o.data[idxY]
	v.data[idxZ] += o.data[idxZ]
	v.data[idxW] += o.data[idxW]

	return v
}

// Subtract sets v = v - o.
func (v *Vector4) Subtract(o *Vector4) *Vector4 {
	v.data[idxX] -= o.data[idxX]
	v.data[idxY] -= o.data[idxY]
	v.data[idxZ] -= o.data[idxZ]
	v.data[idxW] -= o.data[idxW]

	return v
}

// MultiplyScalar sets v = s·v.
func (v *Vector4) MultiplyScalar(s float64) *Vector4 { v.Vector.MultiplyScalar(s); return v }

// DivideScalar sets v = v/s; ErrDivideByZero when s == 0.
func (v *Vector4) DivideScalar(s float64) (*Vector4, error) {
	if _, err := v.Vector.DivideScalar(s); err != nil {
		return nil, err
	}

	return v, nil
}

// Normalize scales v to unit length; the zero vector is left unchanged.
func (v *Vector4) Normalize() *Vector4 { normalizeInPlace(v.data); return v }

// Dot returns v·o.
func (v *Vector4) Dot(o *Vector4) float64 {
	return v.data[idxX]*o.data[idxX] + v.data[idxY]*o.data[idxY] +
		v.data[idxZ]*o.data[idxZ] + v.data[idxW]*o.data[idxW]
}

// Clone returns a deep copy of v.
func (v *Vector4) Clone() *Vector4 { return &Vector4{Vector{data: cloneData(v.data)}} }

// Copy overwrites v with src.
func (v *Vector4) Copy(src *Vector4) *Vector4 { copy(v.data, src.data); return v }

// Equals reports exact equality.
func (v *Vector4) Equals(o *Vector4) bool { return equalData(v.data, o.data) }

// EqualsEpsilon reports component-wise |a-b| ≤ eps.
func (v *Vector4) EqualsEpsilon(o *Vector4, eps float64) bool {
	return equalDataEpsilon(v.data, o.data, eps)
}
