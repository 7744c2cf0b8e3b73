package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a homogeneous 3D value.
// w is 1 for a point (affected by translation and perspective divide)
// and 0 for a vector (direction or normal).
type Vec4 [4]float32

// Point returns the point (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// Vector returns the vector (x, y, z, 0).
func Vector(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 0}
}

// Color returns an RGBA color stored in a Vec4.
func Color(r, g, b, a float32) Vec4 {
	return Vec4{r, g, b, a}
}

// Origin returns the point (0, 0, 0).
func Origin() Vec4 { return Point(0, 0, 0) }

// AxisX returns the unit vector along X.
func AxisX() Vec4 { return Vector(1, 0, 0) }

// AxisY returns the unit vector along Y.
func AxisY() Vec4 { return Vector(0, 1, 0) }

// AxisZ returns the unit vector along Z.
func AxisZ() Vec4 { return Vector(0, 0, 1) }

// X returns the x component.
func (v Vec4) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec4) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec4) Z() float32 { return v[2] }

// W returns the w component.
func (v Vec4) W() float32 { return v[3] }

// IsPoint reports whether w equals 1 within Epsilon.
func (v Vec4) IsPoint() bool {
	return IsEqual(v[3], 1)
}

// IsVector reports whether w equals 0 within Epsilon.
func (v Vec4) IsVector() bool {
	return IsZero(v[3])
}

// AsPoint returns v with w set to 1.
func (v Vec4) AsPoint() Vec4 {
	v[3] = 1
	return v
}

// AsVector returns v with w set to 0.
func (v Vec4) AsVector() Vec4 {
	v[3] = 0
	return v
}

// Add returns v + other, component-wise over all four components.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other, component-wise over all four components.
// point - point yields a vector.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Scale returns v * s over all four components.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Negate returns -v over all four components.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

// Translate moves the xyz part of v; w is untouched.
func (v Vec4) Translate(dx, dy, dz float32) Vec4 {
	return Vec4{v[0] + dx, v[1] + dy, v[2] + dz, v[3]}
}

// Dot returns the 3D dot product, ignoring w.
func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the 3D cross product. The result is always a vector.
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
		0,
	}
}

// Length returns the Euclidean norm over all four components.
// Callers wanting a true 3D length must make sure w is 0.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// IsZeroLength reports whether the length of v is epsilon-zero.
func (v Vec4) IsZeroLength() bool {
	return IsZero(v.Length())
}

// VectorNormalize returns v scaled to unit length.
// Fails with ErrNotVector if w is not zero and ErrZeroLength if v has no length.
func (v Vec4) VectorNormalize() (Vec4, error) {
	if !IsZero(v[3]) {
		return v, fmt.Errorf("normalize %v: %w", v, ErrNotVector)
	}
	l := v.Length()
	if IsZero(l) {
		return v, fmt.Errorf("normalize %v: %w", v, ErrZeroLength)
	}
	return Vec4{v[0] / l, v[1] / l, v[2] / l, 0}, nil
}

// MustVectorNormalize is like VectorNormalize but panics on failure.
func (v Vec4) MustVectorNormalize() Vec4 {
	n, err := v.VectorNormalize()
	if err != nil {
		panic(err)
	}
	return n
}

// PointWDivide divides xyz by w and sets w to 1.
// Fails with ErrDegenerateW if w is epsilon-zero.
func (v Vec4) PointWDivide() (Vec4, error) {
	if IsZero(v[3]) {
		return v, fmt.Errorf("w-divide %v: %w", v, ErrDegenerateW)
	}
	return Vec4{v[0] / v[3], v[1] / v[3], v[2] / v[3], 1}, nil
}

// MustPointWDivide is like PointWDivide but panics on failure.
func (v Vec4) MustPointWDivide() Vec4 {
	p, err := v.PointWDivide()
	if err != nil {
		panic(err)
	}
	return p
}

// NearlyEqual reports whether every component of v and other is epsilon-equal.
func (v Vec4) NearlyEqual(other Vec4) bool {
	return IsEqual(v[0], other[0]) && IsEqual(v[1], other[1]) &&
		IsEqual(v[2], other[2]) && IsEqual(v[3], other[3])
}

// WriteTo writes the first c components of v to dst and returns how many were written.
// Panics if dst is too short.
func (v Vec4) WriteTo(dst []float32, c Components) int {
	n := c.Count()
	copy(dst[:n], v[:n])
	return n
}
