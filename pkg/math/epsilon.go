// Package math provides homogeneous vector and matrix types for mesh generation and rendering.
package math

import "errors"

// Epsilon is the machine epsilon of float32.
// All "is zero" and "is equal" decisions in this package use it.
const Epsilon float32 = 1.1920929e-7

// Common arc constants in degrees.
const (
	Arc45  float32 = 45
	Arc90  float32 = 90
	Arc180 float32 = 180
	Arc270 float32 = 270
	Arc360 float32 = 360
)

var (
	// ErrNotVector is returned when a vector-only operation is applied to a point.
	ErrNotVector = errors.New("math: w is not zero, value is not a vector")
	// ErrZeroLength is returned when normalizing a zero-length vector.
	ErrZeroLength = errors.New("math: zero length vector")
	// ErrDegenerateW is returned when dividing by a near-zero w.
	ErrDegenerateW = errors.New("math: w is zero, cannot divide")
	// ErrInvalidProjection is returned for unusable projection parameters.
	ErrInvalidProjection = errors.New("math: invalid projection parameters")
	// ErrDegenerateBasis is returned when a look-at basis cannot be built.
	ErrDegenerateBasis = errors.New("math: degenerate look-at basis")
)

// IsZero reports whether f lies strictly within (-Epsilon, Epsilon).
func IsZero(f float32) bool {
	return -Epsilon < f && f < Epsilon
}

// IsEqual reports whether a and b differ by less than Epsilon.
func IsEqual(a, b float32) bool {
	return IsZero(a - b)
}
