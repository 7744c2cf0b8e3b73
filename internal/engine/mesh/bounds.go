package mesh

import (
	"github.com/Faultbox/deepv/pkg/math"
)

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec4
	Max math.Vec4
}

// BoundsOf returns the bounding box of every point in positions.
// An empty array yields a zero box at the origin.
func BoundsOf(positions *math.Vec4Array) Bounds {
	if positions.Len() == 0 {
		return Bounds{Min: math.Origin(), Max: math.Origin()}
	}
	b := Bounds{Min: positions.At(0), Max: positions.At(0)}
	for i := 1; i < positions.Len(); i++ {
		p := positions.At(i)
		for c := 0; c < 3; c++ {
			if p[c] < b.Min[c] {
				b.Min[c] = p[c]
			}
			if p[c] > b.Max[c] {
				b.Max[c] = p[c]
			}
		}
	}
	b.Min, b.Max = b.Min.AsPoint(), b.Max.AsPoint()
	return b
}

// Size returns the box extent as a vector.
func (b Bounds) Size() math.Vec4 {
	return b.Max.Sub(b.Min).AsVector()
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec4 {
	return b.Min.Add(b.Max).Scale(0.5).AsPoint()
}

// Centroid returns the average of every point in positions.
func Centroid(positions *math.Vec4Array) math.Vec4 {
	n := positions.Len()
	if n == 0 {
		return math.Origin()
	}
	var sum math.Vec4
	for i := 0; i < n; i++ {
		sum = sum.Add(positions.At(i).AsVector())
	}
	return sum.Scale(1 / float32(n)).AsPoint()
}
