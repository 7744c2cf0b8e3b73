// Package lighting describes scene lights and packs them for shader upload.
package lighting

import (
	"github.com/Faultbox/deepv/pkg/math"
)

// Direct is a light at infinity. Direction points toward the light.
type Direct struct {
	Direction math.Vec4
	Color     math.Vec4
}

// Point is a light at a position.
type Point struct {
	Origin math.Vec4
	Color  math.Vec4
}

// Lights is the light set of a scene.
type Lights struct {
	Ambient math.Vec4
	Directs []Direct
	Points  []Point
}

// AddDirect appends a directional light.
func (l *Lights) AddDirect(d Direct) {
	l.Directs = append(l.Directs, d)
}

// AddPoint appends a point light.
func (l *Lights) AddPoint(p Point) {
	l.Points = append(l.Points, p)
}

// Count returns the number of directional and point lights.
func (l *Lights) Count() int {
	return len(l.Directs) + len(l.Points)
}
