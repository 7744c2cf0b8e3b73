package mesh

import (
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

// Cylinder parameter minimums.
const (
	MinCircleSegments = 3
	MinZSegments      = 1
)

// CylinderRadius is the ring radius of generated cylinders.
const CylinderRadius float32 = 0.5

// NewCylinder returns an open unit-height tube around the Z axis, centered
// on the origin, with circleSegments points per ring and zSegments bands.
// Normals point radially outward.
func NewCylinder(circleSegments, zSegments int) (*RawMesh, error) {
	if circleSegments < MinCircleSegments || zSegments < MinZSegments {
		return nil, fmt.Errorf("cylinder %d x %d segments: %w", circleSegments, zSegments, ErrInvalidParameter)
	}

	vertices := circleSegments * (zSegments + 1)
	if vertices > MaxVertices {
		return nil, fmt.Errorf("cylinder %d vertices: %w", vertices, ErrIndexOverflow)
	}
	triangles := 2 * circleSegments * zSegments
	m, err := NewRawMesh(vertices, triangles*IndicesPerTriangle)
	if err != nil {
		return nil, err
	}
	positions := m.Attributes.Positions
	normals := m.Attributes.Normals

	prevPositions := positions.Slice(0, circleSegments)
	prevNormals := normals.Slice(0, circleSegments)
	if err := putRing(prevPositions, prevNormals, circleSegments); err != nil {
		return nil, err
	}

	dz := 1 / float32(zSegments)
	for z := 1; z <= zSegments; z++ {
		nextPositions := positions.Slice(z*circleSegments, circleSegments)
		nextNormals := normals.Slice(z*circleSegments, circleSegments)

		prevPositions.Rewind().WriteRemainingTo(nextPositions, func(v *math.Vec4) {
			*v = v.Translate(0, 0, dz)
		})
		prevNormals.Rewind()
		nextNormals.PutAll(prevNormals)

		prevPositions, prevNormals = nextPositions, nextNormals
	}

	positions.Rewind().ForEachRemaining(func(v *math.Vec4) {
		*v = v.Translate(0, 0, -0.5)
	})

	i := 0
	for z := 0; z < zSegments; z++ {
		prev := uint16(z * circleSegments)
		next := uint16((z + 1) * circleSegments)
		for s := 0; s < circleSegments; s++ {
			cur := uint16(s)
			wrap := uint16((s + 1) % circleSegments)

			m.Indices[i+0] = next + cur
			m.Indices[i+1] = prev + cur
			m.Indices[i+2] = next + wrap

			m.Indices[i+3] = next + wrap
			m.Indices[i+4] = prev + cur
			m.Indices[i+5] = prev + wrap
			i += 6
		}
	}
	return m, nil
}

// putRing writes n ring points at CylinderRadius in the z=0 plane by repeated
// application of a single step rotation.
func putRing(positions, normals *math.Vec4Array, n int) error {
	step := math.RotationAxis(math.AxisZ(), math.Arc360/float32(n))
	p := math.Point(CylinderRadius, 0, 0)
	for i := 0; i < n; i++ {
		positions.Put(p)
		normal, err := p.AsVector().VectorNormalize()
		if err != nil {
			return fmt.Errorf("ring point %d: %w", i, err)
		}
		normals.Put(normal)

		if p, err = step.MulVec4(p).PointWDivide(); err != nil {
			return fmt.Errorf("ring point %d: %w", i, err)
		}
	}
	return nil
}
