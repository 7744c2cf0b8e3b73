package mesh

import (
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

// pyramidPositions is the top half of the octahedron: four unshared
// triangles around the apex (0, 0, 1).
var pyramidPositions = [...]math.Vec4{
	math.Point(0, 0, 1), math.Point(1, 0, 0), math.Point(0, 1, 0),
	math.Point(0, 0, 1), math.Point(0, 1, 0), math.Point(-1, 0, 0),
	math.Point(0, 0, 1), math.Point(-1, 0, 0), math.Point(0, -1, 0),
	math.Point(0, 0, 1), math.Point(0, -1, 0), math.Point(1, 0, 0),
}

const pyramidVertices = len(pyramidPositions)

// Octahedron returns a flat-shaded octahedron with unit vertex distance.
// Every face has its own three vertices.
func Octahedron() (*RawMesh, error) {
	m, err := NewRawMesh(2*pyramidVertices, 2*pyramidVertices)
	if err != nil {
		return nil, err
	}

	topPositions := m.Attributes.Positions.Slice(0, pyramidVertices)
	topNormals := m.Attributes.Normals.Slice(0, pyramidVertices)
	if err := putPyramid(topPositions, topNormals); err != nil {
		return nil, err
	}
	for i := 0; i < pyramidVertices; i++ {
		m.Indices[i] = uint16(i)
	}

	// the bottom mirrors z and reverses winding to stay outward facing
	mirror := func(v *math.Vec4) { v[2] = -v[2] }
	bottomPositions := m.Attributes.Positions.Slice(pyramidVertices, pyramidVertices)
	bottomNormals := m.Attributes.Normals.Slice(pyramidVertices, pyramidVertices)
	topPositions.Rewind().WriteRemainingTo(bottomPositions, mirror)
	topNormals.Rewind().WriteRemainingTo(bottomNormals, mirror)
	for i := 0; i < pyramidVertices; i++ {
		m.Indices[pyramidVertices+i] = uint16(pyramidVertices + (pyramidVertices - 1 - i))
	}
	return m, nil
}

func putPyramid(positions, normals *math.Vec4Array) error {
	for i := 0; i < pyramidVertices; i += IndicesPerTriangle {
		a, b, c := pyramidPositions[i], pyramidPositions[i+1], pyramidPositions[i+2]
		normal, err := faceNormal(a, b, c)
		if err != nil {
			return fmt.Errorf("octahedron face %d: %w", i/IndicesPerTriangle, err)
		}
		for _, p := range [...]math.Vec4{a, b, c} {
			positions.Put(p)
			normals.Put(normal)
		}
	}
	return nil
}

// faceNormal returns the unit normal of the counter-clockwise triangle a, b, c.
func faceNormal(a, b, c math.Vec4) (math.Vec4, error) {
	ab := b.Sub(a)
	bc := c.Sub(b)
	return ab.Cross(bc).VectorNormalize()
}

// TessellatedOctahedron returns an octahedron subdivided by level-1 median
// passes. Level 1 is the plain octahedron.
func TessellatedOctahedron(level int) (*RawMesh, error) {
	if level < 1 {
		return nil, fmt.Errorf("tessellation level %d: %w", level, ErrInvalidParameter)
	}
	m, err := Octahedron()
	if err != nil {
		return nil, err
	}
	for i := 1; i < level; i++ {
		if m, err = TessellateMedian(m); err != nil {
			return nil, fmt.Errorf("tessellation level %d: %w", i+1, err)
		}
	}
	return m, nil
}
