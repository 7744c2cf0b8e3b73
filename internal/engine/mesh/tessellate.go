package mesh

import (
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

const pointsPerTessellatedTriangle = 6

// medianPattern splits a, b, c with midpoints ab (3), bc (4) and ca (5)
// into four triangles of the same winding.
var medianPattern = [...]uint16{
	0, 3, 5,
	3, 1, 4,
	5, 3, 4,
	5, 4, 2,
}

// TessellateMedian splits every triangle of in into four by its edge
// midpoints. The result has six unshared vertices per input triangle, all
// carrying the triangle's flat normal. in is not modified.
func TessellateMedian(in *RawMesh) (*RawMesh, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	triangles := in.TriangleCount()
	vertices := triangles * pointsPerTessellatedTriangle
	if vertices > MaxVertices {
		return nil, fmt.Errorf("tessellate %d triangles into %d vertices: %w", triangles, vertices, ErrIndexOverflow)
	}
	out, err := NewRawMesh(vertices, triangles*len(medianPattern))
	if err != nil {
		return nil, err
	}

	src := in.Attributes.Positions
	for t := 0; t < triangles; t++ {
		base := t * pointsPerTessellatedTriangle
		positions := out.Attributes.Positions.Slice(base, pointsPerTessellatedTriangle)
		normals := out.Attributes.Normals.Slice(base, pointsPerTessellatedTriangle)

		a := src.At(int(in.Indices[t*3+0]))
		b := src.At(int(in.Indices[t*3+1]))
		c := src.At(int(in.Indices[t*3+2]))

		normal, err := faceNormal(a, b, c)
		if err != nil {
			return nil, fmt.Errorf("tessellate triangle %d: %w", t, err)
		}

		positions.Put(a)
		positions.Put(b)
		positions.Put(c)
		positions.Put(midpoint(a, b))
		positions.Put(midpoint(b, c))
		positions.Put(midpoint(c, a))
		for i := 0; i < pointsPerTessellatedTriangle; i++ {
			normals.Put(normal)
		}

		for i, idx := range medianPattern {
			out.Indices[t*len(medianPattern)+i] = uint16(base) + idx
		}
	}
	return out, nil
}

func midpoint(a, b math.Vec4) math.Vec4 {
	return a.Add(b.Sub(a).Scale(0.5)).AsPoint()
}
