package mesh

import (
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

// ArrangeOnSphere projects every position onto the sphere of radius around
// center and replaces its normal with the outward radial direction.
func ArrangeOnSphere(attrs *VertexAttributes, center math.Vec4, radius float32) error {
	if radius <= 0 {
		return fmt.Errorf("sphere radius %g: %w", radius, ErrInvalidParameter)
	}
	if err := attrs.Validate(); err != nil {
		return err
	}
	center = center.AsPoint()
	for i := 0; i < attrs.VertexCount(); i++ {
		p := attrs.Positions.Ref(i)
		normal, err := p.Sub(center).AsVector().VectorNormalize()
		if err != nil {
			return fmt.Errorf("sphere vertex %d: %w", i, err)
		}
		attrs.Normals.Set(i, normal)
		*p = center.Add(normal.Scale(radius))
	}
	return nil
}

// Sphere returns a unit sphere built from an octahedron tessellated to
// detail. Faces are flat triangles but every normal is radial.
func Sphere(detail int) (*RawMesh, error) {
	m, err := TessellatedOctahedron(detail)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	if err := ArrangeOnSphere(m.Attributes, math.Origin(), 1); err != nil {
		return nil, err
	}
	return m, nil
}
