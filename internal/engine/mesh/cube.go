package mesh

import (
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

// CubeFaces selects the cube variant.
type CubeFaces int

const (
	// SixFaces is a closed unit cube.
	SixFaces CubeFaces = 6
	// FourFaces keeps top, bottom, left and right but no front or back.
	FourFaces CubeFaces = 4
)

const pointsPerFace = 4

var faceIndices = [...]uint16{0, 1, 2, 0, 2, 3}

// facePlacements build each face from the canonical face in the z=0 plane.
// Order matters: FourFaces uses the first four.
var facePlacements = [...]func(m *math.Mat4){
	// top
	func(m *math.Mat4) { m.Translate(0, 0, 1) },
	// bottom
	func(m *math.Mat4) { m.Translate(0, 1, 0).Rotate(math.AxisX(), math.Arc180) },
	// left
	func(m *math.Mat4) { m.Rotate(math.AxisX(), math.Arc90) },
	// right
	func(m *math.Mat4) { m.Translate(0, 1, 1).Rotate(math.AxisX(), math.Arc270) },
	// front
	func(m *math.Mat4) { m.Translate(1, 0, 1).Rotate(math.AxisY(), math.Arc90) },
	// back
	func(m *math.Mat4) { m.Rotate(math.AxisY(), math.Arc270) },
}

// Cube returns a unit cube centered on the origin with one quad per face
// and flat outward normals.
func Cube(faces CubeFaces) (*RawMesh, error) {
	if faces != SixFaces && faces != FourFaces {
		return nil, fmt.Errorf("cube faces %d: %w", faces, ErrInvalidParameter)
	}
	n := int(faces)
	m, err := NewRawMesh(n*pointsPerFace, n*len(faceIndices))
	if err != nil {
		return nil, err
	}

	var placement math.Mat4
	for face := 0; face < n; face++ {
		base := face * pointsPerFace
		positions := m.Attributes.Positions.Slice(base, pointsPerFace)
		normals := m.Attributes.Normals.Slice(base, pointsPerFace)

		putFace(positions, normals)
		for i, idx := range faceIndices {
			m.Indices[face*len(faceIndices)+i] = uint16(base) + idx
		}

		facePlacements[face](placement.SetIdentity())
		if err := place(positions, normals, &placement); err != nil {
			return nil, fmt.Errorf("cube face %d: %w", face, err)
		}
	}

	placement.SetIdentity().Translate(-0.5, -0.5, -0.5)
	if err := place(m.Attributes.Positions, m.Attributes.Normals, &placement); err != nil {
		return nil, fmt.Errorf("cube center: %w", err)
	}
	return m, nil
}

func putFace(positions, normals *math.Vec4Array) {
	positions.PutPoint(0, 0, 0)
	positions.PutPoint(1, 0, 0)
	positions.PutPoint(1, 1, 0)
	positions.PutPoint(0, 1, 0)
	for i := 0; i < pointsPerFace; i++ {
		normals.Put(math.AxisZ())
	}
}

// place applies m to positions (then w-divides) and normals (then normalizes).
func place(positions, normals *math.Vec4Array, m *math.Mat4) error {
	positions.MultiplyAll(m)
	if err := positions.PerspectiveDivideAll(); err != nil {
		return err
	}
	normals.MultiplyAll(m)
	return normals.NormalizeAll()
}
