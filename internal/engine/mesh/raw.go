// Package mesh generates indexed triangle meshes and bakes them for upload.
package mesh

import (
	"errors"
	"fmt"
)

// IndicesPerTriangle is the index stride of a triangle list.
const IndicesPerTriangle = 3

// MaxVertices is the largest vertex count addressable by uint16 indices.
const MaxVertices = 1 << 16

var (
	// ErrInvalidParameter is returned for out of range generator parameters.
	ErrInvalidParameter = errors.New("mesh: invalid parameter")
	// ErrIndexOverflow is returned when a mesh needs more vertices than uint16 can index.
	ErrIndexOverflow = errors.New("mesh: vertex count exceeds uint16 index range")
	// ErrMismatchedAttributes is returned when positions and normals differ in length.
	ErrMismatchedAttributes = errors.New("mesh: positions and normals differ in length")
	// ErrBadIndex is returned when an index does not reference a vertex.
	ErrBadIndex = errors.New("mesh: index out of range")
	// ErrNotTriangles is returned when the index count is not a multiple of 3.
	ErrNotTriangles = errors.New("mesh: index count is not a multiple of 3")
)

// RawMesh is an editable indexed triangle list.
type RawMesh struct {
	Attributes *VertexAttributes
	Indices    []uint16
}

// NewRawMesh allocates a mesh with zeroed attributes and indices.
func NewRawMesh(vertices, indices int) (*RawMesh, error) {
	if vertices < 0 || indices < 0 {
		return nil, fmt.Errorf("raw mesh %d vertices, %d indices: %w", vertices, indices, ErrInvalidParameter)
	}
	if vertices > MaxVertices {
		return nil, fmt.Errorf("raw mesh %d vertices: %w", vertices, ErrIndexOverflow)
	}
	return &RawMesh{
		Attributes: NewVertexAttributes(vertices),
		Indices:    make([]uint16, indices),
	}, nil
}

// VertexCount returns the number of vertices.
func (m *RawMesh) VertexCount() int {
	return m.Attributes.VertexCount()
}

// TriangleCount returns the number of triangles.
func (m *RawMesh) TriangleCount() int {
	return len(m.Indices) / IndicesPerTriangle
}

// Validate checks the mesh invariants.
func (m *RawMesh) Validate() error {
	if err := m.Attributes.Validate(); err != nil {
		return err
	}
	n := m.VertexCount()
	if n > MaxVertices {
		return fmt.Errorf("%d vertices: %w", n, ErrIndexOverflow)
	}
	if len(m.Indices)%IndicesPerTriangle != 0 {
		return fmt.Errorf("%d indices: %w", len(m.Indices), ErrNotTriangles)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d = %d, %d vertices: %w", i, idx, n, ErrBadIndex)
		}
	}
	return nil
}

// Bake validates the mesh and exports it with r.
func (m *RawMesh) Bake(r Recipe) (*BakedMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("bake: %w", err)
	}
	attrs, err := m.Attributes.Bake(r)
	if err != nil {
		return nil, fmt.Errorf("bake: %w", err)
	}
	indices := make([]uint16, len(m.Indices))
	copy(indices, m.Indices)
	return &BakedMesh{Attributes: attrs, Indices: indices}, nil
}

// BakedMesh is flat vertex data plus its index buffer, ready for upload.
type BakedMesh struct {
	Attributes *BakedAttributes
	Indices    []uint16
}

// VertexCount returns the number of vertices.
func (m *BakedMesh) VertexCount() int {
	return m.Attributes.VertexCount()
}

// TriangleCount returns the number of triangles.
func (m *BakedMesh) TriangleCount() int {
	return len(m.Indices) / IndicesPerTriangle
}
