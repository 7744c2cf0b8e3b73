package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/deepv/pkg/math"
)

func TestOctahedron(t *testing.T) {
	m, err := Octahedron()
	require.NoError(t, err)

	assert.Equal(t, 24, m.VertexCount())
	assert.Equal(t, 8, m.TriangleCount())
	require.NoError(t, m.Validate())

	// top half indices are sequential, bottom half reversed
	for i := 0; i < 12; i++ {
		assert.Equal(t, uint16(i), m.Indices[i])
		assert.Equal(t, uint16(12+11-i), m.Indices[12+i])
	}
}

func TestOctahedronNormalsOutward(t *testing.T) {
	m, err := Octahedron()
	require.NoError(t, err)

	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Attributes.Positions.At(int(m.Indices[tri*3]))
		b := m.Attributes.Positions.At(int(m.Indices[tri*3+1]))
		c := m.Attributes.Positions.At(int(m.Indices[tri*3+2]))
		n := m.Attributes.Normals.At(int(m.Indices[tri*3]))

		// centroid of the face is on the side the normal points to
		centroid := a.Add(b).Add(c).Scale(1.0 / 3).AsVector()
		assert.Greater(t, centroid.Dot(n), float32(0), "triangle %d", tri)

		wound, err := faceNormal(a, b, c)
		require.NoError(t, err)
		assert.True(t, wound.NearlyEqual(n), "triangle %d winding %v, normal %v", tri, wound, n)
	}
}

func TestOctahedronFaceNormalsDiffer(t *testing.T) {
	m, err := Octahedron()
	require.NoError(t, err)

	seen := map[math.Vec4]bool{}
	for tri := 0; tri < 8; tri++ {
		seen[m.Attributes.Normals.At(tri*3)] = true
	}
	assert.Len(t, seen, 8)
}

func TestTessellatedOctahedronGrowth(t *testing.T) {
	for level := 1; level <= 4; level++ {
		m, err := TessellatedOctahedron(level)
		require.NoError(t, err)

		triangles := 8
		for i := 1; i < level; i++ {
			triangles *= 4
		}
		assert.Equal(t, triangles, m.TriangleCount(), "level %d", level)
		assert.NoError(t, m.Validate())
	}
}

func TestTessellatedOctahedronInvalid(t *testing.T) {
	_, err := TessellatedOctahedron(0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
