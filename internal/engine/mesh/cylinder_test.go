package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCylinderCounts(t *testing.T) {
	m, err := NewCylinder(8, 3)
	require.NoError(t, err)

	assert.Equal(t, 8*4, m.VertexCount())
	assert.Equal(t, 2*8*3, m.TriangleCount())
	assert.NoError(t, m.Validate())
}

func TestCylinderSeamWraps(t *testing.T) {
	m, err := NewCylinder(8, 1)
	require.NoError(t, err)

	// last segment of the band stitches back to the first ring point
	last := m.Indices[len(m.Indices)-6:]
	assert.Equal(t, []uint16{15, 7, 8, 8, 7, 0}, last)

	first := m.Indices[:6]
	assert.Equal(t, []uint16{8, 0, 9, 9, 0, 1}, first)
}

func TestCylinderGeometry(t *testing.T) {
	m, err := NewCylinder(12, 2)
	require.NoError(t, err)

	b := BoundsOf(m.Attributes.Positions)
	assert.InDelta(t, -0.5, b.Min.Z(), 1e-6)
	assert.InDelta(t, 0.5, b.Max.Z(), 1e-6)

	for i := 0; i < m.VertexCount(); i++ {
		p := m.Attributes.Positions.At(i)
		n := m.Attributes.Normals.At(i)

		assert.True(t, p.IsPoint(), "vertex %d", i)
		assert.InDelta(t, CylinderRadius, p.AsVector().Translate(0, 0, -p.Z()).Length(), 1e-5, "vertex %d radius", i)
		assert.InDelta(t, 1, n.Length(), 1e-5, "vertex %d normal", i)
		assert.InDelta(t, 0, n.Z(), 1e-6, "vertex %d normal z", i)
	}
}

func TestCylinderInvalid(t *testing.T) {
	tests := []struct {
		name          string
		circle, zSegs int
	}{
		{"two circle segments", 2, 1},
		{"no z segments", 8, 0},
		{"negative", -3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCylinder(tt.circle, tt.zSegs)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestCylinderOverflow(t *testing.T) {
	_, err := NewCylinder(1000, 100)
	assert.ErrorIs(t, err, ErrIndexOverflow)
}
