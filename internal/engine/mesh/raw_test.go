package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/deepv/pkg/math"
)

func TestNewRawMeshLimits(t *testing.T) {
	_, err := NewRawMesh(MaxVertices, 0)
	assert.NoError(t, err)

	_, err = NewRawMesh(MaxVertices+1, 0)
	assert.ErrorIs(t, err, ErrIndexOverflow)

	_, err = NewRawMesh(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRawMeshValidate(t *testing.T) {
	m, err := NewRawMesh(3, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Validate(), ErrNotTriangles)

	m.Indices = m.Indices[:3]
	assert.NoError(t, m.Validate())

	m.Indices[1] = 3
	assert.ErrorIs(t, m.Validate(), ErrBadIndex)

	m.Indices[1] = 1
	m.Attributes.Normals = math.NewVec4Array(2)
	assert.ErrorIs(t, m.Validate(), ErrMismatchedAttributes)
}

func TestBakeRecipe(t *testing.T) {
	attrs := NewVertexAttributes(2)
	attrs.Positions.PutPoint(1, 2, 3)
	attrs.Positions.PutPoint(4, 5, 6)
	attrs.Normals.Put(math.AxisX())
	attrs.Normals.Put(math.AxisY())

	baked, err := attrs.Bake(Recipe{Positions: math.ComponentsFour, Normals: math.ComponentsTwo})
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 2, 3, 1, 4, 5, 6, 1}, baked.Positions())
	assert.Equal(t, []float32{1, 0, 0, 1}, baked.Normals())
	assert.Equal(t, 2, baked.VertexCount())
	assert.Equal(t, math.Point(4, 5, 6), baked.Position(1))
	assert.Equal(t, math.Vector(0, 1, 0), baked.Normal(1))

	_, err = attrs.Bake(Recipe{Positions: math.Components(7), Normals: math.ComponentsThree})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestVertexAttributesCopy(t *testing.T) {
	attrs := NewVertexAttributes(1)
	attrs.Positions.PutPoint(1, 1, 1)
	cp := attrs.Copy()
	cp.Positions.Set(0, math.Origin())

	assert.Equal(t, math.Point(1, 1, 1), attrs.Positions.At(0))
	assert.Equal(t, 0, cp.Positions.Position())
}

func TestBoundsOf(t *testing.T) {
	a := math.NewVec4Array(3)
	a.PutPoint(-1, 2, 0)
	a.PutPoint(3, -2, 1)
	a.PutPoint(0, 0, -5)

	b := BoundsOf(a)
	assert.Equal(t, math.Point(-1, -2, -5), b.Min)
	assert.Equal(t, math.Point(3, 2, 1), b.Max)
	assert.Equal(t, math.Vector(4, 4, 6), b.Size())
	assert.Equal(t, math.Point(1, 0, -2), b.Center())
}
