package mesh

import (
	"fmt"

	"github.com/Faultbox/deepv/pkg/math"
)

// VertexAttributes holds parallel per-vertex positions and normals.
type VertexAttributes struct {
	Positions *math.Vec4Array
	Normals   *math.Vec4Array
}

// NewVertexAttributes allocates zeroed positions and normals for n vertices.
func NewVertexAttributes(n int) *VertexAttributes {
	return &VertexAttributes{
		Positions: math.NewVec4Array(n),
		Normals:   math.NewVec4Array(n),
	}
}

// VertexCount returns the number of vertices.
func (a *VertexAttributes) VertexCount() int {
	return a.Positions.Len()
}

// Validate checks that positions and normals have the same length.
func (a *VertexAttributes) Validate() error {
	if a.Positions == nil || a.Normals == nil {
		return fmt.Errorf("missing positions or normals: %w", ErrMismatchedAttributes)
	}
	if a.Positions.Len() != a.Normals.Len() {
		return fmt.Errorf("%d positions, %d normals: %w",
			a.Positions.Len(), a.Normals.Len(), ErrMismatchedAttributes)
	}
	return nil
}

// Copy returns a deep copy with rewound cursors.
func (a *VertexAttributes) Copy() *VertexAttributes {
	return &VertexAttributes{
		Positions: a.Positions.Copy(),
		Normals:   a.Normals.Copy(),
	}
}

// Bake flattens the attributes to the widths chosen by r.
func (a *VertexAttributes) Bake(r Recipe) (*BakedAttributes, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &BakedAttributes{
		positions:          a.Positions.Export(r.Positions),
		positionComponents: r.Positions,
		normals:            a.Normals.Export(r.Normals),
		normalComponents:   r.Normals,
		vertexCount:        a.VertexCount(),
	}, nil
}

// Recipe selects how many components of each attribute survive baking.
type Recipe struct {
	Positions math.Components
	Normals   math.Components
}

// RecipeXYZ keeps xyz of both positions and normals, the usual GPU layout.
var RecipeXYZ = Recipe{Positions: math.ComponentsThree, Normals: math.ComponentsThree}

// Validate checks both component widths.
func (r Recipe) Validate() error {
	if !r.Positions.Valid() || !r.Normals.Valid() {
		return fmt.Errorf("recipe %v/%v: %w", r.Positions, r.Normals, ErrInvalidParameter)
	}
	return nil
}

// BakedAttributes is an immutable flat export of VertexAttributes.
// The returned slices must not be modified.
type BakedAttributes struct {
	positions          []float32
	positionComponents math.Components
	normals            []float32
	normalComponents   math.Components
	vertexCount        int
}

// Positions returns the flat position buffer.
func (b *BakedAttributes) Positions() []float32 { return b.positions }

// PositionComponents returns the floats per position.
func (b *BakedAttributes) PositionComponents() math.Components { return b.positionComponents }

// Normals returns the flat normal buffer.
func (b *BakedAttributes) Normals() []float32 { return b.normals }

// NormalComponents returns the floats per normal.
func (b *BakedAttributes) NormalComponents() math.Components { return b.normalComponents }

// VertexCount returns the number of vertices.
func (b *BakedAttributes) VertexCount() int { return b.vertexCount }

// Position returns vertex i's position padded with zeros to a Vec4.
func (b *BakedAttributes) Position(i int) math.Vec4 {
	return unpack(b.positions, b.positionComponents, i)
}

// Normal returns vertex i's normal padded with zeros to a Vec4.
func (b *BakedAttributes) Normal(i int) math.Vec4 {
	return unpack(b.normals, b.normalComponents, i)
}

func unpack(data []float32, c math.Components, i int) math.Vec4 {
	var v math.Vec4
	n := c.Count()
	copy(v[:n], data[i*n:(i+1)*n])
	return v
}
