package morph

import (
	"fmt"
	"time"

	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/pkg/math"
)

// Shape is a pose of the morphing sphere.
type Shape int

const (
	// Flat is the tessellated octahedron.
	Flat Shape = iota
	// Round is the same mesh projected onto the unit sphere.
	Round
)

func (s Shape) String() string {
	switch s {
	case Flat:
		return "flat"
	case Round:
		return "round"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Keyframe is a timeline entry: reach Shape after AnimateIn.
type Keyframe struct {
	Shape     Shape
	AnimateIn time.Duration
}

// SphereTimeline inflates for 6s, holds 3s, deflates for 3s and holds 3s.
var SphereTimeline = []Keyframe{
	{Shape: Round, AnimateIn: 6 * time.Second},
	{Shape: Round, AnimateIn: 3 * time.Second},
	{Shape: Flat, AnimateIn: 3 * time.Second},
	{Shape: Flat, AnimateIn: 3 * time.Second},
}

// MorphingSphere builds a morph between an octahedron tessellated to detail
// and its spherical projection. The zero frame is flat.
func MorphingSphere(detail int, timeline []Keyframe) (*Mesh, error) {
	if len(timeline) == 0 {
		return nil, ErrEmptyMorph
	}
	flat, err := mesh.TessellatedOctahedron(detail)
	if err != nil {
		return nil, fmt.Errorf("morphing sphere: %w", err)
	}
	round := flat.Attributes.Copy()
	if err := mesh.ArrangeOnSphere(round, math.Origin(), 1); err != nil {
		return nil, fmt.Errorf("morphing sphere: %w", err)
	}

	flatBaked, err := flat.Bake(mesh.RecipeXYZ)
	if err != nil {
		return nil, fmt.Errorf("morphing sphere: %w", err)
	}
	roundBaked, err := round.Bake(mesh.RecipeXYZ)
	if err != nil {
		return nil, fmt.Errorf("morphing sphere: %w", err)
	}

	m, err := NewMesh(flatBaked.Attributes, flatBaked.Indices)
	if err != nil {
		return nil, err
	}
	for _, k := range timeline {
		attrs := flatBaked.Attributes
		if k.Shape == Round {
			attrs = roundBaked
		}
		if err := m.AddFrame(attrs, k.AnimateIn); err != nil {
			return nil, fmt.Errorf("morphing sphere %v: %w", k.Shape, err)
		}
	}
	return m, nil
}
