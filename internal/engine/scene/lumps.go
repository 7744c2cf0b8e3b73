package scene

import (
	"time"

	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/internal/engine/morph"
	"github.com/Faultbox/deepv/internal/engine/transform"
	"github.com/Faultbox/deepv/pkg/math"
)

// MeshLump draws a static mesh with the pawn transform.
type MeshLump struct {
	Mesh     *mesh.BakedMesh
	Material Material
}

// Draw implements Lump.
func (l *MeshLump) Draw(p *Pawn, s *Scene, ctx DrawContext) error {
	return ctx.DrawMesh(MeshDraw{DrawState: s.state(p, l.Material), Mesh: l.Mesh})
}

// UpdateAnimations implements Lump.
func (l *MeshLump) UpdateAnimations(time.Duration) error { return nil }

// MorphLump plays a morph mesh and draws its current blend.
type MorphLump struct {
	Material Material

	interpolator *morph.Interpolator
}

// NewMorphLump starts playing m from time 0.
func NewMorphLump(m *morph.Mesh, material Material) (*MorphLump, error) {
	it, err := morph.NewInterpolator(m)
	if err != nil {
		return nil, err
	}
	return &MorphLump{Material: material, interpolator: it}, nil
}

// Interpolator returns the playback state.
func (l *MorphLump) Interpolator() *morph.Interpolator {
	return l.interpolator
}

// Draw implements Lump.
func (l *MorphLump) Draw(p *Pawn, s *Scene, ctx DrawContext) error {
	step := l.interpolator.Current()
	return ctx.DrawMorph(MorphDraw{
		DrawState: s.state(p, l.Material),
		Indices:   l.interpolator.Mesh().Indices(),
		From:      step.First.Attributes,
		To:        step.Second.Attributes,
		Fraction:  l.interpolator.Fraction(),
	})
}

// UpdateAnimations implements Lump.
func (l *MorphLump) UpdateAnimations(delta time.Duration) error {
	return l.interpolator.Update(delta)
}

// AnimatorLump runs a callback on every animation update and draws nothing.
type AnimatorLump func(delta time.Duration) error

// Draw implements Lump.
func (f AnimatorLump) Draw(*Pawn, *Scene, DrawContext) error { return nil }

// UpdateAnimations implements Lump.
func (f AnimatorLump) UpdateAnimations(delta time.Duration) error { return f(delta) }

// Spin rotates t around axis at degreesPerSecond.
func Spin(t *transform.Transform, axis math.Vec4, degreesPerSecond float32) AnimatorLump {
	return func(delta time.Duration) error {
		t.SelfRotate(axis, float32(delta.Seconds())*degreesPerSecond)
		return nil
	}
}
