// Package scene is the pawn and lump graph that drives animation and drawing.
package scene

import (
	"fmt"
	"time"

	"github.com/Faultbox/deepv/internal/engine/camera"
	"github.com/Faultbox/deepv/internal/engine/lighting"
	"github.com/Faultbox/deepv/internal/engine/transform"
)

// Lump is a behavior attached to a pawn.
type Lump interface {
	Draw(p *Pawn, s *Scene, ctx DrawContext) error
	UpdateAnimations(delta time.Duration) error
}

// Pawn is a scene object: a transform, its lumps and owned pawns.
// Owned pawns are drawn with their own transform only.
type Pawn struct {
	Name      string
	Transform *transform.Transform

	lumps []Lump
	owned []*Pawn
}

// NewPawn returns a pawn with an identity transform.
func NewPawn(name string) *Pawn {
	return &Pawn{Name: name, Transform: transform.New()}
}

// AddLump attaches l.
func (p *Pawn) AddLump(l Lump) *Pawn {
	p.lumps = append(p.lumps, l)
	return p
}

// AddOwned attaches a child pawn.
func (p *Pawn) AddOwned(child *Pawn) *Pawn {
	p.owned = append(p.owned, child)
	return p
}

// Owned returns the child pawns.
func (p *Pawn) Owned() []*Pawn {
	return p.owned
}

// Draw draws every lump, then every owned pawn.
func (p *Pawn) Draw(s *Scene, ctx DrawContext) error {
	for _, l := range p.lumps {
		if err := l.Draw(p, s, ctx); err != nil {
			return fmt.Errorf("draw %s: %w", p.Name, err)
		}
	}
	for _, o := range p.owned {
		if err := o.Draw(s, ctx); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAnimations advances every lump, then every owned pawn.
func (p *Pawn) UpdateAnimations(delta time.Duration) error {
	for _, l := range p.lumps {
		if err := l.UpdateAnimations(delta); err != nil {
			return fmt.Errorf("animate %s: %w", p.Name, err)
		}
	}
	for _, o := range p.owned {
		if err := o.UpdateAnimations(delta); err != nil {
			return err
		}
	}
	return nil
}

// Scene owns the camera, the lights and the pawn tree.
type Scene struct {
	Camera *camera.Camera
	Lights lighting.Lights

	// ClearColor is the background RGBA.
	ClearColor [4]float32

	root *Pawn
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		Camera:     camera.New(),
		ClearColor: [4]float32{0.1, 0.4, 0.4, 1},
		root:       NewPawn("root"),
	}
}

// AddPawn adds p under the root.
func (s *Scene) AddPawn(p *Pawn) {
	s.root.AddOwned(p)
}

// Pawns returns the top level pawns.
func (s *Scene) Pawns() []*Pawn {
	return s.root.Owned()
}

// UpdateAnimations advances every pawn by delta.
func (s *Scene) UpdateAnimations(delta time.Duration) error {
	return s.root.UpdateAnimations(delta)
}

// Draw draws every pawn into ctx.
func (s *Scene) Draw(ctx DrawContext) error {
	return s.root.Draw(s, ctx)
}

// Resize updates the camera projection for a new viewport.
func (s *Scene) Resize(width, height int) error {
	return s.Camera.SetViewport(width, height)
}

// state returns the uniform state for drawing p with m.
func (s *Scene) state(p *Pawn, m Material) DrawState {
	return DrawState{
		Model:          p.Transform.ModelMatrix(),
		Normals:        p.Transform.NormalsMatrix(),
		ViewProjection: s.Camera.ViewProjectionMatrix(),
		Eye:            s.Camera.EyePosition(),
		Lights:         &s.Lights,
		Material:       m,
	}
}
