package demos

import (
	"github.com/Faultbox/deepv/internal/config"
	"github.com/Faultbox/deepv/internal/engine/lighting"
	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/internal/engine/morph"
	"github.com/Faultbox/deepv/internal/engine/scene"
	"github.com/Faultbox/deepv/pkg/math"
)

// Pd01 is a sphere morphing to and from an octahedron next to an open
// two-sided cylinder.
func Pd01(cfg *config.Config) (*scene.Scene, error) {
	s, err := newScene(cfg, math.Point(1.9, 0, 0.7))
	if err != nil {
		return nil, err
	}
	s.ClearColor = [4]float32{0.2, 0.5, 0.5, 1}

	s.Lights.Ambient = gray(0.4)
	s.Lights.AddPoint(lighting.Point{
		Origin: math.Point(2.5, 0.7, 2),
		Color:  gray(0.5),
	})

	m, err := morph.MorphingSphere(cfg.Mesh.MorphLevel, morph.SphereTimeline)
	if err != nil {
		return nil, err
	}
	lump, err := scene.NewMorphLump(m, scene.Material{
		Diffuse:  rgb(0.8, 0.2, 0.4),
		Specular: math.Vec4{0.5, 0.5, 0.5, 20},
	})
	if err != nil {
		return nil, err
	}
	sphere := scene.NewPawn("morph-sphere").AddLump(lump)
	sphere.AddLump(scene.Spin(sphere.Transform, math.Vector(1, 1, 1), 50))
	sphere.Transform.
		SelfRotate(math.AxisZ(), 22.5).
		WorldTranslate(math.Vector(-0.4, 0.6, 0.5))
	s.AddPawn(sphere)

	tube, err := bake(mesh.NewCylinder(cfg.Mesh.CylinderSegments, cfg.Mesh.CylinderZSegments))
	if err != nil {
		return nil, err
	}
	const radius, height = 0.8, 1.3
	cylinder := scene.NewPawn("cylinder").AddLump(&scene.MeshLump{
		Mesh: tube,
		Material: scene.Material{
			Diffuse:  rgb(0.8, 0.8, 0.4),
			Specular: math.Vec4{0.5, 0.5, 0.5, 20},
			TwoSided: true,
		},
	})
	cylinder.Transform.
		SelfScale(math.Vector(radius, radius, height)).
		WorldTranslate(math.Vector(0.68, -0.3, -0.25))
	s.AddPawn(cylinder)

	return s, nil
}
