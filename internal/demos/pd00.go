package demos

import (
	"github.com/Faultbox/deepv/internal/config"
	"github.com/Faultbox/deepv/internal/engine/lighting"
	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/internal/engine/scene"
	"github.com/Faultbox/deepv/pkg/math"
)

// Pd00 is two cubes and a rotating sphere lit by a sun and a bulb.
func Pd00(cfg *config.Config) (*scene.Scene, error) {
	s, err := newScene(cfg, math.Point(1.6, 0, 0.7))
	if err != nil {
		return nil, err
	}
	s.ClearColor = [4]float32{0.1, 0.4, 0.4, 1}

	s.Lights.Ambient = gray(0.4)
	s.Lights.AddDirect(lighting.Direct{
		// from -X, 45 degrees up
		Direction: lighting.SunDirection(180, 45),
		Color:     gray(0.3),
	})
	s.Lights.AddPoint(lighting.Point{
		Origin: math.Point(2, 5, 2),
		Color:  gray(0.5),
	})

	cube, err := bake(mesh.Cube(mesh.SixFaces))
	if err != nil {
		return nil, err
	}

	scube := scene.NewPawn("scube").AddLump(&scene.MeshLump{
		Mesh: cube,
		Material: scene.Material{
			Diffuse:  math.Vec4{0.63671875, 0.76953125, 0.22265625, 1},
			Specular: math.Vec4{0.9, 0.7, 0.1, 3.5},
		},
	})
	scube.AddLump(scene.Spin(scube.Transform, math.AxisZ(), 50))
	scube.Transform.
		SelfScale(math.Vector(1.1, 1.1, 1.1)).
		WorldTranslate(math.Vector(-0.5, 0.7, 0))
	s.AddPawn(scube)

	bube := scene.NewPawn("bube").AddLump(&scene.MeshLump{
		Mesh: cube,
		Material: scene.Material{
			Diffuse:  math.Vec4{0.63671875, 0.1, 0.22265625, 1},
			Specular: math.Vec4{1, 0.1, 0.1, 4.5},
		},
	})
	bube.Transform.
		SelfRotate(math.AxisZ(), 22.5).
		SelfRotate(math.AxisY(), 22.5).
		WorldTranslate(math.Vector(-0.5, -0.6, -0.2))
	s.AddPawn(bube)

	sphere, err := bake(mesh.Sphere(cfg.Mesh.SphereLevel))
	if err != nil {
		return nil, err
	}
	ball := scene.NewPawn("sphere").AddLump(&scene.MeshLump{
		Mesh: sphere,
		Material: scene.Material{
			Diffuse:  math.Vec4{0.3, 0.05, 0.2, 1},
			Specular: math.Vec4{1, 1, 0, 20.5},
		},
	})
	ball.AddLump(scene.Spin(ball.Transform, math.AxisY(), 30))
	ball.Transform.
		SelfScale(math.Vector(0.7, 0.7, 0.7)).
		WorldTranslate(math.Vector(0.4, 0, -0.9))
	s.AddPawn(ball)

	return s, nil
}
