// Package demos builds the demo scenes. Construction is GL free.
package demos

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/deepv/internal/config"
	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/internal/engine/scene"
	"github.com/Faultbox/deepv/pkg/math"
)

// ErrUnknownDemo is returned by Build for an unregistered name.
var ErrUnknownDemo = errors.New("demos: unknown demo")

// Builder creates a scene from config.
type Builder func(cfg *config.Config) (*scene.Scene, error)

var registry = map[string]Builder{
	"pd00": Pd00,
	"pd01": Pd01,
}

// Names returns the registered demo names in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the demo called name.
func Build(name string, cfg *config.Config) (*scene.Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q (have %v): %w", name, Names(), ErrUnknownDemo)
	}
	s, err := b(cfg)
	if err != nil {
		return nil, fmt.Errorf("demo %s: %w", name, err)
	}
	return s, nil
}

// newScene applies the camera settings common to every demo.
func newScene(cfg *config.Config, eye math.Vec4) (*scene.Scene, error) {
	s := scene.New()
	if err := s.Camera.SetLens(cfg.Scene.FovY, cfg.Scene.Near, cfg.Scene.Far); err != nil {
		return nil, err
	}
	if err := s.Camera.SetLookAt(eye, math.Origin(), math.AxisZ()); err != nil {
		return nil, err
	}
	return s, nil
}

func rgb(r, g, b float32) math.Vec4 {
	return math.Color(r, g, b, 1)
}

func gray(v float32) math.Vec4 {
	return rgb(v, v, v)
}

func bake(raw *mesh.RawMesh, err error) (*mesh.BakedMesh, error) {
	if err != nil {
		return nil, err
	}
	return raw.Bake(mesh.RecipeXYZ)
}
