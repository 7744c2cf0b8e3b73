package scene

import (
	"github.com/Faultbox/deepv/internal/engine/lighting"
	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/pkg/math"
)

// Material is the surface color of a drawn mesh.
type Material struct {
	// Diffuse is the base RGBA color.
	Diffuse math.Vec4
	// Specular is the highlight RGB; w is the shininess exponent.
	Specular math.Vec4
	// TwoSided disables back face culling.
	TwoSided bool
}

// DrawState is the per draw uniform state shared by all draw calls.
type DrawState struct {
	Model          math.Mat4
	Normals        math.Mat4
	ViewProjection math.Mat4
	Eye            math.Vec4
	Lights         *lighting.Lights
	Material       Material
}

// MeshDraw draws a static baked mesh.
type MeshDraw struct {
	DrawState
	Mesh *mesh.BakedMesh
}

// MorphDraw draws the blend of two frames sharing Indices.
type MorphDraw struct {
	DrawState
	Indices  []uint16
	From     *mesh.BakedAttributes
	To       *mesh.BakedAttributes
	Fraction float32
}

// DrawContext executes draw calls. The GL renderer implements it.
type DrawContext interface {
	DrawMesh(d MeshDraw) error
	DrawMorph(d MorphDraw) error
}
