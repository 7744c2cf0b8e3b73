// Package renderer draws scene meshes and morphs with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deepv/internal/engine/lighting"
	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/internal/engine/scene"
	"github.com/Faultbox/deepv/internal/engine/shader"
	"github.com/Faultbox/deepv/internal/logger"
	"github.com/Faultbox/deepv/pkg/math"
)

// DefaultLightSlots is the number of light slots compiled into the shaders.
const DefaultLightSlots = 4

// ErrUnbakedComponents is returned for attributes not baked as xyz.
var ErrUnbakedComponents = errors.New("renderer: attributes must be baked with 3 components")

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	LightSlots int
}

// Renderer implements scene.DrawContext.
// IMPORTANT: Must be created AFTER the OpenGL context!
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram  *program
	morphProgram *program
	lights       *lighting.Exporter

	vertices map[*mesh.BakedAttributes]*vertexBuffers
	indices  map[indexKey]uint32
}

var _ scene.DrawContext = (*Renderer)(nil)

type vertexBuffers struct {
	positions uint32
	normals   uint32
}

// indexKey identifies an index slice by its backing array and length.
type indexKey struct {
	first *uint16
	count int
}

func keyOf(indices []uint16) indexKey {
	if len(indices) == 0 {
		return indexKey{}
	}
	return indexKey{first: &indices[0], count: len(indices)}
}

// New initializes GL and compiles the programs.
func New(cfg Config) (*Renderer, error) {
	if cfg.LightSlots <= 0 {
		cfg.LightSlots = DefaultLightSlots
	}
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		vertices: make(map[*mesh.BakedAttributes]*vertexBuffers),
		indices:  make(map[indexKey]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)

	var err error
	if r.lights, err = lighting.NewExporter(cfg.LightSlots); err != nil {
		return nil, err
	}
	if r.meshProgram, err = newMeshProgram(cfg.LightSlots); err != nil {
		return nil, err
	}
	if r.morphProgram, err = newMorphProgram(cfg.LightSlots); err != nil {
		r.meshProgram.Delete()
		return nil, err
	}
	gl.GenVertexArrays(1, &r.meshProgram.vao)
	gl.GenVertexArrays(1, &r.morphProgram.vao)

	r.Resize(cfg.Width, cfg.Height)
	r.log.Debug("renderer ready", zap.Int("lightSlots", cfg.LightSlots))
	return r, nil
}

// Close releases every GL object.
func (r *Renderer) Close() {
	r.log.Info("closing renderer",
		zap.Int("vertexBuffers", len(r.vertices)),
		zap.Int("indexBuffers", len(r.indices)),
	)
	for _, b := range r.vertices {
		gl.DeleteBuffers(1, &b.positions)
		gl.DeleteBuffers(1, &b.normals)
	}
	for _, id := range r.indices {
		gl.DeleteBuffers(1, &id)
	}
	r.vertices = map[*mesh.BakedAttributes]*vertexBuffers{}
	r.indices = map[indexKey]uint32{}
	for _, p := range []*program{r.meshProgram, r.morphProgram} {
		if p == nil {
			continue
		}
		if p.vao != 0 {
			gl.DeleteVertexArrays(1, &p.vao)
		}
		p.Delete()
	}
}

// Resize sets the GL viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the frame.
func (r *Renderer) Begin(clear [4]float32) {
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh implements scene.DrawContext.
func (r *Renderer) DrawMesh(d scene.MeshDraw) error {
	p := r.meshProgram
	if err := r.setup(p, d.DrawState); err != nil {
		return err
	}
	a, err := r.upload(d.Mesh.Attributes)
	if err != nil {
		return err
	}
	bindAttribute(p.position, a.positions)
	bindAttribute(p.normal, a.normals)
	r.drawElements(d.Mesh.Indices)
	return nil
}

// DrawMorph implements scene.DrawContext.
func (r *Renderer) DrawMorph(d scene.MorphDraw) error {
	p := r.morphProgram
	if err := r.setup(p, d.DrawState); err != nil {
		return err
	}
	from, err := r.upload(d.From)
	if err != nil {
		return err
	}
	to, err := r.upload(d.To)
	if err != nil {
		return err
	}
	p.fraction.SetFloat(d.Fraction)
	bindAttribute(p.position, from.positions)
	bindAttribute(p.normal, from.normals)
	bindAttribute(p.positionB, to.positions)
	bindAttribute(p.normalB, to.normals)
	r.drawElements(d.Indices)
	return nil
}

func (r *Renderer) setup(p *program, s scene.DrawState) error {
	if err := r.lights.Rebuild(s.Lights); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	p.Use()
	gl.BindVertexArray(p.vao)

	p.model.SetMatrix(s.Model)
	p.normals.SetMatrix(s.Normals)
	p.viewProjection.SetMatrix(s.ViewProjection)
	p.eye.SetVec4(s.Eye)
	p.diffuse.SetVec4(s.Material.Diffuse)
	p.specular.SetVec4(s.Material.Specular)
	p.twoSided.SetBool(s.Material.TwoSided)
	p.ambient.SetVec4(s.Lights.Ambient)
	p.specs.SetVec4Array(r.lights.Specs())
	p.colors.SetVec4Array(r.lights.Colors())

	if s.Material.TwoSided {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}
	return nil
}

// upload returns the buffers of a, creating them on first use.
func (r *Renderer) upload(a *mesh.BakedAttributes) (*vertexBuffers, error) {
	if b, ok := r.vertices[a]; ok {
		return b, nil
	}
	if a.PositionComponents() != math.ComponentsThree || a.NormalComponents() != math.ComponentsThree {
		return nil, fmt.Errorf("upload %s/%s: %w", a.PositionComponents(), a.NormalComponents(), ErrUnbakedComponents)
	}
	b := &vertexBuffers{
		positions: arrayBuffer(a.Positions()),
		normals:   arrayBuffer(a.Normals()),
	}
	r.vertices[a] = b
	r.log.Debug("uploaded vertices", zap.Int("vertices", a.VertexCount()))
	return b, nil
}

func (r *Renderer) drawElements(indices []uint16) {
	key := keyOf(indices)
	id, ok := r.indices[key]
	if !ok {
		gl.GenBuffers(1, &id)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
		r.indices[key] = id
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func arrayBuffer(data []float32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return id
}

func bindAttribute(a shader.Attribute, buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	a.PointTo(math.ComponentsThree.Count())
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
