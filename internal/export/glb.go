// Package export writes baked meshes as binary glTF.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/deepv/internal/engine/mesh"
	"github.com/Faultbox/deepv/pkg/math"
)

// ErrComponents is returned when positions or normals are not baked as xyz.
var ErrComponents = errors.New("export: positions and normals must have 3 components")

// Document builds a glTF document with a single node holding m.
func Document(name string, m *mesh.BakedMesh) (*gltf.Document, error) {
	a := m.Attributes
	if a.PositionComponents() != math.ComponentsThree || a.NormalComponents() != math.ComponentsThree {
		return nil, fmt.Errorf("%s: %s/%s: %w", name, a.PositionComponents(), a.NormalComponents(), ErrComponents)
	}

	doc := gltf.NewDocument()
	position := modeler.WritePosition(doc, triples(a.Positions()))
	normal := modeler.WriteNormal(doc, triples(a.Normals()))
	indices := modeler.WriteIndices(doc, m.Indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: map[string]int{gltf.POSITION: position, gltf.NORMAL: normal},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WriteGLB encodes m as a GLB stream.
func WriteGLB(w io.Writer, name string, m *mesh.BakedMesh) error {
	doc, err := Document(name, m)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

// SaveGLB writes m to path.
func SaveGLB(path, name string, m *mesh.BakedMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGLB(f, name, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func triples(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		copy(out[i][:], flat[i*3:i*3+3])
	}
	return out
}
