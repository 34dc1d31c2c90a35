package obj

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLTF builds a single-node document holding m as one indexed
// triangle primitive.
func ExportGLTF(m *Mesh, name string) (*gltf.Document, error) {
	if m.Empty() {
		return nil, errors.New("nothing to export: mesh has no triangles")
	}

	doc := gltf.NewDocument()

	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = p
	}
	normals := make([][3]float32, len(m.Normals))
	for i, n := range m.Normals {
		if n.Len() > 0.5 {
			n = n.Normalize()
		}
		normals[i] = n
	}
	uvs := make([][2]float32, len(m.Texcoords))
	for i, uv := range m.Texcoords {
		uvs[i] = uv
	}

	attributes := map[string]uint32{
		"POSITION":   modeler.WritePosition(doc, positions),
		"NORMAL":     modeler.WriteNormal(doc, normals),
		"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
	}
	indicesAccessor := modeler.WriteIndices(doc, m.Indices)

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "default",
		DoubleSided: true,
	})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    &indicesAccessor,
				Attributes: attributes,
				Material:   gltf.Index(0),
			},
		},
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})

	return doc, nil
}

// SaveGLTF encodes doc as GLB when binary is set, otherwise as JSON with
// the buffers embedded as data URIs.
func SaveGLTF(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
	}
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	return errors.Wrap(encoder.Encode(doc), "encode gltf")
}
