// Package obj loads Wavefront OBJ triangle meshes and welds their
// per-attribute indices into a single indexed vertex stream.
package obj

import (
	"github.com/go-gl/mathgl/mgl32"
)

type (
	Position = mgl32.Vec3
	Normal   = mgl32.Vec3
	UV       = mgl32.Vec2
)

// Corner is one face corner: zero-based indices into the raw position,
// texcoord and normal arrays. Two corners are the same welded vertex iff
// all three indices match.
type Corner struct {
	Position uint32
	Texcoord uint32
	Normal   uint32
}

// Raw holds the attribute arrays exactly as they appear in the file,
// plus the face corners that reference them.
type Raw struct {
	Positions []Position
	Normals   []Normal
	Texcoords []UV
	Corners   []Corner

	// lines ignored because of an unknown tag
	Skipped int
}

// Mesh is the welded result. Positions[i], Normals[i] and Texcoords[i]
// describe one GPU vertex; Indices holds three entries per triangle.
type Mesh struct {
	Positions []Position
	Normals   []Normal
	Texcoords []UV
	Indices   []uint32
}

type Stats struct {
	Vertices  int
	Indices   int
	Triangles int
}

func emptyMesh() *Mesh {
	return &Mesh{
		Positions: []Position{},
		Normals:   []Normal{},
		Texcoords: []UV{},
		Indices:   []uint32{},
	}
}

func (m *Mesh) Stats() Stats {
	return Stats{
		Vertices:  len(m.Positions),
		Indices:   len(m.Indices),
		Triangles: len(m.Indices) / 3,
	}
}

func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// FlatPositions returns x,y,z triples packed for a vertex buffer upload.
func (m *Mesh) FlatPositions() []float32 {
	return flatten3(m.Positions)
}

func (m *Mesh) FlatNormals() []float32 {
	return flatten3(m.Normals)
}

func (m *Mesh) FlatTexcoords() []float32 {
	out := make([]float32, 0, len(m.Texcoords)*2)
	for _, uv := range m.Texcoords {
		out = append(out, uv[0], uv[1])
	}
	return out
}

func flatten3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
