package main

import (
	"fmt"
	"image/color"
	"time"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/thedaneeffect/objweld/config"
	"github.com/thedaneeffect/objweld/obj"
)

const (
	repeatDelay    = 30 // ticks
	repeatInterval = 4
)

type game struct {
	cfg     *config.Viewer
	mesh    *obj.Mesh
	texture *ebiten.Image
	shader  *ebiten.Shader
	light   vec3

	rotX, rotY float

	frametime time.Duration
	drawn     int

	// reused between frames to avoid allocations
	clipper  clipper
	points   []vertex
	vertices []ebiten.Vertex
	indices  []uint32
}

func newGame(cfg *config.Viewer, mesh *obj.Mesh, texture *ebiten.Image, shader *ebiten.Shader) *game {
	return &game{
		cfg:     cfg,
		mesh:    mesh,
		texture: texture,
		shader:  shader,
		light:   vec3(cfg.Light).Normalize(),
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	step := g.cfg.RotateStep
	if repeating(ebiten.KeyW) {
		g.rotX += step
	} else if repeating(ebiten.KeyS) {
		g.rotX -= step
	}
	if repeating(ebiten.KeyA) {
		g.rotY += step
	} else if repeating(ebiten.KeyD) {
		g.rotY -= step
	}
	return nil
}

type viewport struct {
	wHalf, hHalf float
	h            float
}

func viewportTransform(ndc, dimensionHalf float) float {
	return dimensionHalf*ndc + dimensionHalf
}

// project does the perspective divide and maps to screen space. Colour and
// uv are pre-multiplied by 1/w; the shader divides them back.
func (vp viewport) project(v vertex) ebiten.Vertex {
	var invW float
	if w := v.pos.W(); w > 0 {
		invW = 1 / w
	}
	return ebiten.Vertex{
		DstX:    viewportTransform(v.pos.X()*invW, vp.wHalf),
		DstY:    vp.h - viewportTransform(v.pos.Y()*invW, vp.hHalf),
		SrcX:    v.uv.X() * invW,
		SrcY:    v.uv.Y() * invW,
		ColorR:  v.rgba.X() * invW,
		ColorG:  v.rgba.Y() * invW,
		ColorB:  v.rgba.Z() * invW,
		ColorA:  v.rgba.W() * invW,
		Custom3: invW,
	}
}

func (g *game) shade(n vec3, normalMatrix mgl.Mat3) vec4 {
	n = normalMatrix.Mul3x1(n)
	if n.Len() > 0 {
		n = n.Normalize()
	}
	ambient := g.cfg.Ambient
	s := ambient + (1-ambient)*max(0, n.Dot(g.light))
	return vec4{s, s, s, 1}
}

// pushMesh emits one screen vertex per welded vertex and reuses the mesh
// index buffer as is. Only triangles that cross the clip volume get new
// vertices.
func (g *game) pushMesh(modelViewProject mat4, normalMatrix mgl.Mat3, vp viewport) {
	m := g.mesh

	for i, p := range m.Positions {
		v := vertex{
			pos:  modelViewProject.Mul4x1(p.Vec4(1)),
			rgba: g.shade(m.Normals[i], normalMatrix),
			uv:   m.Texcoords[i],
		}
		g.points = append(g.points, v)
		g.vertices = append(g.vertices, vp.project(v))
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v1, v2, v3 := g.points[a], g.points[b], g.points[c]

		if !outOfBounds(v1.pos) && !outOfBounds(v2.pos) && !outOfBounds(v3.pos) {
			if frontFacing(v1.pos, v2.pos, v3.pos) {
				g.indices = append(g.indices, a, b, c)
			}
			continue
		}

		polygon := g.clipper.clip(v1.pos, v2.pos, v3.pos)
		if len(polygon) < 3 {
			continue
		}

		p1, p2, p3 := v1.pos.Vec3(), v2.pos.Vec3(), v3.pos.Vec3()
		first := uint32(len(g.vertices))
		for _, point := range polygon {
			v := interpolateVertex(v1, v2, v3, barycentric(p1, p2, p3, point.Vec3()))
			v.pos = point
			g.vertices = append(g.vertices, vp.project(v))
		}
		for k := 2; k < len(polygon); k++ {
			if frontFacing(polygon[0], polygon[k-1], polygon[k]) {
				g.indices = append(g.indices, first, first+uint32(k-1), first+uint32(k))
			}
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	defer func(t time.Time) {
		ft := time.Since(t)
		if g.frametime == 0 {
			g.frametime = ft
		} else {
			g.frametime += (ft - g.frametime) / 2
		}
	}(time.Now())

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	c := g.cfg.ClearColor
	screen.Fill(color.RGBA{uint8(c[0] * 255), uint8(c[1] * 255), uint8(c[2] * 255), 255})

	aspect := float(w) / float(max(h, 1))
	project := mgl.Perspective(mgl.DegToRad(g.cfg.FOV), aspect, g.cfg.Near, g.cfg.Far)

	model := mgl.Translate3D(0, 0, -g.cfg.Distance).
		Mul4(mgl.HomogRotate3DX(g.rotX)).
		Mul4(mgl.HomogRotate3DY(g.rotY))

	g.pushMesh(project.Mul4(model), model.Mat3(), viewport{
		wHalf: float(w) / 2,
		hHalf: float(h) / 2,
		h:     float(h),
	})

	if len(g.indices) > 0 {
		screen.DrawTrianglesShader32(g.vertices, g.indices, g.shader, &ebiten.DrawTrianglesShaderOptions{
			Images: [4]*ebiten.Image{
				g.texture,
			},
		})
	}
	g.drawn = len(g.indices) / 3

	g.points = g.points[:0]
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]

	stats := g.mesh.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 0, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Ft: %v", g.frametime), 0, 14)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Verts: %d Indices: %d", stats.Vertices, stats.Indices), 0, 28)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Triangles: %d/%d", g.drawn, stats.Triangles), 0, 42)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x: %.1f y: %.1f", g.rotX, g.rotY), 0, 56)
}
