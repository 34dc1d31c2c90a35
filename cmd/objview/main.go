package main

import (
	"bytes"
	_ "embed"
	"flag"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"runtime/pprof"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/thedaneeffect/objweld/config"
	"github.com/thedaneeffect/objweld/obj"
)

type (
	float = float32
	vec2  = mgl.Vec2
	vec3  = mgl.Vec3
	vec4  = mgl.Vec4
	mat4  = mgl.Mat4
)

var shaderSource = `
//kage:unit pixels
package main

func Fragment(dst vec4, src vec2, rgba vec4, custom vec4) vec4 {
	src_origin := imageSrc0Origin()

	// atlas -> texture space
	texel := src - src_origin

	// undo the 1/w applied per vertex
	if custom.w != 0.0 {
		texel /= custom.w
		rgba /= custom.w
	}

	// scale uv to pixels
	texel *= imageSrc0Size()

	// move back to atlas space
	texel += src_origin

	return imageSrc0At(texel) * rgba
}
`

//go:embed cube.obj
var cubeObj []byte

const textureSize = 128

func main() {
	var configPath, model, texturePath, cpuProfile string
	var verbose bool
	flag.StringVar(&configPath, "config", "", "YAML settings `file`")
	flag.StringVar(&model, "model", "", "obj `file` to show, the built-in cube when empty")
	flag.StringVar(&texturePath, "texture", "", "png or jpeg `file` mapped onto the model")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.BoolVar(&verbose, "v", false, "log loader progress")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}
	vc := &cfg.Viewer
	if model != "" {
		vc.Model = model
	}
	if texturePath != "" {
		vc.Texture = texturePath
	}
	if cpuProfile != "" {
		vc.CPUProfile = cpuProfile
	}

	if vc.CPUProfile != "" {
		f, err := os.Create(vc.CPUProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	opts := []obj.Option{}
	if verbose {
		opts = append(opts, obj.Verbose())
	}
	mesh := loadMesh(vc.Model, opts...)
	log.Printf("There were %d verts, %d indices", len(mesh.Positions), len(mesh.Indices))

	texture, err := loadTexture(vc.Texture)
	if err != nil {
		log.Fatal(err)
	}

	shader, err := ebiten.NewShader([]byte(shaderSource))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("objview")
	ebiten.SetWindowSize(vc.Width, vc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(newGame(vc, mesh, texture, shader)); err != nil {
		log.Fatal(err)
	}
}

// loadMesh keeps going with an empty scene when the file is missing;
// broken geometry is fatal.
func loadMesh(path string, opts ...obj.Option) *obj.Mesh {
	if path == "" {
		mesh, err := obj.Decode(bytes.NewReader(cubeObj), opts...)
		if err != nil {
			log.Fatal(errors.Wrap(err, "built-in cube"))
		}
		return mesh
	}

	mesh, err := obj.Load(path, opts...)
	if errors.Is(err, obj.ErrResourceUnavailable) {
		log.Printf("%v, showing an empty scene", err)
		return mesh
	}
	if err != nil {
		log.Fatal(err)
	}
	return mesh
}

func loadTexture(path string) (*ebiten.Image, error) {
	if path == "" {
		return checkerboard(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %q", path)
	}
	return ebiten.NewImageFromImage(img), nil
}

func checkerboard() *ebiten.Image {
	const subdivisions = 8
	const tileSize = textureSize / subdivisions

	texture := ebiten.NewImage(textureSize, textureSize)
	texture.Fill(color.Black)

	for row := range subdivisions {
		for col := range subdivisions {
			if (row+col)%2 == 0 {
				continue
			}
			x := float(col * tileSize)
			y := float(row * tileSize)
			vector.DrawFilledRect(texture, x, y, tileSize, tileSize, color.White, false)
		}
	}

	vector.StrokeRect(texture, 1, 1, textureSize-1, textureSize-1, 1, color.RGBA{255, 0, 0, 255}, false)
	return texture
}
