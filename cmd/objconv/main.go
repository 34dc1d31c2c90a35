package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/thedaneeffect/objweld/config"
	"github.com/thedaneeffect/objweld/obj"
)

func main() {
	var configPath, output, name string
	var dump, verbose bool
	flag.StringVar(&configPath, "config", "", "YAML settings `file`")
	flag.StringVar(&output, "o", "", "output `file`: .glb, .gltf or .obj")
	flag.StringVar(&name, "name", "", "mesh and node name in the output, the input base name when empty")
	flag.BoolVar(&dump, "dump", false, "print the welded buffers")
	flag.BoolVar(&verbose, "v", false, "log loader progress")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input.obj\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}
	if output == "" {
		output = cfg.Convert.Output
	}
	if name == "" {
		name = cfg.Convert.Name
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	opts := []obj.Option{}
	if verbose {
		opts = append(opts, obj.Verbose())
	}
	mesh, err := obj.Load(input, opts...)
	if err != nil {
		log.Fatal(err)
	}

	stats := mesh.Stats()
	fmt.Printf("%s: %d vertices, %d indices, %d triangles\n", input, stats.Vertices, stats.Indices, stats.Triangles)
	if dump {
		fmt.Print(obj.SDump(mesh))
	}

	if output == "" {
		return
	}
	if err := convert(mesh, name, output); err != nil {
		log.Fatal(err)
	}
}

func convert(mesh *obj.Mesh, name, output string) error {
	var write func(io.Writer) error

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".glb", ".gltf":
		doc, err := obj.ExportGLTF(mesh, name)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error {
			return obj.SaveGLTF(w, doc, ext == ".glb")
		}
	case ".obj":
		write = mesh.WriteObj
	default:
		return errors.Errorf("unknown output format %q", ext)
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %q", output)
	}
	return errors.Wrapf(f.Close(), "close %q", output)
}
