package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thedaneeffect/objweld/obj"
)

const triangle = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`

func TestConvert(t *testing.T) {
	mesh, err := obj.Decode(strings.NewReader(triangle), obj.WithLogger(obj.Discard))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	glb := filepath.Join(dir, "tri.glb")
	if err := convert(mesh, "tri", glb); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(glb)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("glTF")) {
		t.Errorf("%s is not a binary glTF", glb)
	}

	out := filepath.Join(dir, "tri.obj")
	if err := convert(mesh, "tri", out); err != nil {
		t.Fatal(err)
	}
	again, err := obj.Load(out, obj.WithLogger(obj.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if again.Stats() != mesh.Stats() {
		t.Errorf("reloaded %+v; expected %+v", again.Stats(), mesh.Stats())
	}

	if err := convert(mesh, "tri", filepath.Join(dir, "tri.fbx")); err == nil {
		t.Error("convert accepted an .fbx output")
	}
}
