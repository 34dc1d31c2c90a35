package obj

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// checkBuffers verifies the buffer relationships every welded mesh must hold.
func checkBuffers(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Positions) != len(m.Normals) || len(m.Positions) != len(m.Texcoords) {
		t.Errorf("buffer lengths differ: %d positions, %d normals, %d texcoords",
			len(m.Positions), len(m.Normals), len(m.Texcoords))
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	if len(m.Positions) > len(m.Indices) {
		t.Errorf("%d welded vertices for only %d corners", len(m.Positions), len(m.Indices))
	}
	for i, index := range m.Indices {
		if int(index) >= len(m.Positions) {
			t.Errorf("Indices[%d]=%d out of %d vertices", i, index, len(m.Positions))
		}
	}
}

func TestWeldSharedEdge(t *testing.T) {
	raw := &Raw{
		Positions: []Position{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Normals:   []Normal{{0, 0, 1}},
		Texcoords: []UV{{0, 0}},
		Corners: []Corner{
			{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
			{0, 0, 0}, {2, 0, 0}, {3, 0, 0},
		},
	}

	m, err := Weld(raw)
	if err != nil {
		t.Fatal(err)
	}
	checkBuffers(t, m)

	if len(m.Positions) != 4 || len(m.Indices) != 6 {
		t.Fatalf("welded %d vertices / %d indices; expected 4 / 6", len(m.Positions), len(m.Indices))
	}
	expected := []uint32{0, 1, 2, 0, 2, 3}
	for i := range expected {
		if m.Indices[i] != expected[i] {
			t.Errorf("Indices=%v; expected %v", m.Indices, expected)
			break
		}
	}
	for i, p := range m.Positions {
		if p != raw.Positions[i] {
			t.Errorf("Positions[%d]=%v; expected %v", i, p, raw.Positions[i])
		}
	}
}

func TestWeldRepeatedCorner(t *testing.T) {
	const n = 9
	raw := &Raw{
		Positions: []Position{{1, 2, 3}},
		Normals:   []Normal{{0, 1, 0}},
		Texcoords: []UV{{0.5, 0.5}},
	}
	for i := 0; i < n; i++ {
		raw.Corners = append(raw.Corners, Corner{})
	}

	m, err := Weld(raw)
	if err != nil {
		t.Fatal(err)
	}
	checkBuffers(t, m)
	if len(m.Positions) != 1 || len(m.Indices) != n {
		t.Errorf("welded %d vertices / %d indices; expected 1 / %d", len(m.Positions), len(m.Indices), n)
	}
	for _, index := range m.Indices {
		if index != 0 {
			t.Errorf("Indices=%v; expected all zero", m.Indices)
			break
		}
	}
}

func TestWeldKeepsAttributeCombinations(t *testing.T) {
	// same position, two different normals: must not be merged
	raw := &Raw{
		Positions: []Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   []Normal{{0, 0, 1}, {0, 0, -1}},
		Texcoords: []UV{{0, 0}},
		Corners: []Corner{
			{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
			{0, 0, 1}, {2, 0, 1}, {1, 0, 1},
		},
	}
	m, err := Weld(raw)
	if err != nil {
		t.Fatal(err)
	}
	checkBuffers(t, m)
	if len(m.Positions) != 6 {
		t.Errorf("welded %d vertices; expected 6", len(m.Positions))
	}
	if m.Normals[3] != (Normal{0, 0, -1}) {
		t.Errorf("Normals[3]=%v; expected [0 0 -1]", m.Normals[3])
	}
}

var weldRangeTests = []struct {
	corner Corner
	what   string
}{
	{Corner{Position: 4}, "position"},
	{Corner{Texcoord: 1}, "texcoord"},
	{Corner{Normal: 7}, "normal"},
}

func TestWeldIndexOutOfRange(t *testing.T) {
	for _, test := range weldRangeTests {
		raw := &Raw{
			Positions: []Position{{0, 0, 0}},
			Normals:   []Normal{{0, 0, 1}},
			Texcoords: []UV{{0, 0}},
			Corners:   []Corner{{}, {}, test.corner},
		}
		m, err := Weld(raw)
		if m != nil {
			t.Errorf("Weld(%+v) returned a mesh along with the error", test.corner)
		}
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Weld(%+v) err=%v; expected %v", test.corner, err, ErrIndexOutOfRange)
			continue
		}
		if !strings.Contains(err.Error(), test.what) {
			t.Errorf("Weld(%+v) err=%q; expected it to name the %s", test.corner, err, test.what)
		}
	}
}

func TestWeldMissingComponentUsesFirstEntry(t *testing.T) {
	m, err := Decode(strings.NewReader(`
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.25 0.25
vt 0.75 0.75
vn 1 0 0
vn 0 1 0
vn 0 0 1
vn 0 0 -1
vn 0 -1 0
f 1//5 2//5 3//5
`), WithLogger(Discard))
	if err != nil {
		t.Fatal(err)
	}
	checkBuffers(t, m)

	if m.Normals[0] != (Normal{0, -1, 0}) {
		t.Errorf("Normals[0]=%v; expected the fifth normal", m.Normals[0])
	}
	if !m.Texcoords[0].ApproxEqual(mgl32.Vec2{0.25, 0.75}) {
		t.Errorf("Texcoords[0]=%v; expected the first texcoord", m.Texcoords[0])
	}
}

func TestWeldEmpty(t *testing.T) {
	m, err := Weld(&Raw{})
	if err != nil {
		t.Fatal(err)
	}
	checkBuffers(t, m)
	if !m.Empty() || m.Positions == nil || m.Indices == nil {
		t.Errorf("Weld(empty)=%s; expected non-nil empty buffers", SDump(m))
	}
}
