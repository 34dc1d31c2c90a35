package obj

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteObj writes the welded mesh back out as OBJ. Every welded vertex
// gets its own v/vt/vn line, so faces use the same index for all three
// attributes and loading the output yields the same buffers.
func (m *Mesh) WriteObj(w io.Writer) error {
	if len(m.Indices)%3 != 0 {
		return errors.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}

	bw := bufio.NewWriter(w)
	var buf []byte

	line := func(tag string, vs ...float32) {
		buf = append(buf[:0], tag...)
		for _, v := range vs {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(v), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	bw.WriteString("# " + strconv.Itoa(len(m.Positions)) + " vertices, " +
		strconv.Itoa(len(m.Indices)/3) + " triangles\n")

	for _, p := range m.Positions {
		line("v", p[0], p[1], p[2])
	}
	for _, uv := range m.Texcoords {
		line("vt", uv[0], 1-uv[1])
	}
	for _, n := range m.Normals {
		line("vn", n[0], n[1], n[2])
	}

	for i := 0; i < len(m.Indices); i += 3 {
		buf = append(buf[:0], 'f')
		for _, index := range m.Indices[i : i+3] {
			ref := strconv.FormatUint(uint64(index)+1, 10)
			buf = append(buf, ' ')
			buf = append(buf, ref...)
			buf = append(buf, '/')
			buf = append(buf, ref...)
			buf = append(buf, '/')
			buf = append(buf, ref...)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return errors.Wrap(bw.Flush(), "write obj")
}
