package obj

import (
	"github.com/pkg/errors"
)

// Weld turns the raw face corners into an indexed mesh. Each distinct
// corner becomes exactly one output vertex, allocated in the order it is
// first seen; Indices keeps the face corner order.
func Weld(raw *Raw) (*Mesh, error) {
	m := &Mesh{
		Positions: []Position{},
		Normals:   []Normal{},
		Texcoords: []UV{},
		Indices:   make([]uint32, 0, len(raw.Corners)),
	}
	welded := make(map[Corner]uint32)

	for i, corner := range raw.Corners {
		if index, ok := welded[corner]; ok {
			m.Indices = append(m.Indices, index)
			continue
		}

		if err := raw.check(corner); err != nil {
			return nil, errors.Wrapf(err, "face %d corner %d", i/3+1, i%3+1)
		}

		index := uint32(len(m.Positions))
		m.Positions = append(m.Positions, raw.Positions[corner.Position])
		m.Normals = append(m.Normals, raw.Normals[corner.Normal])
		m.Texcoords = append(m.Texcoords, raw.Texcoords[corner.Texcoord])

		welded[corner] = index
		m.Indices = append(m.Indices, index)
	}

	return m, nil
}

func (raw *Raw) check(c Corner) error {
	if int(c.Position) >= len(raw.Positions) {
		return errors.Wrapf(ErrIndexOutOfRange, "position %d of %d", c.Position+1, len(raw.Positions))
	}
	if int(c.Texcoord) >= len(raw.Texcoords) {
		return errors.Wrapf(ErrIndexOutOfRange, "texcoord %d of %d", c.Texcoord+1, len(raw.Texcoords))
	}
	if int(c.Normal) >= len(raw.Normals) {
		return errors.Wrapf(ErrIndexOutOfRange, "normal %d of %d", c.Normal+1, len(raw.Normals))
	}
	return nil
}
