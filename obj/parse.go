package obj

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const maxLineSize = 1 << 20

// Parse runs the line parser over r and returns the raw attribute arrays.
// It stops at the first malformed or non-triangular record.
func Parse(r io.Reader, opts ...Option) (*Raw, error) {
	return parse(r, newOptions(opts))
}

func parse(r io.Reader, o *options) (*Raw, error) {
	raw := &Raw{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if err := raw.apply(Classify(line), o); err != nil {
			return nil, &LineError{Line: lineNumber, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "read after line %d: %v", lineNumber, err)
	}

	return raw, nil
}

func (raw *Raw) apply(rec Record, o *options) error {
	switch rec.Kind {
	case KindComment:
		return nil
	case KindVertex:
		v, err := parseVec3(rec.Fields)
		if err != nil {
			return errors.Wrap(err, "vertex")
		}
		raw.Positions = append(raw.Positions, v)
	case KindNormal:
		v, err := parseVec3(rec.Fields)
		if err != nil {
			return errors.Wrap(err, "normal")
		}
		raw.Normals = append(raw.Normals, v)
	case KindTexcoord:
		uv, err := parseUV(rec.Fields)
		if err != nil {
			return errors.Wrap(err, "texcoord")
		}
		raw.Texcoords = append(raw.Texcoords, uv)
	case KindFace:
		if len(rec.Fields) != 3 {
			return errors.Wrapf(ErrUnsupportedPolygon, "face has %d corners, only triangles are supported", len(rec.Fields))
		}
		for _, word := range rec.Fields {
			raw.Corners = append(raw.Corners, parseCorner(word))
		}
	case KindUnknown:
		raw.Skipped++
		o.logger.Printf("warning: ignoring unsupported record %q", rec.Tag)
	default:
		return errors.Errorf("unhandled record kind %v", rec.Kind)
	}
	return nil
}

func parseFloats(dst []float32, words []string) error {
	if len(words) != len(dst) {
		return errors.Wrapf(ErrMalformedRecord, "want %d components, got %d", len(dst), len(words))
	}
	for i, word := range words {
		f, err := strconv.ParseFloat(word, 32)
		if err != nil {
			return errors.Wrapf(ErrMalformedRecord, "component %d: %q is not a number", i, word)
		}
		dst[i] = float32(f)
	}
	return nil
}

func parseVec3(words []string) (Position, error) {
	var v Position
	err := parseFloats(v[:], words)
	return v, err
}

// parseUV flips V so that 0 is the top row of the image.
func parseUV(words []string) (UV, error) {
	var uv UV
	if err := parseFloats(uv[:], words); err != nil {
		return uv, err
	}
	uv[1] = 1 - uv[1]
	return uv, nil
}

// parseCorner reads "p", "p/t", "p//n" or "p/t/n". Missing or unreadable
// parts resolve to index 0.
func parseCorner(word string) Corner {
	var idx [3]uint32
	for i, part := range strings.SplitN(word, "/", 4) {
		if i >= len(idx) {
			break
		}
		idx[i] = parseIndex(part)
	}
	return Corner{Position: idx[0], Texcoord: idx[1], Normal: idx[2]}
}

func parseIndex(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0
	}
	return uint32(n - 1)
}
