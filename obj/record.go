package obj

import (
	"strings"
)

type Kind int

const (
	KindComment Kind = iota
	KindVertex
	KindNormal
	KindTexcoord
	KindFace
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindVertex:
		return "vertex"
	case KindNormal:
		return "normal"
	case KindTexcoord:
		return "texcoord"
	case KindFace:
		return "face"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Record is one classified input line. Fields excludes the tag.
type Record struct {
	Kind   Kind
	Tag    string
	Fields []string
}

var kindByTag = map[string]Kind{
	"v":  KindVertex,
	"vn": KindNormal,
	"vt": KindTexcoord,
	"f":  KindFace,
}

// Classify splits a line on whitespace and decides its record kind
// from the first token. Blank lines and '#' lines are comments.
func Classify(line string) Record {
	words := strings.Fields(line)
	if len(words) == 0 || words[0][0] == '#' {
		return Record{Kind: KindComment}
	}

	rec := Record{Tag: words[0], Fields: words[1:]}
	if kind, ok := kindByTag[rec.Tag]; ok {
		rec.Kind = kind
	} else {
		rec.Kind = KindUnknown
	}
	return rec
}
