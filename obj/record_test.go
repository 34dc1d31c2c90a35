package obj

import (
	"reflect"
	"testing"
)

var classifyTests = []struct {
	in     string
	kind   Kind
	tag    string
	fields []string
}{
	{"", KindComment, "", nil},
	{"   \t", KindComment, "", nil},
	{"# exported by hand", KindComment, "", nil},
	{"#v 1 2 3", KindComment, "", nil},
	{"v 1 2 3", KindVertex, "v", []string{"1", "2", "3"}},
	{"vn  0 1\t0", KindNormal, "vn", []string{"0", "1", "0"}},
	{"vt 0.5 0.5", KindTexcoord, "vt", []string{"0.5", "0.5"}},
	{"f 1/1/1 2/2/2 3/3/3", KindFace, "f", []string{"1/1/1", "2/2/2", "3/3/3"}},
	{"usemtl stone", KindUnknown, "usemtl", []string{"stone"}},
	{"vp 0.1", KindUnknown, "vp", []string{"0.1"}},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyTests {
		rec := Classify(test.in)
		if rec.Kind != test.kind {
			t.Errorf("Classify(%q).Kind=%v; expected %v", test.in, rec.Kind, test.kind)
			continue
		}
		if rec.Kind == KindComment {
			continue
		}
		if rec.Tag != test.tag || !reflect.DeepEqual(rec.Fields, test.fields) {
			t.Errorf("Classify(%q)=%q %q; expected %q %q", test.in, rec.Tag, rec.Fields, test.tag, test.fields)
		}
	}
}

func TestKindString(t *testing.T) {
	if s := KindTexcoord.String(); s != "texcoord" {
		t.Errorf("KindTexcoord.String()=%q; expected %q", s, "texcoord")
	}
	if s := Kind(42).String(); s != "invalid" {
		t.Errorf("Kind(42).String()=%q; expected %q", s, "invalid")
	}
}
