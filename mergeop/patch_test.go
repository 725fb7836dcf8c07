package mergeop

import (
	"errors"
	"testing"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/parse"
	"github.com/google/go-cmp/cmp"
)

const window = `window {
	width: 1920,
	height: 1080,
	title: "Game",
	gray: [128, 128],
}`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc.Root
}

func compact(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeFormat(format.Compact))
}

func TestJSONPatch(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		want  string
	}{
		{"replace", `[{"op": "replace", "path": "/width", "value": 1024}]`,
			`window{width:1024,height:1080,title:"Game",gray:[128,128]}`},
		{"add", `[{"op": "add", "path": "/depth", "value": 32}]`,
			`window{width:1920,height:1080,title:"Game",gray:[128,128],depth:32}`},
		{"remove", `[{"op": "remove", "path": "/title"}]`,
			`window{width:1920,height:1080,gray:[128,128]}`},
		{"array append", `[{"op": "add", "path": "/gray/-", "value": 64}]`,
			`window{width:1920,height:1080,title:"Game",gray:[128,128,64]}`},
		{"object value", `[{"op": "add", "path": "/pos", "value": {"y": 2, "x": 1}}]`,
			`window{width:1920,height:1080,title:"Game",gray:[128,128],pos{x:1,y:2}}`},
		{"test ok", `[{"op": "test", "path": "/height", "value": 1080}]`,
			`window{width:1920,height:1080,title:"Game",gray:[128,128]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, window)
			got, err := JSONPatch(doc, []byte(tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, compact(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if compact(doc) != `window{width:1920,height:1080,title:"Game",gray:[128,128]}` {
				t.Errorf("input modified: %s", compact(doc))
			}
		})
	}
}

func TestJSONPatchErrors(t *testing.T) {
	doc := mustParse(t, window)
	for _, p := range []string{
		`{"op": "add"}`,
		`[{"op": "test", "path": "/height", "value": 1}]`,
	} {
		if _, err := JSONPatch(doc, []byte(p)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: expected ErrPatch, got %v", p, err)
		}
	}
}

func TestDecodePatchNode(t *testing.T) {
	pn := mustParse(t, `ops {
	list: [{op: "replace", path: "/title", value: "Other"}],
}`)
	p, err := DecodePatchNode(pn.Get("list"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d", p.Len())
	}
	got, err := p.Apply(mustParse(t, window))
	if err != nil {
		t.Fatal(err)
	}
	want := `window{width:1920,height:1080,title:"Other",gray:[128,128]}`
	if diff := cmp.Diff(want, compact(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, window)
	got, err := MergePatch(doc, []byte(`{"title": null, "width": 800, "extra": {"b": true, "a": false}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := `window{width:800,height:1080,gray:[128,128],extra{a:false,b:true}}`
	if diff := cmp.Diff(want, compact(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := MergePatch(doc, []byte(`{`)); !errors.Is(err, ErrPatch) {
		t.Errorf("expected ErrPatch, got %v", err)
	}
}

func TestMergePatchKeepsFloats(t *testing.T) {
	doc := mustParse(t, `cfg { ratio: 2.0, scale: [1.0, 0.5], name: "a" }`)
	got, err := MergePatch(doc, []byte(`{"name": "b"}`))
	if err != nil {
		t.Fatal(err)
	}
	if typ := got.Get("ratio").Value.Type; typ != ir.FloatType {
		t.Errorf("ratio type %v after unrelated merge patch", typ)
	}
	if typ := got.Get("scale").Value.Array.At(0).Type; typ != ir.FloatType {
		t.Errorf("scale[0] type %v after unrelated merge patch", typ)
	}
	got, err = MergePatch(doc, []byte(`{"ratio": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if typ := got.Get("ratio").Value.Type; typ != ir.IntType {
		t.Errorf("replaced ratio type %v, want int", typ)
	}
}

func TestAddedKeysSorted(t *testing.T) {
	doc := mustParse(t, `w { b: 1 }`)
	got, err := JSONPatch(doc, []byte(`[
		{"op": "add", "path": "/z", "value": 1},
		{"op": "add", "path": "/a", "value": {"q": [{"n": 1, "m": 2}], "p": 0}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := `w{b:1,a{p:0,q:[{m:2,n:1}]},z:1}`
	if diff := cmp.Diff(want, compact(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateMergePatch(t *testing.T) {
	from := mustParse(t, window)
	to := mustParse(t, `window {
	width: 1024,
	height: 1080,
	gray: [128, 128],
}`)
	p, err := CreateMergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	got, err := MergePatch(from, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, to) {
		t.Errorf("round trip gave %s", compact(got))
	}
	pn := mustParse(t, `p { width: 1024, title: nil }`)
	got, err = MergePatchNode(from, pn)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, to) {
		t.Errorf("node patch gave %s", compact(got))
	}
}
