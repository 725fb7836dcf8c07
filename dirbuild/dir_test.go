package dirbuild

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/parse"
	"github.com/google/go-cmp/cmp"
)

func TestOpenDir(t *testing.T) {
	d, err := OpenDir("testdata/game")
	if err != nil {
		t.Fatal(err)
	}
	if d.DestDir != "out" {
		t.Errorf("destDir %q", d.DestDir)
	}
	if diff := cmp.Diff([]DirSource{{Dir: "source"}}, d.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
	if len(d.Patches) != 3 {
		t.Fatalf("got %d patches", len(d.Patches))
	}
	if d.Patches[1].File != "dialog-patch.json" || d.Patches[1].Match == nil {
		t.Errorf("patch 1: %+v", d.Patches[1])
	}
	if d.Env["debug"] != true {
		t.Errorf("env %v", d.Env)
	}
}

func TestOpenDirErrors(t *testing.T) {
	if _, err := OpenDir("testdata/nobuild"); !errors.Is(err, ErrBuild) {
		t.Errorf("expected ErrBuild, got %v", err)
	}
	dir := t.TempDir()
	bad := `build { sources: [{ dir: "a", file: "b" }] }`
	if err := os.WriteFile(filepath.Join(dir, "build.csd"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenDir(dir); !errors.Is(err, ErrBuild) {
		t.Errorf("expected ErrBuild, got %v", err)
	}
}

func TestSourceFiles(t *testing.T) {
	d, err := OpenDir("testdata/game")
	if err != nil {
		t.Fatal(err)
	}
	srcs, err := d.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range srcs {
		names = append(names, s.Name)
	}
	want := []string{filepath.Join("dialogs", "en.csd"), "window.csd"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild(t *testing.T) {
	d, err := OpenDir("testdata/game")
	if err != nil {
		t.Fatal(err)
	}
	res, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, r := range res {
		got[r.Name] = encode.MustString(r.Root, encode.EncodeFormat(format.Compact))
	}
	want := map[string]string{
		filepath.Join("dialogs", "en.csd"): `en_US{kind:"dialog",play:"play again",title:"debug",quit:"quit"}`,
		"window.csd":                       `window{kind:"window",title:"debug",width:1152,label:"scale 2"}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildYAML(t *testing.T) {
	d, err := OpenDir("testdata/yamlbuild")
	if err != nil {
		t.Fatal(err)
	}
	res, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 {
		t.Fatalf("got %d results", len(res))
	}
	got := encode.MustString(res[0].Root, encode.EncodeFormat(format.Compact))
	if got != `a{n:2,m:"3"}` {
		t.Errorf("got %s", got)
	}
}

func TestWrite(t *testing.T) {
	d, err := OpenDir("testdata/yamlbuild")
	if err != nil {
		t.Fatal(err)
	}
	res, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Write(res); !errors.Is(err, ErrBuild) {
		t.Errorf("expected ErrBuild without destDir, got %v", err)
	}
	d.Root = t.TempDir()
	d.DestDir = "out"
	if err := d.Write(res); err != nil {
		t.Fatal(err)
	}
	doc, err := parse.ParseFile(filepath.Join(d.Root, "out", "a.csd"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root.Key != "a" || doc.Root.Get("n").Value.Int != 2 {
		t.Errorf("unexpected output %s", encode.MustString(doc.Root))
	}
}
