package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/parse"
	"github.com/google/go-cmp/cmp"
)

const window = `window {
	width: 1920,
	title: "Game",
	gray: [128, 128],
}`

func mustRoot(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc.Root
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMainCommand(t *testing.T) {
	cmd := MainCommand()
	if cmd == nil {
		t.Fatal("nil command")
	}
}

func TestWriteDoc(t *testing.T) {
	root := mustRoot(t, window)
	tests := []struct {
		name string
		cfg  *MainConfig
		want string
	}{
		{"standard", &MainConfig{}, "window {\n\twidth: 1920,\n\ttitle: \"Game\",\n\tgray: [128, 128],\n}\n"},
		{"compact", &MainConfig{Compact: true}, "window{width:1920,title:\"Game\",gray:[128,128]}\n"},
		{"format", &MainConfig{Format: &format.Compact}, "window{width:1920,title:\"Game\",gray:[128,128]}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := writeDoc(tc.cfg, buf, root); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	buf := bytes.NewBuffer(nil)
	if err := writeDoc(&MainConfig{}, buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("empty document wrote %q, %v", buf.String(), err)
	}
}

func TestFmtInPlace(t *testing.T) {
	p := writeTemp(t, "w.csd", "window{width:1920,title:\"Game\",gray:[128,128]}")
	if err := fmtInPlace(&MainConfig{}, p); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(window+"\n", string(d)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	bad := writeTemp(t, "bad.csd", "window { width 1 }")
	if err := fmtInPlace(&MainConfig{}, bad); err == nil {
		t.Error("expected error")
	}
}

func TestCheck(t *testing.T) {
	good := writeTemp(t, "good.csd", window)
	bad := writeTemp(t, "bad.csd", "window { width: }")
	buf := bytes.NewBuffer(nil)
	if !checkFile(buf, good, false) {
		t.Error("good file failed")
	}
	if checkFile(buf, bad, false) {
		t.Error("bad file passed")
	}
	if checkFile(buf, filepath.Join(t.TempDir(), "missing.csd"), true) {
		t.Error("missing file passed")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != good+": ok" {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], bad+": parse error: (1:16)") {
		t.Errorf("line 1: %q", lines[1])
	}
	if !strings.Contains(lines[2], ": file error: file 'missing.csd': ") {
		t.Errorf("line 2: %q", lines[2])
	}

	buf.Reset()
	if !checkReader(buf, strings.NewReader(window), "stdin", true) || buf.Len() != 0 {
		t.Errorf("quiet check wrote %q", buf.String())
	}
}

func TestGetPath(t *testing.T) {
	root := mustRoot(t, window)
	tests := []struct {
		path string
		list bool
		want string
	}{
		{"$.width", false, "1920\n"},
		{"title", false, "\"Game\"\n"},
		{"$.gray", false, "[128, 128]\n"},
		{"$.height", false, ""},
		{"$.gray[*]", true, "128\n128\n"},
		{"$..width", true, "1920\n"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			cfg := &GetConfig{MainConfig: &MainConfig{}, List: tc.list}
			buf := bytes.NewBuffer(nil)
			if err := getPath(cfg, buf, root, tc.path); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	cfg := &GetConfig{MainConfig: &MainConfig{}}
	if err := getPath(cfg, bytes.NewBuffer(nil), root, "$.gray[*]"); err == nil {
		t.Error("expected error for [*] without -l")
	}
}

func TestDiffInputs(t *testing.T) {
	a := mustRoot(t, window)
	b := mustRoot(t, `window {
	width: 1024,
	title: "Game",
	gray: [128, 128],
}`)
	tests := []struct {
		name string
		cfg  *DiffConfig
		want string
	}{
		{"changes", &DiffConfig{}, "~ $.width: 1920 -> 1024\n"},
		{"reverse", &DiffConfig{Reverse: true}, "~ $.width: 1024 -> 1920\n"},
		{"text", &DiffConfig{Text: true}, " window {\n-\twidth: 1920,\n+\twidth: 1024,\n \ttitle: \"Game\",\n \tgray: [128, 128],\n }\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.MainConfig = &MainConfig{}
			buf := bytes.NewBuffer(nil)
			differs, err := diffInputs(tc.cfg, buf, a, b)
			if err != nil {
				t.Fatal(err)
			}
			if !differs {
				t.Error("expected difference")
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	differs, err := diffInputs(&DiffConfig{MainConfig: &MainConfig{}}, bytes.NewBuffer(nil), a, a.Clone())
	if err != nil || differs {
		t.Errorf("equal documents: %v %v", differs, err)
	}
}

func TestEvalExpr(t *testing.T) {
	root := mustRoot(t, window)
	cfg := &EvalConfig{MainConfig: &MainConfig{Compact: true}}
	buf := bytes.NewBuffer(nil)
	if err := evalExpr(cfg, buf, root, `{"area": width * 2, "title": title}`); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{area:3840,title:\"Game\"}\n" {
		t.Errorf("got %q", buf.String())
	}
	if err := evalExpr(cfg, buf, root, "nosuch"); err == nil {
		t.Error("expected error")
	}
}

func TestPatchDoc(t *testing.T) {
	root := mustRoot(t, window)
	tests := []struct {
		name  string
		merge bool
		patch string
		want  string
	}{
		{"json", false, `[{"op": "replace", "path": "/title", "value": "Other"}]`,
			"window{width:1920,title:\"Other\",gray:[128,128]}\n"},
		{"merge", true, `{"gray": null, "depth": 32}`,
			"window{width:1920,title:\"Game\",depth:32}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &PatchConfig{MainConfig: &MainConfig{Compact: true}, Merge: tc.merge}
			buf := bytes.NewBuffer(nil)
			if err := patchDoc(cfg, buf, root, []byte(tc.patch)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetPatch(t *testing.T) {
	p := writeTemp(t, "p.json", `[]`)
	d, err := getPatch(&PatchConfig{}, p)
	if err != nil || string(d) != "[]" {
		t.Errorf("got %q %v", d, err)
	}
	d, err = getPatch(&PatchConfig{String: true}, `{"a": 1}`)
	if err != nil || string(d) != `{"a": 1}` {
		t.Errorf("got %q %v", d, err)
	}
	if _, err := getPatch(&PatchConfig{}, filepath.Join(t.TempDir(), "none")); err == nil {
		t.Error("expected error")
	}
}

func TestPrintTokens(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := printTokens(buf, "in", []byte("a: 1")); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "in tokens:\n") || strings.Count(got, "\n") != 5 {
		t.Errorf("unexpected output %q", got)
	}
	if err := printTokens(bytes.NewBuffer(nil), "bad", []byte("a: @")); err == nil {
		t.Error("expected error")
	}
}

func TestWatchFiles(t *testing.T) {
	p := writeTemp(t, "w.csd", window)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan bool, 16)
	done := make(chan error, 1)
	out := &syncBuffer{}
	go func() {
		done <- watchFiles(ctx, out, []string{p}, 10*time.Millisecond, func(_ string, ok bool) {
			results <- ok
		})
	}()
	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(p, []byte("window { width: }"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case ok := <-results:
		if ok {
			t.Error("expected failed check")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for check")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "parse error") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestWatcherStaleTimer(t *testing.T) {
	p := writeTemp(t, "w.csd", window)
	wt := &watcher{
		w:        &syncBuffer{},
		debounce: time.Hour,
		timers:   map[string]*time.Timer{},
	}
	wt.trigger(p)
	stale := wt.timers[p]
	wt.trigger(p)
	newer := wt.timers[p]
	if newer == stale {
		t.Fatal("trigger did not replace the timer")
	}
	// the stale timer firing late must not drop the newer one
	wt.fire(p, stale)
	if wt.timers[p] != newer {
		t.Fatal("newer timer was removed")
	}
	wt.stop()
	if len(wt.timers) != 0 {
		t.Errorf("stop left %d timers", len(wt.timers))
	}
	wt.fire(p, newer)
	if len(wt.timers) != 0 {
		t.Errorf("fire added timers")
	}
}

func TestMatchDoc(t *testing.T) {
	root := mustRoot(t, window)
	tests := []struct {
		name    string
		pattern string
		glob    bool
		trim    bool
		want    string
		ok      bool
	}{
		{"subset", `p { width: 1920 }`, false, false, "window{width:1920,title:\"Game\",gray:[128,128]}\n", true},
		{"trim", `p { width: 1920 }`, false, true, "window{width:1920}\n", true},
		{"mismatch", `p { width: 1024 }`, false, false, "", false},
		{"glob", `p { title: "G*" }`, true, false, "window{width:1920,title:\"Game\",gray:[128,128]}\n", true},
		{"no glob", `p { title: "G*" }`, false, false, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &MatchConfig{MainConfig: &MainConfig{Compact: true}, Glob: tc.glob, Trim: tc.trim}
			buf := bytes.NewBuffer(nil)
			ok, err := matchDoc(cfg, buf, root, mustRoot(t, tc.pattern))
			if err != nil {
				t.Fatal(err)
			}
			if ok != tc.ok {
				t.Errorf("matched %v, want %v", ok, tc.ok)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetPattern(t *testing.T) {
	cfg := &MatchConfig{MainConfig: &MainConfig{}, String: true}
	n, err := getPattern(cfg, `p { a: 1 }`)
	if err != nil {
		t.Fatal(err)
	}
	if n.Key != "p" {
		t.Errorf("got key %q", n.Key)
	}
	if _, err := getPattern(cfg, `p {`); err == nil {
		t.Error("expected error")
	}
}

func TestBuildDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"build.csd":    `build { sources: [{ dir: "src" }], patches: [{ merge { b: 2 } }] }`,
		"src/a.csd":    `a { n: 1, s: "$[n * 10]" }`,
		"src/skip.txt": `not a document`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := &BuildConfig{MainConfig: &MainConfig{Compact: true}}
	buf := bytes.NewBuffer(nil)
	if err := buildDir(cfg, buf, dir); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("# a.csd\na{n:1,s:\"10\",b:2}\n", buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	cfg.DestDir = "out"
	buf.Reset()
	if err := buildDir(cfg, buf, dir); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
	d, err := os.ReadFile(filepath.Join(dir, "out", "a.csd"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "a{n:1,s:\"10\",b:2}\n" {
		t.Errorf("got %q", d)
	}
}
