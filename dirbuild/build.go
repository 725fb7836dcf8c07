package dirbuild

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	csd "github.com/csd-format/go-csd"
	"github.com/csd-format/go-csd/debug"
	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/eval"
	"github.com/csd-format/go-csd/gomap"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/mergeop"
	"github.com/csd-format/go-csd/parse"
)

// Result is one built document, named as its Source.
type Result struct {
	Name string
	Root *ir.Node
}

// Source is one source document. Name is its path relative to the
// source directory, or the base name of a source file.
type Source struct {
	Name string
	Path string
}

// SourceFiles lists the source documents of d in order.
func (d *Dir) SourceFiles() ([]Source, error) {
	var res []Source
	for _, src := range d.Sources {
		if src.File != "" {
			res = append(res, Source{Name: filepath.Base(src.File), Path: filepath.Join(d.Root, src.File)})
			continue
		}
		base := filepath.Join(d.Root, src.Dir)
		err := filepath.WalkDir(base, func(p string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if de.IsDir() || filepath.Ext(p) != ".csd" {
				return nil
			}
			rel, err := filepath.Rel(base, p)
			if err != nil {
				return err
			}
			res = append(res, Source{Name: rel, Path: p})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuild, err)
		}
	}
	return res, nil
}

// Build parses, patches and expands every source document.
func (d *Dir) Build() ([]Result, error) {
	files, err := d.SourceFiles()
	if err != nil {
		return nil, err
	}
	patches, err := d.loadPatches()
	if err != nil {
		return nil, err
	}
	extra := eval.Env{"env": d.Env}
	if d.Env == nil {
		extra["env"] = map[string]any{}
	}
	res := make([]Result, 0, len(files))
	for _, f := range files {
		doc, err := parse.ParseFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path, err)
		}
		if doc.Root == nil {
			continue
		}
		root := doc.Root
		for i := range patches {
			root, err = patches[i].apply(root, extra)
			if err != nil {
				return nil, fmt.Errorf("%s: patch %d: %w", f.Name, i, err)
			}
		}
		root, err = eval.ExpandTreeEnv(root, eval.NewEnv(root).With(extra))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		res = append(res, Result{Name: f.Name, Root: root})
	}
	return res, nil
}

// Write renders results into the destination directory of d.
func (d *Dir) Write(results []Result, opts ...encode.EncodeOption) error {
	if d.DestDir == "" {
		return fmt.Errorf("%w: no destDir", ErrBuild)
	}
	dest := filepath.Join(d.Root, d.DestDir)
	for _, r := range results {
		p := filepath.Join(dest, r.Name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(r.Root, buf, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", r.Name, err)
		}
		buf.WriteByte('\n')
		if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

type patch struct {
	src   *DirPatch
	cond  string
	match *ir.Node
	merge []byte
	json  *mergeop.Patch
}

func (d *Dir) loadPatches() ([]patch, error) {
	res := make([]patch, len(d.Patches))
	for i := range d.Patches {
		dp := &d.Patches[i]
		p := &res[i]
		p.src = dp
		p.cond = dp.If
		if dp.Match != nil {
			m, err := gomap.ToIR("match", dp.Match)
			if err != nil {
				return nil, fmt.Errorf("%w: patch %d match: %w", ErrBuild, i, err)
			}
			p.match = m
		}
		var (
			body []byte
			err  error
		)
		switch {
		case dp.File != "":
			body, err = os.ReadFile(filepath.Join(d.Root, dp.File))
		case dp.JSONPatch != nil:
			body, err = json.Marshal(dp.JSONPatch)
		default:
			body, err = json.Marshal(dp.Merge)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrBuild, i, err)
		}
		if trimmed := bytes.TrimSpace(body); len(trimmed) != 0 && trimmed[0] == '[' {
			p.json, err = mergeop.DecodePatch(body)
			if err != nil {
				return nil, fmt.Errorf("%w: patch %d: %w", ErrBuild, i, err)
			}
			continue
		}
		p.merge = body
	}
	return res, nil
}

func (p *patch) apply(root *ir.Node, extra eval.Env) (*ir.Node, error) {
	if p.match != nil && !csd.Match(root, p.match, csd.MatchGlobs(true)) {
		return root, nil
	}
	if p.cond != "" {
		ok, err := eval.TruthEnv(root, eval.NewEnv(root).With(extra), p.cond)
		if err != nil {
			return nil, err
		}
		if !ok {
			return root, nil
		}
	}
	if debug.Patch() {
		debug.Logf("applying %s to %q\n", p.src, root.Key)
	}
	if p.json != nil {
		return p.json.Apply(root)
	}
	return mergeop.MergePatch(root, p.merge)
}
