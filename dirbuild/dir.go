// Package dirbuild interprets a csd build directory.
//
// A build directory holds a build description in build.csd or
// build.yaml:
//
//	build {
//		destDir: "out",
//		env { debug: true },
//		sources: [{ dir: "source" }, { file: "extra.csd" }],
//		patches: [
//			{ if: "env.debug", merge { window { title: "debug" } } },
//			{ match { kind: "dialog" }, file: "dialog-patch.json" },
//		],
//	}
//
// Build parses every source document, applies the patches whose
// conditions hold, expands $[expr] references and returns the results.
package dirbuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/csd-format/go-csd/debug"
	"github.com/csd-format/go-csd/gomap"

	"github.com/goccy/go-yaml"
)

var ErrBuild = errors.New("build error")

type Dir struct {
	Root    string         `json:"-" yaml:"-"`
	DestDir string         `json:"destDir,omitempty" yaml:"destDir,omitempty"`
	Sources []DirSource    `json:"sources" yaml:"sources"`
	Patches []DirPatch     `json:"patches,omitempty" yaml:"patches,omitempty"`
	Env     map[string]any `json:"env,omitempty" yaml:"env,omitempty"`
}

// DirSource names source documents: every .csd file below Dir, or the
// single File. Paths are relative to the build directory.
type DirSource struct {
	Dir  string `json:"dir,omitempty" yaml:"dir,omitempty"`
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DirPatch is a patch applied to each source document for which If
// evaluates to true and which matches Match.
//
// The patch itself is one of Merge, a merge patch; JSONPatch, a list of
// JSON Patch operations; or File, a JSON file holding either.
type DirPatch struct {
	If        string `json:"if,omitempty" yaml:"if,omitempty"`
	Match     any    `json:"match,omitempty" yaml:"match,omitempty"`
	Merge     any    `json:"merge,omitempty" yaml:"merge,omitempty"`
	JSONPatch []any  `json:"jsonPatch,omitempty" yaml:"jsonPatch,omitempty"`
	File      string `json:"file,omitempty" yaml:"file,omitempty"`
}

func (p *DirPatch) String() string {
	switch {
	case p.File != "":
		return "file " + p.File
	case p.JSONPatch != nil:
		return fmt.Sprintf("json-patch of %d ops", len(p.JSONPatch))
	default:
		return "merge-patch"
	}
}

// OpenDir reads the build description of the directory at path, trying
// build.csd then build.yaml.
func OpenDir(path string) (*Dir, error) {
	dir := &Dir{Root: path}
	for _, name := range []string{"build.csd", "build.yaml"} {
		p := filepath.Join(path, name)
		d, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("could not read %q: %w", p, err)
		}
		if filepath.Ext(name) == ".yaml" {
			err = yaml.Unmarshal(d, dir)
		} else {
			err = gomap.Load(d, dir)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: could not decode %s: %w", ErrBuild, p, err)
		}
		dir.Root = path
		if err := dir.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBuild, p, err)
		}
		if debug.Patch() {
			for i := range dir.Patches {
				debug.Logf("loaded patch %s\n", &dir.Patches[i])
			}
		}
		return dir, nil
	}
	return nil, fmt.Errorf("%w: could not find build.{csd,yaml} in %q", ErrBuild, path)
}

func (d *Dir) validate() error {
	if len(d.Sources) == 0 {
		return errors.New("no sources")
	}
	for i, src := range d.Sources {
		if (src.Dir == "") == (src.File == "") {
			return fmt.Errorf("source %d: exactly one of dir and file is required", i)
		}
	}
	for i := range d.Patches {
		p := &d.Patches[i]
		n := 0
		if p.Merge != nil {
			n++
		}
		if p.JSONPatch != nil {
			n++
		}
		if p.File != "" {
			n++
		}
		if n != 1 {
			return fmt.Errorf("patch %d: exactly one of merge, jsonPatch and file is required", i)
		}
	}
	return nil
}
