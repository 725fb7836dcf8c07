package main

import (
	"fmt"
	"io"

	"github.com/csd-format/go-csd/dirbuild"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("%w: build takes at most one directory, got %v", cli.ErrUsage, args)
	}
	return buildDir(cfg, cc.Out, dir)
}

// buildDir builds the directory at path, writing the results into its
// destDir, or to w with -show or when it has none.
func buildDir(cfg *BuildConfig, w io.Writer, path string) error {
	d, err := dirbuild.OpenDir(path)
	if err != nil {
		return err
	}
	if cfg.DestDir != "" {
		d.DestDir = cfg.DestDir
	}
	res, err := d.Build()
	if err != nil {
		return err
	}
	if d.DestDir != "" && !cfg.Show {
		if err := d.Write(res, cfg.encOpts(nil)...); err != nil {
			return err
		}
		theLog.Info("built", "dir", path, "docs", len(res), "dest", d.DestDir)
		return nil
	}
	for _, r := range res {
		if _, err := fmt.Fprintf(w, "# %s\n", r.Name); err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, w, r.Root); err != nil {
			return err
		}
	}
	return nil
}
