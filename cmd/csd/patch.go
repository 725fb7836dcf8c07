package main

import (
	"fmt"
	"io"
	"os"

	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	return eachDoc(cc, args[1:], func(_ int, doc *ir.Document) error {
		return patchDoc(cfg, cc.Out, doc.Root, p)
	})
}

func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}

func patchDoc(cfg *PatchConfig, w io.Writer, root *ir.Node, p []byte) error {
	if root == nil {
		return nil
	}
	var (
		res *ir.Node
		err error
	)
	if cfg.Merge {
		res, err = mergeop.MergePatch(root, p)
	} else {
		res, err = mergeop.JSONPatch(root, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %q: %w", root.Key, err)
	}
	return writeDoc(cfg.MainConfig, w, res)
}
