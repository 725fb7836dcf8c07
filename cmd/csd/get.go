package main

import (
	"fmt"
	"io"

	"github.com/csd-format/go-csd/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cc, args[1:], func(_ int, doc *ir.Document) error {
		if err := getPath(cfg, cc.Out, doc.Root, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", doc.Name, path, err)
		}
		return nil
	})
}

// getPath writes the values at path below root, one per line. A path
// which resolves to nothing writes nothing.
func getPath(cfg *GetConfig, w io.Writer, root *ir.Node, path string) error {
	var vs []ir.Value
	if cfg.List {
		var err error
		vs, err = ir.List(nil, root, path)
		if err != nil {
			return err
		}
	} else {
		v, ok, err := ir.Lookup(root, path)
		if err != nil {
			return err
		}
		if ok {
			vs = append(vs, v)
		}
	}
	for _, v := range vs {
		if err := writeDoc(cfg.MainConfig, w, ir.NewNode("", v)); err != nil {
			return err
		}
	}
	return nil
}
