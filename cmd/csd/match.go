package main

import (
	"fmt"
	"io"

	csd "github.com/csd-format/go-csd"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern", cli.ErrUsage)
	}
	pat, err := getPattern(cfg, args[0])
	if err != nil {
		return err
	}
	n := 0
	err = eachDoc(cc, args[1:], func(_ int, doc *ir.Document) error {
		ok, err := matchDoc(cfg, cc.Out, doc.Root, pat)
		if ok {
			n++
		}
		return err
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPattern(cfg *MatchConfig, arg string) (*ir.Node, error) {
	var (
		doc *ir.Document
		err error
	)
	if cfg.String {
		doc, err = parse.ParseString(arg, parse.WithFilename("pattern"))
	} else {
		doc, err = parse.ParseFile(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: pattern: %w", cli.ErrUsage, err)
	}
	return doc.Root, nil
}

// matchDoc writes root when it matches pat, trimmed to pat with -trim.
func matchDoc(cfg *MatchConfig, w io.Writer, root, pat *ir.Node) (bool, error) {
	if root == nil || !csd.Match(root, pat, csd.MatchGlobs(cfg.Glob)) {
		return false, nil
	}
	if cfg.Trim {
		root = csd.Trim(pat, root)
	}
	return true, writeDoc(cfg.MainConfig, w, root)
}
