package main

import (
	"fmt"
	"io"

	"github.com/csd-format/go-csd/eval"
	"github.com/csd-format/go-csd/ir"

	"github.com/scott-cotton/cli"
)

func evalDocs(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expand {
		return eachDoc(cc, args, func(_ int, doc *ir.Document) error {
			res, err := eval.ExpandTree(doc.Root)
			if err != nil {
				return fmt.Errorf("error expanding %s: %w", doc.Name, err)
			}
			return writeDoc(cfg.MainConfig, cc.Out, res)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	return eachDoc(cc, args[1:], func(_ int, doc *ir.Document) error {
		return evalExpr(cfg, cc.Out, doc.Root, expression)
	})
}

func evalExpr(cfg *EvalConfig, w io.Writer, root *ir.Node, expression string) error {
	res, err := eval.EvalNode(root, "", expression)
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, w, res)
}
