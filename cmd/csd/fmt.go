package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/parse"

	"github.com/scott-cotton/cli"
)

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write {
		if len(args) == 0 {
			return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
		}
		for _, file := range args {
			if err := fmtInPlace(cfg.MainConfig, file); err != nil {
				return err
			}
		}
		return nil
	}
	return eachDoc(cc, args, func(i int, doc *ir.Document) error {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		return writeDoc(cfg.MainConfig, cc.Out, doc.Root)
	})
}

// writeDoc renders root followed by a newline. An empty document renders
// nothing.
func writeDoc(cfg *MainConfig, w io.Writer, root *ir.Node) error {
	if root == nil {
		return nil
	}
	if err := encode.Encode(root, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %q: %w", root.Key, err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func fmtInPlace(cfg *MainConfig, file string) error {
	doc, err := parse.ParseFile(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeDoc(&MainConfig{Format: cfg.Format, Compact: cfg.Compact}, buf, doc.Root); err != nil {
		return err
	}
	if bytes.Equal(buf.Bytes(), doc.Source) {
		return nil
	}
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), fi.Mode().Perm())
}
