package main

import (
	"fmt"
	"io"

	"github.com/csd-format/go-csd/diag"
	"github.com/csd-format/go-csd/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	if len(args) == 0 {
		if !checkReader(cc.Out, cc.In, "stdin", cfg.Quiet) {
			failed++
		}
	}
	for _, file := range args {
		if !checkFile(cc.Out, file, cfg.Quiet) {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(w io.Writer, file string, quiet bool) bool {
	doc, err := parse.ParseFile(file)
	return report(w, file, doc.Kind(), err, quiet)
}

func checkReader(w io.Writer, r io.Reader, name string, quiet bool) bool {
	doc, err := readDoc(r, name)
	return report(w, name, doc.Kind(), err, quiet)
}

// report prints one line per document: "name: ok" or
// "name: <kind> error: <diagnostic>".
func report(w io.Writer, name string, kind diag.Kind, err error, quiet bool) bool {
	if err == nil {
		if !quiet {
			fmt.Fprintf(w, "%s: ok\n", name)
		}
		return true
	}
	fmt.Fprintf(w, "%s: %s error: %v\n", name, kind, err)
	return false
}
