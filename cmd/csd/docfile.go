package main

import (
	"io"

	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile parses the document in path, or in the command input when
// path is "-".
func getDocFile(cc *cli.Context, path string) (*ir.Document, error) {
	if path != "-" {
		return parse.ParseFile(path)
	}
	return readDoc(cc.In, "stdin")
}

func readDoc(r io.Reader, name string) (*ir.Document, error) {
	return parse.ParseReader(r, parse.WithFilename(name))
}

// eachDoc calls f with each document named in args, or with the command
// input when there are none.
func eachDoc(cc *cli.Context, args []string, f func(i int, doc *ir.Document) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		doc, err := getDocFile(cc, arg)
		if err != nil {
			return err
		}
		if err := f(i, doc); err != nil {
			return err
		}
	}
	return nil
}
