package main

import (
	"fmt"
	"io"
	"os"

	"github.com/csd-format/go-csd/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return err
		}
		return printTokens(cc.Out, "stdin", d)
	}
	for _, file := range args {
		d, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := printTokens(cc.Out, file, d); err != nil {
			return err
		}
	}
	return nil
}

func printTokens(w io.Writer, name string, d []byte) error {
	toks, err := token.Tokenize(nil, d)
	token.PrintTokens(w, toks, name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
