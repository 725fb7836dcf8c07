package main

import (
	"fmt"
	"io"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Pretty {
		return fmt.Errorf("%w: -text and -pretty are exclusive", cli.ErrUsage)
	}
	d1, err := getDocFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	d2, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, d1.Root, d2.Root)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	fmtOpt := encode.EncodeFormat(cfg.outFormat())
	switch {
	case cfg.Text:
		if cfg.Reverse {
			a, b = b, a
		}
		s, err := libdiff.Text(a, b, fmtOpt)
		if err != nil {
			return false, err
		}
		_, err = io.WriteString(w, s)
		return true, err
	case cfg.Pretty:
		if cfg.Reverse {
			a, b = b, a
		}
		s, err := libdiff.Pretty(a, b, fmtOpt)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintln(w, s)
		return true, err
	}
	changes := libdiff.Diff(a, b)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return true, err
		}
	}
	return true, nil
}
