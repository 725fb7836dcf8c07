package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=c aliases=compact desc='output in compact format'"`

	Format *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) profileFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.LoadFile(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.Format != nil:
		return *cfg.Format
	case cfg.Compact:
		return format.Compact
	default:
		return format.Standard
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.colorSet() {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of the output'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='list every match of a path with .. or [*]'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='line diff of the rendered documents'"`
	Pretty  bool `cli:"name=pretty desc='character diff of the rendered documents in color'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expand bool `cli:"name=x aliases=expand desc='expand $[expr] references in the documents'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='patch is a JSON merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Debounce time.Duration

	Watch *cli.Command
}

func (cfg *WatchConfig) mkDebounce() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Debounce = d
		return d, nil
	}
}

type MatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='pattern arg as string'"`
	Glob   bool `cli:"name=glob desc='match string values as globs'"`
	Trim   bool `cli:"name=trim desc='output only the matched parts of documents'"`

	Match *cli.Command
}

type BuildConfig struct {
	*MainConfig
	DestDir string `cli:"name=dest desc='destination directory, overriding destDir'"`
	Show    bool   `cli:"name=show desc='write results to the output instead of destDir'"`

	Build *cli.Command
}
