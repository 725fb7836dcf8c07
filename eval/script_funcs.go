package eval

import (
	"os"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			v, ok, err := ir.Lookup(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, nil
			}
			return ir.ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, ok, err := ir.Lookup(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("listpath", func(params ...any) (any, error) {
			vs, err := ir.List(nil, root, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(vs))
			for i, v := range vs {
				res[i] = ir.ToAny(v)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("render", func(params ...any) (any, error) {
			n, err := FromAny("", params[0])
			if err != nil {
				return nil, err
			}
			d, err := encode.EncodeBytes(n, encode.EncodeFormat(format.Compact))
			if err != nil {
				return nil, err
			}
			return string(d), nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
