package eval

import (
	"errors"
	"fmt"

	"github.com/csd-format/go-csd/debug"
	"github.com/csd-format/go-csd/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Env is the variable environment of an expression.
type Env map[string]any

// NewEnv returns the environment for expressions over root: the entries
// of a sequence root as variables. Any other root gives an empty
// environment; its value is still reachable with getpath("$").
func NewEnv(root *ir.Node) Env {
	env := Env{}
	if root == nil || root.Value.Type != ir.SequenceType {
		return env
	}
	for k, c := range root.Value.Sequence.All() {
		if k == "" || c.Value.Type == ir.EndType {
			continue
		}
		env[k] = ir.ToAny(c.Value)
	}
	return env
}

// With returns a copy of e holding the variables of extra as well.
// Variables in extra take precedence.
func (e Env) With(extra Env) Env {
	res := make(Env, len(e)+len(extra))
	for k, v := range e {
		res[k] = v
	}
	for k, v := range extra {
		res[k] = v
	}
	return res
}

// Compile compiles expression against env. The path functions resolve
// paths below root.
func Compile(root *ir.Node, env Env, expression string, opts ...expr.Option) (*vm.Program, error) {
	all := append(exprOpts(root), expr.Env(map[string]any(env)))
	all = append(all, opts...)
	prg, err := expr.Compile(expression, all...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, expression, err)
	}
	return prg, nil
}

// Eval evaluates expression with the entries of root as variables.
func Eval(root *ir.Node, expression string) (any, error) {
	return EvalEnv(root, NewEnv(root), expression)
}

// EvalEnv evaluates expression with the variables in env.
func EvalEnv(root *ir.Node, env Env, expression string) (any, error) {
	prg, err := Compile(root, env, expression)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", expression, res)
	}
	return res, nil
}

// EvalNode evaluates expression and converts the result to a node keyed
// by key.
func EvalNode(root *ir.Node, key, expression string) (*ir.Node, error) {
	res, err := Eval(root, expression)
	if err != nil {
		return nil, err
	}
	return FromAny(key, res)
}

// Truth evaluates a boolean expression.
func Truth(root *ir.Node, expression string) (bool, error) {
	return TruthEnv(root, NewEnv(root), expression)
}

func TruthEnv(root *ir.Node, env Env, expression string) (bool, error) {
	res, err := EvalEnv(root, env, expression)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrEval, expression, res)
	}
	return b, nil
}
