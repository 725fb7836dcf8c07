package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/ir"
)

// ExpandString replaces every $[expr] in v with the rendered result of
// evaluating expr over root.
//
// Within an expression a backslash escapes the next character, so \]
// does not close it. An expression without a closing ] is left as
// literal text.
func ExpandString(root *ir.Node, v string) (string, error) {
	return ExpandStringEnv(root, NewEnv(root), v)
}

// ExpandStringEnv is ExpandString with the variables in env.
func ExpandStringEnv(root *ir.Node, env Env, v string) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	out := make([]byte, 0, len(v))
	i := 0
	for i < len(v) {
		if v[i] != '$' || i+1 == len(v) || v[i+1] != '[' {
			out = append(out, v[i])
			i++
			continue
		}
		key, n, ok := scanExpr(v[i+2:])
		if !ok {
			out = append(out, v[i:]...)
			break
		}
		res, err := EvalEnv(root, env, strings.TrimSpace(key))
		if err != nil {
			return "", err
		}
		s, err := anyString(res)
		if err != nil {
			return "", err
		}
		out = append(out, s...)
		i += 2 + n
	}
	return string(out), nil
}

// scanExpr reads an expression up to its closing ], returning the
// unescaped text and the number of bytes consumed including the ].
func scanExpr(v string) (string, int, bool) {
	buf := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			if i+1 == len(v) {
				return "", 0, false
			}
			i++
			buf = append(buf, v[i])
		case ']':
			return string(buf), i + 1, true
		default:
			buf = append(buf, c)
		}
	}
	return "", 0, false
}

func anyString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case nil:
		return "nil", nil
	}
	n, err := FromAny("", v)
	if err != nil {
		return "", err
	}
	d, err := encode.EncodeBytes(n, encode.EncodeFormat(format.Compact))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEval, err)
	}
	return string(d), nil
}

// ExpandTree returns a copy of root in which every string value is
// expanded with ExpandString. A string consisting only of .[expr] is
// replaced by the value of expr, which need not be a string. Expressions
// see the unexpanded root.
func ExpandTree(root *ir.Node) (*ir.Node, error) {
	return ExpandTreeEnv(root, NewEnv(root))
}

// ExpandTreeEnv is ExpandTree with the variables in env.
func ExpandTreeEnv(root *ir.Node, env Env) (*ir.Node, error) {
	if root == nil {
		return nil, nil
	}
	res := root.Clone()
	v, err := expandValue(root, env, res.Value)
	if err != nil {
		return nil, err
	}
	res.Value = v
	return res, nil
}

func expandValue(root *ir.Node, env Env, v ir.Value) (ir.Value, error) {
	switch v.Type {
	case ir.StringType:
		if raw, ok := rawRef(v.String); ok {
			res, err := EvalEnv(root, env, raw)
			if err != nil {
				return ir.Value{}, err
			}
			return fromAny(res)
		}
		s, err := ExpandStringEnv(root, env, v.String)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromString(s), nil
	case ir.SequenceType:
		for _, c := range v.Sequence.Nodes() {
			cv, err := expandValue(root, env, c.Value)
			if err != nil {
				return ir.Value{}, fmt.Errorf("%s: %w", c.Key, err)
			}
			c.Value = cv
		}
	case ir.ArrayType:
		for i := range v.Array.Len() {
			ev, err := expandValue(root, env, *v.Array.At(i))
			if err != nil {
				return ir.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			*v.Array.At(i) = ev
		}
	}
	return v, nil
}

func rawRef(s string) (string, bool) {
	if !strings.HasPrefix(s, ".[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	return strings.TrimSpace(s[2 : len(s)-1]), true
}
