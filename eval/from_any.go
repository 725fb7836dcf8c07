package eval

import (
	"fmt"
	"slices"

	"github.com/csd-format/go-csd/ir"
)

// FromAny converts an expression result to a node. Maps become sequences
// with their keys in sorted order.
func FromAny(key string, v any) (*ir.Node, error) {
	val, err := fromAny(v)
	if err != nil {
		return nil, err
	}
	return ir.NewNode(key, val), nil
}

func fromAny(v any) (ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Nil(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		a := ir.NewArray()
		for _, e := range x {
			ev, err := fromAny(e)
			if err != nil {
				return ir.Value{}, err
			}
			a.Push(ev)
		}
		return ir.FromArray(a), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		s := ir.NewSequence()
		for _, k := range keys {
			ev, err := fromAny(x[k])
			if err != nil {
				return ir.Value{}, err
			}
			s.Push(ir.NewNode(k, ev))
		}
		return ir.FromSequence(s), nil
	case *ir.Node:
		return x.Clone().Value, nil
	default:
		return ir.Value{}, fmt.Errorf("%w: cannot convert %T", ErrEval, v)
	}
}
