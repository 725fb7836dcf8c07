package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ToAny converts v to the values produced by encoding/json: sequences
// become map[string]any, arrays []any, and ints int64. Sequence order is
// lost; use MarshalJSON to keep it.
func ToAny(v Value) any {
	switch v.Type {
	case SequenceType:
		res := make(map[string]any, v.Sequence.Count())
		for k, c := range v.Sequence.All() {
			res[k] = ToAny(c.Value)
		}
		return res
	case ArrayType:
		res := make([]any, v.Array.Len())
		for i, e := range v.Array.All() {
			res[i] = ToAny(e)
		}
		return res
	case StringType:
		return v.String
	case IntType:
		return v.Int
	case FloatType:
		return v.Float
	case BoolType:
		return v.Bool
	case NilType:
		return nil
	default:
		panic("impossible production")
	}
}

// MarshalJSON renders the value of n as JSON, keeping sequence order.
func MarshalJSON(n *Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if n == nil {
		buf.WriteString("null")
		return buf.Bytes(), nil
	}
	if err := writeJSON(buf, n.Value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.Type {
	case SequenceType:
		buf.WriteByte('{')
		i := 0
		for k, c := range v.Sequence.All() {
			if i != 0 {
				buf.WriteByte(',')
			}
			i++
			d, _ := json.Marshal(k)
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, c.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, e := range v.Array.All() {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case EndType:
		return fmt.Errorf("%w: end sentinel in tree", ErrJSON)
	default:
		d, err := json.Marshal(ToAny(v))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}
		buf.Write(d)
	}
	return nil
}

// FromJSON builds a node named key from a single JSON value. Object
// member order is kept. Numbers without a fraction or exponent which fit
// in an int64 become ints; all other numbers become floats.
func FromJSON(key string, data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrJSON)
	}
	return &Node{Key: key, Value: v}, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			seq := NewSequence()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				k, _ := kt.(string)
				v, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				seq.Push(&Node{Key: k, Value: v})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromSequence(seq), nil
		case '[':
			arr := NewArray()
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				arr.Push(v)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromArray(arr), nil
		default:
			return Value{}, fmt.Errorf("unexpected %q", t)
		}
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return FromFloat(f), nil
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case nil:
		return Nil(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}
