package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/token"
)

type EncState struct {
	depth   int
	initCap int

	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		format:  format.Standard,
		initCap: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w. It returns the first encoding or write error;
// output stops at a write error.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	b := &streamBackend{w: w}
	if err := encode(b, node, es); err != nil {
		return err
	}
	return b.err
}

// EncodeFixed writes node into buf. The walk always completes; if the
// output did not fit, the returned Fixed has Status diag.WriteOverflow
// and the error is its overflow diagnostic.
func EncodeFixed(node *ir.Node, buf []byte, opts ...EncodeOption) (*Fixed, error) {
	es := newEncState(opts)
	f := NewFixed(buf)
	if err := encode(f, node, es); err != nil {
		return f, err
	}
	return f, f.Err()
}

// EncodeBytes renders node into a new buffer.
func EncodeBytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	g, err := EncodeGrowable(node, opts...)
	if err != nil {
		return nil, err
	}
	return g.Bytes(), nil
}

// EncodeGrowable renders node into a Growable starting at the configured
// initial capacity.
func EncodeGrowable(node *ir.Node, opts ...EncodeOption) (*Growable, error) {
	es := newEncState(opts)
	g := NewGrowable(es.initCap)
	if err := encode(g, node, es); err != nil {
		return nil, err
	}
	return g, nil
}

func encode(b backend, node *ir.Node, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	return encodeNode(b, node, es.depth, es)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(t, a, s)
}

func encodeNode(b backend, node *ir.Node, depth int, es *EncState) error {
	f := &es.format
	t := node.Value.Type
	if node.Key != "" {
		if !token.IsIdent(node.Key) {
			return fmt.Errorf("%w: key %q is not an identifier", ErrEncoding, node.Key)
		}
		b.writeString(es.color(t, FieldColor, node.Key))
		if t == ir.SequenceType {
			b.writeString(f.Space)
		} else {
			b.writeString(es.color(t, SepColor, f.Assignment))
			b.writeString(f.Space)
		}
	}
	return encodeValue(b, node.Value, depth, es)
}

func encodeValue(b backend, v ir.Value, depth int, es *EncState) error {
	f := &es.format
	switch v.Type {
	case ir.NilType:
		b.writeString(es.color(ir.NilType, ValueColor, "nil"))
	case ir.BoolType:
		b.writeString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.IntType:
		b.writeString(es.color(ir.IntType, ValueColor, strconv.FormatInt(v.Int, 10)))
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return fmt.Errorf("%w: cannot write %v", ErrEncoding, v.Float)
		}
		b.writeString(es.color(ir.FloatType, ValueColor, strconv.FormatFloat(v.Float, 'f', 6, 64)))
	case ir.StringType:
		s, err := quote(v.String, f.Quote)
		if err != nil {
			return err
		}
		b.writeString(es.color(ir.StringType, ValueColor, s))
	case ir.SequenceType:
		b.writeString(es.color(ir.SequenceType, SepColor, f.SequenceBegin))
		n := v.Sequence.Count()
		for i, child := range v.Sequence.Nodes() {
			if child.Key == "" && child.Value.Type != ir.SequenceType {
				return fmt.Errorf("%w: %s entry without a key", ErrEncoding, child.Value.Type)
			}
			writeIndent(b, f.SequenceIndent, depth+1)
			if err := encodeNode(b, child, depth+1, es); err != nil {
				return err
			}
			if i < n-1 {
				b.writeString(es.color(ir.SequenceType, SepColor, f.SequenceComma))
			} else {
				b.writeString(es.color(ir.SequenceType, SepColor, f.SequenceLastComma))
			}
		}
		writeIndent(b, f.SequenceIndent, depth)
		b.writeString(es.color(ir.SequenceType, SepColor, f.SequenceEnd))
	case ir.ArrayType:
		b.writeString(es.color(ir.ArrayType, SepColor, f.ArrayBegin))
		n := v.Array.Len()
		for i, e := range v.Array.All() {
			writeIndent(b, f.ArrayIndent, depth+1)
			if err := encodeValue(b, e, depth+1, es); err != nil {
				return err
			}
			if i < n-1 {
				b.writeString(es.color(ir.ArrayType, SepColor, f.ArrayComma))
			} else {
				b.writeString(es.color(ir.ArrayType, SepColor, f.ArrayLastComma))
			}
		}
		writeIndent(b, f.ArrayIndent, depth)
		b.writeString(es.color(ir.ArrayType, SepColor, f.ArrayEnd))
	case ir.EndType:
		return fmt.Errorf("%w: end sentinel in tree", ErrEncoding)
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, v.Type)
	}
	return nil
}

func writeIndent(b backend, indent string, depth int) {
	if indent == "" || depth <= 0 {
		return
	}
	b.writeString(strings.Repeat(indent, depth))
}

// quote escapes s and surrounds it with q, or with the other quote
// character if s contains q. The lexer ends a string at the first
// occurrence of its quote, so s may not contain both.
func quote(s, q string) (string, error) {
	if strings.Contains(s, q) {
		other := `"`
		if q == `"` {
			other = "'"
		}
		if strings.Contains(s, other) {
			return "", fmt.Errorf("%w: string %q contains both quote characters", ErrEncoding, s)
		}
		q = other
	}
	return q + token.Escape(s) + q, nil
}
