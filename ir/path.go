package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed selector such as
//
//	$.window.width
//	$.en_US['play again']
//	$.colors[2]
//	$..title
//	$.gray[*]
//
// The leading '$' may be omitted.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			if !bytes.HasSuffix(buf.Bytes(), []byte("..")) {
				buf.WriteByte('.')
			}
			buf.WriteString(QuoteField(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	p = strings.TrimPrefix(p, "$")
	root := &Path{}
	if len(p) == 0 {
		return root, nil
	}
	if p[0] != '.' && p[0] != '[' {
		p = "." + p
	}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPath, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			if err := parseFrag(frag[1:], next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '[' at %q", frag)
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, fmt.Errorf("bad index %q", is)
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of path scanning for \"'\"")
}

// QuoteField renders f as a path field, quoting it if needed.
func QuoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Lookup resolves a single-valued path below n. It reports false if a
// field or index along the path is absent. Selecting a field of a
// non-sequence or an index of a non-array is an error, as are the
// wildcard and subtree forms.
func Lookup(n *Node, path string) (Value, bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Value{}, false, err
	}
	if n == nil {
		return Value{}, false, nil
	}
	cur := n.Value
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return Value{}, false, fmt.Errorf("%w: [*] in lookup", ErrPath)
		case x.Subtree:
			return Value{}, false, fmt.Errorf("%w: .. in lookup", ErrPath)
		case x.Index != nil:
			if cur.Type != ArrayType {
				return Value{}, false, fmt.Errorf("%w: expected array, got %s", ErrPath, cur.Type)
			}
			i := *x.Index
			if i >= cur.Array.Len() {
				return Value{}, false, nil
			}
			cur = *cur.Array.At(i)
		case x.Field != nil:
			if cur.Type != SequenceType {
				return Value{}, false, fmt.Errorf("%w: expected sequence, got %s", ErrPath, cur.Type)
			}
			c := cur.Sequence.Get(*x.Field)
			if c == nil {
				return Value{}, false, nil
			}
			cur = c.Value
		}
	}
	return cur, true, nil
}

// List appends to dst every value below n matched by path.
func List(dst []Value, n *Node, path string) ([]Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return dst, nil
	}
	return listPath(dst, n.Value, p), nil
}

func listPath(dst []Value, v Value, p *Path) []Value {
	if p == nil {
		return append(dst, v)
	}
	if p.Subtree {
		dst = listPath(dst, v, p.Next)
		switch v.Type {
		case SequenceType:
			for _, c := range v.Sequence.Nodes() {
				dst = listPath(dst, c.Value, p)
			}
		case ArrayType:
			for _, e := range v.Array.Values() {
				dst = listPath(dst, e, p)
			}
		}
		return dst
	}
	switch v.Type {
	case SequenceType:
		if p.Field == nil {
			if p.Index == nil && !p.IndexAll {
				return listPath(dst, v, p.Next)
			}
			return dst
		}
		if c := v.Sequence.Get(*p.Field); c != nil {
			dst = listPath(dst, c.Value, p.Next)
		}
		return dst
	case ArrayType:
		if p.Field != nil {
			return dst
		}
		if p.Index != nil {
			if *p.Index < v.Array.Len() {
				dst = listPath(dst, *v.Array.At(*p.Index), p.Next)
			}
			return dst
		}
		if !p.IndexAll {
			return listPath(dst, v, p.Next)
		}
		for _, e := range v.Array.Values() {
			dst = listPath(dst, e, p.Next)
		}
		return dst
	default:
		if p.Field != nil || p.Index != nil || p.IndexAll {
			return dst
		}
		return listPath(dst, v, p.Next)
	}
}
