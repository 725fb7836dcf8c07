package libdiff

import (
	"fmt"
	"strconv"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/format"
	"github.com/csd-format/go-csd/ir"
)

type Op int

const (
	// Add is an entry or element present only in the second tree.
	Add Op = iota
	// Remove is an entry or element present only in the first tree.
	Remove
	// Replace is a value which differs in type or content.
	Replace
	// Move is a sequence entry whose key changed position.
	Move
	// Rename is a difference in the keys of the two roots.
	Rename
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Remove:
		return "-"
	case Replace:
		return "~"
	case Move:
		return ">"
	case Rename:
		return "%"
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Change is one difference between two trees. Path is in the syntax
// accepted by ir.Lookup. From is nil for Add and To is nil for Remove.
type Change struct {
	Op   Op
	Path string
	From *ir.Value
	To   *ir.Value

	// Keys holds the root keys for Rename.
	Keys [2]string
}

func (c Change) String() string {
	switch c.Op {
	case Add:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, valueString(c.To))
	case Remove:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, valueString(c.From))
	case Rename:
		return fmt.Sprintf("%s %s: %q -> %q", c.Op, c.Path, c.Keys[0], c.Keys[1])
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, valueString(c.From), valueString(c.To))
	}
}

func valueString(v *ir.Value) string {
	if v == nil {
		return "<none>"
	}
	d, err := encode.EncodeBytes(ir.NewNode("", *v), encode.EncodeFormat(format.Compact))
	if err != nil {
		return "<" + v.Type.String() + ">"
	}
	return string(d)
}

// Diff reports the changes which turn from into to, outermost first. It
// returns nil when the trees are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return []Change{{Op: Add, Path: "$", To: &to.Value}}
	case to == nil:
		return []Change{{Op: Remove, Path: "$", From: &from.Value}}
	}
	if from.Key != to.Key {
		res = append(res, Change{Op: Rename, Path: "$", Keys: [2]string{from.Key, to.Key}})
	}
	return diffValue(res, "$", from.Value, to.Value)
}

func diffValue(dst []Change, path string, from, to ir.Value) []Change {
	if from.Type != to.Type {
		return append(dst, replace(path, from, to))
	}
	switch from.Type {
	case ir.SequenceType:
		return DiffSequence(dst, path, from.Sequence, to.Sequence)
	case ir.ArrayType:
		return DiffArrayByIndex(dst, path, from.Array, to.Array)
	}
	if !ir.Equal(ir.NewNode("", from), ir.NewNode("", to)) {
		return append(dst, replace(path, from, to))
	}
	return dst
}

func replace(path string, from, to ir.Value) Change {
	return Change{Op: Replace, Path: path, From: &from, To: &to}
}

func fieldPath(path, key string) string {
	return path + "." + ir.QuoteField(key)
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// Reverse returns the changes which turn the second tree back into the
// first.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := c
		r.From, r.To = c.To, c.From
		r.Keys = [2]string{c.Keys[1], c.Keys[0]}
		switch c.Op {
		case Add:
			r.Op = Remove
		case Remove:
			r.Op = Add
		}
		res[i] = r
	}
	return res
}
