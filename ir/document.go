package ir

import (
	"github.com/csd-format/go-csd/diag"
)

// Document owns the source buffer of one parse together with every node
// allocated for it.
//
// A document whose Kind is not diag.Ok has no usable Root.
type Document struct {
	Source []byte
	Root   *Node
	// Name is the display name used in file diagnostics.
	Name string

	nodes []*Node
	err   *diag.Error
	freed bool
}

func NewDocument(source []byte) *Document {
	return &Document{Source: source}
}

// End is the sentinel terminating a node list given to MakeSequence.
var End = &Node{Key: "_csd_end_sentinel", Value: Value{Type: EndType}}

func (d *Document) alloc(key string, v Value) *Node {
	n := &Node{Key: key, Value: v}
	if d != nil {
		d.nodes = append(d.nodes, n)
	}
	return n
}

func (d *Document) NewNil(key string) *Node {
	return d.alloc(key, Nil())
}

func (d *Document) NewArray(key string, a *Array) *Node {
	return d.alloc(key, FromArray(a))
}

func (d *Document) NewSequence(key string, s *Sequence) *Node {
	return d.alloc(key, FromSequence(s))
}

func (d *Document) NewFloat(key string, v float64) *Node {
	return d.alloc(key, FromFloat(v))
}

func (d *Document) NewInt(key string, v int64) *Node {
	return d.alloc(key, FromInt(v))
}

func (d *Document) NewBool(key string, v bool) *Node {
	return d.alloc(key, FromBool(v))
}

func (d *Document) NewString(key string, v string) *Node {
	return d.alloc(key, FromString(v))
}

// NewValue allocates a node holding v.
func (d *Document) NewValue(key string, v Value) *Node {
	return d.alloc(key, v)
}

// MakeSequence builds a sequence node from children, in order, stopping
// at End if it is present.
//
//	doc.MakeSequence("window",
//		doc.NewInt("width", 1920),
//		doc.NewInt("height", 1080))
func (d *Document) MakeSequence(key string, children ...*Node) *Node {
	n := d.NewSequence(key, nil)
	for _, c := range children {
		if c != nil && c.Value.Type == EndType {
			break
		}
		n.Insert(c)
	}
	return n
}

// Len returns the number of nodes allocated for the document.
func (d *Document) Len() int {
	return len(d.nodes)
}

// SetError records err as the document's error. Only the first error is
// kept. Errors which are not diagnostics are recorded as file errors.
func (d *Document) SetError(err error) {
	if err == nil || d.err != nil {
		return
	}
	de, ok := diag.As(err)
	if !ok {
		de = &diag.Error{Kind: diag.KindOf(err), Reason: diag.Truncate(err.Error())}
	}
	d.err = de
}

// Err returns the document's diagnostic, or nil.
func (d *Document) Err() error {
	if d.err == nil {
		return nil
	}
	return d.err
}

func (d *Document) Kind() diag.Kind {
	if d.err == nil {
		return diag.Ok
	}
	return d.err.Kind
}

func (d *Document) Reason() string {
	if d.err == nil {
		return ""
	}
	return d.err.Reason
}

// Release drops the root and every allocated node, releasing their
// containers first. The source buffer and error state are kept.
func (d *Document) Release() {
	for _, n := range d.nodes {
		n.Value.free()
	}
	d.nodes = nil
	d.Root = nil
}

// Free releases everything the document owns. It is safe to call more
// than once.
func (d *Document) Free() {
	if d.freed {
		return
	}
	d.Release()
	d.Source = nil
	d.freed = true
}
