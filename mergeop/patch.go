package mergeop

import (
	"errors"
	"fmt"

	"github.com/csd-format/go-csd/debug"
	"github.com/csd-format/go-csd/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch is a decoded RFC 6902 JSON Patch.
type Patch struct {
	ops jsonpatch.Patch
}

// DecodePatch decodes a JSON Patch document.
func DecodePatch(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

// DecodePatchNode decodes a JSON Patch written as a csd array of
// sequences, such as
//
//	[{op: "replace", path: "/window/width", value: 1024}]
func DecodePatchNode(n *ir.Node) (*Patch, error) {
	d, err := ir.MarshalJSON(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return DecodePatch(d)
}

// Len returns the number of operations in p.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply applies p to the value of doc, returning a new node with the key
// of doc. Entries which survive the patch keep their order; entries
// added by it follow them.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json-patch of %d ops on %q\n", len(p.ops), doc.Key)
	}
	d, err := ir.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromPatched(doc, out)
}

// JSONPatch applies the RFC 6902 patch in patch to doc.
func JSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	p, err := DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// MergePatch applies the RFC 7386 merge patch in patch to doc.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge-patch on %q\n", doc.Key)
	}
	d, err := ir.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromPatched(doc, out)
}

// MergePatchNode applies a merge patch written as a csd node.
func MergePatchNode(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := ir.MarshalJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return MergePatch(doc, d)
}

// CreateMergePatch returns the merge patch which turns from into to.
func CreateMergePatch(from, to *ir.Node) ([]byte, error) {
	a, err := ir.MarshalJSON(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	b, err := ir.MarshalJSON(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func fromPatched(orig *ir.Node, d []byte) (*ir.Node, error) {
	res, err := ir.FromJSON(orig.Key, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res.Value = reorder(orig.Value, res.Value)
	return res, nil
}
