package mergeop

import (
	"cmp"
	"slices"

	"github.com/csd-format/go-csd/ir"
)

// reorder puts the sequence entries of patched which also appear in orig
// back in the order of orig. JSON objects carry no order, so entries
// added by a patch follow sorted by key, at every depth.
//
// JSON also drops the distinction between 2.0 and 2: a float of orig
// which comes back as the equal int stays a float.
func reorder(orig, patched ir.Value) ir.Value {
	if orig.Type == ir.FloatType && patched.Type == ir.IntType && float64(patched.Int) == orig.Float {
		return ir.FromFloat(orig.Float)
	}
	if orig.Type != patched.Type {
		return sortKeys(patched)
	}
	switch patched.Type {
	case ir.SequenceType:
		res := ir.NewSequence()
		for _, oc := range orig.Sequence.Nodes() {
			pc := patched.Sequence.Get(oc.Key)
			if pc == nil {
				continue
			}
			res.Push(ir.NewNode(pc.Key, reorder(oc.Value, pc.Value)))
		}
		var added []*ir.Node
		for _, pc := range patched.Sequence.Nodes() {
			if res.Get(pc.Key) == nil {
				added = append(added, pc)
			}
		}
		for _, pc := range sortedNodes(added) {
			res.Push(pc)
		}
		return ir.FromSequence(res)
	case ir.ArrayType:
		n := min(orig.Array.Len(), patched.Array.Len())
		for i := range patched.Array.Len() {
			if i < n {
				*patched.Array.At(i) = reorder(*orig.Array.At(i), *patched.Array.At(i))
				continue
			}
			*patched.Array.At(i) = sortKeys(*patched.Array.At(i))
		}
	}
	return patched
}

// sortKeys orders the entries of every sequence in v by key.
func sortKeys(v ir.Value) ir.Value {
	switch v.Type {
	case ir.SequenceType:
		res := ir.NewSequence()
		for _, c := range sortedNodes(v.Sequence.Nodes()) {
			res.Push(c)
		}
		return ir.FromSequence(res)
	case ir.ArrayType:
		for i := range v.Array.Len() {
			*v.Array.At(i) = sortKeys(*v.Array.At(i))
		}
	}
	return v
}

func sortedNodes(nodes []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(nodes))
	for _, c := range nodes {
		res = append(res, ir.NewNode(c.Key, sortKeys(c.Value)))
	}
	slices.SortStableFunc(res, func(a, b *ir.Node) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return res
}
