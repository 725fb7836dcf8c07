package ir

import (
	"math"
)

// NeqFunc is called by EqualFunc for each pair of nodes found unequal,
// innermost pair first. Array elements are reported through the node
// holding the array.
type NeqFunc func(a, b *Node)

// Equal reports whether two trees have the same keys, types and values.
// Sequence entries are compared in order and floats are compared bit for
// bit.
func Equal(a, b *Node) bool {
	return EqualFunc(a, b, nil)
}

func EqualFunc(a, b *Node, neq NeqFunc) bool {
	if neq == nil {
		neq = func(_, _ *Node) {}
	}
	return nodeEqual(a, b, neq)
}

func nodeEqual(a, b *Node, neq NeqFunc) bool {
	if a == nil || b == nil {
		if a != b {
			neq(a, b)
			return false
		}
		return true
	}
	if a.Key != b.Key || !valueEqual(a, b, a.Value, b.Value, neq) {
		neq(a, b)
		return false
	}
	return true
}

func valueEqual(a, b *Node, va, vb Value, neq NeqFunc) bool {
	if va.Type != vb.Type {
		return false
	}
	switch va.Type {
	case NilType, EndType:
		return true
	case ArrayType:
		if va.Array.Len() != vb.Array.Len() {
			return false
		}
		for i := range va.Array.Len() {
			if !valueEqual(a, b, *va.Array.At(i), *vb.Array.At(i), neq) {
				return false
			}
		}
		return true
	case SequenceType:
		if va.Sequence.Count() != vb.Sequence.Count() {
			return false
		}
		for i := range va.Sequence.Count() {
			if !nodeEqual(va.Sequence.At(i), vb.Sequence.At(i), neq) {
				return false
			}
		}
		return true
	case FloatType:
		return math.Float64bits(va.Float) == math.Float64bits(vb.Float)
	case IntType:
		return va.Int == vb.Int
	case BoolType:
		return va.Bool == vb.Bool
	case StringType:
		return va.String == vb.String
	}
	return false
}
