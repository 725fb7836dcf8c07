package csd

import (
	"math"
	"path"

	"github.com/csd-format/go-csd/ir"
)

type MatchConfig struct {
	Globs bool
}

type MatchOpt func(*MatchConfig)

// MatchGlobs makes string patterns match as path.Match globs.
func MatchGlobs(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Globs = v }
}

// Match reports whether the value of doc matches the value of pattern.
// The keys of doc and pattern themselves are not compared.
//
// A nil pattern matches anything. A sequence matches if each of its
// entries matches the entry of doc with the same key; doc may have
// other entries. Arrays match elementwise and must have the same
// length. Scalars match if they are equal.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if doc == nil || pattern == nil {
		return pattern == nil || pattern.Value.Type == ir.NilType
	}
	return matchValue(doc.Value, pattern.Value, cfg)
}

func matchValue(doc, pattern ir.Value, cfg *MatchConfig) bool {
	if pattern.Type == ir.NilType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.SequenceType:
		for k, pc := range pattern.Sequence.All() {
			dc := doc.Sequence.Get(k)
			if dc == nil || !matchValue(dc.Value, pc.Value, cfg) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if doc.Array.Len() != pattern.Array.Len() {
			return false
		}
		for i, pv := range pattern.Array.All() {
			if !matchValue(*doc.Array.At(i), pv, cfg) {
				return false
			}
		}
		return true
	case ir.StringType:
		if cfg.Globs {
			ok, err := path.Match(pattern.String, doc.String)
			return err == nil && ok
		}
		return doc.String == pattern.String
	case ir.BoolType:
		return doc.Bool == pattern.Bool
	case ir.IntType:
		return doc.Int == pattern.Int
	case ir.FloatType:
		return math.Float64bits(doc.Float) == math.Float64bits(pattern.Float)
	}
	return false
}

// Trim returns a copy of doc holding only the sequence entries named in
// pattern. Array elements are kept when they match an element of the
// pattern array, each pattern element consuming at most one.
func Trim(pattern, doc *ir.Node) *ir.Node {
	if doc == nil {
		return nil
	}
	if pattern == nil {
		return doc.Clone()
	}
	return ir.NewNode(doc.Key, trimValue(pattern.Value, doc.Value))
}

func trimValue(pattern, doc ir.Value) ir.Value {
	if pattern.Type != doc.Type {
		return doc.Clone()
	}
	switch pattern.Type {
	case ir.SequenceType:
		res := ir.NewSequence()
		for _, dc := range doc.Sequence.Nodes() {
			pc := pattern.Sequence.Get(dc.Key)
			if pc == nil {
				continue
			}
			res.Push(ir.NewNode(dc.Key, trimValue(pc.Value, dc.Value)))
		}
		return ir.FromSequence(res)
	case ir.ArrayType:
		res := ir.NewArray()
		used := make([]bool, doc.Array.Len())
		cfg := &MatchConfig{}
		for _, pv := range pattern.Array.All() {
			for i, dv := range doc.Array.All() {
				if used[i] || !matchValue(dv, pv, cfg) {
					continue
				}
				res.Push(trimValue(pv, dv))
				used[i] = true
				break
			}
		}
		return ir.FromArray(res)
	default:
		return doc.Clone()
	}
}
