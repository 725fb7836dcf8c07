package ir

import (
	"iter"
	"slices"
)

// Sequence is an insertion ordered key-map of nodes. Keys are unique:
// pushing a node whose key is already present replaces the earlier node
// in its original slot.
//
// The zero value is an empty sequence ready to use. Read methods accept a
// nil receiver.
type Sequence struct {
	nodes []*Node
	index map[string]int
}

func NewSequence(nodes ...*Node) *Sequence {
	s := &Sequence{}
	for _, n := range nodes {
		s.Push(n)
	}
	return s
}

// Push inserts n under n.Key and returns it. Nil nodes and nodes holding
// the end sentinel are not stored and Push returns nil.
func (s *Sequence) Push(n *Node) *Node {
	if n == nil || n.Value.Type == EndType {
		return nil
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[n.Key]; ok {
		s.nodes[i] = n
		return n
	}
	s.index[n.Key] = len(s.nodes)
	s.nodes = append(s.nodes, n)
	return n
}

// Get returns the node stored under key, or nil.
func (s *Sequence) Get(key string) *Node {
	if s == nil {
		return nil
	}
	i, ok := s.index[key]
	if !ok {
		return nil
	}
	return s.nodes[i]
}

// Remove deletes the node stored under key, if any. The relative order of
// the remaining nodes is unchanged.
func (s *Sequence) Remove(key string) {
	if s == nil {
		return
	}
	i, ok := s.index[key]
	if !ok {
		return
	}
	delete(s.index, key)
	s.nodes = slices.Delete(s.nodes, i, i+1)
	for j := i; j < len(s.nodes); j++ {
		s.index[s.nodes[j].Key] = j
	}
}

func (s *Sequence) Count() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// At returns the i'th node in insertion order.
func (s *Sequence) At(i int) *Node {
	return s.nodes[i]
}

func (s *Sequence) Keys() []string {
	if s == nil {
		return nil
	}
	res := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		res[i] = n.Key
	}
	return res
}

// Nodes returns the nodes in insertion order. The slice is a copy.
func (s *Sequence) Nodes() []*Node {
	if s == nil {
		return nil
	}
	return slices.Clone(s.nodes)
}

func (s *Sequence) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if s == nil {
			return
		}
		for _, n := range s.nodes {
			if !yield(n.Key, n) {
				return
			}
		}
	}
}
