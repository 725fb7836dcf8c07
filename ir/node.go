package ir

// Node is a key and a value. Nodes stored in a sequence are addressed by
// their key; the key is empty for nodes not held by a sequence, such as an
// anonymous root.
type Node struct {
	Key   string
	Value Value
}

func NewNode(key string, v Value) *Node {
	return &Node{Key: key, Value: v}
}

// Sequence returns the node's sequence, or nil if the node does not hold
// one.
func (n *Node) Sequence() *Sequence {
	if n == nil || n.Value.Type != SequenceType {
		return nil
	}
	return n.Value.Sequence
}

// Array returns the node's array, or nil if the node does not hold one.
func (n *Node) Array() *Array {
	if n == nil || n.Value.Type != ArrayType {
		return nil
	}
	return n.Value.Array
}

// Insert pushes child into the node's sequence.
func (n *Node) Insert(child *Node) *Node {
	return n.seq().Push(child)
}

func (n *Node) Get(key string) *Node {
	return n.Sequence().Get(key)
}

func (n *Node) Remove(key string) {
	n.Sequence().Remove(key)
}

func (n *Node) Count() int {
	return n.Sequence().Count()
}

// Push appends v to the node's array.
func (n *Node) Push(v Value) *Value {
	if n.Value.Type != ArrayType {
		panic("ir: Push on a " + n.Value.Type.String() + " node")
	}
	if n.Value.Array == nil {
		n.Value.Array = NewArray()
	}
	return n.Value.Array.Push(v)
}

func (n *Node) Len() int {
	return n.Array().Len()
}

func (n *Node) seq() *Sequence {
	if n.Value.Type != SequenceType {
		panic("ir: Insert on a " + n.Value.Type.String() + " node")
	}
	if n.Value.Sequence == nil {
		n.Value.Sequence = NewSequence()
	}
	return n.Value.Sequence
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{Key: n.Key, Value: n.Value.Clone()}
}

// Visit calls f on n and, depth first, on every node in the sequences
// below it. Array elements which hold sequences are visited as nodes with
// an empty key. f returns whether to descend.
func (n *Node) Visit(f func(n *Node) (bool, error)) error {
	dive, err := f(n)
	if err != nil || !dive {
		return err
	}
	return visitValue(n.Value, f)
}

func visitValue(v Value, f func(n *Node) (bool, error)) error {
	switch v.Type {
	case SequenceType:
		for _, c := range v.Sequence.Nodes() {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	case ArrayType:
		for _, e := range v.Array.Values() {
			if e.Type.IsLeaf() {
				continue
			}
			if err := (&Node{Value: e}).Visit(f); err != nil {
				return err
			}
		}
	}
	return nil
}
