package ir

// Value is a tagged union: Type selects which of the remaining fields is
// meaningful.
type Value struct {
	Type Type

	Array    *Array
	Sequence *Sequence
	Float    float64
	Int      int64
	Bool     bool
	String   string
}

func Nil() Value {
	return Value{Type: NilType}
}

func FromArray(a *Array) Value {
	if a == nil {
		a = NewArray()
	}
	return Value{Type: ArrayType, Array: a}
}

func FromSequence(s *Sequence) Value {
	if s == nil {
		s = NewSequence()
	}
	return Value{Type: SequenceType, Sequence: s}
}

func FromFloat(v float64) Value {
	return Value{Type: FloatType, Float: v}
}

func FromInt(v int64) Value {
	return Value{Type: IntType, Int: v}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func EndValue() Value {
	return Value{Type: EndType}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.Type {
	case ArrayType:
		res := NewArray()
		for _, e := range v.Array.Values() {
			res.Push(e.Clone())
		}
		v.Array = res
	case SequenceType:
		res := NewSequence()
		for _, n := range v.Sequence.Nodes() {
			res.Push(n.Clone())
		}
		v.Sequence = res
	}
	return v
}

// free releases the containers owned by v, depth first.
func (v *Value) free() {
	switch v.Type {
	case ArrayType:
		if v.Array != nil {
			for i := range v.Array.values {
				v.Array.values[i].free()
			}
			v.Array.values = nil
		}
		v.Array = nil
	case SequenceType:
		if v.Sequence != nil {
			v.Sequence.nodes = nil
			v.Sequence.index = nil
		}
		v.Sequence = nil
	}
}
