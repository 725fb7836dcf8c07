package ir

import (
	"iter"
	"slices"
)

// Array is a growable ordered list of values. The zero value is an empty
// array ready to use.
type Array struct {
	values []Value
}

func NewArray(vs ...Value) *Array {
	return &Array{values: slices.Clone(vs)}
}

// Push appends v and returns the stored slot. The pointer is valid until
// the next Push.
func (a *Array) Push(v Value) *Value {
	a.values = append(a.values, v)
	return &a.values[len(a.values)-1]
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// At returns the i'th slot.
func (a *Array) At(i int) *Value {
	return &a.values[i]
}

// Values returns the elements. The slice is shared with the array until
// the next Push.
func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	return a.values
}

func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.Values() {
			if !yield(i, v) {
				return
			}
		}
	}
}
