package ir

import "fmt"

type Type int

const (
	NilType Type = iota
	ArrayType
	SequenceType
	FloatType
	IntType
	BoolType
	StringType
	// EndType marks the end of a list of nodes passed to
	// [Document.MakeSequence]. It never appears in a parsed document.
	EndType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:      "nil",
		ArrayType:    "array",
		SequenceType: "sequence",
		FloatType:    "float",
		IntType:      "int",
		BoolType:     "boolean",
		StringType:   "string",
		EndType:      "end",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"nil":      NilType,
		"array":    ArrayType,
		"sequence": SequenceType,
		"float":    FloatType,
		"int":      IntType,
		"boolean":  BoolType,
		"string":   StringType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Types returns the types which may occur in a document.
func Types() []Type {
	return []Type{
		NilType,
		ArrayType,
		SequenceType,
		FloatType,
		IntType,
		BoolType,
		StringType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case SequenceType, ArrayType:
		return false
	default:
		return true
	}
}
