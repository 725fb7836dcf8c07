package ir

// Truth reports whether v is a non-zero value: a non-empty container or
// string, a non-zero number, or true.
func Truth(v Value) bool {
	switch v.Type {
	case SequenceType:
		return v.Sequence.Count() != 0
	case ArrayType:
		return v.Array.Len() != 0
	case StringType:
		return v.String != ""
	case IntType:
		return v.Int != 0
	case FloatType:
		return v.Float != 0
	case BoolType:
		return v.Bool
	case NilType, EndType:
		return false
	default:
		panic("type")
	}
}
