package token

import (
	"fmt"
	"math/bits"
	"strings"
)

// TokenType is both a token kind and, when several kinds are or-ed
// together, a mask of acceptable kinds.
type TokenType uint32

const (
	TNone TokenType = 1 << iota
	TIdent
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TString
	TFloat
	TInteger
	THexInteger
	TBinInteger
	TTrue
	TFalse
	TNil
	TComment
	TEOF

	tEnd
)

const (
	TAnyInteger = TInteger | THexInteger | TBinInteger
	TNumber     = TFloat | TAnyInteger
	TScalar     = TString | TNumber | TTrue | TFalse | TNil
)

var typeNames = map[TokenType][2]string{
	TNone:       {"TNone", "none"},
	TIdent:      {"TIdent", "identifier"},
	TColon:      {"TColon", ":"},
	TComma:      {"TComma", ","},
	TLCurl:      {"TLCurl", "{"},
	TRCurl:      {"TRCurl", "}"},
	TLSquare:    {"TLSquare", "["},
	TRSquare:    {"TRSquare", "]"},
	TString:     {"TString", "string"},
	TFloat:      {"TFloat", "float"},
	TInteger:    {"TInteger", "int"},
	THexInteger: {"THexInteger", "hex int"},
	TBinInteger: {"TBinInteger", "binary int"},
	TTrue:       {"TTrue", "true"},
	TFalse:      {"TFalse", "false"},
	TNil:        {"TNil", "nil"},
	TComment:    {"TComment", "comment"},
	TEOF:        {"TEOF", "eof"},
}

func (t TokenType) String() string {
	if n, ok := typeNames[t]; ok {
		return n[0]
	}
	kinds := t.Kinds()
	if len(kinds) == 0 {
		return fmt.Sprintf("TokenType(%#x)", uint32(t))
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, "|")
}

// Name returns the human readable name of a single kind, as used in
// diagnostics.
func (t TokenType) Name() string {
	if n, ok := typeNames[t]; ok {
		return n[1]
	}
	return t.String()
}

// Kinds splits a mask into its kinds, lowest bit first.
func (t TokenType) Kinds() []TokenType {
	res := make([]TokenType, 0, bits.OnesCount32(uint32(t)))
	for k := TNone; k != tEnd; k <<= 1 {
		if t&k != 0 {
			res = append(res, k)
		}
	}
	return res
}

// Describe renders a mask as a comma joined quoted list, eg
//
//	'identifier', '{', 'eof'
func (t TokenType) Describe() string {
	kinds := t.Kinds()
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = "'" + k.Name() + "'"
	}
	return strings.Join(parts, ", ")
}

// In reports whether t satisfies mask.
func (t TokenType) In(mask TokenType) bool {
	return t&mask != 0
}

type Token struct {
	Type  TokenType
	Bytes []byte
	Pos   Pos
	// OK records whether the token satisfied the mask it was requested
	// with.
	OK bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Size() int {
	return len(t.Bytes)
}
