package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/csd-format/go-csd/diag"
)

func TestLexerNextInvalid(t *testing.T) {
	l := NewLexer([]byte("a: 1"))
	tok, err := l.Next(TLCurl)
	if err != nil {
		t.Fatal(err)
	}
	if tok.OK || tok.Type != TIdent {
		t.Fatalf("got %s ok=%v, want an invalid TIdent", tok.Type, tok.OK)
	}
	// Next consumed the identifier.
	tok, _ = l.Next(TColon)
	if !tok.OK {
		t.Errorf("expected ':' after the identifier, got %s", tok.Info())
	}
}

func TestLexerPeek(t *testing.T) {
	l := NewLexer([]byte("# skipped # key"))
	tok, err := l.Peek(TIdent)
	if err != nil {
		t.Fatal(err)
	}
	if !tok.OK || tok.String() != "key" {
		t.Fatalf("Peek = %s %q", tok.Type, tok.Bytes)
	}
	tok, _ = l.Peek(TString)
	if tok.OK || tok.String() != "key" {
		t.Fatalf("second Peek = %s %q ok=%v", tok.Type, tok.Bytes, tok.OK)
	}
	tok, _ = l.Next(TIdent)
	if !tok.OK || tok.String() != "key" {
		t.Fatalf("Next after Peek = %s %q", tok.Type, tok.Bytes)
	}
	tok, _ = l.Next(TEOF)
	if !tok.OK {
		t.Fatalf("expected eof, got %s", tok.Info())
	}
}

func TestLexerTry(t *testing.T) {
	l := NewLexer([]byte("} ,"))
	tok, _ := l.Try(TComma)
	if tok.OK {
		t.Fatal("Try(',') matched '}'")
	}
	tok, _ = l.Try(TRCurl)
	if !tok.OK {
		t.Fatalf("Try('}') after pushback = %s", tok.Info())
	}
	tok, _ = l.Try(TComma)
	if !tok.OK {
		t.Fatalf("Try(',') = %s", tok.Info())
	}
}

func TestLexerRequire(t *testing.T) {
	l := NewLexer([]byte("\n  12"))
	_, err := l.Require(TIdent | TLCurl | TEOF)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, diag.ErrParse) {
		t.Errorf("expected a parse error, got %v", err)
	}
	want := "(2:2) expected: 'identifier', '{', 'eof'"
	if !strings.HasPrefix(err.Error(), want) {
		t.Errorf("error = %q, want prefix %q", err, want)
	}
	d, ok := diag.As(err)
	if !ok || d.Line != 2 || d.Col != 2 {
		t.Errorf("diagnostic position = %+v", d)
	}
}

func TestLexerEOFRepeats(t *testing.T) {
	l := NewLexer(nil)
	for range 3 {
		tok, err := l.Require(TEOF)
		if err != nil {
			t.Fatal(err)
		}
		if tok.Pos.Line != 1 {
			t.Errorf("eof line = %d", tok.Pos.Line)
		}
	}
}

func TestMaskDescribe(t *testing.T) {
	tests := []struct {
		mask TokenType
		want string
	}{
		{TRCurl | TComma, "',', '}'"},
		{TAnyInteger, "'int', 'hex int', 'binary int'"},
		{TEOF, "'eof'"},
	}
	for _, tt := range tests {
		if got := tt.mask.Describe(); got != tt.want {
			t.Errorf("%s.Describe() = %q, want %q", tt.mask, got, tt.want)
		}
	}
	if got := (TIdent | TColon).String(); got != "TIdent|TColon" {
		t.Errorf("String() = %q", got)
	}
}

func TestTokenNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1920", 1920},
		{"-42", -42},
		{"+7", 7},
		{"007", 7},
		{"0xff", 255},
		{"-0x10", -16},
		{"0b101", 5},
		{"-0b11", -3},
		{"9223372036854775807", 1<<63 - 1},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		got, err := toks[0].Int()
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %d want %d", tt.in, got, tt.want)
		}
	}

	toks, _ := Tokenize(nil, []byte("9223372036854775808"))
	if _, err := toks[0].Int(); !errors.Is(err, diag.ErrParse) {
		t.Errorf("overflow: expected parse error, got %v", err)
	}
	toks, _ = Tokenize(nil, []byte("-2.5"))
	f, err := toks[0].Float()
	if err != nil || f != -2.5 {
		t.Errorf("Float() = %v, %v", f, err)
	}
}

func TestIsIdent(t *testing.T) {
	for s, want := range map[string]bool{
		"width":     true,
		"en_US":     true,
		"_x1":       true,
		"été":       true,
		"trueColor": true,
		"nil_ok":    true,
		"":          false,
		"1x":        false,
		"a b":       false,
		"a-b":       false,
		"true":      false,
		"false":     false,
		"nil":       false,
	} {
		if got := IsIdent(s); got != want {
			t.Errorf("IsIdent(%q) = %v", s, got)
		}
	}
}
