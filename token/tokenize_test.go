package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/csd-format/go-csd/diag"
	"github.com/google/go-cmp/cmp"
)

type tokSummary struct {
	Type TokenType
	Text string
}

func summarize(toks []Token) []tokSummary {
	res := make([]tokSummary, len(toks))
	for i := range toks {
		res[i] = tokSummary{Type: toks[i].Type, Text: string(toks[i].Bytes)}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tokSummary
	}{
		{
			name: "punctuation",
			in:   "{ } [ ] : ,",
			want: []tokSummary{
				{TLCurl, "{"}, {TRCurl, "}"}, {TLSquare, "["}, {TRSquare, "]"},
				{TColon, ":"}, {TComma, ","}, {TEOF, ""},
			},
		},
		{
			name: "node",
			in:   "width: 1920,",
			want: []tokSummary{{TIdent, "width"}, {TColon, ":"}, {TInteger, "1920"}, {TComma, ","}, {TEOF, ""}},
		},
		{
			name: "identifiers with underscores and digits",
			in:   "en_US _x a1b2",
			want: []tokSummary{{TIdent, "en_US"}, {TIdent, "_x"}, {TIdent, "a1b2"}, {TEOF, ""}},
		},
		{
			name: "keywords need a boundary",
			in:   "true false nil trueColor nils",
			want: []tokSummary{
				{TTrue, "true"}, {TFalse, "false"}, {TNil, "nil"},
				{TIdent, "trueColor"}, {TIdent, "nils"}, {TEOF, ""},
			},
		},
		{
			name: "numbers",
			in:   "0 -12 +7 3.25 -0.5 1. 0xff -0X1A 0b101 +0b1",
			want: []tokSummary{
				{TInteger, "0"}, {TInteger, "-12"}, {TInteger, "+7"},
				{TFloat, "3.25"}, {TFloat, "-0.5"}, {TFloat, "1."},
				{THexInteger, "0xff"}, {THexInteger, "-0X1A"},
				{TBinInteger, "0b101"}, {TBinInteger, "+0b1"},
				{TEOF, ""},
			},
		},
		{
			name: "strings",
			in:   `'single' "double" 'has "double"' "has 'single'" ''`,
			want: []tokSummary{
				{TString, "single"}, {TString, "double"}, {TString, `has "double"`},
				{TString, "has 'single'"}, {TString, ""}, {TEOF, ""},
			},
		},
		{
			name: "escapes",
			in:   `'a\nb\tc\\d\?\e\"'`,
			want: []tokSummary{{TString, "a\nb\tc\\d?\x1b\""}, {TEOF, ""}},
		},
		{
			name: "comments",
			in:   "# hash delimited # a # to end of line\nb",
			want: []tokSummary{
				{TComment, " hash delimited "}, {TIdent, "a"},
				{TComment, " to end of line"}, {TIdent, "b"}, {TEOF, ""},
			},
		},
		{
			name: "string containing a hash",
			in:   "blue: '#0000FF'",
			want: []tokSummary{{TIdent, "blue"}, {TColon, ":"}, {TString, "#0000FF"}, {TEOF, ""}},
		},
		{
			name: "empty",
			in:   "  \n\t ",
			want: []tokSummary{{TEOF, ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, summarize(toks)); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`key: 'abc`, "(1:5) unterminated string"},
		{`"abc\qdef"`, `unknown escape sequence: '\q'`},
		{`'it\'s'`, `unknown escape sequence: '\'`},
		{"0x1.5", "hex/binary float representation is not supported"},
		{"0b12", ""},
		{"-", "malformed number"},
		{"0x", "malformed number"},
		{"a\n  @home", `(2:2) unknown token encountered: "@home"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tt.in))
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !errors.Is(err, diag.ErrScan) {
				t.Errorf("expected a scan error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a {\n  b: 'é',\n c: 1 }"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pos{
		{Offset: 0, Line: 1, Col: 0},
		{Offset: 2, Line: 1, Col: 2},
		{Offset: 6, Line: 2, Col: 2},
		{Offset: 7, Line: 2, Col: 3},
		{Offset: 9, Line: 2, Col: 5},
		{Offset: 13, Line: 2, Col: 8},
		{Offset: 16, Line: 3, Col: 1},
	}
	got := make([]Pos, len(want))
	for i := range want {
		got[i] = toks[i].Pos
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}
