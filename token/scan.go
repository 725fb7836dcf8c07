package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

type keyword struct {
	word string
	typ  TokenType
}

// keywords are tried in order as prefixes of the remaining input.
var keywords = []keyword{
	{"'", TString},
	{`"`, TString},
	{",", TComma},
	{"{", TLCurl},
	{"}", TRCurl},
	{"[", TLSquare},
	{"]", TRSquare},
	{":", TColon},
	{"#", TComment},
	{"true", TTrue},
	{"false", TFalse},
	{"nil", TNil},
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// isKeywordPrefix reports whether d starts with word. Alphabetic words
// must not run on into an identifier.
func isKeywordPrefix(d []byte, word string) bool {
	if !bytes.HasPrefix(d, []byte(word)) {
		return false
	}
	if !isIdentStart(rune(word[0])) || len(d) == len(word) {
		return true
	}
	r, _ := utf8.DecodeRune(d[len(word):])
	return !isIdentRune(r)
}

// advance consumes n bytes, maintaining the line and column.
func (l *Lexer) advance(n int) {
	for _, c := range l.src[l.off : l.off+n] {
		switch {
		case c == '\n':
			l.line++
			l.col = 0
		case utf8.RuneStart(c):
			l.col++
		}
	}
	l.off += n
}

func (l *Lexer) eat(t TokenType, n int) Token {
	tok := Token{
		Type:  t,
		Bytes: l.src[l.off : l.off+n],
		Pos:   l.Pos(),
	}
	l.advance(n)
	return tok
}

// eatDumb consumes a run of non whitespace for diagnostic context.
func (l *Lexer) eatDumb() Token {
	n := 0
	for l.off+n < len(l.src) && !isSpace(l.src[l.off+n]) {
		n++
	}
	return l.eat(TNone, n)
}

func (l *Lexer) scan() (Token, error) {
	for l.off < len(l.src) && isSpace(l.src[l.off]) {
		l.advance(1)
	}
	if l.off == len(l.src) {
		return l.eat(TEOF, 0), nil
	}
	d := l.src[l.off:]
	for _, kw := range keywords {
		if !isKeywordPrefix(d, kw.word) {
			continue
		}
		switch kw.typ {
		case TString:
			return l.eatString(kw.word[0])
		case TComment:
			return l.eatComment(), nil
		default:
			return l.eat(kw.typ, len(kw.word)), nil
		}
	}
	r, _ := utf8.DecodeRune(d)
	if isIdentStart(r) {
		return l.eatIdent(), nil
	}
	if d[0] == '-' || d[0] == '+' || asciiDigit(d[0]) {
		return l.eatNumber()
	}
	tok := l.eatDumb()
	return tok, scanErr(tok.Pos, "unknown token encountered: %q", tok.Bytes)
}

func (l *Lexer) eatString(quote byte) (Token, error) {
	start := l.Pos()
	l.advance(1)
	end := bytes.IndexByte(l.src[l.off:], quote)
	if end < 0 {
		tok := l.eat(TString, len(l.src)-l.off)
		tok.Pos = start
		return tok, scanErr(start, "unterminated string")
	}
	tok := l.eat(TString, end)
	tok.Pos = start
	l.advance(1)
	res, bad := unescape(tok.Bytes)
	if bad >= 0 {
		seq := tok.Bytes[bad:min(bad+2, len(tok.Bytes))]
		return tok, scanErr(start, "unknown escape sequence: '%s'", seq)
	}
	tok.Bytes = res
	return tok, nil
}

// eatComment consumes '#' up to and including the next '#', or up to the
// end of the line.
func (l *Lexer) eatComment() Token {
	start := l.Pos()
	l.advance(1)
	d := l.src[l.off:]
	n := bytes.IndexAny(d, "#\n")
	if n < 0 {
		n = len(d)
	}
	tok := l.eat(TComment, n)
	tok.Pos = start
	if l.off < len(l.src) && l.src[l.off] == '#' {
		l.advance(1)
	}
	return tok
}

func (l *Lexer) eatIdent() Token {
	d := l.src[l.off:]
	n := 0
	for n < len(d) {
		r, size := utf8.DecodeRune(d[n:])
		if !isIdentRune(r) {
			break
		}
		n += size
	}
	return l.eat(TIdent, n)
}

func (l *Lexer) eatNumber() (Token, error) {
	n, t, problem := number(l.src[l.off:])
	if problem != "" {
		tok := l.eatDumb()
		return tok, scanErr(tok.Pos, "%s: %q", problem, tok.Bytes)
	}
	return l.eat(t, n), nil
}

// IsIdent reports whether s scans as a single identifier token, and so
// can be written as a key.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) || !isIdentRune(r) {
			return false
		}
	}
	d := []byte(s)
	for _, kw := range keywords {
		if isKeywordPrefix(d, kw.word) {
			return false
		}
	}
	return true
}
