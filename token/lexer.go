package token

import (
	"github.com/csd-format/go-csd/debug"
)

// Lexer converts a source buffer into tokens, left to right, with at
// most one token of pushback.
type Lexer struct {
	src  []byte
	off  int
	line int
	col  int

	queued    Token
	hasQueued bool
}

func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Pos returns the position of the next unscanned byte.
func (l *Lexer) Pos() Pos {
	return Pos{Offset: l.off, Line: l.line, Col: l.col}
}

// Next returns the next token. If its kind does not satisfy mask, it is
// still consumed and returned with OK false.
func (l *Lexer) Next(mask TokenType) (Token, error) {
	var tok Token
	if l.hasQueued {
		l.hasQueued = false
		tok = l.queued
	} else {
		for {
			var err error
			tok, err = l.scan()
			if err != nil {
				return tok, err
			}
			if debug.Scan() {
				debug.Logf("scan %s %q\n", tok.Info(), tok.Bytes)
			}
			if tok.Type != TComment {
				break
			}
		}
	}
	tok.OK = tok.Type.In(mask)
	return tok, nil
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek(mask TokenType) (Token, error) {
	tok, err := l.Next(mask)
	if err != nil {
		return tok, err
	}
	l.unread(tok)
	return tok, nil
}

// Try consumes the next token only if it satisfies mask.
func (l *Lexer) Try(mask TokenType) (Token, error) {
	tok, err := l.Next(mask)
	if err != nil {
		return tok, err
	}
	if !tok.OK {
		l.unread(tok)
	}
	return tok, nil
}

// Require consumes the next token and fails with a parse diagnostic
// naming every kind in mask if it does not satisfy mask.
func (l *Lexer) Require(mask TokenType) (Token, error) {
	tok, err := l.Next(mask)
	if err != nil {
		return tok, err
	}
	if !tok.OK {
		return tok, ExpectedErr(&tok, mask)
	}
	return tok, nil
}

func (l *Lexer) unread(tok Token) {
	if l.hasQueued {
		panic("token: more than one token pushed back")
	}
	l.queued = tok
	l.hasQueued = true
}
