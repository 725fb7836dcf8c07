// Package token provides tokenization support for csd documents.
//
// A [Lexer] produces one [Token] per call, tracking a 1-based line and a
// 0-based column. Token kinds are bit flags so that a set of acceptable
// kinds can be expressed as a single [TokenType] mask:
//
//	lx := token.NewLexer(src)
//	tok, err := lx.Require(token.TIdent | token.TLCurl | token.TEOF)
//
// [Lexer.Next], [Lexer.Peek], [Lexer.Try] and [Lexer.Require] differ only
// in what they do when the token does not satisfy the mask. Comments are
// skipped by all of them.
//
// [Tokenize] is a convenience for tokenizing a complete buffer.
//
// Strings end at the next occurrence of their own quote character, and
// escape sequences are decoded afterwards. As a consequence a string can
// never contain its own delimiter, even escaped: use the other quote
// character instead.
package token
