package token

// Tokenize appends every token of src to dst, up to and including the
// TEOF token. Comments are included.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	l := NewLexer(src)
	for {
		tok, err := l.scan()
		if err != nil {
			return dst, err
		}
		tok.OK = true
		dst = append(dst, tok)
		if tok.Type == TEOF {
			return dst, nil
		}
	}
}
