package token

import (
	"github.com/csd-format/go-csd/diag"
)

func scanErr(p Pos, msg string, args ...any) error {
	return diag.ScanErrorf(p.Line, p.Col, msg, args...)
}

// ExpectedErr is the diagnostic raised when tok does not satisfy mask.
func ExpectedErr(tok *Token, mask TokenType) error {
	if tok.Type == TEOF {
		return diag.ParseErrorf(tok.Pos.Line, tok.Pos.Col, "expected: %s (got 'eof')", mask.Describe())
	}
	return diag.ParseErrorf(tok.Pos.Line, tok.Pos.Col, "expected: %s (got '%s' %q)",
		mask.Describe(), tok.Type.Name(), tok.Bytes)
}
