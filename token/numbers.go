package token

import (
	"strconv"

	"github.com/csd-format/go-csd/diag"
)

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func binDigit(c byte) bool {
	return c == '0' || c == '1'
}

func run(d []byte, f func(byte) bool) int {
	i := 0
	for i < len(d) && f(d[i]) {
		i++
	}
	return i
}

// number measures the number at the start of d. It returns the length
// and kind, or a non-empty problem.
func number(d []byte) (n int, t TokenType, problem string) {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	t = TInteger
	digit := asciiDigit
	if i+1 < len(d) && d[i] == '0' {
		switch d[i+1] {
		case 'x', 'X':
			t, digit = THexInteger, hexDigit
			i += 2
		case 'b', 'B':
			t, digit = TBinInteger, binDigit
			i += 2
		}
	}
	m := run(d[i:], digit)
	if m == 0 {
		return i, t, "malformed number"
	}
	i += m
	if i == len(d) || d[i] != '.' {
		return i, t, ""
	}
	if t != TInteger {
		return i, t, "hex/binary float representation is not supported"
	}
	i++
	i += run(d[i:], asciiDigit)
	return i, TFloat, ""
}

// Int converts an integer token. Hex and binary digits are converted
// with an explicit radix after the prefix is removed.
func (t *Token) Int() (int64, error) {
	s := string(t.Bytes)
	base := 10
	switch t.Type {
	case TInteger:
	case THexInteger, TBinInteger:
		base = 16
		if t.Type == TBinInteger {
			base = 2
		}
		sign := ""
		if s[0] == '-' || s[0] == '+' {
			sign, s = s[:1], s[1:]
		}
		s = sign + s[2:]
	default:
		return 0, diag.ParseErrorf(t.Pos.Line, t.Pos.Col, "cannot parse int: %q is a %s", t.Bytes, t.Type.Name())
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, diag.ParseErrorf(t.Pos.Line, t.Pos.Col, "cannot parse int %q: %v", t.Bytes, errReason(err))
	}
	return v, nil
}

func (t *Token) Float() (float64, error) {
	if t.Type != TFloat {
		return 0, diag.ParseErrorf(t.Pos.Line, t.Pos.Col, "cannot parse float: %q is a %s", t.Bytes, t.Type.Name())
	}
	v, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		return 0, diag.ParseErrorf(t.Pos.Line, t.Pos.Col, "cannot parse float %q: %v", t.Bytes, errReason(err))
	}
	return v, nil
}

func errReason(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
