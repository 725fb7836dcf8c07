package token

// escapeChars maps the character following a backslash to the character
// it stands for.
var escapeChars = [256]byte{
	'a':  '\a',
	'b':  '\b',
	'e':  0x1b,
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'?':  '?',
	'\\': '\\',
	'"':  '"',
}

var isEscapeChar = [256]bool{
	'a': true, 'b': true, 'e': true, 'f': true, 'n': true, 'r': true,
	't': true, 'v': true, '?': true, '\\': true, '"': true,
}

// escapeSeqs maps a raw character to its two character escaped form.
var escapeSeqs = [256]string{
	'\a': `\a`,
	'\b': `\b`,
	0x1b: `\e`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
	'?':  `\?`,
	'\\': `\\`,
	'"':  `\"`,
}

// EscapeSeq returns the escaped form of c, or "" if c is written as is.
func EscapeSeq(c byte) string {
	return escapeSeqs[c]
}

// Escape returns s with every escapable character replaced by its two
// character escaped form.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if escapeSeqs[s[i]] != "" {
			n++
		}
	}
	if n == 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if seq := escapeSeqs[s[i]]; seq != "" {
			buf = append(buf, seq...)
			continue
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// unescape decodes escape sequences in d. If d contains none, d itself is
// returned. Otherwise bad is the index of the offending backslash, or -1.
func unescape(d []byte) (res []byte, bad int) {
	i := 0
	for i < len(d) && d[i] != '\\' {
		i++
	}
	if i == len(d) {
		return d, -1
	}
	res = make([]byte, i, len(d))
	copy(res, d[:i])
	for ; i < len(d); i++ {
		c := d[i]
		if c != '\\' {
			res = append(res, c)
			continue
		}
		if i+1 == len(d) || !isEscapeChar[d[i+1]] {
			return nil, i
		}
		i++
		res = append(res, escapeChars[d[i]])
	}
	return res, -1
}
