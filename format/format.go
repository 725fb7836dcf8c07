package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format holds the strings written around keys, values and containers.
//
// For a sequence at depth d the encoder writes SequenceBegin, then for
// each entry SequenceIndent repeated d+1 times, the entry, and
// SequenceComma (SequenceLastComma for the final entry), and finally
// SequenceIndent repeated d times followed by SequenceEnd. Arrays are
// written the same way with the Array strings.
type Format struct {
	Name string `yaml:"-"`

	SequenceIndent    string `yaml:"sequence_indent"`
	ArrayIndent       string `yaml:"array_indent"`
	Assignment        string `yaml:"assignment"`
	Space             string `yaml:"space"`
	SequenceComma     string `yaml:"sequence_comma"`
	SequenceLastComma string `yaml:"sequence_last_comma"`
	ArrayComma        string `yaml:"array_comma"`
	ArrayLastComma    string `yaml:"array_last_comma"`
	Quote             string `yaml:"quote"`
	SequenceBegin     string `yaml:"sequence_begin"`
	SequenceEnd       string `yaml:"sequence_end"`
	ArrayBegin        string `yaml:"array_begin"`
	ArrayEnd          string `yaml:"array_end"`
}

var ErrBadFormat = errors.New("bad format")

// Standard writes one tab indented entry per line with a comma after
// every entry, arrays on a single line and double quoted strings.
var Standard = Format{
	Name:              "standard",
	SequenceIndent:    "\t",
	ArrayIndent:       "",
	Assignment:        ":",
	Space:             " ",
	SequenceComma:     ",\n",
	SequenceLastComma: ",\n",
	ArrayComma:        ", ",
	ArrayLastComma:    "",
	Quote:             `"`,
	SequenceBegin:     "{\n",
	SequenceEnd:       "}",
	ArrayBegin:        "[",
	ArrayEnd:          "]",
}

// Compact writes a document on one line without optional space.
var Compact = Format{
	Name:              "compact",
	SequenceIndent:    "",
	ArrayIndent:       "",
	Assignment:        ":",
	Space:             "",
	SequenceComma:     ",",
	SequenceLastComma: "",
	ArrayComma:        ",",
	ArrayLastComma:    "",
	Quote:             `"`,
	SequenceBegin:     "{",
	SequenceEnd:       "}",
	ArrayBegin:        "[",
	ArrayEnd:          "]",
}

// ParseFormat returns the built in format named v.
func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":        Standard,
		"std":      Standard,
		"standard": Standard,
		"c":        Compact,
		"compact":  Compact,
	}[v]
	if ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if f.Name != "" {
		return f.Name
	}
	return "custom"
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Validate reports whether text written with f would parse again: the
// punctuation strings must hold their token surrounded only by white
// space, and indentation and spacing must be white space.
func (f *Format) Validate() error {
	var errs []error
	check := func(field, v string, allowed ...string) {
		t := strings.TrimSpace(v)
		for _, a := range allowed {
			if t == a {
				return
			}
		}
		want := make([]string, len(allowed))
		for i, a := range allowed {
			if a == "" {
				want[i] = "white space"
				continue
			}
			want[i] = fmt.Sprintf("%q", a)
		}
		errs = append(errs, fmt.Errorf("%w: %s is %q, want %s", ErrBadFormat, field, v, strings.Join(want, " or ")))
	}
	check("sequence_indent", f.SequenceIndent, "")
	check("array_indent", f.ArrayIndent, "")
	check("space", f.Space, "")
	check("assignment", f.Assignment, ":")
	check("sequence_comma", f.SequenceComma, ",")
	check("sequence_last_comma", f.SequenceLastComma, "", ",")
	check("array_comma", f.ArrayComma, ",")
	check("array_last_comma", f.ArrayLastComma, "", ",")
	check("sequence_begin", f.SequenceBegin, "{")
	check("sequence_end", f.SequenceEnd, "}")
	check("array_begin", f.ArrayBegin, "[")
	check("array_end", f.ArrayEnd, "]")
	if f.Quote != `"` && f.Quote != "'" {
		errs = append(errs, fmt.Errorf("%w: quote is %q, want %q or %q", ErrBadFormat, f.Quote, `"`, "'"))
	}
	return errors.Join(errs...)
}
