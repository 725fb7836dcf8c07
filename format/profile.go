package format

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// profile is the YAML form of a format. Unset fields are taken from the
// base format.
type profile struct {
	Base string `yaml:"base"`
	Name string `yaml:"name"`

	SequenceIndent    *string `yaml:"sequence_indent"`
	ArrayIndent       *string `yaml:"array_indent"`
	Assignment        *string `yaml:"assignment"`
	Space             *string `yaml:"space"`
	SequenceComma     *string `yaml:"sequence_comma"`
	SequenceLastComma *string `yaml:"sequence_last_comma"`
	ArrayComma        *string `yaml:"array_comma"`
	ArrayLastComma    *string `yaml:"array_last_comma"`
	Quote             *string `yaml:"quote"`
	SequenceBegin     *string `yaml:"sequence_begin"`
	SequenceEnd       *string `yaml:"sequence_end"`
	ArrayBegin        *string `yaml:"array_begin"`
	ArrayEnd          *string `yaml:"array_end"`
}

// Load reads a YAML profile from r. The profile's base defaults to
// standard. The resulting format is validated.
func Load(r io.Reader) (Format, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return Format{}, err
	}
	p := &profile{}
	if len(bytes.TrimSpace(d)) != 0 {
		dec := yaml.NewDecoder(bytes.NewReader(d), yaml.DisallowUnknownField())
		if err := dec.Decode(p); err != nil {
			return Format{}, fmt.Errorf("%w: %s", ErrBadFormat, strings.TrimSpace(err.Error()))
		}
	}
	base := p.Base
	if base == "" {
		base = Standard.Name
	}
	f, err := ParseFormat(base)
	if err != nil {
		return Format{}, fmt.Errorf("base: %w", err)
	}
	f.Name = p.Name
	for _, o := range []struct {
		src *string
		dst *string
	}{
		{p.SequenceIndent, &f.SequenceIndent},
		{p.ArrayIndent, &f.ArrayIndent},
		{p.Assignment, &f.Assignment},
		{p.Space, &f.Space},
		{p.SequenceComma, &f.SequenceComma},
		{p.SequenceLastComma, &f.SequenceLastComma},
		{p.ArrayComma, &f.ArrayComma},
		{p.ArrayLastComma, &f.ArrayLastComma},
		{p.Quote, &f.Quote},
		{p.SequenceBegin, &f.SequenceBegin},
		{p.SequenceEnd, &f.SequenceEnd},
		{p.ArrayBegin, &f.ArrayBegin},
		{p.ArrayEnd, &f.ArrayEnd},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// LoadFile loads the profile in the named file. A profile without a name
// is named after the file.
func LoadFile(path string) (Format, error) {
	fd, err := os.Open(path)
	if err != nil {
		return Format{}, err
	}
	defer fd.Close()
	f, err := Load(fd)
	if err != nil {
		return Format{}, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Marshal renders f as a standalone YAML profile, with every field set.
func Marshal(f Format) ([]byte, error) {
	p := &profile{
		Name:              f.Name,
		SequenceIndent:    &f.SequenceIndent,
		ArrayIndent:       &f.ArrayIndent,
		Assignment:        &f.Assignment,
		Space:             &f.Space,
		SequenceComma:     &f.SequenceComma,
		SequenceLastComma: &f.SequenceLastComma,
		ArrayComma:        &f.ArrayComma,
		ArrayLastComma:    &f.ArrayLastComma,
		Quote:             &f.Quote,
		SequenceBegin:     &f.SequenceBegin,
		SequenceEnd:       &f.SequenceEnd,
		ArrayBegin:        &f.ArrayBegin,
		ArrayEnd:          &f.ArrayEnd,
	}
	return yaml.Marshal(p)
}
