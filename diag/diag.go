// Package diag defines the error kinds and diagnostics shared by the
// lexer, parser and encoder.
//
// A diagnostic carries exactly one [Kind] and a bounded, human readable
// reason. Positioned diagnostics render as
//
//	(line:col) reason
//
// with a 1-based line and a 0-based column. File diagnostics render as
//
//	file 'name': reason
//
// Use [errors.Is] with [ErrFile], [ErrScan], [ErrParse] or
// [ErrWriteOverflow] to classify an error returned from any package of
// this module.
package diag

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ReasonSize bounds the length in bytes of a diagnostic reason.
const ReasonSize = 512

type Kind int

const (
	Ok Kind = iota
	File
	Scan
	Parse
	WriteOverflow
)

var (
	ErrFile          = errors.New("file error")
	ErrScan          = errors.New("scan error")
	ErrParse         = errors.New("parse error")
	ErrWriteOverflow = errors.New("write overflow")
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case File:
		return "file"
	case Scan:
		return "scan"
	case Parse:
		return "parse"
	case WriteOverflow:
		return "write-overflow"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Sentinel returns the sentinel error matching k, or nil for Ok.
func (k Kind) Sentinel() error {
	switch k {
	case File:
		return ErrFile
	case Scan:
		return ErrScan
	case Parse:
		return ErrParse
	case WriteOverflow:
		return ErrWriteOverflow
	}
	return nil
}

// Error is a diagnostic. Line and Col are zero for diagnostics which have
// no source position.
type Error struct {
	Kind   Kind
	Line   int
	Col    int
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Kind.Sentinel()
}

// Positioned reports whether the diagnostic refers to a source position.
func (e *Error) Positioned() bool {
	return e.Line > 0
}

func Errorf(kind Kind, line, col int, msg string, args ...any) *Error {
	reason := fmt.Sprintf(msg, args...)
	if line > 0 {
		reason = fmt.Sprintf("(%d:%d) %s", line, col, reason)
	}
	return &Error{
		Kind:   kind,
		Line:   line,
		Col:    col,
		Reason: Truncate(reason),
	}
}

func ScanErrorf(line, col int, msg string, args ...any) *Error {
	return Errorf(Scan, line, col, msg, args...)
}

func ParseErrorf(line, col int, msg string, args ...any) *Error {
	return Errorf(Parse, line, col, msg, args...)
}

func FileErrorf(name, msg string, args ...any) *Error {
	return &Error{
		Kind:   File,
		Reason: Truncate(fmt.Sprintf("file '%s': ", name) + fmt.Sprintf(msg, args...)),
	}
}

// Truncate bounds s to ReasonSize bytes without splitting a UTF-8 sequence.
func Truncate(s string) string {
	if len(s) <= ReasonSize {
		return s
	}
	n := ReasonSize
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// As returns the diagnostic in err's chain, if any.
func As(err error) (*Error, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// KindOf classifies err. Errors which carry no diagnostic are reported
// by their sentinel, and Ok is returned for nil.
func KindOf(err error) Kind {
	if err == nil {
		return Ok
	}
	if d, ok := As(err); ok {
		return d.Kind
	}
	for _, k := range []Kind{File, Scan, Parse, WriteOverflow} {
		if errors.Is(err, k.Sentinel()) {
			return k
		}
	}
	return File
}
