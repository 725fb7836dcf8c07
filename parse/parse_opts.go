package parse

import (
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/token"
)

type parseOpts struct {
	filename  string
	positions map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

// WithFilename sets the name used in file diagnostics and recorded as the
// document's Name.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePositions records in m the position of the token which started
// each parsed node.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
