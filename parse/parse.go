package parse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/csd-format/go-csd/debug"
	"github.com/csd-format/go-csd/diag"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/token"
)

const (
	topMask   = token.TIdent | token.TLCurl | token.TEOF
	nodeMask  = token.TIdent | token.TLCurl
	valueMask = token.TScalar | token.TLCurl | token.TLSquare
	afterKey  = token.TColon | token.TLCurl
)

// Parse parses one top level node from d. The returned document is never
// nil; when err is non-nil it equals doc.Err() and doc.Root is nil.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	doc := ir.NewDocument(d)
	doc.Name = pOpts.filename
	p := &parser{
		lex:  token.NewLexer(d),
		doc:  doc,
		opts: pOpts,
	}
	root, err := p.document()
	if err != nil {
		doc.SetError(err)
		doc.Release()
		return doc, doc.Err()
	}
	doc.Root = root
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads all of r and parses it. Read failures are file
// diagnostics naming r; the name is taken from WithFilename, then from a
// Name method on r, and is "nofilename" otherwise.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Document, error) {
	name := readerName(r)
	opts = append([]ParseOption{WithFilename(name)}, opts...)
	d, err := io.ReadAll(r)
	if err != nil {
		pOpts := &parseOpts{}
		for _, f := range opts {
			f(pOpts)
		}
		doc := ir.NewDocument(nil)
		doc.Name = pOpts.filename
		doc.SetError(diag.FileErrorf(pOpts.filename, "%v", err))
		return doc, doc.Err()
	}
	return Parse(d, opts...)
}

// ParseFile reads and parses the named file.
func ParseFile(name string, opts ...ParseOption) (*ir.Document, error) {
	f, err := os.Open(name)
	if err != nil {
		doc := ir.NewDocument(nil)
		doc.Name = filepath.Base(name)
		doc.SetError(diag.FileErrorf(doc.Name, "%v", unwrapPathErr(err)))
		return doc, doc.Err()
	}
	defer f.Close()
	return ParseReader(f, opts...)
}

func readerName(r io.Reader) string {
	if n, ok := r.(interface{ Name() string }); ok && n.Name() != "" {
		return filepath.Base(n.Name())
	}
	return "nofilename"
}

func unwrapPathErr(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}

type parser struct {
	lex  *token.Lexer
	doc  *ir.Document
	opts *parseOpts
}

func (p *parser) trackPos(n *ir.Node, tok *token.Token) {
	if p.opts.positions != nil {
		p.opts.positions[n] = tok.Pos
	}
}

func (p *parser) document() (*ir.Node, error) {
	tok, err := p.lex.Require(topMask)
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TEOF {
		return nil, nil
	}
	return p.nodeFrom(&tok)
}

// node parses
//
//	identifier ':' Value
//	identifier '{' Sequence
//	'{' Sequence
func (p *parser) node() (*ir.Node, error) {
	tok, err := p.lex.Require(nodeMask)
	if err != nil {
		return nil, err
	}
	return p.nodeFrom(&tok)
}

func (p *parser) nodeFrom(tok *token.Token) (*ir.Node, error) {
	if tok.Type == token.TLCurl {
		n, err := p.sequence("")
		if err != nil {
			return nil, err
		}
		p.trackPos(n, tok)
		return n, nil
	}
	key := string(tok.Bytes)
	sep, err := p.lex.Require(afterKey)
	if err != nil {
		return nil, err
	}
	var n *ir.Node
	if sep.Type == token.TLCurl {
		n, err = p.sequence(key)
	} else {
		var v ir.Value
		v, err = p.value()
		if err == nil {
			n = p.doc.NewValue(key, v)
		}
	}
	if err != nil {
		return nil, err
	}
	p.trackPos(n, tok)
	if debug.Parse() {
		debug.Logf("parse node %q %s at %s\n", key, n.Value.Type, tok.Pos)
	}
	return n, nil
}

// sequence parses the entries of a map after its opening '{'.
func (p *parser) sequence(key string) (*ir.Node, error) {
	n := p.doc.NewSequence(key, nil)
	for {
		tok, err := p.lex.Try(token.TRCurl)
		if err != nil {
			return nil, err
		}
		if tok.OK {
			return n, nil
		}
		child, err := p.node()
		if err != nil {
			return nil, err
		}
		n.Insert(child)
		sep, err := p.lex.Require(token.TComma | token.TRCurl)
		if err != nil {
			return nil, err
		}
		if sep.Type == token.TRCurl {
			return n, nil
		}
	}
}

// array parses the elements of an array after its opening '['.
func (p *parser) array() (*ir.Array, error) {
	a := ir.NewArray()
	for {
		tok, err := p.lex.Try(token.TRSquare)
		if err != nil {
			return nil, err
		}
		if tok.OK {
			return a, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		a.Push(v)
		sep, err := p.lex.Require(token.TComma | token.TRSquare)
		if err != nil {
			return nil, err
		}
		if sep.Type == token.TRSquare {
			return a, nil
		}
	}
}

func (p *parser) value() (ir.Value, error) {
	tok, err := p.lex.Require(valueMask)
	if err != nil {
		return ir.Value{}, err
	}
	switch tok.Type {
	case token.TLCurl:
		n, err := p.sequence("")
		if err != nil {
			return ir.Value{}, err
		}
		return n.Value, nil
	case token.TLSquare:
		a, err := p.array()
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromArray(a), nil
	case token.TString:
		return ir.FromString(string(tok.Bytes)), nil
	case token.TInteger, token.THexInteger, token.TBinInteger:
		i, err := tok.Int()
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromInt(i), nil
	case token.TFloat:
		f, err := tok.Float()
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromFloat(f), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TNil:
		return ir.Nil(), nil
	default:
		return ir.Value{}, fmt.Errorf("%w: unexpected %s at %s", errInternal, tok.Type, tok.Pos)
	}
}
