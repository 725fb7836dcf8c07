// Package gomap maps between Go values and csd nodes.
//
// Values travel through their encoding/json form, so struct fields are
// named by their json tags and sequence entries follow struct field
// order.
package gomap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/ir"
	"github.com/csd-format/go-csd/parse"
)

var ErrMap = errors.New("gomap error")

// IRFromer is implemented by types which decode themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// IRer is implemented by types which encode themselves as a node.
type IRer interface {
	IR(key string) (*ir.Node, error)
}

// ToIR converts v to a node keyed by key.
func ToIR(key string, v any) (*ir.Node, error) {
	if x, ok := v.(IRer); ok {
		return x.IR(key)
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	n, err := ir.FromJSON(key, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	return n, nil
}

// FromIR stores the value of n in the value pointed to by p.
func FromIR(n *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(n)
	}
	d, err := ir.MarshalJSON(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	return nil
}

// Load parses a csd document and stores its root value in p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	if doc.Root == nil {
		return fmt.Errorf("%w: empty document", ErrMap)
	}
	return FromIR(doc.Root, p)
}

// Dump renders v as a csd document whose root has the given key.
func Dump(key string, v any, opts ...encode.EncodeOption) ([]byte, error) {
	n, err := ToIR(key, v)
	if err != nil {
		return nil, err
	}
	return encode.EncodeBytes(n, opts...)
}
