package gomap

import (
	"bytes"
	"fmt"

	"github.com/signadot/tagtext/bridge"
	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/parse"

	"github.com/goccy/go-yaml"
)

type IRer interface {
	ToIR() (*ir.Node, error)
}

type IRFromer interface {
	FromIR(*ir.Node) error
}

// ToIR converts v to a node.
func ToIR(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case IRer:
		return x.ToIR()
	case *ir.Node:
		return x.Clone(), nil
	}
	d, err := yaml.MarshalWithOptions(v, yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("mapping %T: %w", v, err)
	}
	return bridge.Decode(d, format.JSONFormat)
}

// FromIR stores node into the value pointed to by p.
func FromIR(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	d, err := bridge.MarshalJSON(node)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(d, p, yaml.Strict()); err != nil {
		return fmt.Errorf("mapping into %T: %w", p, err)
	}
	return nil
}

// Dump encodes v as tagged text.
func Dump(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load decodes tagged text from d into the value pointed to by p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(node, p)
}
