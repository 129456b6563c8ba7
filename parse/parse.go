package parse

import (
	"bytes"

	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/token"
)

var (
	listOpen  = token.OpenTag(ir.ListType.Tag())
	listClose = token.CloseTag(ir.ListType.Tag())
	dictOpen  = token.OpenTag(ir.DictType.Tag())
	dictClose = token.CloseTag(ir.DictType.Tag())
)

type parser struct {
	d     []byte
	doc   *token.PosDoc
	opts  *parseOpts
	depth int
}

// Parse decodes exactly one value from d.  Bytes left over after the value
// are an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, doc: token.NewPosDoc(d), opts: pOpts}
	res, next, err := p.value(0, len(d))
	if err != nil {
		return nil, err
	}
	if next != len(d) {
		return nil, p.errAt(ErrTrailingData, next, "%d bytes after value", len(d)-next)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func (p *parser) trackPos(node *ir.Node, off int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.doc.Pos(off)
	}
}

// value parses the value whose opening tag starts at pos, reading no
// further than end.  It returns the offset just past the closing tag.
func (p *parser) value(pos, end int) (*ir.Node, int, error) {
	if pos >= end {
		return nil, pos, p.errAt(ErrMalformedInput, pos, "expected '<', got end of input")
	}
	if p.d[pos] != token.Open {
		return nil, pos, p.errAt(ErrMalformedInput, pos, "expected '<', got %q", p.d[pos])
	}
	tag, next, ok := token.TagName(p.d, pos, end)
	if !ok {
		return nil, pos, p.errAt(ErrUnterminatedTag, pos, "no '>' after '<'")
	}
	typ, ok := ir.TypeFromTag(tag)
	if !ok {
		return nil, pos, p.errAt(ErrUnknownTypeTag, pos, "%q", tag)
	}
	if debug.Parse() {
		debug.Logf("parse %s at %d\n", tag, pos)
	}
	var (
		res *ir.Node
		err error
	)
	switch typ {
	case ir.ListType:
		res, next, err = p.list(pos, next, end)
	case ir.DictType:
		res, next, err = p.dict(pos, next, end)
	default:
		res, next, err = p.scalar(typ, pos, next, end)
	}
	if err != nil {
		return nil, pos, err
	}
	p.trackPos(res, pos)
	return res, next, nil
}

func (p *parser) scalar(typ ir.Type, tagPos, pos, end int) (*ir.Node, int, error) {
	closeTag := token.CloseTag(typ.Tag())
	i := token.Index(p.d, pos, end, closeTag)
	if i == -1 {
		return nil, pos, p.errAt(ErrUnterminatedTag, tagPos, "missing %s", closeTag)
	}
	payload := string(p.d[pos:i])
	next := i + len(closeTag)

	switch typ {
	case ir.StringType:
		return ir.FromString(payload), next, nil
	case ir.BoolType:
		b, err := token.ParseBool(payload)
		if err != nil {
			return nil, pos, p.errAt(ErrInvalidBool, pos, "%q", payload)
		}
		return ir.FromBool(b), next, nil
	case ir.IntType:
		v, err := token.ParseInt(payload)
		if err != nil {
			return nil, pos, p.errAt(ErrInvalidInt, pos, "%q: %w", payload, err)
		}
		return ir.FromInt(v), next, nil
	case ir.FloatType:
		f, err := token.ParseFloat(payload)
		if err != nil {
			return nil, pos, p.errAt(ErrInvalidFloat, pos, "%q: %w", payload, err)
		}
		return ir.FromFloat(f), next, nil
	case ir.NullType:
		if payload != token.NoneLiteral && !p.opts.lenientNone {
			return nil, pos, p.errAt(ErrInvalidNone, pos, "%q", payload)
		}
		return ir.Null(), next, nil
	}
	panic("scalar type")
}

func (p *parser) enter(pos int) error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return p.errAt(ErrRecursionLimit, pos, "nesting deeper than %d", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) list(tagPos, pos, end int) (*ir.Node, int, error) {
	if err := p.enter(tagPos); err != nil {
		return nil, pos, err
	}
	defer func() { p.depth-- }()

	bodyEnd, next, ok := token.Balanced(p.d, pos, end, listOpen, listClose)
	if !ok {
		return nil, pos, p.errAt(ErrUnterminatedTag, tagPos, "missing %s", listClose)
	}
	res := ir.FromSlice(nil)
	for i := pos; i < bodyEnd; {
		elt, eltEnd, err := p.value(i, bodyEnd)
		if err != nil {
			return nil, pos, err
		}
		res.Append(elt)
		i = eltEnd
	}
	return res, next, nil
}

func (p *parser) dict(tagPos, pos, end int) (*ir.Node, int, error) {
	if err := p.enter(tagPos); err != nil {
		return nil, pos, err
	}
	defer func() { p.depth-- }()

	bodyEnd, next, ok := token.Balanced(p.d, pos, end, dictOpen, dictClose)
	if !ok {
		return nil, pos, p.errAt(ErrUnterminatedTag, tagPos, "missing %s", dictClose)
	}
	res := ir.FromKeyVals(nil)
	for i := pos; i < bodyEnd; {
		if p.d[i] != token.Open {
			return nil, pos, p.errAt(ErrMalformedInput, i, "expected member tag, got %q", p.d[i])
		}
		key, valPos, ok := token.TagName(p.d, i, bodyEnd)
		if !ok {
			return nil, pos, p.errAt(ErrUnterminatedTag, i, "no '>' after member '<'")
		}
		val, valEnd, err := p.value(valPos, bodyEnd)
		if err != nil {
			return nil, pos, err
		}
		closeTag := token.CloseTag(key)
		if !bytes.HasPrefix(p.d[valEnd:bodyEnd], []byte(closeTag)) {
			return nil, pos, p.errAt(ErrMalformedInput, valEnd, "expected %s", closeTag)
		}
		res.Set(key, val)
		i = valEnd + len(closeTag)
	}
	return res, next, nil
}
