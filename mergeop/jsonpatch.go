package mergeop

import (
	"fmt"

	"github.com/signadot/tagtext/bridge"
	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = &jPatchSymbol{name: jPatchName}

func JSONPatchSym() Symbol {
	return jPatchSym
}

const (
	jPatchName name = "json-patch"
)

type jPatchSymbol struct {
	name
}

func (s jPatchSymbol) Instance(child *ir.Node) (Op, error) {
	if child == nil || child.Type != ir.ListType {
		return nil, fmt.Errorf("%w: %s expects a list of operations", ErrOpArg, s)
	}
	d, err := bridge.MarshalJSON(child)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpArg, s, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.name, child: child}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json-patch %s on %s\n", debug.TagText{Node: jp.child}, debug.TagText{Node: doc})
	}
	d, err := bridge.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := jp.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, jp, err)
	}
	return bridge.Decode(jOut, format.JSONFormat)
}

// JSONPatch applies the RFC 6902 operations in ops to doc.
func JSONPatch(doc, ops *ir.Node) (*ir.Node, error) {
	o, err := jPatchSym.Instance(ops)
	if err != nil {
		return nil, err
	}
	return o.Patch(doc)
}
