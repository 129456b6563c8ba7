package mergeop

import (
	"fmt"

	"github.com/signadot/tagtext/bridge"
	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var mPatchSym = &mPatchSymbol{name: mPatchName}

func MergePatchSym() Symbol {
	return mPatchSym
}

const (
	mPatchName name = "merge-patch"
)

type mPatchSymbol struct {
	name
}

func (s mPatchSymbol) Instance(child *ir.Node) (Op, error) {
	d, err := bridge.MarshalJSON(child)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{patch: d, op: op{name: s.name, child: child}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

// Patch merges the patch into doc.  Null members of the patch delete the
// corresponding members of doc.
func (mp mPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge-patch %s on %s\n", debug.TagText{Node: mp.child}, debug.TagText{Node: doc})
	}
	d, err := bridge.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, mp, err)
	}
	return bridge.Decode(jOut, format.JSONFormat)
}

// MergePatch applies the RFC 7386 merge patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	o, err := mPatchSym.Instance(patch)
	if err != nil {
		return nil, err
	}
	return o.Patch(doc)
}
