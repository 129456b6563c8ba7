package mergeop

import (
	"fmt"

	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var strPatchSym = &strPatchSymbol{name: strPatchName}

func StrPatchSym() Symbol {
	return strPatchSym
}

const (
	strPatchName name = "strpatch"
)

type strPatchSymbol struct {
	name
}

// Instance takes a string child holding patch text, as found in
// libdiff.Change.Patch.
func (s strPatchSymbol) Instance(child *ir.Node) (Op, error) {
	if child == nil || child.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %s expects a string", ErrOpArg, s)
	}
	patches, err := diffpatch.New().PatchFromText(child.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpArg, s, err)
	}
	return &strPatchOp{patches: patches, op: op{name: s.name, child: child}}, nil
}

type strPatchOp struct {
	op
	patches []diffpatch.Patch
}

func (sp strPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("strpatch on %s\n", doc.Path())
	}
	if doc.Type != ir.StringType {
		return nil, fmt.Errorf("%w: strpatch only applies to strings, got %s", ErrPatch, doc.Type)
	}
	res, applied := diffpatch.New().PatchApply(sp.patches, doc.String)
	for i, ok := range applied {
		if !ok {
			return nil, fmt.Errorf("%w: strpatch hunk %d does not apply at %s", ErrPatch, i, doc.Path())
		}
	}
	return ir.FromString(res), nil
}
