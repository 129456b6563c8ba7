package mergeop

import (
	"fmt"

	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/eval"
	"github.com/signadot/tagtext/ir"
)

var evalSym = &evalSymbol{name: evalName}

func EvalSym() Symbol {
	return evalSym
}

const (
	evalName name = "eval"
)

type evalSymbol struct {
	name
}

func (s evalSymbol) Instance(child *ir.Node) (Op, error) {
	if child == nil || child.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %s expects an expression string", ErrOpArg, s)
	}
	return &evalOp{op: op{name: s.name, child: child}}, nil
}

type evalOp struct {
	op
}

func (e evalOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("eval %q on %s\n", e.child.String, doc.Path())
	}
	return eval.Eval(doc, e.child.String)
}
