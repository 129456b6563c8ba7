package eval

import (
	"fmt"
	"os"

	"github.com/signadot/tagtext/bridge"
	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Eval evaluates the expression src with doc bound to the variable doc and
// returns the result as a node.
func Eval(doc *ir.Node, src string, opts ...EvalOption) (*ir.Node, error) {
	res, err := run(doc, src, opts)
	if err != nil {
		return nil, err
	}
	node, err := bridge.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
	}
	return node, nil
}

// Match evaluates src like Eval and reports whether the result is truthy.
func Match(doc *ir.Node, src string, opts ...EvalOption) (bool, error) {
	res, err := Eval(doc, src, opts...)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}

func run(doc *ir.Node, src string, opts []EvalOption) (any, error) {
	eOpts := &evalOpts{}
	for _, f := range opts {
		f(eOpts)
	}
	if doc == nil {
		doc = ir.Null()
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", src, debug.TagText{Node: doc})
		if len(eOpts.vars) != 0 {
			debug.LogAny(eOpts.vars)
		}
	}
	env := make(map[string]any, len(eOpts.vars)+1)
	for k, v := range eOpts.vars {
		env[k] = v
	}
	env["doc"] = bridge.ToJSONAny(doc)

	prg, err := compile(doc, src, env)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", src, res)
	}
	return res, nil
}

func compile(doc *ir.Node, src string, env map[string]any) (*vm.Program, error) {
	opts := append([]expr.Option{expr.Env(env)}, exprOpts(doc)...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	return prg, nil
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return bridge.ToJSONAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, y := range yRes {
				res[i] = bridge.ToJSONAny(y)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("tagtext", func(params ...any) (any, error) {
			node, err := bridge.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return encode.EncodeString(node)
		},
			new(func(any) string)),
	}
}
