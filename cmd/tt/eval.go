package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tagtext/eval"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	opts := []eval.EvalOption{eval.Vars(cfg.Vars)}
	dw := cfg.docWriter(cc.Out, cfg.outFormat(format.TagTextFormat))
	return forEachDoc(cfg.MainConfig, cc, args[1:], cfg.inFormat(format.TagTextFormat), func(file string, i int, doc *ir.Node) error {
		if cfg.Match {
			ok, err := eval.Match(doc, src, opts...)
			if err != nil {
				return fmt.Errorf("error evaluating %s document %d: %w", file, i, err)
			}
			if !ok {
				return nil
			}
			return dw.write(doc)
		}
		res, err := eval.Eval(doc, src, opts...)
		if err != nil {
			return fmt.Errorf("error evaluating %s document %d: %w", file, i, err)
		}
		return dw.write(res)
	})
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
