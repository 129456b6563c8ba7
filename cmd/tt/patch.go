package main

import (
	"fmt"

	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"
	"github.com/signadot/tagtext/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Ops {
		fmt.Fprintf(cc.Out, "available patch operations:\n")
		for _, s := range mergeop.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	sym := mergeop.Lookup(cfg.Op)
	if sym == nil {
		return fmt.Errorf("%w: no patch operation %q", cli.ErrUsage, cfg.Op)
	}
	patchFmt, ok := format.FromSuffix(args[0])
	if !ok {
		patchFmt = cfg.inFormat(format.TagTextFormat)
	}
	patchNode, err := getObjFile(cfg.MainConfig, cc, args[0], patchFmt)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	op, err := sym.Instance(patchNode)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	dw := cfg.docWriter(cc.Out, cfg.outFormat(format.TagTextFormat))
	return forEachDoc(cfg.MainConfig, cc, args[1:], cfg.inFormat(format.TagTextFormat), func(file string, i int, doc *ir.Node) error {
		res, err := op.Patch(doc)
		if err != nil {
			return fmt.Errorf("error patching %s document %d: %w", file, i, err)
		}
		return dw.write(res)
	})
}
