package main

import (
	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := cfg.docWriter(cc.Out, format.TagTextFormat)
	if dw.opts == nil && !cfg.colorSet() {
		dw.opts = []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return forEachDoc(cfg.MainConfig, cc, args, cfg.inFormat(format.TagTextFormat), func(_ string, _ int, doc *ir.Node) error {
		return dw.write(doc)
	})
}
