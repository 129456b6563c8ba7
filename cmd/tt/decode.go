package main

import (
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := cfg.docWriter(cc.Out, cfg.outFormat(format.YAMLFormat))
	return forEachDoc(cfg.MainConfig, cc, args, cfg.inFormat(format.TagTextFormat), func(_ string, _ int, doc *ir.Node) error {
		return dw.write(doc)
	})
}
