package main

import (
	"github.com/signadot/tagtext/debug"
	"github.com/signadot/tagtext/encode"
	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := cfg.docWriter(cc.Out, cfg.outFormat(format.TagTextFormat))
	var opts []encode.EncodeOption
	if cfg.Strict {
		opts = append(opts, encode.Strict())
	}
	return forEachDoc(cfg.MainConfig, cc, args, cfg.inFormat(format.JSONFormat), func(file string, i int, doc *ir.Node) error {
		if debug.Encode() {
			debug.Logf("encoding %s document %d: %d nodes deep\n", file, i, doc.Depth())
		}
		return dw.write(doc, opts...)
	})
}
