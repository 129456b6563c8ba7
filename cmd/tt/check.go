package main

import (
	"fmt"
	"io"

	"github.com/signadot/tagtext/encode"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var w io.Writer = cc.Out
	if cfg.Quiet {
		w = io.Discard
	}
	failed := 0
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		for i, doc := range parseDocs(cfg.MainConfig, d) {
			if err := checkDoc(cfg, doc); err != nil {
				failed++
				fmt.Fprintf(w, "%s: document %d: %v\n", arg, i, err)
			}
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkDoc(cfg *CheckConfig, doc parsedDoc) error {
	if doc.err != nil {
		return doc.err
	}
	if !cfg.Strict {
		return nil
	}
	if _, err := encode.EncodeString(doc.node, encode.Strict()); err != nil {
		return err
	}
	return nil
}
