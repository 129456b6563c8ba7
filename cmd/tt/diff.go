package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	inFmt := cfg.inFormat(format.TagTextFormat)
	y1, err := getObjFile(cfg.MainConfig, cc, args[0], inFmt)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1], inFmt)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(y1, y2)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if cfg.Node {
		dw := cfg.docWriter(cc.Out, cfg.outFormat(format.TagTextFormat))
		if err := dw.write(libdiff.ToNode(changes)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	for i := range changes {
		c := &changes[i]
		if c.Patch != "" {
			fmt.Fprintf(cc.Out, "%s %s\n", c.Op, c.Path)
			for _, line := range strings.Split(strings.TrimRight(c.Patch, "\n"), "\n") {
				fmt.Fprintf(cc.Out, "    %s\n", line)
			}
			continue
		}
		fmt.Fprintln(cc.Out, c.String())
	}
	return cli.ExitCodeErr(1)
}
