package main

import (
	"fmt"

	"github.com/signadot/tagtext/format"
	"github.com/signadot/tagtext/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	return query(cfg.MainConfig, cc, args, path, false)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	return query(cfg.MainConfig, cc, args, path, true)
}

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return "", nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return path, args[1:], nil
}

func query(cfg *MainConfig, cc *cli.Context, args []string, path string, isList bool) error {
	dw := cfg.docWriter(cc.Out, cfg.outFormat(format.TagTextFormat))
	return forEachDoc(cfg, cc, args, cfg.inFormat(format.TagTextFormat), func(file string, i int, doc *ir.Node) error {
		if isList {
			res, err := doc.ListPath(nil, path)
			if err != nil {
				return fmt.Errorf("error executing list on %s: %w", file, err)
			}
			return dw.write(ir.FromSlice(res))
		}
		res, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error executing get on %s: %w", file, err)
		}
		if res == nil {
			// missing fields are not an error
			return nil
		}
		return dw.write(res)
	})
}
